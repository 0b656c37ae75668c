package decode

import json4 "github.com/elmcodec/json4"

// === Structural combinators (§4.3) ===

// Field requires v to be an object and decodes the named member with dec.
// A missing field fails with BadField; a present field (even null)
// descends with path + ".name".
func Field[T any](name string, dec Decoder[T]) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		if v.Kind() != json4.KindObject {
			return badPrimitive[T](path, "an object", v)
		}
		field, ok := v.Field(name)
		if !ok {
			return fail[T](path, json4.BadField(name, v))
		}
		return dec(atField(path, name), field)
	}
}

// At decodes through a chain of object field names, like repeated Field.
// A missing field, a non-object, or a null before the last name fails with
// BadPath; the value under the last name, even null, is passed to dec.
func At[T any](names []string, dec Decoder[T]) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		cur := v
		curPath := path
		for i, name := range names {
			if cur.Kind() != json4.KindObject {
				return fail[T](path, json4.BadPath(joinPath(names), v, name))
			}
			field, ok := cur.Field(name)
			if !ok {
				return fail[T](path, json4.BadPath(joinPath(names), v, name))
			}
			curPath = atField(curPath, name)
			if field.IsNull() && i < len(names)-1 {
				return fail[T](curPath, json4.BadPath(joinPath(names), v, names[i+1]))
			}
			cur = field
		}
		return dec(curPath, cur)
	}
}

func joinPath(names []string) string {
	out := ""
	for _, n := range names {
		out += "." + n
	}
	return out
}

// Index requires v to be an array and decodes the i'th element. An
// out-of-bounds index fails with TooSmallArray.
func Index[T any](i int, dec Decoder[T]) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		if v.Kind() != json4.KindArray {
			return badPrimitive[T](path, "an array", v)
		}
		if i < 0 || i >= v.Len() {
			return fail[T](path, json4.TooSmallArray("a longer array", v))
		}
		return dec(atIndex(path, i), v.At(i))
	}
}

// Optional requires v to be an object. A missing field or a present JSON
// null decode to None; otherwise the field is decoded with dec and wrapped
// in Some. Per the short-circuit resolution of the spec's "decodeMaybeNull
// ordering" Open Question, the null check happens before dec ever runs.
func Optional[T any](name string, dec Decoder[T]) Decoder[Option[T]] {
	return func(path string, v json4.Json) (Option[T], *json4.Error) {
		if v.Kind() != json4.KindObject {
			return badPrimitive[Option[T]](path, "an object", v)
		}
		field, ok := v.Field(name)
		if !ok || field.IsNull() {
			return None[T](), nil
		}
		val, err := dec(atField(path, name), field)
		if err != nil {
			return Option[T]{}, err
		}
		return Some(val), nil
	}
}

// optionalAt is the At-chained counterpart of Optional, exported as
// OptionalAtDecoder (object.go).
func optionalAt[T any](names []string, dec Decoder[T]) Decoder[Option[T]] {
	return func(path string, v json4.Json) (Option[T], *json4.Error) {
		cur := v
		curPath := path
		for _, name := range names[:len(names)-1] {
			if cur.Kind() != json4.KindObject {
				return None[T](), nil
			}
			field, ok := cur.Field(name)
			if !ok || field.IsNull() {
				return None[T](), nil
			}
			curPath = atField(curPath, name)
			cur = field
		}
		last := names[len(names)-1]
		if cur.Kind() != json4.KindObject {
			return None[T](), nil
		}
		field, ok := cur.Field(last)
		if !ok || field.IsNull() {
			return None[T](), nil
		}
		val, err := dec(atField(curPath, last), field)
		if err != nil {
			return Option[T]{}, err
		}
		return Some(val), nil
	}
}

// Nullable decodes JSON null as None, and any other value with dec wrapped
// in Some (decode.option, §4.3).
func Nullable[D any](dec Decoder[D]) Decoder[Option[D]] {
	return func(path string, v json4.Json) (Option[D], *json4.Error) {
		if v.IsNull() {
			return None[D](), nil
		}
		val, err := dec(path, v)
		if err != nil {
			return Option[D]{}, err
		}
		return Some(val), nil
	}
}

// List decodes a JSON array element-wise into a slice, stopping at the
// first element that fails (keeping that element's path).
func List[T any](dec Decoder[T]) Decoder[[]T] {
	return Array(dec)
}

// Array decodes a JSON array element-wise into a slice.
func Array[T any](dec Decoder[T]) Decoder[[]T] {
	return func(path string, v json4.Json) ([]T, *json4.Error) {
		if v.Kind() != json4.KindArray {
			return badPrimitive[[]T](path, "an array", v)
		}
		elems := v.Elements()
		out := make([]T, len(elems))
		for i, elem := range elems {
			val, err := dec(atIndex(path, i), elem)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	}
}

// Keys decodes a JSON object into the list of its member names, in
// insertion order.
func Keys(path string, v json4.Json) ([]string, *json4.Error) {
	if v.Kind() != json4.KindObject {
		return badPrimitive[[]string](path, "an object", v)
	}
	members := v.Members()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Key
	}
	return out, nil
}

// Pair is an ordered key/value result, as produced by KeyValuePairs.
type Pair[T any] struct {
	Key   string
	Value T
}

// KeyValuePairs decodes a JSON object into an ordered list of (key, value)
// pairs, each value decoded with path + ".key".
func KeyValuePairs[T any](dec Decoder[T]) Decoder[[]Pair[T]] {
	return func(path string, v json4.Json) ([]Pair[T], *json4.Error) {
		if v.Kind() != json4.KindObject {
			return badPrimitive[[]Pair[T]](path, "an object", v)
		}
		members := v.Members()
		out := make([]Pair[T], len(members))
		for i, m := range members {
			val, err := dec(atField(path, m.Key), m.Value)
			if err != nil {
				return nil, err
			}
			out[i] = Pair[T]{Key: m.Key, Value: val}
		}
		return out, nil
	}
}

// Dict decodes a JSON object into a map[string]T.
func Dict[T any](dec Decoder[T]) Decoder[map[string]T] {
	pairs := KeyValuePairs(dec)
	return func(path string, v json4.Json) (map[string]T, *json4.Error) {
		ps, err := pairs(path, v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]T, len(ps))
		for _, p := range ps {
			out[p.Key] = p.Value
		}
		return out, nil
	}
}

// MapPairs decodes a JSON array of two-element arrays [key, value] into a
// map with an arbitrary key type (decode.map', §4.3).
func MapPairs[K comparable, V any](keyDec Decoder[K], valueDec Decoder[V]) Decoder[map[K]V] {
	pairDec := Tuple2(keyDec, valueDec)
	arr := Array(pairDec)
	return func(path string, v json4.Json) (map[K]V, *json4.Error) {
		pairs, err := arr(path, v)
		if err != nil {
			return nil, err
		}
		out := make(map[K]V, len(pairs))
		for _, p := range pairs {
			out[p.A] = p.B
		}
		return out, nil
	}
}

// === Algebraic combinators (§4.3) ===

// Succeed always succeeds with x, ignoring the input.
func Succeed[T any](x T) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		return x, nil
	}
}

// Fail always fails with a FailMessage reason.
func Fail[T any](msg string) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		return fail[T](path, json4.FailMessage(msg))
	}
}

// Nil decodes JSON null (or undefined) to x, failing otherwise.
func Nil[T any](x T) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		if !v.IsNull() {
			return badPrimitive[T](path, "null", v)
		}
		return x, nil
	}
}

// AndThen implements monadic bind: decode with dec, then pick the next
// decoder based on the decoded value.
func AndThen[A, B any](f func(A) Decoder[B], dec Decoder[A]) Decoder[B] {
	return func(path string, v json4.Json) (B, *json4.Error) {
		a, err := dec(path, v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(path, v)
	}
}

// All runs every decoder in decs against the same value, collecting
// results; the first failure aborts.
func All[T any](decs ...Decoder[T]) Decoder[[]T] {
	return func(path string, v json4.Json) ([]T, *json4.Error) {
		out := make([]T, 0, len(decs))
		for _, dec := range decs {
			val, err := dec(path, v)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	}
}

// OneOf tries each decoder in order, returning the first success. If every
// decoder fails, the result is BadOneOf with each sub-error rendered, in
// order (§8 Invariant/Scenario: OneOf determinism).
func OneOf[T any](decs ...Decoder[T]) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		var rendered []string
		for _, dec := range decs {
			val, err := dec(path, v)
			if err == nil {
				return val, nil
			}
			rendered = append(rendered, json4.Render(err))
		}
		return fail[T](path, json4.BadOneOf(rendered))
	}
}

// === Runners (§4.3) ===

// FromValue runs dec against v starting at path, rendering any failure to
// a string.
func FromValue[T any](path string, dec Decoder[T]) func(json4.Json) (T, error) {
	return func(v json4.Json) (T, error) {
		val, err := dec(path, v)
		if err != nil {
			return val, errString(err)
		}
		return val, nil
	}
}

// FromString parses text and runs dec against the result, starting at
// Root. A parse failure is reported as "given an invalid JSON: ...".
func FromString[T any](dec Decoder[T]) func(string) (T, error) {
	return func(text string) (T, error) {
		var zero T
		v, err := json4.ParseText(text)
		if err != nil {
			return zero, err
		}
		return FromValue(Root, dec)(v)
	}
}

// UnsafeFromString behaves like FromString but panics on failure.
func UnsafeFromString[T any](dec Decoder[T]) func(string) T {
	return func(text string) T {
		val, err := FromString(dec)(text)
		if err != nil {
			panic(err)
		}
		return val
	}
}

type renderedError struct{ s string }

func (e *renderedError) Error() string { return e.s }

func errString(err *json4.Error) error {
	if err == nil {
		return nil
	}
	return &renderedError{s: json4.Render(err)}
}
