package encode

import (
	"sort"

	"github.com/elmcodec/json4/decode"

	json4 "github.com/elmcodec/json4"
)

// Field is one ordered (key, Json) pair passed to Object.
type Field struct {
	Key   string
	Value json4.Json
}

// Object builds a JSON object, preserving the caller's field order (§8
// Invariant 4: encode.object pair order).
func Object(fields ...Field) json4.Json {
	members := make([]json4.Member, len(fields))
	for i, f := range fields {
		members[i] = json4.Member{Key: f.Key, Value: f.Value}
	}
	return json4.Object(members...)
}

// Array builds a JSON array from already-encoded elements.
func Array(items ...json4.Json) json4.Json {
	return json4.Array(items...)
}

// List encodes a slice element-wise into a JSON array.
func List[T any](enc Encoder[T], items []T) json4.Json {
	out := make([]json4.Json, len(items))
	for i, item := range items {
		out[i] = enc(item)
	}
	return json4.ArrayFromSlice(out)
}

// Seq is an alias for List, modeling a generic finite sequence as a JSON
// array (§9 "Seq-like sequences").
func Seq[T any](enc Encoder[T], items []T) json4.Json {
	return List(enc, items)
}

// Dict encodes a map with string keys as a JSON object, with keys sorted
// lexicographically before emitting (§4.6 Determinism), matching AUTO's
// stringifiable-key map encoder: Go map iteration order is randomized, and
// without sorting the same map would serialize differently from one run to
// the next.
func Dict(m map[string]json4.Json) json4.Json {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Key: k, Value: m[k]}
	}
	return Object(fields...)
}

// Option encodes None as null and Some(x) as enc(x) (decode.option's
// encoder counterpart, §4.4).
func Option[T any](enc Encoder[T], opt decode.Option[T]) json4.Json {
	if v, ok := opt.Get(); ok {
		return enc(v)
	}
	return json4.Null()
}

// Map encodes an arbitrary-keyed map as a JSON array of [key, value] pairs
// (encode.map', §4.4): `map(keyEnc, valueEnc, m) = list (tuple2 keyEnc
// valueEnc)`.
func Map[K comparable, V any](keyEnc Encoder[K], valueEnc Encoder[V], m map[K]V) json4.Json {
	out := make([]json4.Json, 0, len(m))
	for k, v := range m {
		out = append(out, Array(keyEnc(k), valueEnc(v)))
	}
	return json4.ArrayFromSlice(out)
}

func Tuple2[A, B any](ea Encoder[A], eb Encoder[B], p decode.Pair2[A, B]) json4.Json {
	return Array(ea(p.A), eb(p.B))
}

func Tuple3[A, B, C any](ea Encoder[A], eb Encoder[B], ec Encoder[C], p decode.Pair3[A, B, C]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C))
}

func Tuple4[A, B, C, D any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], p decode.Pair4[A, B, C, D]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C), ed(p.D))
}

func Tuple5[A, B, C, D, E any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], p decode.Pair5[A, B, C, D, E]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C), ed(p.D), ee(p.E))
}

func Tuple6[A, B, C, D, E, F any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F], p decode.Pair6[A, B, C, D, E, F]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C), ed(p.D), ee(p.E), ef(p.F))
}

func Tuple7[A, B, C, D, E, F, G any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F], eg Encoder[G], p decode.Pair7[A, B, C, D, E, F, G]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C), ed(p.D), ee(p.E), ef(p.F), eg(p.G))
}

func Tuple8[A, B, C, D, E, F, G, H any](ea Encoder[A], eb Encoder[B], ec Encoder[C], ed Encoder[D], ee Encoder[E], ef Encoder[F], eg Encoder[G], eh Encoder[H], p decode.Pair8[A, B, C, D, E, F, G, H]) json4.Json {
	return Array(ea(p.A), eb(p.B), ec(p.C), ed(p.D), ee(p.E), ef(p.F), eg(p.G), eh(p.H))
}

// === Enum encoders (§4.4): extract the underlying integral value of a
// named integer type and encode with the matching numeric encoder. Go
// generics resolve the underlying representation at compile time, so no
// runtime reflection is needed here (unlike AUTO's enum case, which is
// generated dynamically and does use reflection).

func EnumSByte[T ~int8](v T) json4.Json    { return SByte(int8(v)) }
func EnumByte[T ~uint8](v T) json4.Json    { return Byte(uint8(v)) }
func EnumInt16[T ~int16](v T) json4.Json   { return Int16(int16(v)) }
func EnumUInt16[T ~uint16](v T) json4.Json { return UInt16(uint16(v)) }
func EnumInt[T ~int32](v T) json4.Json     { return Int(int32(v)) }
func EnumUInt32[T ~uint32](v T) json4.Json { return UInt32(uint32(v)) }

// ToString renders json compactly when space is 0 or less, otherwise
// indented by that many spaces with portable '\n' newlines (§4.4).
func ToString(space int, v json4.Json) string {
	return json4.ToString(space, v)
}
