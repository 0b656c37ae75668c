package json4

// Kind enumerates the possible shapes of a Json value (§3 Entities: Json).
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// Member is a single ordered key/value pair of a Json object.
type Member struct {
	Key   string
	Value Json
}

// Json is the core's abstract JSON value abstraction (JVA, §4.1). It is a
// tagged union of null, bool, number, string, array and object, with object
// members kept in insertion order so encode.Object's pair order (§8
// Invariant 4) and AUTO's field-declaration order survive a round trip.
//
// The core only ever constructs a Json through the functions below; no
// other package may build one by other means.
type Json struct {
	kind   Kind
	b      bool
	n      float64
	s      string
	arr    []Json
	fields []Member
}

// Null returns the JSON null value.
func Null() Json { return Json{kind: KindNull} }

// Undefined represents a missing value (as opposed to an explicit null),
// used internally to signal "field absent" without allocating an error.
func Undefined() Json { return Json{kind: KindUndefined} }

// Bool wraps a boolean as a Json value.
func Bool(b bool) Json { return Json{kind: KindBool, b: b} }

// Number wraps a float64 as a Json value.
func Number(n float64) Json { return Json{kind: KindNumber, n: n} }

// String wraps a string as a Json value.
func String(s string) Json { return Json{kind: KindString, s: s} }

// Array builds a Json array from the given elements.
func Array(items ...Json) Json {
	arr := make([]Json, len(items))
	copy(arr, items)
	return Json{kind: KindArray, arr: arr}
}

// ArrayFromSlice builds a Json array without copying the caller's slice
// header (the slice itself is still treated as owned by the Json value).
func ArrayFromSlice(items []Json) Json {
	return Json{kind: KindArray, arr: items}
}

// Object builds a Json object from ordered members.
func Object(members ...Member) Json {
	fs := make([]Member, len(members))
	copy(fs, members)
	return Json{kind: KindObject, fields: fs}
}

// Kind reports the shape of v.
func (v Json) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null or undefined.
func (v Json) IsNull() bool { return v.kind == KindNull || v.kind == KindUndefined }

// AsBool coerces v to a bool, per JVA.asBool (§4.1).
func (v Json) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsFloat64 coerces v to a float64, per JVA.asFloat (§4.1).
func (v Json) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsString coerces v to a string, per JVA.asString (§4.1).
func (v Json) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Field looks up a named member of an object value, per JVA.fieldOf (§4.1).
func (v Json) Field(name string) (Json, bool) {
	if v.kind != KindObject {
		return Json{}, false
	}
	for _, m := range v.fields {
		if m.Key == name {
			return m.Value, true
		}
	}
	return Json{}, false
}

// Len returns the number of elements in an array value, per JVA.arrayLen.
func (v Json) Len() int {
	if v.kind != KindArray {
		return 0
	}
	return len(v.arr)
}

// At returns the i'th element of an array value, per JVA.arrayAt. Returns
// Undefined() if i is out of range.
func (v Json) At(i int) Json {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Undefined()
	}
	return v.arr[i]
}

// Elements returns the array's elements in order, per JVA.iterArray.
func (v Json) Elements() []Json {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Members returns the object's key/value pairs in insertion order, per
// JVA.iterObject.
func (v Json) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.fields
}
