package auto

import (
	"reflect"
	"sync"

	"github.com/elmcodec/json4/decode"
	"github.com/elmcodec/json4/encode"

	json4 "github.com/elmcodec/json4"
)

var (
	enumRegistryMu sync.RWMutex
	enumRegistry   = map[reflect.Type][]int64{}
)

// RegisterEnumValues records the declared members of an enum type T, so
// AUTO's decoder can reject integers that aren't a declared case with
// BadPrimitiveExtra (§4.6 "Enum"). Registration is optional: an
// unregistered enum type decodes any integer that fits its underlying
// width.
func RegisterEnumValues[T any](values ...T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = toInt64(reflect.ValueOf(v))
	}
	enumRegistryMu.Lock()
	enumRegistry[t] = out
	enumRegistryMu.Unlock()
}

func lookupEnumValues(t reflect.Type) ([]int64, bool) {
	enumRegistryMu.RLock()
	defer enumRegistryMu.RUnlock()
	values, ok := enumRegistry[t]
	return values, ok
}

func toInt64(rv reflect.Value) int64 {
	switch rv.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return int64(rv.Uint())
	default:
		return rv.Int()
	}
}

func isDeclaredMember(values []int64, n int64) bool {
	for _, v := range values {
		if v == n {
			return true
		}
	}
	return false
}

// buildEnumCoder dispatches to the numeric coder matching t's underlying
// integer width, validating enum membership on decode when values were
// registered via RegisterEnumValues.
func buildEnumCoder(t reflect.Type) CoderPair {
	values, hasRegistry := lookupEnumValues(t)

	checkMember := func(path string, v json4.Json, n int64) *json4.Error {
		if hasRegistry && !isDeclaredMember(values, n) {
			return &json4.Error{Path: path, Reason: json4.BadPrimitiveExtra(
				"a declared enum member", v, "value is not one of the type's declared cases")}
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Int8:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.SByte(int8(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.SByte(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Int16:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int16(int16(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.Int16(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Int64:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int64(reflect.ValueOf(v).Int()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.Int64(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, n); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Uint8:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Byte(uint8(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.Byte(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Uint16:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt16(uint16(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.UInt16(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Uint32:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt32(uint32(reflect.ValueOf(v).Uint())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.UInt32(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	case reflect.Uint64, reflect.Uint:
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.UInt64(reflect.ValueOf(v).Uint()) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.UInt64(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	default: // Int32, Int
		return CoderPair{
			Encode: func(v any) json4.Json { return encode.Int(int32(reflect.ValueOf(v).Int())) },
			Decode: func(path string, v json4.Json) (any, *json4.Error) {
				n, err := decode.Int(path, v)
				if err != nil {
					return nil, err
				}
				if e := checkMember(path, v, int64(n)); e != nil {
					return nil, e
				}
				return reflect.ValueOf(n).Convert(t).Interface(), nil
			},
		}
	}
}
