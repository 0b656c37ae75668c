// Package decode implements the decoder combinator algebra (DEC, §4.3):
// primitive decoders and the combinators that assemble them into decoders
// for whole documents. A Decoder[T] is a pure function of path × Json to
// (T, error) — equal inputs always yield equal outputs (§3 Invariant 1).
package decode

import (
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	json4 "github.com/elmcodec/json4"
)

// Decoder is a pure, composable JSON decoder for T (§3 Entities:
// Decoder<T>).
type Decoder[T any] func(path string, v json4.Json) (T, *json4.Error)

// Root is the path every decode run starts from (§3: Path).
const Root = "$"

func atField(path, name string) string {
	return path + "." + name
}

func atIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func fail[T any](path string, reason json4.ErrorReason) (T, *json4.Error) {
	var zero T
	return zero, &json4.Error{Path: path, Reason: reason}
}

func badPrimitive[T any](path, expected string, v json4.Json) (T, *json4.Error) {
	return fail[T](path, json4.BadPrimitive(expected, v))
}

// === Primitives (§4.3) ===

// String decodes a JSON string.
func String(path string, v json4.Json) (string, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[string](path, "a string", v)
	}
	return s, nil
}

// Char decodes a JSON string of length exactly 1 (in runes).
func Char(path string, v json4.Json) (rune, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[rune](path, "a single character", v)
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return badPrimitive[rune](path, "a single character", v)
	}
	return runes[0], nil
}

// Bool decodes a JSON boolean.
func Bool(path string, v json4.Json) (bool, *json4.Error) {
	b, ok := v.AsBool()
	if !ok {
		return badPrimitive[bool](path, "a boolean", v)
	}
	return b, nil
}

// Unit decodes JSON null (or undefined) into the zero value of struct{}.
func Unit(path string, v json4.Json) (struct{}, *json4.Error) {
	if !v.IsNull() {
		return badPrimitive[struct{}](path, "null", v)
	}
	return struct{}{}, nil
}

// Value passes the raw Json value through unchanged (the "any" leaf, §4.6
// step 4 Leaf primitives).
func Value(path string, v json4.Json) (json4.Json, *json4.Error) {
	return v, nil
}

// Float decodes a JSON number as a float64.
func Float(path string, v json4.Json) (float64, *json4.Error) {
	n, ok := v.AsFloat64()
	if !ok {
		return badPrimitive[float64](path, "a float", v)
	}
	return n, nil
}

// Float32 decodes a JSON number as a float32.
func Float32(path string, v json4.Json) (float32, *json4.Error) {
	n, ok := v.AsFloat64()
	if !ok {
		return badPrimitive[float32](path, "a float", v)
	}
	return float32(n), nil
}

func numericString(v json4.Json) (string, bool) {
	return v.AsString()
}

// Decimal decodes a JSON number, or a numeric string (to preserve
// precision a float64 cannot carry), as an arbitrary-precision rational.
func Decimal(path string, v json4.Json) (*big.Rat, *json4.Error) {
	if s, ok := numericString(v); ok {
		r, err := json4.ParseBigRat(s)
		if err != nil {
			return fail[*big.Rat](path, json4.BadPrimitiveExtra("a decimal", v, err.Error()))
		}
		return r, nil
	}
	if n, ok := v.AsFloat64(); ok {
		r := new(big.Rat).SetFloat64(n)
		if r == nil {
			return fail[*big.Rat](path, json4.BadPrimitiveExtra("a decimal", v, "value is not finite"))
		}
		return r, nil
	}
	return badPrimitive[*big.Rat](path, "a decimal", v)
}

// BigInt decodes a JSON number or numeric string as an arbitrary-precision
// integer.
func BigInt(path string, v json4.Json) (*big.Int, *json4.Error) {
	if s, ok := numericString(v); ok {
		n, err := json4.ParseBigInt(s)
		if err != nil {
			return fail[*big.Int](path, json4.BadPrimitiveExtra("an integer", v, err.Error()))
		}
		return n, nil
	}
	if n, ok := v.AsFloat64(); ok {
		if n != float64(int64(n)) {
			return fail[*big.Int](path, json4.BadPrimitiveExtra("an integer", v, "value is not a whole number"))
		}
		return big.NewInt(int64(n)), nil
	}
	return badPrimitive[*big.Int](path, "an integer", v)
}

func decodeIntWidth[T interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int
}](path, expected string, v json4.Json, lo, hi float64) (T, *json4.Error) {
	var f float64
	if n, ok := v.AsFloat64(); ok {
		f = n
	} else if s, ok := numericString(v); ok {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return badPrimitive[T](path, expected, v)
		}
		f = parsed
	} else {
		return badPrimitive[T](path, expected, v)
	}
	if f != float64(int64(f)) {
		return fail[T](path, json4.BadPrimitiveExtra(expected, v, "value was not an integer"))
	}
	if f < lo || f > hi {
		return fail[T](path, json4.BadPrimitiveExtra(expected, v, "value was either too large or too small"))
	}
	return T(f), nil
}

func SByte(path string, v json4.Json) (int8, *json4.Error) {
	return decodeIntWidth[int8](path, "an sbyte", v, -128, 127)
}

func Byte(path string, v json4.Json) (uint8, *json4.Error) {
	return decodeIntWidth[uint8](path, "a byte", v, 0, 255)
}

func Int16(path string, v json4.Json) (int16, *json4.Error) {
	return decodeIntWidth[int16](path, "an int16", v, -32768, 32767)
}

func UInt16(path string, v json4.Json) (uint16, *json4.Error) {
	return decodeIntWidth[uint16](path, "a uint16", v, 0, 65535)
}

func Int(path string, v json4.Json) (int32, *json4.Error) {
	return decodeIntWidth[int32](path, "an int", v, -2147483648, 2147483647)
}

func UInt32(path string, v json4.Json) (uint32, *json4.Error) {
	return decodeIntWidth[uint32](path, "a uint32", v, 0, 4294967295)
}

// Int64 decodes a JSON integer, or a numeric string (JSON numbers above
// 2^53 cannot round-trip through float64), as an int64.
func Int64(path string, v json4.Json) (int64, *json4.Error) {
	if s, ok := numericString(v); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fail[int64](path, json4.BadPrimitiveExtra("an int64", v, err.Error()))
		}
		return n, nil
	}
	if f, ok := v.AsFloat64(); ok {
		if f != float64(int64(f)) {
			return fail[int64](path, json4.BadPrimitiveExtra("an int64", v, "value was not an integer"))
		}
		return int64(f), nil
	}
	return badPrimitive[int64](path, "an int64", v)
}

// UInt64 decodes a JSON integer, or a numeric string, as a uint64.
func UInt64(path string, v json4.Json) (uint64, *json4.Error) {
	if s, ok := numericString(v); ok {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fail[uint64](path, json4.BadPrimitiveExtra("a uint64", v, err.Error()))
		}
		return n, nil
	}
	if f, ok := v.AsFloat64(); ok {
		if f < 0 || f != float64(uint64(f)) {
			return fail[uint64](path, json4.BadPrimitiveExtra("a uint64", v, "value was either too large or too small"))
		}
		return uint64(f), nil
	}
	return badPrimitive[uint64](path, "a uint64", v)
}

// Guid decodes a JSON string parseable as a GUID/UUID.
func Guid(path string, v json4.Json) (uuid.UUID, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[uuid.UUID](path, "a GUID", v)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fail[uuid.UUID](path, json4.BadPrimitiveExtra("a GUID", v, err.Error()))
	}
	return id, nil
}

var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseAnyDate(s string) (time.Time, error) {
	var firstErr error
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// DatetimeUtc decodes a JSON string parseable as a date, converting it to
// UTC.
func DatetimeUtc(path string, v json4.Json) (time.Time, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[time.Time](path, "a date", v)
	}
	t, err := parseAnyDate(s)
	if err != nil {
		return fail[time.Time](path, json4.BadPrimitiveExtra("a date", v, err.Error()))
	}
	return t.UTC(), nil
}

// DatetimeLocal decodes a JSON string parseable as a date, preserving its
// original location/offset rather than forcing UTC.
func DatetimeLocal(path string, v json4.Json) (time.Time, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[time.Time](path, "a date", v)
	}
	t, err := parseAnyDate(s)
	if err != nil {
		return fail[time.Time](path, json4.BadPrimitiveExtra("a date", v, err.Error()))
	}
	return t, nil
}

// DatetimeOffset decodes a JSON string parseable as a date-with-offset.
func DatetimeOffset(path string, v json4.Json) (time.Time, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[time.Time](path, "a date", v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = parseAnyDate(s)
		if err != nil {
			return fail[time.Time](path, json4.BadPrimitiveExtra("a date with offset", v, err.Error()))
		}
	}
	return t, nil
}

// Timespan decodes a JSON string parseable as a duration.
func Timespan(path string, v json4.Json) (time.Duration, *json4.Error) {
	s, ok := v.AsString()
	if !ok {
		return badPrimitive[time.Duration](path, "a timespan", v)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fail[time.Duration](path, json4.BadPrimitiveExtra("a timespan", v, err.Error()))
	}
	return d, nil
}
