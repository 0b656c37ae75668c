// Package encode implements the encoder algebra (ENC, §4.4): primitive
// encoders and the combinators that assemble them. An Encoder[T] is a pure,
// total function of T to Json — it never fails.
package encode

import (
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	json4 "github.com/elmcodec/json4"
)

// Encoder is a pure, total JSON encoder for T (§3 Entities: Encoder<T>).
type Encoder[T any] func(T) json4.Json

// === Primitives (§4.4) ===

func String(s string) json4.Json { return json4.String(s) }

func Char(c rune) json4.Json { return json4.String(string(c)) }

func Bool(b bool) json4.Json { return json4.Bool(b) }

// Unit always encodes to JSON null.
func Unit(struct{}) json4.Json { return json4.Null() }

// Value passes a raw Json value through unchanged.
func Value(v json4.Json) json4.Json { return v }

// Float encodes a float64 as a JSON number, or null for NaN/±Inf (per the
// Elm tradition carried over from the decoder's numeric rules, §4.4).
func Float(f float64) json4.Json {
	if isNonFinite(f) {
		return json4.Null()
	}
	return json4.Number(f)
}

func Float32(f float32) json4.Json {
	return Float(float64(f))
}

func isNonFinite(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.7976931348623157e+308

// Decimal encodes as a JSON string in plain decimal notation ("1.5"), since
// JSON has no lossless decimal representation. A value with no finite
// decimal expansion (such as 1/3) is written in FormatBigRat's
// "numerator/denominator" form instead.
func Decimal(r *big.Rat) json4.Json {
	if prec, exact := r.FloatPrec(); exact {
		return json4.String(r.FloatString(prec))
	}
	return json4.String(json4.FormatBigRat(r))
}

// BigInt encodes as a JSON string, since JSON numbers cannot losslessly
// hold integers above 2^53.
func BigInt(n *big.Int) json4.Json {
	return json4.String(n.String())
}

func SByte(v int8) json4.Json   { return json4.Number(float64(v)) }
func Byte(v uint8) json4.Json   { return json4.Number(float64(v)) }
func Int16(v int16) json4.Json  { return json4.Number(float64(v)) }
func UInt16(v uint16) json4.Json { return json4.Number(float64(v)) }
func Int(v int32) json4.Json    { return json4.Number(float64(v)) }
func UInt32(v uint32) json4.Json { return json4.Number(float64(v)) }

// Int64 encodes as a JSON string, since JSON numbers cannot losslessly hold
// integers above 2^53.
func Int64(v int64) json4.Json {
	return json4.String(strconv.FormatInt(v, 10))
}

// UInt64 encodes as a JSON string, for the same reason as Int64.
func UInt64(v uint64) json4.Json {
	return json4.String(strconv.FormatUint(v, 10))
}

// Guid encodes as its canonical hyphenated string form.
func Guid(id uuid.UUID) json4.Json {
	return json4.String(id.String())
}

// DatetimeUtc encodes in ISO-8601 round-trip ("O") format.
func DatetimeUtc(t time.Time) json4.Json {
	return json4.String(t.UTC().Format(time.RFC3339Nano))
}

// DatetimeOffset encodes in ISO-8601 round-trip format, preserving t's
// original offset.
func DatetimeOffset(t time.Time) json4.Json {
	return json4.String(t.Format(time.RFC3339Nano))
}

// Timespan stringifies a duration the way time.Duration.String does.
func Timespan(d time.Duration) json4.Json {
	return json4.String(d.String())
}
