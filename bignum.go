package json4

import (
	"errors"
	"math/big"

	gojson "github.com/goccy/go-json"
)

// ErrNotANumber is returned when a string does not have valid JSON number
// syntax and so cannot back a decimal or bigint primitive decoder.
var ErrNotANumber = errors.New("not a valid JSON number")

// ParseBigRat parses text as an arbitrary-precision rational, used by the
// decimal primitive decoder's numeric-string acceptance path (§4.3). It
// validates JSON number syntax with goccy/go-json's Number type first —
// the same validation encoding/json.Number performs, grounded on rat.go's
// convertToBigRat/FormatRat pattern — so "1e400" and "abc" are rejected
// identically whether they arrived as a JSON number token or a string.
func ParseBigRat(text string) (*big.Rat, error) {
	if _, err := gojson.Number(text).Float64(); err != nil {
		return nil, ErrNotANumber
	}
	r := new(big.Rat)
	if _, ok := r.SetString(text); !ok {
		return nil, ErrNotANumber
	}
	return r, nil
}

// ParseBigInt parses text as an arbitrary-precision integer, used by the
// bigint primitive decoder's numeric-string acceptance path.
func ParseBigInt(text string) (*big.Int, error) {
	if _, err := gojson.Number(text).Int64(); err != nil {
		// Int64() only validates range for int64; fall through to the
		// big.Int parse for values that exceed it but are still integral.
		n := new(big.Int)
		if _, ok := n.SetString(text, 10); ok {
			return n, nil
		}
		return nil, ErrNotANumber
	}
	n := new(big.Int)
	if _, ok := n.SetString(text, 10); !ok {
		return nil, ErrNotANumber
	}
	return n, nil
}

// FormatBigRat renders r the way the teacher's Rat.MarshalJSON does: a
// plain decimal string when it has no fractional remainder, otherwise a
// "numerator/denominator" fraction string.
func FormatBigRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
