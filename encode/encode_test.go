package encode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elmcodec/json4/decode"
	"github.com/elmcodec/json4/encode"

	json4 "github.com/elmcodec/json4"
)

func TestFloatNonFiniteEncodesToNull(t *testing.T) {
	assert.Equal(t, json4.KindNull, encode.Float(math.NaN()).Kind())
	assert.Equal(t, json4.KindNull, encode.Float(math.Inf(1)).Kind())
	assert.Equal(t, json4.KindNull, encode.Float(math.Inf(-1)).Kind())
}

func TestInt64EncodesAsString(t *testing.T) {
	j := encode.Int64(9223372036854775807)
	s, ok := j.AsString()
	assert.True(t, ok)
	assert.Equal(t, "9223372036854775807", s)
}

func TestObjectPreservesFieldOrder(t *testing.T) {
	j := encode.Object(
		encode.Field{Key: "z", Value: encode.String("first")},
		encode.Field{Key: "a", Value: encode.String("second")},
	)
	members := j.Members()
	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
}

func TestOptionEncodesNoneAsNull(t *testing.T) {
	j := encode.Option(encode.String, decode.None[string]())
	assert.Equal(t, json4.KindNull, j.Kind())

	j = encode.Option(encode.String, decode.Some("hi"))
	s, _ := j.AsString()
	assert.Equal(t, "hi", s)
}

func TestTuple2RoundTrip(t *testing.T) {
	pair := decode.Pair2[string, int32]{A: "x", B: 1}
	j := encode.Tuple2(encode.String, encode.Int, pair)
	back, err := decode.Tuple2(decode.String, decode.Int)("$", j)
	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(pair, back)
}

func TestToStringCompactVsIndented(t *testing.T) {
	j := encode.Object(encode.Field{Key: "a", Value: encode.Int(1)})
	compact := encode.ToString(0, j)
	indented := encode.ToString(2, j)
	assert.NotContains(t, compact, "\n")
	assert.Contains(t, indented, "\n")
}

func TestDictSortsKeysLexicographically(t *testing.T) {
	j := encode.Dict(map[string]json4.Json{
		"z": encode.Int(1),
		"a": encode.Int(2),
		"m": encode.Int(3),
	})
	members := j.Members()
	require := assert.New(t)
	require.Equal("a", members[0].Key)
	require.Equal("m", members[1].Key)
	require.Equal("z", members[2].Key)
}
