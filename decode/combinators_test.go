package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcodec/json4/decode"

	json4 "github.com/elmcodec/json4"
)

func TestFieldMissingIsBadField(t *testing.T) {
	obj := json4.Object(json4.Member{Key: "name", Value: json4.String("Ada")})
	_, err := decode.Field("age", decode.Int)("$", obj)
	require.NotNil(t, err)
	assert.Equal(t, json4.ReasonBadField, err.Reason.Kind)
}

func TestOptionalMissingIsNone(t *testing.T) {
	obj := json4.Object()
	opt, err := decode.Optional("age", decode.Int)("$", obj)
	require.Nil(t, err)
	assert.False(t, opt.IsSome())
}

func TestOptionalNullBeforeInnerDecoder(t *testing.T) {
	obj := json4.Object(json4.Member{Key: "age", Value: json4.Null()})
	// decode.Int would reject null; Optional must short-circuit to None
	// before ever calling it.
	opt, err := decode.Optional("age", decode.Int)("$", obj)
	require.Nil(t, err)
	assert.False(t, opt.IsSome())
}

func TestIndexOutOfBoundsIsTooSmallArray(t *testing.T) {
	arr := json4.Array(json4.String("a"))
	_, err := decode.Index(5, decode.String)("$", arr)
	require.NotNil(t, err)
	assert.Equal(t, json4.ReasonTooSmallArray, err.Reason.Kind)
}

func TestOneOfTriesInOrderAndAggregates(t *testing.T) {
	dec := decode.OneOf(decode.Int, decode.Bool)
	v := json4.String("nope")
	_, err := dec("$", v)
	require.NotNil(t, err)
	assert.Equal(t, json4.ReasonBadOneOf, err.Reason.Kind)
	assert.Len(t, err.Reason.OneOf, 2)
}

func TestAndThenPreservesOriginalErrorPath(t *testing.T) {
	dec := decode.AndThen(func(string) decode.Decoder[int32] {
		return decode.Int
	}, decode.Field("kind", decode.String))

	obj := json4.Object()
	_, err := dec("$.outer", obj)
	require.NotNil(t, err)
	assert.Equal(t, "$.outer", err.Path)
}

func TestKeyValuePairsPreservesInsertionOrder(t *testing.T) {
	obj := json4.Object(
		json4.Member{Key: "z", Value: json4.Number(1)},
		json4.Member{Key: "a", Value: json4.Number(2)},
	)
	pairs, err := decode.KeyValuePairs(decode.Float)("$", obj)
	require.Nil(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "z", pairs[0].Key)
	assert.Equal(t, "a", pairs[1].Key)
}
