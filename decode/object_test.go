package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcodec/json4/decode"

	json4 "github.com/elmcodec/json4"
)

type person struct {
	Name string
	Age  int32
}

func decodePerson(g *decode.Getters) person {
	return person{
		Name: decode.RequiredField(g, "name", decode.String),
		Age:  decode.RequiredField(g, "age", decode.Int),
	}
}

func TestObjectZeroErrorsSucceeds(t *testing.T) {
	obj := json4.Object(
		json4.Member{Key: "name", Value: json4.String("Ada")},
		json4.Member{Key: "age", Value: json4.Number(36)},
	)
	p, err := decode.Object(decodePerson)("$", obj)
	require.Nil(t, err)
	assert.Equal(t, person{Name: "Ada", Age: 36}, p)
}

func TestObjectSingleErrorForwardsIt(t *testing.T) {
	obj := json4.Object(json4.Member{Key: "name", Value: json4.String("Ada")})
	_, err := decode.Object(decodePerson)("$", obj)
	require.NotNil(t, err)
	assert.Equal(t, json4.ReasonBadField, err.Reason.Kind)
}

func TestObjectMultipleErrorsAggregateIntoBadOneOf(t *testing.T) {
	obj := json4.Object()
	_, err := decode.Object(decodePerson)("$", obj)
	require.NotNil(t, err)
	assert.Equal(t, json4.ReasonBadOneOf, err.Reason.Kind)
	assert.Len(t, err.Reason.OneOf, 2)
}

func TestOptionalRawDowngradesBadFieldToNone(t *testing.T) {
	obj := json4.Object()
	dec := decode.Object(func(g *decode.Getters) decode.Option[string] {
		return decode.OptionalRaw(g, decode.Field("missing", decode.String))
	})
	opt, err := dec("$", obj)
	require.Nil(t, err)
	assert.False(t, opt.IsSome())
}
