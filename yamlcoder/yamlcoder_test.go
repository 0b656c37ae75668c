package yamlcoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json4 "github.com/elmcodec/json4"
	"github.com/elmcodec/json4/yamlcoder"
)

func TestParseTextPreservesMappingOrder(t *testing.T) {
	v, err := yamlcoder.ParseText("z: 1\na: 2\nm: 3\n")
	require.NoError(t, err)
	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
	assert.Equal(t, "m", members[2].Key)
}

func TestParseTextInvalidYAML(t *testing.T) {
	_, err := yamlcoder.ParseText("z: [1, 2\n")
	require.Error(t, err)
}

func TestRoundTripThroughYAMLText(t *testing.T) {
	in := json4.Object(
		json4.Member{Key: "name", Value: json4.String("Ada")},
		json4.Member{Key: "tags", Value: json4.Array(json4.String("a"), json4.String("b"))},
	)
	text, err := yamlcoder.ToString(in)
	require.NoError(t, err)

	out, err := yamlcoder.ParseText(text)
	require.NoError(t, err)

	members := out.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "name", members[0].Key)
	assert.Equal(t, "tags", members[1].Key)
}

func TestParseTextNestedMapping(t *testing.T) {
	v, err := yamlcoder.ParseText("outer:\n  inner: 1\n")
	require.NoError(t, err)
	outer, ok := v.Field("outer")
	require.True(t, ok)
	inner, ok := outer.Field("inner")
	require.True(t, ok)
	n, _ := inner.AsFloat64()
	assert.Equal(t, float64(1), n)
}
