package json4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json4 "github.com/elmcodec/json4"
)

func TestParseTextPreservesObjectOrder(t *testing.T) {
	v, err := json4.ParseText(`{"z": 1, "a": 2, "m": 3}`)
	require.NoError(t, err)
	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
	assert.Equal(t, "m", members[2].Key)
}

func TestParseTextInvalidJSON(t *testing.T) {
	_, err := json4.ParseText(`{not json}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "given an invalid JSON")
}

func TestToStringRoundTrip(t *testing.T) {
	v, err := json4.ParseText(`{"b":[1,2,3],"a":"x"}`)
	require.NoError(t, err)
	text := json4.ToString(0, v)
	v2, err := json4.ParseText(text)
	require.NoError(t, err)
	assert.Equal(t, json4.ToString(0, v), json4.ToString(0, v2))
}

func TestToStringIndentsWithSpaces(t *testing.T) {
	v := json4.Object(json4.Member{Key: "a", Value: json4.Number(1)})
	out := json4.ToString(2, v)
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, "  \"a\"")
}

func TestRenderBadOneOfDoesNotPrefixOwnPath(t *testing.T) {
	inner := &json4.Error{Path: "$.x", Reason: json4.BadPrimitive("a string", json4.Number(1))}
	outer := &json4.Error{Path: "$", Reason: json4.BadOneOf([]string{json4.Render(inner)})}
	rendered := json4.Render(outer)
	assert.Contains(t, rendered, "The following errors were found:")
	assert.Contains(t, rendered, "$.x")
	assert.NotContains(t, rendered, "Error at: `$`\n")
}

func TestFormatBigRat(t *testing.T) {
	r, err := json4.ParseBigRat("123")
	require.NoError(t, err)
	assert.Equal(t, "123", json4.FormatBigRat(r))
}
