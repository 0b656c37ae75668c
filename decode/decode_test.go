package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcodec/json4/decode"

	json4 "github.com/elmcodec/json4"
)

func TestPrimitives(t *testing.T) {
	v, err := decode.String("$", json4.String("hello"))
	require.Nil(t, err)
	assert.Equal(t, "hello", v)

	_, err = decode.String("$", json4.Number(1))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Expecting a string")

	b, err := decode.Bool("$", json4.Bool(true))
	require.Nil(t, err)
	assert.True(t, b)

	i, err := decode.Int("$", json4.Number(42))
	require.Nil(t, err)
	assert.Equal(t, int32(42), i)

	_, err = decode.Int("$", json4.Number(1.5))
	require.NotNil(t, err)
}

func TestInt64AcceptsNumericString(t *testing.T) {
	n, err := decode.Int64("$", json4.String("9223372036854775807"))
	require.Nil(t, err)
	assert.Equal(t, int64(9223372036854775807), n)
}

func TestCharRequiresExactlyOneRune(t *testing.T) {
	c, err := decode.Char("$", json4.String("x"))
	require.Nil(t, err)
	assert.Equal(t, 'x', c)

	_, err = decode.Char("$", json4.String("xy"))
	require.NotNil(t, err)
}

func TestTimespan(t *testing.T) {
	d, err := decode.Timespan("$", json4.String("1h30m"))
	require.Nil(t, err)
	assert.Equal(t, "1h30m0s", d.String())
}
