package json4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonCodeMapsEveryKind(t *testing.T) {
	cases := map[ReasonKind]string{
		ReasonBadPrimitive:      "bad_primitive",
		ReasonBadType:           "bad_type",
		ReasonBadPrimitiveExtra: "bad_primitive_extra",
		ReasonBadField:          "bad_field",
		ReasonBadPath:           "bad_path",
		ReasonTooSmallArray:     "too_small_array",
		ReasonFailMessage:       "fail_message",
		ReasonBadOneOf:          "bad_one_of",
	}
	for kind, want := range cases {
		assert.Equal(t, want, reasonCode(kind))
	}
}

func TestLocalizeWithNilLocalizerFallsBackToRender(t *testing.T) {
	err := &Error{Path: "$.age", Reason: BadPrimitive("an integer", String("x"))}
	assert.Equal(t, Render(err), err.Localize(nil))
}
