package json4

import "github.com/kaptinlin/go-i18n"

// reasonCode maps a ReasonKind to a stable i18n message key, mirroring the
// teacher's EvaluationError.Code (result.go).
func reasonCode(kind ReasonKind) string {
	switch kind {
	case ReasonBadPrimitive:
		return "bad_primitive"
	case ReasonBadType:
		return "bad_type"
	case ReasonBadPrimitiveExtra:
		return "bad_primitive_extra"
	case ReasonBadField:
		return "bad_field"
	case ReasonBadPath:
		return "bad_path"
	case ReasonTooSmallArray:
		return "too_small_array"
	case ReasonFailMessage:
		return "fail_message"
	case ReasonBadOneOf:
		return "bad_one_of"
	default:
		return "unknown"
	}
}

// Localize renders err using the given localizer, falling back to the
// default English rendering (Render) when localizer is nil or the bundle
// has no translation for the reason's code. Mirrors
// EvaluationError.Localize (result.go).
func (e *Error) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return Render(e)
	}
	vars := i18n.Vars(map[string]any{
		"path":     e.Path,
		"expected": e.Reason.Expected,
		"detail":   e.Reason.Detail,
		"text":     e.Reason.Text,
	})
	msg := localizer.Get(reasonCode(e.Reason.Kind), vars)
	if msg == "" {
		return Render(e)
	}
	return msg
}
