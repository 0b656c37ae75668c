package json4

import "strings"

// ReasonKind discriminates the structured failure reasons of ErrorReason
// (§3 Entities: ErrorReason).
type ReasonKind int

const (
	ReasonBadPrimitive ReasonKind = iota
	ReasonBadType
	ReasonBadPrimitiveExtra
	ReasonBadField
	ReasonBadPath
	ReasonTooSmallArray
	ReasonFailMessage
	ReasonBadOneOf
)

// ErrorReason is the sum of structured decode-failure reasons (§3).
type ErrorReason struct {
	Kind ReasonKind

	Expected     string
	Value        Json
	Detail       string
	UnknownField string
	Text         string
	OneOf        []string
}

func BadPrimitive(expected string, value Json) ErrorReason {
	return ErrorReason{Kind: ReasonBadPrimitive, Expected: expected, Value: value}
}

func BadType(expected string, value Json) ErrorReason {
	return ErrorReason{Kind: ReasonBadType, Expected: expected, Value: value}
}

func BadPrimitiveExtra(expected string, value Json, detail string) ErrorReason {
	return ErrorReason{Kind: ReasonBadPrimitiveExtra, Expected: expected, Value: value, Detail: detail}
}

func BadField(expected string, value Json) ErrorReason {
	return ErrorReason{Kind: ReasonBadField, Expected: expected, Value: value}
}

func BadPath(expected string, value Json, unknownField string) ErrorReason {
	return ErrorReason{Kind: ReasonBadPath, Expected: expected, Value: value, UnknownField: unknownField}
}

func TooSmallArray(expected string, value Json) ErrorReason {
	return ErrorReason{Kind: ReasonTooSmallArray, Expected: expected, Value: value}
}

func FailMessage(text string) ErrorReason {
	return ErrorReason{Kind: ReasonFailMessage, Text: text}
}

func BadOneOf(errs []string) ErrorReason {
	return ErrorReason{Kind: ReasonBadOneOf, OneOf: errs}
}

// Error pairs a path with the reason decoding failed there (§3 Entities:
// Decoder<T>). It implements the standard error interface via Render.
type Error struct {
	Path   string
	Reason ErrorReason
}

func newError(path string, reason ErrorReason) *Error {
	return &Error{Path: path, Reason: reason}
}

func (e *Error) Error() string {
	return Render(e)
}

// Render produces a human-readable, deterministic multiline string for an
// Error (§4.2, §8 Invariant 2). BadOneOf does not prefix itself with its
// own path: each sub-error already carries one (§9 Open Question, resolved
// per the spec's description of the original's actual behavior).
func Render(err *Error) string {
	if err == nil {
		return ""
	}
	if err.Reason.Kind == ReasonBadOneOf {
		var b strings.Builder
		b.WriteString("The following errors were found:\n\n")
		b.WriteString(strings.Join(err.Reason.OneOf, "\n\n"))
		return b.String()
	}
	return "Error at: `" + err.Path + "`\n" + reasonMessage(err.Reason)
}

func reasonMessage(r ErrorReason) string {
	switch r.Kind {
	case ReasonBadPrimitive:
		return genericMsg(r.Expected, r.Value)
	case ReasonBadType:
		return genericMsg(r.Expected, r.Value)
	case ReasonBadPrimitiveExtra:
		return genericMsg(r.Expected, r.Value) + "\n" + r.Detail
	case ReasonBadField:
		return "Expecting an object with a field named `" + r.Expected + "` but instead got: " + prettyJSON(r.Value)
	case ReasonBadPath:
		if r.UnknownField != "" {
			return "Expecting a path ending in `" + r.Expected + "` but the field `" + r.UnknownField + "` is missing from: " + prettyJSON(r.Value)
		}
		return genericMsg(r.Expected, r.Value)
	case ReasonTooSmallArray:
		return "Expecting " + r.Expected + " but instead got: " + prettyJSON(r.Value)
	case ReasonFailMessage:
		return r.Text
	default:
		return "unknown error"
	}
}

// genericMsg renders the Elm-style "Expecting X but instead got: Y"
// message, guarding against a malformed Json value panicking mid-render
// (§4.2).
func genericMsg(expected string, value Json) string {
	return "Expecting " + expected + " but instead got: " + prettyJSON(value)
}

func prettyJSON(value Json) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = "<circular structure>"
		}
	}()
	return ToString(0, value)
}
