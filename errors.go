package json4

import "errors"

// === Generation-time errors (AUTO, §4.6) ===
// Sentinel values naming failures that happen while deriving a coder,
// before any value is decoded or encoded. No function in this module
// returns them: package auto reports a type it cannot derive by panicking
// with a message, and its decoders report an unknown union case or a wrong
// arity as path-carrying Error values (BadPrimitiveExtra, TooSmallArray).
var (
	// ErrUnsupportedType names the case where AUTO cannot derive a coder
	// for a type and no override was registered in ExtraCoders for it.
	ErrUnsupportedType = errors.New("auto: unsupported type, register an override via ExtraCoders")

	// ErrNotStruct names the case where a record coder is requested for a
	// non-struct type.
	ErrNotStruct = errors.New("auto: expected a struct type")

	// ErrNotUnion names the case where a discriminated-union coder is
	// requested for a type that does not implement the union contract.
	ErrNotUnion = errors.New("auto: expected a discriminated union type")

	// ErrUnknownUnionCase names the case where a tagged union's JSON
	// representation names a case that the type does not declare.
	ErrUnknownUnionCase = errors.New("auto: unknown union case")

	// ErrArityMismatch names the case where a tuple or union case array
	// does not have the expected number of elements.
	ErrArityMismatch = errors.New("auto: arity mismatch")

	// ErrNonStringKey names the case where a stringifiable-key map coder
	// is asked to handle a key type that cannot stringify.
	ErrNonStringKey = errors.New("auto: map key type is not stringifiable")
)

// === Registry and cache errors (EXT, CACHE, §4.7-§4.8) ===
// Like the group above, these are declared but not returned by any
// function in this module; ExtraCoders performs no validation of its Hash.
var (
	// ErrExtrasHashRequired names the case of an ExtraCoders value with a
	// non-empty coder table and an empty Hash, which would alias cache
	// entries across distinct override sets.
	ErrExtrasHashRequired = errors.New("extras: hash is required when coders are registered")

	// ErrNilRegistry names the case of a nil *ExtraCoders dereferenced by
	// a call that requires one.
	ErrNilRegistry = errors.New("extras: registry is nil")
)

// === Parsing errors (runners, §4.3) ===
var (
	// ErrInvalidJSON is wrapped by the error ParseText, and so
	// decode.FromString, returns when the input text cannot be parsed at
	// all (as opposed to parsing fine but failing structural decoding);
	// decode.UnsafeFromString panics with that error.
	ErrInvalidJSON = errors.New("given an invalid JSON")
)
