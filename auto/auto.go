// Package auto implements the reflection-driven auto-coder generator
// (AUTO, §4.6): given a Go type, it derives an Encoder/Decoder pair without
// requiring the caller to hand-assemble one from DEC/ENC. Generated coders
// are cached process-wide (§4.7) and honor caller-supplied overrides
// (§4.6 step 1).
package auto

import (
	"reflect"

	"github.com/elmcodec/json4/decode"
	"github.com/elmcodec/json4/encode"

	json4 "github.com/elmcodec/json4"
)

// Options configures one Encoder[T]/Decoder[T] call.
type Options struct {
	Strategy      CaseStrategy
	Extras        *ExtraCoders
	SkipNullField bool
}

// DefaultOptions matches the spec's defaults: PascalCase, no overrides,
// skipNullField enabled.
func DefaultOptions() Options {
	return Options{Strategy: PascalCase, SkipNullField: true}
}

// Encoder derives an encode.Encoder[T] by walking T's structural shape via
// reflection.
func Encoder[T any](opts Options) encode.Encoder[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	ctx := newGenContext(opts.Strategy, opts.Extras, opts.SkipNullField)
	pair := generate(t, ctx)
	return func(v T) json4.Json {
		return pair.Encode(v)
	}
}

// Decoder derives a decode.Decoder[T] by walking T's structural shape via
// reflection.
func Decoder[T any](opts Options) decode.Decoder[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	ctx := newGenContext(opts.Strategy, opts.Extras, opts.SkipNullField)
	pair := generate(t, ctx)
	return func(path string, v json4.Json) (T, *json4.Error) {
		boxed, err := pair.Decode(path, v)
		if err != nil {
			var zero T
			return zero, err
		}
		return boxed.(T), nil
	}
}
