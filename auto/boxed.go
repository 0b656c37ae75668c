package auto

import json4 "github.com/elmcodec/json4"

// BoxedEncoder and BoxedDecoder are AUTO's type-erased coder representation
// (§3 Entities, §4.6): the generator walks reflect.Type and only ever
// produces these, since a function cannot itself be generic in Go. The
// exported Encoder[T]/Decoder[T] entry points below recover static types at
// the boundary with a single type assertion.
type BoxedEncoder func(value any) json4.Json

type BoxedDecoder func(path string, v json4.Json) (any, *json4.Error)

// CoderPair bundles a matched encoder/decoder, as stored in the cache and
// in ExtraCoders overrides.
type CoderPair struct {
	Encode BoxedEncoder
	Decode BoxedDecoder
}
