// Package json4 implements a structural JSON codec built on the decoder
// combinator pattern: decoding is a composable, typed function of
// path × Json → (T, error), and encoding is a total function of T → Json.
//
// This root package holds the Json value, the error model and the JSON text
// adapter. The module's subpackages hold the hand-assembled combinators
// (packages decode and encode) and an auto-coder generator (package auto)
// that derives encoders and decoders from Go struct and enum types via
// reflection, with support for options, tuples, maps, sets, and recursive
// types.
package json4
