package decode

import json4 "github.com/elmcodec/json4"

// Getters is the transient context passed to an Object builder function
// (§3 Entities: GettersContext, §4.5). It accumulates every error raised by
// Required*/Optional* calls so a single decode pass can report every
// malformed field at once.
//
// Go methods cannot themselves be generic, so the "required.Field" /
// "optional.Field" facade from the language-neutral API (§6) is
// implemented as free generic functions taking *Getters, rather than
// generic methods on a nested Required/Optional struct.
type Getters struct {
	path   string
	value  json4.Json
	errors []*json4.Error
}

func (g *Getters) recordError(err *json4.Error) {
	g.errors = append(g.errors, err)
}

// RequiredField decodes a required object field. On failure it records the
// error and returns the zero value of T so the builder function can keep
// running and collect further errors.
func RequiredField[T any](g *Getters, name string, dec Decoder[T]) T {
	val, err := Field(name, dec)(g.path, g.value)
	if err != nil {
		g.recordError(err)
		var zero T
		return zero
	}
	return val
}

// RequiredAt is the At-chained counterpart of RequiredField.
func RequiredAt[T any](g *Getters, names []string, dec Decoder[T]) T {
	val, err := At(names, dec)(g.path, g.value)
	if err != nil {
		g.recordError(err)
		var zero T
		return zero
	}
	return val
}

// RequiredRaw decodes the whole current value with dec.
func RequiredRaw[T any](g *Getters, dec Decoder[T]) T {
	val, err := dec(g.path, g.value)
	if err != nil {
		g.recordError(err)
		var zero T
		return zero
	}
	return val
}

// isDowngradableReason reports whether reason should be silently treated as
// "absent" by an Optional*Raw getter, per §4.5: BadField and BadPath always
// downgrade; BadPrimitive/BadPrimitiveExtra/BadType downgrade only when the
// offending value itself is JSON null.
func isDowngradableReason(r json4.ErrorReason) bool {
	switch r.Kind {
	case json4.ReasonBadField, json4.ReasonBadPath:
		return true
	case json4.ReasonBadPrimitive, json4.ReasonBadPrimitiveExtra, json4.ReasonBadType:
		return r.Value.IsNull()
	default:
		return false
	}
}

// OptionalField decodes an optional object field. A missing field or JSON
// null value yields None without error; any other failure is recorded.
func OptionalField[T any](g *Getters, name string, dec Decoder[T]) Option[T] {
	opt, err := Optional(name, dec)(g.path, g.value)
	if err != nil {
		g.recordError(err)
		return None[T]()
	}
	return opt
}

// OptionalAt is the At-chained counterpart of OptionalField.
func OptionalAt[T any](g *Getters, names []string, dec Decoder[T]) Option[T] {
	opt, err := OptionalAtDecoder(names, dec)(g.path, g.value)
	if err != nil {
		g.recordError(err)
		return None[T]()
	}
	return opt
}

// OptionalAtDecoder exposes the At-chained Optional decoder directly (used
// by OptionalAt above; exported so AUTO can reuse it outside a builder).
func OptionalAtDecoder[T any](names []string, dec Decoder[T]) Decoder[Option[T]] {
	return optionalAt(names, dec)
}

// OptionalRaw decodes the whole current value with dec, downgrading
// BadField/BadPath and null-valued BadPrimitive*/BadType failures to None
// instead of recording an error.
func OptionalRaw[T any](g *Getters, dec Decoder[T]) Option[T] {
	val, err := dec(g.path, g.value)
	if err != nil {
		if isDowngradableReason(err.Reason) {
			return None[T]()
		}
		g.recordError(err)
		return None[T]()
	}
	return Some(val)
}

// Object runs build once against v, collecting every error raised through
// g's Required*/Optional* calls: zero errors succeeds, exactly one error
// forwards that error, and two or more aggregate into BadOneOf (§4.5).
func Object[T any](build func(*Getters) T) Decoder[T] {
	return func(path string, v json4.Json) (T, *json4.Error) {
		g := &Getters{path: path, value: v}
		result := build(g)
		switch len(g.errors) {
		case 0:
			return result, nil
		case 1:
			return result, g.errors[0]
		default:
			rendered := make([]string, len(g.errors))
			for i, e := range g.errors {
				rendered[i] = json4.Render(e)
			}
			var zero T
			return zero, &json4.Error{Path: path, Reason: json4.BadOneOf(rendered)}
		}
	}
}
