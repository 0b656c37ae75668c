package decode

import json4 "github.com/elmcodec/json4"

// Map1 decodes with d1 and applies f, short-circuiting on failure.
func Map1[A, R any](f func(A) R, d1 Decoder[A]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		return f(a), nil
	}
}

func Map2[A, B, R any](f func(A, B) R, d1 Decoder[A], d2 Decoder[B]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}
}

func Map3[A, B, C, R any](f func(A, B, C) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c), nil
	}
}

func Map4[A, B, C, D, R any](f func(A, B, C, D) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C], d4 Decoder[D]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		d, err := d4(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d), nil
	}
}

func Map5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C], d4 Decoder[D], d5 Decoder[E]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		d, err := d4(path, v)
		if err != nil {
			return zero, err
		}
		e, err := d5(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e), nil
	}
}

func Map6[A, B, C, D, E, F, R any](f func(A, B, C, D, E, F) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C], d4 Decoder[D], d5 Decoder[E], d6 Decoder[F]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		d, err := d4(path, v)
		if err != nil {
			return zero, err
		}
		e, err := d5(path, v)
		if err != nil {
			return zero, err
		}
		f2, err := d6(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, f2), nil
	}
}

func Map7[A, B, C, D, E, F, G, R any](f func(A, B, C, D, E, F, G) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C], d4 Decoder[D], d5 Decoder[E], d6 Decoder[F], d7 Decoder[G]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		d, err := d4(path, v)
		if err != nil {
			return zero, err
		}
		e, err := d5(path, v)
		if err != nil {
			return zero, err
		}
		f2, err := d6(path, v)
		if err != nil {
			return zero, err
		}
		g, err := d7(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, f2, g), nil
	}
}

func Map8[A, B, C, D, E, F, G, H, R any](f func(A, B, C, D, E, F, G, H) R, d1 Decoder[A], d2 Decoder[B], d3 Decoder[C], d4 Decoder[D], d5 Decoder[E], d6 Decoder[F], d7 Decoder[G], d8 Decoder[H]) Decoder[R] {
	return func(path string, v json4.Json) (R, *json4.Error) {
		var zero R
		a, err := d1(path, v)
		if err != nil {
			return zero, err
		}
		b, err := d2(path, v)
		if err != nil {
			return zero, err
		}
		c, err := d3(path, v)
		if err != nil {
			return zero, err
		}
		d, err := d4(path, v)
		if err != nil {
			return zero, err
		}
		e, err := d5(path, v)
		if err != nil {
			return zero, err
		}
		f2, err := d6(path, v)
		if err != nil {
			return zero, err
		}
		g, err := d7(path, v)
		if err != nil {
			return zero, err
		}
		h, err := d8(path, v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, f2, g, h), nil
	}
}

// AndMap is flipped application, enabling incremental builders:
// Succeed(ctor) |> AndMap(d1) |> AndMap(d2) |> ...
func AndMap[A, R any](da Decoder[A], df Decoder[func(A) R]) Decoder[R] {
	return Map2(func(f func(A) R, a A) R { return f(a) }, df, da)
}
