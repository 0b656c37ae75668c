package decode

import json4 "github.com/elmcodec/json4"

// Pair2 through Pair8 are the positional results of TupleN. Arity is
// enforced purely by array-length checks in the underlying Index calls
// (§4.3: "arity enforced by array-length at the outermost via index").

type Pair2[A, B any] struct {
	A A
	B B
}

type Pair3[A, B, C any] struct {
	A A
	B B
	C C
}

type Pair4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Pair5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type Pair6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type Pair7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type Pair8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

func Tuple2[A, B any](da Decoder[A], db Decoder[B]) Decoder[Pair2[A, B]] {
	return func(path string, v json4.Json) (Pair2[A, B], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair2[A, B]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair2[A, B]{}, err
		}
		return Pair2[A, B]{a, b}, nil
	}
}

func Tuple3[A, B, C any](da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[Pair3[A, B, C]] {
	return func(path string, v json4.Json) (Pair3[A, B, C], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair3[A, B, C]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair3[A, B, C]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair3[A, B, C]{}, err
		}
		return Pair3[A, B, C]{a, b, c}, nil
	}
}

func Tuple4[A, B, C, D any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[Pair4[A, B, C, D]] {
	return func(path string, v json4.Json) (Pair4[A, B, C, D], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair4[A, B, C, D]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair4[A, B, C, D]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair4[A, B, C, D]{}, err
		}
		d, err := Index(3, dd)(path, v)
		if err != nil {
			return Pair4[A, B, C, D]{}, err
		}
		return Pair4[A, B, C, D]{a, b, c, d}, nil
	}
}

func Tuple5[A, B, C, D, E any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[Pair5[A, B, C, D, E]] {
	return func(path string, v json4.Json) (Pair5[A, B, C, D, E], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair5[A, B, C, D, E]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair5[A, B, C, D, E]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair5[A, B, C, D, E]{}, err
		}
		d, err := Index(3, dd)(path, v)
		if err != nil {
			return Pair5[A, B, C, D, E]{}, err
		}
		e, err := Index(4, de)(path, v)
		if err != nil {
			return Pair5[A, B, C, D, E]{}, err
		}
		return Pair5[A, B, C, D, E]{a, b, c, d, e}, nil
	}
}

func Tuple6[A, B, C, D, E, F any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[Pair6[A, B, C, D, E, F]] {
	return func(path string, v json4.Json) (Pair6[A, B, C, D, E, F], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		d, err := Index(3, dd)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		e, err := Index(4, de)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		f, err := Index(5, df)(path, v)
		if err != nil {
			return Pair6[A, B, C, D, E, F]{}, err
		}
		return Pair6[A, B, C, D, E, F]{a, b, c, d, e, f}, nil
	}
}

func Tuple7[A, B, C, D, E, F, G any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[Pair7[A, B, C, D, E, F, G]] {
	return func(path string, v json4.Json) (Pair7[A, B, C, D, E, F, G], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		d, err := Index(3, dd)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		e, err := Index(4, de)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		f, err := Index(5, df)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		g, err := Index(6, dg)(path, v)
		if err != nil {
			return Pair7[A, B, C, D, E, F, G]{}, err
		}
		return Pair7[A, B, C, D, E, F, G]{a, b, c, d, e, f, g}, nil
	}
}

func Tuple8[A, B, C, D, E, F, G, H any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[Pair8[A, B, C, D, E, F, G, H]] {
	return func(path string, v json4.Json) (Pair8[A, B, C, D, E, F, G, H], *json4.Error) {
		a, err := Index(0, da)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		b, err := Index(1, db)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		c, err := Index(2, dc)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		d, err := Index(3, dd)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		e, err := Index(4, de)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		f, err := Index(5, df)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		g, err := Index(6, dg)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		h, err := Index(7, dh)(path, v)
		if err != nil {
			return Pair8[A, B, C, D, E, F, G, H]{}, err
		}
		return Pair8[A, B, C, D, E, F, G, H]{a, b, c, d, e, f, g, h}, nil
	}
}
