package either

// Side tells which variant an Either holds.
type Side uint8

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == RightSide {
		return "Right"
	}
	return "Left"
}

// Either holds exactly one value: an L on the left or an R on the right.
//
// Only the slot named by the side is ever written, the other keeps its zero
// value, so two Eithers of comparable payloads can be compared with == and
// used as map keys. The zero Either is Left of the zero L.
type Either[L, R any] struct {
	left  L
	right R
	side  Side
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, side: LeftSide}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, side: RightSide}
}

func (e Either[L, R]) Side() Side {
	return e.side
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == LeftSide
}

func (e Either[L, R]) IsRight() bool {
	return e.side == RightSide
}

// Left returns the left value and true, or the zero L and false on a Right.
func (e Either[L, R]) Left() (L, bool) {
	if e.side != LeftSide {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the right value and true, or the zero R and false on a Left.
func (e Either[L, R]) Right() (R, bool) {
	if e.side != RightSide {
		var zero R
		return zero, false
	}
	return e.right, true
}

func (e Either[L, R]) LeftOr(def L) L {
	if e.side != LeftSide {
		return def
	}
	return e.left
}

func (e Either[L, R]) RightOr(def R) R {
	if e.side != RightSide {
		return def
	}
	return e.right
}

// AsMut returns an Either on the same side pointing at e's payload. Writes
// through the pointer change e in place.
func AsMut[L, R any](e *Either[L, R]) Either[*L, *R] {
	if e.side == RightSide {
		return Right[*L](&e.right)
	}
	return Left[*L, *R](&e.left)
}

// AsRef is AsMut for readers: the pointers alias e, callers must not write
// through them.
func AsRef[L, R any](e *Either[L, R]) Either[*L, *R] {
	return AsMut(e)
}

// value returns the live payload boxed, for formatting.
func (e Either[L, R]) value() any {
	if e.side == RightSide {
		return e.right
	}
	return e.left
}
