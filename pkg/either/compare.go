package either

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Compare orders a before b: every Left sorts before every Right, and two
// values on the same side are ordered by the matching comparison function.
func Compare[L, R any](a, b Either[L, R], cmpLeft func(L, L) int, cmpRight func(R, R) int) int {
	switch {
	case a.side != b.side && a.side == LeftSide:
		return -1
	case a.side != b.side:
		return 1
	case a.side == RightSide:
		return cmpRight(a.right, b.right)
	}
	return cmpLeft(a.left, b.left)
}

func CompareOrdered[L, R constraints.Ordered](a, b Either[L, R]) int {
	return Compare(a, b, cmp.Compare[L], cmp.Compare[R])
}

func Less[L, R constraints.Ordered](a, b Either[L, R]) bool {
	return CompareOrdered(a, b) < 0
}

func Equal[L, R comparable](a, b Either[L, R]) bool {
	return EqualFunc(a, b,
		func(x, y L) bool { return x == y },
		func(x, y R) bool { return x == y })
}

// EqualFunc reports whether a and b are on the same side with payloads
// equal under the matching function.
func EqualFunc[L, R any](a, b Either[L, R], eqLeft func(L, L) bool, eqRight func(R, R) bool) bool {
	if a.side != b.side {
		return false
	}
	if a.side == RightSide {
		return eqRight(a.right, b.right)
	}
	return eqLeft(a.left, b.left)
}
