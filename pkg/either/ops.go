package either

// Fold applies onLeft or onRight, whichever matches the side of e, and
// returns its result. The other function is not called.
//
// Fold is the one place that branches on the side; everything that forwards
// to the live payload goes through it.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.side == RightSide {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Flip swaps the roles: Left(v) becomes Right(v) and the other way around.
func Flip[L, R any](e Either[L, R]) Either[R, L] {
	if e.side == RightSide {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// MapLeft transforms a left value with f. A Right passes through unchanged.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.side == RightSide {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// MapRight transforms a right value with f. A Left passes through unchanged.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if e.side == RightSide {
		return Right[L](f(e.right))
	}
	return Left[L, S](e.left)
}

// MapEither transforms whichever value is present, keeping the side.
func MapEither[L, R, M, S any](e Either[L, R], onLeft func(L) M, onRight func(R) S) Either[M, S] {
	if e.side == RightSide {
		return Right[M](onRight(e.right))
	}
	return Left[M, S](onLeft(e.left))
}

// Into returns the payload of an Either whose sides share a type.
func Into[T any](e Either[T, T]) T {
	if e.side == RightSide {
		return e.right
	}
	return e.left
}
