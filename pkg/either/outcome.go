package either

import (
	"errors"

	"github.com/ib-77/either3/pkg/either/outcome"
)

// Conversions against outcome values use one fixed polarity: Left is the
// failure track and Right is the success track.

// ErrNilLeft stands in for a Left holding a nil error, so that a Left
// never reads as success.
var ErrNilLeft = errors.New("either: left holds a nil error")

// FromOutcome turns a failed or cancelled outcome into Left(err) and a
// successful one into Right(value).
func FromOutcome[R any](o outcome.WithError[R]) Either[error, R] {
	if o.IsSuccess() {
		return Right[error](o.Value())
	}
	return Left[error, R](o.Err())
}

// ToOutcome turns Left(err) into a failed outcome, cancelled when err comes
// from a done context, and Right(v) into a successful one. The left error
// is kept as is, except that a nil one becomes ErrNilLeft.
func ToOutcome[L error, R any](e Either[L, R]) outcome.Outcome[R] {
	if e.side == RightSide {
		return outcome.Success(e.right)
	}
	return outcome.FromError[R](leftErr(e.left))
}

// FromPair adapts a (value, error) return: Left(err) when err is non-nil,
// Right(v) otherwise.
func FromPair[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// ToPair is the inverse of FromPair. A Left always yields a non-nil error:
// a nil left error is reported as ErrNilLeft.
func ToPair[L error, R any](e Either[L, R]) (R, error) {
	if e.side == RightSide {
		return e.right, nil
	}
	var zero R
	return zero, leftErr(e.left)
}

func leftErr[L error](l L) error {
	if outcome.IsNil(l) {
		return ErrNilLeft
	}
	return l
}
