package either

import "errors"

// Error is an error made of whichever error e holds. It reports that
// error's message, and errors.Is and errors.As look through it into the
// live payload.
type Error[L, R error] struct {
	Either[L, R]
}

func NewError[L, R error](e Either[L, R]) Error[L, R] {
	return Error[L, R]{Either: e}
}

func (e Error[L, R]) live() error {
	return Fold(e.Either,
		func(l L) error { return l },
		func(r R) error { return r })
}

func (e Error[L, R]) Error() string {
	return e.live().Error()
}

func (e Error[L, R]) Unwrap() error {
	return e.live()
}

// Cause is the error the live payload itself wraps, nil if none.
func (e Error[L, R]) Cause() error {
	return errors.Unwrap(e.live())
}
