package outcome

import (
	"time"

	"github.com/google/uuid"
)

// State is the track an Outcome ended on.
type State uint8

const (
	Succeeded State = iota
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "success"
	case Failed:
		return "failure"
	case Cancelled:
		return "cancel"
	}
	return "unknown"
}

// Outcome is a two-track value: a success carrying T, or a failure carrying
// an error. A cancellation is a failure whose error came from a done context.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	state     State
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		state:     Succeeded,
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		state:     Failed,
	}
}

func Cancel[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		state:     Cancelled,
	}
}

// FromError builds a failed outcome, or a cancelled one when err reports a
// done context.
func FromError[T any](err error) Outcome[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Failure[T](err)
}

// Of adapts the usual (value, error) return pair.
func Of[T any](v T, err error) Outcome[T] {
	if IsNil(err) {
		return Success(v)
	}
	return FromError[T](err)
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Get returns the pair form: the value on success, the error otherwise.
func (o Outcome[T]) Get() (T, error) {
	if o.state != Succeeded {
		var zero T
		return zero, o.err
	}
	return o.value, nil
}

func (o Outcome[T]) State() State {
	return o.state
}

func (o Outcome[T]) IsSuccess() bool {
	return o.state == Succeeded
}

func (o Outcome[T]) IsFailure() bool {
	return o.state != Succeeded
}

func (o Outcome[T]) IsCancel() bool {
	return o.state == Cancelled
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
