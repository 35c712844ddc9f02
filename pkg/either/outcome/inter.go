package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the success value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the outcome failed
	Err() error
	// IsSuccess returns true if the outcome is on the success track
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the outcome was cancelled
	IsCancel() bool
}

var _ WithCancel[struct{}] = Outcome[struct{}]{}
