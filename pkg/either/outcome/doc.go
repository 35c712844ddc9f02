// Package outcome contains the two-track Outcome[T] value: a success carrying
// T, a failure carrying an error, or a cancellation. Every outcome is stamped
// with a random id and its UTC creation time.
//
// Outcome is the counterpart of either.Either for conversions: the failure
// track maps to Left and the success track maps to Right.
package outcome
