package either

// Deref returns the target both sides point at.
func Deref[T any](e Either[*T, *T]) *T {
	return Into(e)
}

// AsSlice views either payload as the slice type both sides are built on.
// The result shares its backing array with the payload.
func AsSlice[T any, L ~[]T, R ~[]T](e Either[L, R]) []T {
	return Fold(e,
		func(l L) []T { return []T(l) },
		func(r R) []T { return []T(r) })
}

// AsString views either payload as a plain string.
func AsString[L ~string, R ~string](e Either[L, R]) string {
	return Fold(e,
		func(l L) string { return string(l) },
		func(r R) string { return string(r) })
}
