package seq

// The functions below consume an iterator. Relaying iterators (Forwarder)
// are resolved once up front, so the work runs on the live payload.

func SizeHint[T any](it Iterator[T]) (lower, upper int, bounded bool) {
	if s, ok := resolve(it).(Sized); ok {
		return s.SizeHint()
	}
	return 0, 0, false
}

func Fold[T, A any](it Iterator[T], init A, f func(A, T) A) A {
	it = resolve(it)
	acc := init
	for {
		v, ok := it.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

func ForEach[T any](it Iterator[T], f func(T)) {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		f(v)
	}
}

// Count exhausts it and returns how many items it produced.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(counter); ok {
		return c.Count()
	}
	it = resolve(it)
	if c, ok := it.(counter); ok {
		return c.Count()
	}
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// Last exhausts it and returns the final item.
func Last[T any](it Iterator[T]) (T, bool) {
	if l, ok := it.(laster[T]); ok {
		return l.Last()
	}
	it = resolve(it)
	if l, ok := it.(laster[T]); ok {
		return l.Last()
	}
	var last T
	found := false
	for {
		v, ok := it.Next()
		if !ok {
			return last, found
		}
		last, found = v, true
	}
}

// Nth skips n items and returns the next one. Nth(it, 0) is Next.
func Nth[T any](it Iterator[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	it = resolve(it)
	for ; n > 0; n-- {
		if _, ok := it.Next(); !ok {
			return zero, false
		}
	}
	return it.Next()
}

func Collect[T any](it Iterator[T]) []T {
	it = resolve(it)
	lower, _, _ := SizeHint(it)
	out := make([]T, 0, lower)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Partition splits the items by pred, keeping their order.
func Partition[T any](it Iterator[T], pred func(T) bool) (matched, rest []T) {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok {
			return matched, rest
		}
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
}

// All stops at the first item failing pred. It is true on an empty iterator.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if !pred(v) {
			return false
		}
	}
}

// Any stops at the first item passing pred.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok {
			return false
		}
		if pred(v) {
			return true
		}
	}
}

func Find[T any](it Iterator[T], pred func(T) bool) (T, bool) {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok || pred(v) {
			return v, ok
		}
	}
}

// FindMap returns the first result f accepts.
func FindMap[T, U any](it Iterator[T], f func(T) (U, bool)) (U, bool) {
	it = resolve(it)
	for {
		v, ok := it.Next()
		if !ok {
			var zero U
			return zero, false
		}
		if u, ok := f(v); ok {
			return u, true
		}
	}
}

// Position returns the index of the first item passing pred, counted from
// where it stood when called.
func Position[T any](it Iterator[T], pred func(T) bool) (int, bool) {
	it = resolve(it)
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return 0, false
		}
		if pred(v) {
			return i, true
		}
	}
}

// RFold is Fold from the back.
func RFold[T, A any](it DoubleEnded[T], init A, f func(A, T) A) A {
	it = resolveBack(it)
	acc := init
	for {
		v, ok := it.NextBack()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// RFind is Find from the back.
func RFind[T any](it DoubleEnded[T], pred func(T) bool) (T, bool) {
	it = resolveBack(it)
	for {
		v, ok := it.NextBack()
		if !ok || pred(v) {
			return v, ok
		}
	}
}
