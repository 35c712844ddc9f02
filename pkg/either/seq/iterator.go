package seq

import "iter"

// Iterator produces values one at a time. Next reports false once the
// iterator is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded iterators can also be consumed from the back. Both ends meet:
// an item is produced once, from whichever end reaches it first.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// Sized iterators know bounds on how many items remain. upper is only
// meaningful when bounded is true.
type Sized interface {
	SizeHint() (lower, upper int, bounded bool)
}

// Forwarder is implemented by iterators that relay another iterator. Bulk
// operations run on Live directly.
type Forwarder[T any] interface {
	Live() Iterator[T]
}

// BackForwarder is Forwarder for double-ended relays.
type BackForwarder[T any] interface {
	LiveBack() DoubleEnded[T]
}

type counter interface {
	Count() int
}

type laster[T any] interface {
	Last() (T, bool)
}

func resolve[T any](it Iterator[T]) Iterator[T] {
	for {
		f, ok := it.(Forwarder[T])
		if !ok {
			return it
		}
		it = f.Live()
	}
}

func resolveBack[T any](it DoubleEnded[T]) DoubleEnded[T] {
	for {
		f, ok := it.(BackForwarder[T])
		if !ok {
			return it
		}
		it = f.LiveBack()
	}
}

// SliceIter iterates over a slice from both ends.
type SliceIter[T any] struct {
	items []T
	front int
	back  int
}

func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items, back: len(items)}
}

func (s *SliceIter[T]) Next() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	v := s.items[s.front]
	s.front++
	return v, true
}

func (s *SliceIter[T]) NextBack() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	s.back--
	return s.items[s.back], true
}

// Len is the number of items left.
func (s *SliceIter[T]) Len() int {
	return s.back - s.front
}

func (s *SliceIter[T]) SizeHint() (int, int, bool) {
	n := s.Len()
	return n, n, true
}

func (s *SliceIter[T]) Count() int {
	n := s.Len()
	s.front = s.back
	return n
}

func (s *SliceIter[T]) Last() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	v := s.items[s.back-1]
	s.front = s.back
	return v, true
}

// PullIter adapts a push-style iter.Seq. Stop must be called when the
// iterator is abandoned before it is exhausted.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func FromSeq[T any](s iter.Seq[T]) *PullIter[T] {
	next, stop := iter.Pull(s)
	return &PullIter[T]{next: next, stop: stop}
}

func (p *PullIter[T]) Next() (T, bool) {
	return p.next()
}

func (p *PullIter[T]) Stop() {
	p.stop()
}

// Values ranges over what is left of it.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
