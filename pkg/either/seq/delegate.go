package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/either3/pkg/either"
)

// Delegate is an iterator made of whichever iterator the Either holds. Both
// sides produce the same item type.
type Delegate[T any, L, R Iterator[T]] struct {
	either.Either[L, R]
}

func Forward[T any, L, R Iterator[T]](e either.Either[L, R]) Delegate[T, L, R] {
	return Delegate[T, L, R]{Either: e}
}

func (d Delegate[T, L, R]) Live() Iterator[T] {
	return either.Fold(d.Either,
		func(l L) Iterator[T] { return l },
		func(r R) Iterator[T] { return r })
}

func (d Delegate[T, L, R]) Next() (T, bool) {
	return d.Live().Next()
}

func (d Delegate[T, L, R]) SizeHint() (int, int, bool) {
	return SizeHint(d.Live())
}

// DoubleEndedDelegate is a Delegate over double-ended iterators.
type DoubleEndedDelegate[T any, L, R DoubleEnded[T]] struct {
	Delegate[T, L, R]
}

func ForwardDoubleEnded[T any, L, R DoubleEnded[T]](e either.Either[L, R]) DoubleEndedDelegate[T, L, R] {
	return DoubleEndedDelegate[T, L, R]{Delegate: Delegate[T, L, R]{Either: e}}
}

func (d DoubleEndedDelegate[T, L, R]) LiveBack() DoubleEnded[T] {
	return either.Fold(d.Either,
		func(l L) DoubleEnded[T] { return l },
		func(r R) DoubleEnded[T] { return r })
}

func (d DoubleEndedDelegate[T, L, R]) NextBack() (T, bool) {
	return d.LiveBack().NextBack()
}

// IntoIter iterates over whichever slice e holds.
func IntoIter[T any, L ~[]T, R ~[]T](e either.Either[L, R]) DoubleEndedDelegate[T, *SliceIter[T], *SliceIter[T]] {
	return ForwardDoubleEnded[T](either.MapEither(e,
		func(l L) *SliceIter[T] { return FromSlice([]T(l)) },
		func(r R) *SliceIter[T] { return FromSlice([]T(r)) }))
}

// Iter ranges over the items of whichever slice e holds.
func Iter[T any, L ~[]T, R ~[]T](e either.Either[L, R]) iter.Seq[T] {
	return slices.Values(either.AsSlice[T](e))
}

// IterMut ranges over pointers to the items of whichever slice e holds.
// Writes through them land in the slice.
func IterMut[T any, L ~[]T, R ~[]T](e either.Either[L, R]) iter.Seq[*T] {
	s := either.AsSlice[T](e)
	return func(yield func(*T) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// Seq returns whichever sequence e holds.
func Seq[T any](e either.Either[iter.Seq[T], iter.Seq[T]]) iter.Seq[T] {
	return either.Into(e)
}

// Extender is a collection that can take in a sequence of items.
type Extender[T any] interface {
	Extend(items iter.Seq[T])
}

// Extend appends items to whichever collection e holds.
func Extend[T any, L, R Extender[T]](e either.Either[L, R], items iter.Seq[T]) {
	if l, ok := e.Left(); ok {
		l.Extend(items)
		return
	}
	r, _ := e.Right()
	r.Extend(items)
}

// AppendSeq appends items to whichever slice e holds, in place.
func AppendSeq[T any](e *either.Either[[]T, []T], items iter.Seq[T]) {
	m := either.AsMut(e)
	if l, ok := m.Left(); ok {
		*l = slices.AppendSeq(*l, items)
		return
	}
	r, _ := m.Right()
	*r = slices.AppendSeq(*r, items)
}
