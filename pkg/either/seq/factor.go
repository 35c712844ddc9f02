package seq

import (
	"iter"

	"github.com/ib-77/either3/pkg/either"
)

// Factored turns an Either of iterators into an iterator of Eithers: every
// item comes out tagged with the side of the iterator that produced it. The
// side is fixed at construction and survives exhaustion.
type Factored[L, R any, IL Iterator[L], IR Iterator[R]] struct {
	inner either.Either[IL, IR]
}

func Factor[L, R any, IL Iterator[L], IR Iterator[R]](e either.Either[IL, IR]) Factored[L, R, IL, IR] {
	return Factored[L, R, IL, IR]{inner: e}
}

func (f Factored[L, R, IL, IR]) Side() either.Side {
	return f.inner.Side()
}

func (f Factored[L, R, IL, IR]) Next() (either.Either[L, R], bool) {
	if it, ok := f.inner.Left(); ok {
		v, ok := it.Next()
		if !ok {
			return either.Either[L, R]{}, false
		}
		return either.Left[L, R](v), true
	}
	it, _ := f.inner.Right()
	v, ok := it.Next()
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Right[L](v), true
}

// Live is the payload iterator with its side tag applied to each item.
func (f Factored[L, R, IL, IR]) Live() Iterator[either.Either[L, R]] {
	return either.Fold(f.inner,
		func(l IL) Iterator[either.Either[L, R]] { return leftTagged[L, R, IL]{it: l} },
		func(r IR) Iterator[either.Either[L, R]] { return rightTagged[L, R, IR]{it: r} })
}

func (f Factored[L, R, IL, IR]) SizeHint() (int, int, bool) {
	if it, ok := f.inner.Left(); ok {
		return SizeHint[L](it)
	}
	it, _ := f.inner.Right()
	return SizeHint[R](it)
}

func (f Factored[L, R, IL, IR]) Count() int {
	return either.Fold(f.inner,
		func(l IL) int { return Count[L](l) },
		func(r IR) int { return Count[R](r) })
}

func (f Factored[L, R, IL, IR]) Last() (either.Either[L, R], bool) {
	if it, ok := f.inner.Left(); ok {
		v, ok := Last[L](it)
		if !ok {
			return either.Either[L, R]{}, false
		}
		return either.Left[L, R](v), true
	}
	it, _ := f.inner.Right()
	v, ok := Last[R](it)
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Right[L](v), true
}

// DoubleEndedFactored is a Factored over double-ended iterators.
type DoubleEndedFactored[L, R any, IL DoubleEnded[L], IR DoubleEnded[R]] struct {
	Factored[L, R, IL, IR]
}

func FactorDoubleEnded[L, R any, IL DoubleEnded[L], IR DoubleEnded[R]](e either.Either[IL, IR]) DoubleEndedFactored[L, R, IL, IR] {
	return DoubleEndedFactored[L, R, IL, IR]{Factored: Factored[L, R, IL, IR]{inner: e}}
}

func (f DoubleEndedFactored[L, R, IL, IR]) NextBack() (either.Either[L, R], bool) {
	return f.LiveBack().NextBack()
}

func (f DoubleEndedFactored[L, R, IL, IR]) LiveBack() DoubleEnded[either.Either[L, R]] {
	return either.Fold(f.inner,
		func(l IL) DoubleEnded[either.Either[L, R]] {
			return leftTaggedBack[L, R, IL]{leftTagged[L, R, IL]{it: l}}
		},
		func(r IR) DoubleEnded[either.Either[L, R]] {
			return rightTaggedBack[L, R, IR]{rightTagged[L, R, IR]{it: r}}
		})
}

type leftTagged[L, R any, I Iterator[L]] struct {
	it I
}

func (t leftTagged[L, R, I]) Next() (either.Either[L, R], bool) {
	v, ok := t.it.Next()
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Left[L, R](v), true
}

func (t leftTagged[L, R, I]) SizeHint() (int, int, bool) {
	return SizeHint[L](t.it)
}

type rightTagged[L, R any, I Iterator[R]] struct {
	it I
}

func (t rightTagged[L, R, I]) Next() (either.Either[L, R], bool) {
	v, ok := t.it.Next()
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Right[L](v), true
}

func (t rightTagged[L, R, I]) SizeHint() (int, int, bool) {
	return SizeHint[R](t.it)
}

type leftTaggedBack[L, R any, I DoubleEnded[L]] struct {
	leftTagged[L, R, I]
}

func (t leftTaggedBack[L, R, I]) NextBack() (either.Either[L, R], bool) {
	v, ok := t.it.NextBack()
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Left[L, R](v), true
}

type rightTaggedBack[L, R any, I DoubleEnded[R]] struct {
	rightTagged[L, R, I]
}

func (t rightTaggedBack[L, R, I]) NextBack() (either.Either[L, R], bool) {
	v, ok := t.it.NextBack()
	if !ok {
		return either.Either[L, R]{}, false
	}
	return either.Right[L](v), true
}

// FactorIter ranges over whichever slice e holds, tagging each item with
// its side.
func FactorIter[L, R any, SL ~[]L, SR ~[]R](e either.Either[SL, SR]) iter.Seq[either.Either[L, R]] {
	return func(yield func(either.Either[L, R]) bool) {
		if l, ok := e.Left(); ok {
			for _, v := range l {
				if !yield(either.Left[L, R](v)) {
					return
				}
			}
			return
		}
		r, _ := e.Right()
		for _, v := range r {
			if !yield(either.Right[L](v)) {
				return
			}
		}
	}
}

// FactorIterMut is FactorIter yielding pointers into the slice.
func FactorIterMut[L, R any, SL ~[]L, SR ~[]R](e either.Either[SL, SR]) iter.Seq[either.Either[*L, *R]] {
	return func(yield func(either.Either[*L, *R]) bool) {
		if l, ok := e.Left(); ok {
			for i := range l {
				if !yield(either.Left[*L, *R](&l[i])) {
					return
				}
			}
			return
		}
		r, _ := e.Right()
		for i := range r {
			if !yield(either.Right[*L](&r[i])) {
				return
			}
		}
	}
}

// FactorSeq ranges over whichever sequence e holds, tagging each item with
// its side.
func FactorSeq[L, R any](e either.Either[iter.Seq[L], iter.Seq[R]]) iter.Seq[either.Either[L, R]] {
	return func(yield func(either.Either[L, R]) bool) {
		if l, ok := e.Left(); ok {
			for v := range l {
				if !yield(either.Left[L, R](v)) {
					return
				}
			}
			return
		}
		r, _ := e.Right()
		for v := range r {
			if !yield(either.Right[L](v)) {
				return
			}
		}
	}
}
