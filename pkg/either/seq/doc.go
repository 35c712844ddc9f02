// Package seq contains the iteration side of package either.
//
// Iterator and DoubleEnded are pull-style iterators; SliceIter and PullIter
// cover slices and iter.Seq. The package functions (Fold, Collect, Find,
// Partition, RFold...) consume any Iterator.
//
// An Either of two iterators is itself an iterator:
// - Delegate/DoubleEndedDelegate: both sides yield the same item type and
//   every call goes to the live iterator
// - Factored/DoubleEndedFactored: the sides may yield different types, and
//   each item comes out as an Either tagged with the side that produced it
//
// IntoIter, Iter, IterMut, Seq and the Factor* functions build these from an
// Either of slices or sequences. Extend and AppendSeq grow whichever
// collection an Either holds.
package seq
