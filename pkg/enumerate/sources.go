package enumerate

import (
	"container/list"
	"io"
	"iter"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Slice enumerates a slice through its mutable cursor.
func Slice[E any](s []E) *CommonView[E, *rangekit.SliceCursor[E], *RandomAccessIterator[E, *rangekit.SliceCursor[E]]] {
	return CommonRandomAccess[E, *rangekit.SliceCursor[E]](rangekit.Slice(s))
}

// ConstSlice enumerates a slice through its immutable cursor.
func ConstSlice[E any](s []E) *CommonView[E, *rangekit.ConstSliceCursor[E], *RandomAccessIterator[E, *rangekit.ConstSliceCursor[E]]] {
	return CommonRandomAccess[E, *rangekit.ConstSliceCursor[E]](rangekit.ConstSlice(s))
}

// List enumerates a container/list whose elements hold T values.
func List[T any](l *list.List) *CommonView[T, *rangekit.ListCursor[T], *BidirectionalIterator[T, *rangekit.ListCursor[T]]] {
	return CommonBidirectional[T, *rangekit.ListCursor[T]](rangekit.List[T](l))
}

// ForwardList enumerates a singly linked list.
// The list doesn't know its length, so the view ends with a Sentinel.
func ForwardList[T any](fl *rangekit.ForwardList[T]) *View[T, *rangekit.ForwardListCursor[T], *rangekit.ForwardListCursor[T], *ForwardIterator[T, *rangekit.ForwardListCursor[T]]] {
	return Forward[T](rangekit.Range[*rangekit.ForwardListCursor[T], *rangekit.ForwardListCursor[T]](fl))
}

// Window enumerates the first n elements of a slice.
// The window is random access and sized, but not common.
func Window[E any](s []E, n int) *View[E, *rangekit.CountedCursor[E, *rangekit.SliceCursor[E]], rangekit.CountedEnd[E, *rangekit.SliceCursor[E]], *RandomAccessIterator[E, *rangekit.CountedCursor[E, *rangekit.SliceCursor[E]]]] {
	var r rangekit.Range[*rangekit.CountedCursor[E, *rangekit.SliceCursor[E]], rangekit.CountedEnd[E, *rangekit.SliceCursor[E]]] = rangekit.Take[E, *rangekit.SliceCursor[E]](rangekit.Slice(s), n)
	return RandomAccess[E](r)
}

// Seq enumerates an iter.Seq as a single-pass range.
// The returned range must be closed if it is abandoned before its end.
func Seq[T any](seq iter.Seq[T]) (*View[T, *rangekit.PullCursor[T], rangekit.PullEnd[T], *InputIterator[T, *rangekit.PullCursor[T]]], io.Closer) {
	r := rangekit.Once(seq)
	return pull(r), r
}

// Lines enumerates the lines of a reader.
// Read errors are reported by the iterator's Err method.
func Lines(rd io.Reader) (*View[string, *rangekit.PullCursor[string], rangekit.PullEnd[string], *InputIterator[string, *rangekit.PullCursor[string]]], io.Closer) {
	r := rangekit.Lines(rd)
	return pull(r), r
}

// Chan enumerates the values received from a channel until it is closed.
func Chan[T any](ch <-chan T) *View[T, *rangekit.PullCursor[T], rangekit.PullEnd[T], *InputIterator[T, *rangekit.PullCursor[T]]] {
	return pull(rangekit.Chan(ch))
}

func pull[T any](r *rangekit.PullRange[T]) *View[T, *rangekit.PullCursor[T], rangekit.PullEnd[T], *InputIterator[T, *rangekit.PullCursor[T]]] {
	return Input[T](rangekit.Range[*rangekit.PullCursor[T], rangekit.PullEnd[T]](r))
}
