package enumerate

import (
	"go.llib.dev/rangekit/pkg/rangekit"
)

// ConstInput converts an iterator over a mutable cursor into an iterator over its immutable counterpart.
// The position and the index are kept.
//
// The immutable cursor type is the only type parameter that needs to be spelled out:
//
//	cit := enumerate.ConstInput[*rangekit.ConstSliceCursor[int]](it)
func ConstInput[CC rangekit.Input[T], T any, C interface {
	rangekit.Input[T]
	rangekit.ConstConverter[CC]
}](it *InputIterator[T, C]) *InputIterator[T, CC] {
	return NewInputIterator[T](it.current.Const(), it.count)
}

func ConstForward[CC rangekit.Forward[T, CC], T any, C interface {
	rangekit.Forward[T, C]
	rangekit.ConstConverter[CC]
}](it *ForwardIterator[T, C]) *ForwardIterator[T, CC] {
	return NewForwardIterator[T](it.current.Const(), it.count)
}

func ConstBidirectional[CC rangekit.Bidirectional[T, CC], T any, C interface {
	rangekit.Bidirectional[T, C]
	rangekit.ConstConverter[CC]
}](it *BidirectionalIterator[T, C]) *BidirectionalIterator[T, CC] {
	return NewBidirectionalIterator[T](it.current.Const(), it.count)
}

func ConstRandomAccess[CC rangekit.RandomAccess[T, CC], T any, C interface {
	rangekit.RandomAccess[T, C]
	rangekit.ConstConverter[CC]
}](it *RandomAccessIterator[T, C]) *RandomAccessIterator[T, CC] {
	return NewRandomAccessIterator[T](it.current.Const(), it.count)
}

// ConstSentinel converts a Sentinel the same way as the iterator conversions do,
// the immutable iterator, cursor and end types are given explicitly:
//
//	cs := enumerate.ConstSentinel[*enumerate.ForwardIterator[int, *rangekit.ConstSliceCursor[int]], *rangekit.ConstSliceCursor[int], *rangekit.ConstSliceCursor[int]](s)
func ConstSentinel[CIt Based[CC], CC any, CS rangekit.Sentinel[CC], C any, S interface {
	rangekit.Sentinel[C]
	rangekit.ConstConverter[CS]
}, It Based[C]](s Sentinel[C, S, It]) Sentinel[CC, CS, CIt] {
	return Sentinel[CC, CS, CIt]{end: s.end.Const()}
}
