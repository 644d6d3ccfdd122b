package enumerate

import (
	"iter"

	"go.llib.dev/rangekit/pkg/errorkit"
	"go.llib.dev/rangekit/pkg/rangekit"
)

// ErrUnboundView is the panic value of walking a View or CommonView that was never given a range.
const ErrUnboundView errorkit.Error = "enumerate: view is not bound to a range"

// View is an enumerated range that ends with a Sentinel.
//
// The zero View is unbound: Size reports it as unsized, and Begin or End panic with ErrUnboundView.
// Construct it with Input, Forward, Bidirectional or RandomAccess.
// A View over the zero value of a range is fine whenever the zero range is,
// for example enumerate.RandomAccess[int](&rangekit.SliceRange[int]{}) is empty.
type View[T any, C rangekit.Input[T], S rangekit.Sentinel[C], It Iterator[T, C]] struct {
	base rangekit.Range[C, S]
	tier rangekit.Tier
	wrap func(C, uint) It
}

// Begin returns an iterator to the first pair.
func (v *View[T, C, S, It]) Begin() It {
	if v.base == nil {
		panic(ErrUnboundView)
	}
	return v.wrap(v.base.Begin(), 0)
}

func (v *View[T, C, S, It]) End() Sentinel[C, S, It] {
	if v.base == nil {
		panic(ErrUnboundView)
	}
	return Sentinel[C, S, It]{end: v.base.End()}
}

// Base returns the underlying range.
func (v *View[T, C, S, It]) Base() rangekit.Range[C, S] { return v.base }

// Traits of a View follow the underlying range,
// except that a Sentinel terminated view is never common.
func (v *View[T, C, S, It]) Traits() rangekit.Traits {
	return rangekit.Traits{
		Tier:  v.tier,
		Sized: rangekit.TraitsOf(v.base).Sized,
	}
}

// Size returns the length of the underlying range when it is rangekit.Sized.
// To have the length checked at compile time, use Len.
func (v *View[T, C, S, It]) Size() (int, bool) {
	if sr, ok := v.base.(rangekit.Sized); ok {
		return sr.Len(), true
	}
	return 0, false
}

// All walks the view as a range-over-func sequence.
func (v *View[T, C, S, It]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		end := v.End()
		for it := v.Begin(); !end.Reached(it); it.Next() {
			if !yield(it.Value().Unpack()) {
				return
			}
		}
	}
}

// Len returns the length of a view whose underlying end can measure its distance from a cursor.
// Sized underlying ranges report their length directly, others are measured from their beginning.
// Sized common ranges with a plain end are enumerated through CommonView, which has its own Len.
func Len[T any, C rangekit.Input[T], S rangekit.SizedSentinel[C], It Iterator[T, C]](v *View[T, C, S, It]) int {
	if sr, ok := v.base.(rangekit.Sized); ok {
		return sr.Len()
	}
	return v.base.End().Remaining(v.base.Begin())
}

// CommonView is an enumerated range over a common and sized range.
// Its End is an iterator positioned at the length of the range,
// so the view itself stays common, and for random access ranges End().Distance(Begin()) is the length.
type CommonView[T any, C rangekit.Forward[T, C], It interface {
	Iterator[T, C]
	rangekit.Forward[Pair[T], It]
}] struct {
	base rangekit.SizedCommonRange[C]
	tier rangekit.Tier
	wrap func(C, uint) It
}

func (v *CommonView[T, C, It]) Begin() It {
	if v.base == nil {
		panic(ErrUnboundView)
	}
	return v.wrap(v.base.Begin(), 0)
}

func (v *CommonView[T, C, It]) End() It {
	if v.base == nil {
		panic(ErrUnboundView)
	}
	return v.wrap(v.base.End(), uint(v.base.Len()))
}

func (v *CommonView[T, C, It]) Len() int { return v.base.Len() }

func (v *CommonView[T, C, It]) Base() rangekit.SizedCommonRange[C] { return v.base }

func (v *CommonView[T, C, It]) Traits() rangekit.Traits {
	return rangekit.Traits{Tier: v.tier, Common: true, Sized: true}
}

func (v *CommonView[T, C, It]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		end := v.End()
		for it := v.Begin(); !it.Equal(end); it.Next() {
			if !yield(it.Value().Unpack()) {
				return
			}
		}
	}
}

// Input enumerates a single-pass range. Copies of its iterators share the underlying read position.
func Input[T any, C rangekit.Input[T], S rangekit.Sentinel[C]](r rangekit.Range[C, S]) *View[T, C, S, *InputIterator[T, C]] {
	return &View[T, C, S, *InputIterator[T, C]]{
		base: r,
		tier: rangekit.InputTier,
		wrap: NewInputIterator[T, C],
	}
}

// Forward enumerates a multi-pass range that ends with a sentinel.
func Forward[T any, C rangekit.Forward[T, C], S rangekit.Sentinel[C]](r rangekit.Range[C, S]) *View[T, C, S, *ForwardIterator[T, C]] {
	return &View[T, C, S, *ForwardIterator[T, C]]{
		base: r,
		tier: rangekit.ForwardTier,
		wrap: NewForwardIterator[T, C],
	}
}

// Bidirectional enumerates a range whose cursors can also step back.
func Bidirectional[T any, C rangekit.Bidirectional[T, C], S rangekit.Sentinel[C]](r rangekit.Range[C, S]) *View[T, C, S, *BidirectionalIterator[T, C]] {
	return &View[T, C, S, *BidirectionalIterator[T, C]]{
		base: r,
		tier: rangekit.BidirectionalTier,
		wrap: NewBidirectionalIterator[T, C],
	}
}

// RandomAccess enumerates a range whose cursors jump in constant time.
func RandomAccess[T any, C rangekit.RandomAccess[T, C], S rangekit.Sentinel[C]](r rangekit.Range[C, S]) *View[T, C, S, *RandomAccessIterator[T, C]] {
	return &View[T, C, S, *RandomAccessIterator[T, C]]{
		base: r,
		tier: rangekit.RandomAccessTier,
		wrap: NewRandomAccessIterator[T, C],
	}
}

// CommonForward enumerates a sized common range, keeping the view common.
func CommonForward[T any, C rangekit.Forward[T, C]](r rangekit.SizedCommonRange[C]) *CommonView[T, C, *ForwardIterator[T, C]] {
	return &CommonView[T, C, *ForwardIterator[T, C]]{
		base: r,
		tier: rangekit.ForwardTier,
		wrap: NewForwardIterator[T, C],
	}
}

// CommonBidirectional is the CommonForward of bidirectional ranges.
func CommonBidirectional[T any, C rangekit.Bidirectional[T, C]](r rangekit.SizedCommonRange[C]) *CommonView[T, C, *BidirectionalIterator[T, C]] {
	return &CommonView[T, C, *BidirectionalIterator[T, C]]{
		base: r,
		tier: rangekit.BidirectionalTier,
		wrap: NewBidirectionalIterator[T, C],
	}
}

// CommonRandomAccess is the CommonForward of random access ranges.
func CommonRandomAccess[T any, C rangekit.RandomAccess[T, C]](r rangekit.SizedCommonRange[C]) *CommonView[T, C, *RandomAccessIterator[T, C]] {
	return &CommonView[T, C, *RandomAccessIterator[T, C]]{
		base: r,
		tier: rangekit.RandomAccessTier,
		wrap: NewRandomAccessIterator[T, C],
	}
}
