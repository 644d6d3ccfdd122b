package enumerate

import (
	"go.llib.dev/rangekit/pkg/rangekit"
)

// InputIterator enumerates a single-pass cursor.
//
// Copies of an InputIterator share the underlying cursor's state when the cursor does,
// so advancing one copy may invalidate every other copy.
// For the same reason, it has no PostNext.
type InputIterator[T any, C rangekit.Input[T]] struct {
	current C
	count   uint
}

// NewInputIterator pairs the cursor with count as its starting index.
func NewInputIterator[T any, C rangekit.Input[T]](current C, count uint) *InputIterator[T, C] {
	return &InputIterator[T, C]{current: current, count: count}
}

// Value returns the current index paired with the current element.
// Calling it at the end of the range is the same mistake as reading the underlying cursor there.
func (it *InputIterator[T, C]) Value() Pair[T] {
	return Pair[T]{Index: it.count, Value: it.current.Value()}
}

func (it *InputIterator[T, C]) Next() {
	it.current.Next()
	it.count++
}

// Move hands over the current element together with its index.
// When the underlying cursor is a rangekit.Mover, the element is moved out of the source,
// otherwise Move is equivalent to Value.
func (it *InputIterator[T, C]) Move() Pair[T] {
	if m, ok := any(it.current).(rangekit.Mover[T]); ok {
		return Pair[T]{Index: it.count, Value: m.Move()}
	}
	return it.Value()
}

// Base returns the underlying cursor.
func (it *InputIterator[T, C]) Base() C { return it.current }

// Index returns the position of the iterator.
func (it *InputIterator[T, C]) Index() uint { return it.count }

func (it *InputIterator[T, C]) Concept() rangekit.Tier { return rangekit.InputTier }

// Category is rangekit.InputTier whenever the underlying cursor is categorized, and zero otherwise.
func (it *InputIterator[T, C]) Category() rangekit.Tier {
	if _, ok := rangekit.CategoryOf(it.current); ok {
		return rangekit.InputTier
	}
	return 0
}

// Err forwards the error of an underlying cursor that can fail.
func (it *InputIterator[T, C]) Err() error {
	if f, ok := any(it.current).(rangekit.Failer); ok {
		return f.Err()
	}
	return nil
}

// ForwardIterator is an InputIterator that can be cloned and compared.
type ForwardIterator[T any, C rangekit.Forward[T, C]] struct {
	InputIterator[T, C]
}

// NewForwardIterator pairs the cursor with count as its starting index.
func NewForwardIterator[T any, C rangekit.Forward[T, C]](current C, count uint) *ForwardIterator[T, C] {
	return &ForwardIterator[T, C]{InputIterator: InputIterator[T, C]{current: current, count: count}}
}

func (it *ForwardIterator[T, C]) Clone() *ForwardIterator[T, C] {
	return NewForwardIterator[T](it.current.Clone(), it.count)
}

// Equal compares the underlying cursors only.
func (it *ForwardIterator[T, C]) Equal(oth *ForwardIterator[T, C]) bool {
	return it.current.Equal(oth.current)
}

// Reached lets an iterator serve as the end of a common range.
func (it *ForwardIterator[T, C]) Reached(oth *ForwardIterator[T, C]) bool { return it.Equal(oth) }

// PostNext advances the iterator and returns its previous state.
func (it *ForwardIterator[T, C]) PostNext() *ForwardIterator[T, C] {
	prev := it.Clone()
	it.Next()
	return prev
}

func (it *ForwardIterator[T, C]) Concept() rangekit.Tier { return rangekit.ForwardTier }

type BidirectionalIterator[T any, C rangekit.Bidirectional[T, C]] struct {
	ForwardIterator[T, C]
}

// NewBidirectionalIterator pairs the cursor with count as its starting index.
func NewBidirectionalIterator[T any, C rangekit.Bidirectional[T, C]](current C, count uint) *BidirectionalIterator[T, C] {
	return &BidirectionalIterator[T, C]{ForwardIterator: *NewForwardIterator[T](current, count)}
}

func (it *BidirectionalIterator[T, C]) Prev() {
	it.current.Prev()
	it.count--
}

// PostPrev steps the iterator back and returns its previous state.
func (it *BidirectionalIterator[T, C]) PostPrev() *BidirectionalIterator[T, C] {
	prev := it.Clone()
	it.Prev()
	return prev
}

func (it *BidirectionalIterator[T, C]) Clone() *BidirectionalIterator[T, C] {
	return NewBidirectionalIterator[T](it.current.Clone(), it.count)
}

func (it *BidirectionalIterator[T, C]) Equal(oth *BidirectionalIterator[T, C]) bool {
	return it.current.Equal(oth.current)
}

func (it *BidirectionalIterator[T, C]) Reached(oth *BidirectionalIterator[T, C]) bool {
	return it.Equal(oth)
}

func (it *BidirectionalIterator[T, C]) PostNext() *BidirectionalIterator[T, C] {
	prev := it.Clone()
	it.Next()
	return prev
}

func (it *BidirectionalIterator[T, C]) Concept() rangekit.Tier { return rangekit.BidirectionalTier }

type RandomAccessIterator[T any, C rangekit.RandomAccess[T, C]] struct {
	BidirectionalIterator[T, C]
}

// NewRandomAccessIterator pairs the cursor with count as its starting index.
func NewRandomAccessIterator[T any, C rangekit.RandomAccess[T, C]](current C, count uint) *RandomAccessIterator[T, C] {
	return &RandomAccessIterator[T, C]{BidirectionalIterator: *NewBidirectionalIterator[T](current, count)}
}

// Advance moves the iterator by a signed offset.
// The index follows the offset with unsigned wraparound.
func (it *RandomAccessIterator[T, C]) Advance(n int) {
	it.current.Advance(n)
	it.count += uint(n)
}

// Add returns a new iterator n positions after it.
func (it *RandomAccessIterator[T, C]) Add(n int) *RandomAccessIterator[T, C] {
	cp := it.Clone()
	cp.Advance(n)
	return cp
}

// Sub returns a new iterator n positions before it.
func (it *RandomAccessIterator[T, C]) Sub(n int) *RandomAccessIterator[T, C] {
	return it.Add(-n)
}

// At returns the pair n positions away, without moving the iterator.
func (it *RandomAccessIterator[T, C]) At(n int) Pair[T] {
	return it.Add(n).Value()
}

// Distance returns the signed element count from oth to it.
func (it *RandomAccessIterator[T, C]) Distance(oth *RandomAccessIterator[T, C]) int {
	return it.current.Distance(oth.current)
}

func (it *RandomAccessIterator[T, C]) Compare(oth *RandomAccessIterator[T, C]) int {
	return it.current.Compare(oth.current)
}

func (it *RandomAccessIterator[T, C]) Less(oth *RandomAccessIterator[T, C]) bool {
	return it.Compare(oth) < 0
}

func (it *RandomAccessIterator[T, C]) Greater(oth *RandomAccessIterator[T, C]) bool {
	return it.Compare(oth) > 0
}

func (it *RandomAccessIterator[T, C]) LessOrEqual(oth *RandomAccessIterator[T, C]) bool {
	return it.Compare(oth) <= 0
}

func (it *RandomAccessIterator[T, C]) GreaterOrEqual(oth *RandomAccessIterator[T, C]) bool {
	return it.Compare(oth) >= 0
}

// Remaining lets an end iterator tell how far a cursor is from it.
func (it *RandomAccessIterator[T, C]) Remaining(oth *RandomAccessIterator[T, C]) int {
	return it.Distance(oth)
}

func (it *RandomAccessIterator[T, C]) Clone() *RandomAccessIterator[T, C] {
	return NewRandomAccessIterator[T](it.current.Clone(), it.count)
}

func (it *RandomAccessIterator[T, C]) Equal(oth *RandomAccessIterator[T, C]) bool {
	return it.current.Equal(oth.current)
}

func (it *RandomAccessIterator[T, C]) Reached(oth *RandomAccessIterator[T, C]) bool {
	return it.Equal(oth)
}

func (it *RandomAccessIterator[T, C]) PostNext() *RandomAccessIterator[T, C] {
	prev := it.Clone()
	it.Next()
	return prev
}

func (it *RandomAccessIterator[T, C]) PostPrev() *RandomAccessIterator[T, C] {
	prev := it.Clone()
	it.Prev()
	return prev
}

func (it *RandomAccessIterator[T, C]) Concept() rangekit.Tier { return rangekit.RandomAccessTier }
