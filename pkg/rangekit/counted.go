package rangekit

import "cmp"

// Counted returns the range of the n elements that start at begin.
// The range is random access and sized, but it is not common:
// its end is a count based sentinel and not a cursor.
// A negative n yields an empty range.
func Counted[T any, C RandomAccess[T, C]](begin C, n int) *CountedRange[T, C] {
	return &CountedRange[T, C]{begin: begin, n: max(0, n)}
}

// Take returns the first n elements of a sized random access range as a Counted range.
// When the range is shorter than n, the whole range is taken, and a negative n takes nothing.
func Take[T any, C RandomAccess[T, C]](r SizedCommonRange[C], n int) *CountedRange[T, C] {
	return Counted[T](r.Begin(), max(0, min(n, r.Len())))
}

type CountedRange[T any, C RandomAccess[T, C]] struct {
	begin C
	n     int
}

func (r *CountedRange[T, C]) Begin() *CountedCursor[T, C] {
	return &CountedCursor[T, C]{base: r.begin.Clone(), length: r.n}
}

func (r *CountedRange[T, C]) End() CountedEnd[T, C] { return CountedEnd[T, C]{} }

func (r *CountedRange[T, C]) Len() int { return r.n }

func (r *CountedRange[T, C]) Traits() Traits {
	return Traits{Tier: RandomAccessTier, Sized: true}
}

// CountedCursor walks the underlying cursor while it counts down the remaining length.
type CountedCursor[T any, C RandomAccess[T, C]] struct {
	base   C
	length int
}

func (c *CountedCursor[T, C]) Value() T { return c.base.Value() }

func (c *CountedCursor[T, C]) Next() {
	c.base.Next()
	c.length--
}

func (c *CountedCursor[T, C]) Prev() {
	c.base.Prev()
	c.length++
}

func (c *CountedCursor[T, C]) Advance(n int) {
	c.base.Advance(n)
	c.length -= n
}

func (c *CountedCursor[T, C]) Clone() *CountedCursor[T, C] {
	return &CountedCursor[T, C]{base: c.base.Clone(), length: c.length}
}

func (c *CountedCursor[T, C]) Equal(oth *CountedCursor[T, C]) bool {
	return c.length == oth.length
}

func (c *CountedCursor[T, C]) Distance(oth *CountedCursor[T, C]) int {
	return oth.length - c.length
}

func (c *CountedCursor[T, C]) Compare(oth *CountedCursor[T, C]) int {
	return cmp.Compare(oth.length, c.length)
}

// Base returns the wrapped cursor.
func (c *CountedCursor[T, C]) Base() C { return c.base }

// Count returns how many elements are left until the end of the counted range.
func (c *CountedCursor[T, C]) Count() int { return c.length }

func (c *CountedCursor[T, C]) Concept() Tier { return RandomAccessTier }

// Category is inherited from the wrapped cursor,
// zero means that the wrapped cursor is not categorized.
func (c *CountedCursor[T, C]) Category() Tier {
	tier, _ := CategoryOf(c.base)
	return tier
}

// CountedEnd is reached when the counted cursor has no remaining length.
type CountedEnd[T any, C RandomAccess[T, C]] struct{}

func (CountedEnd[T, C]) Reached(c *CountedCursor[T, C]) bool { return c.length == 0 }

func (CountedEnd[T, C]) Remaining(c *CountedCursor[T, C]) int { return c.length }
