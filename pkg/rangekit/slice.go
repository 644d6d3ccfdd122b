package rangekit

import "cmp"

// Slice returns a random access, common and sized range over the elements of a slice.
// The range borrows the slice, moving an element out of it through the cursor modifies the slice.
//
// The zero SliceRange is an empty range.
func Slice[E any](s []E) *SliceRange[E] {
	return &SliceRange[E]{elems: s}
}

type SliceRange[E any] struct {
	elems []E
}

func (r *SliceRange[E]) Begin() *SliceCursor[E] {
	return &SliceCursor[E]{elems: r.elems}
}

func (r *SliceRange[E]) End() *SliceCursor[E] {
	return &SliceCursor[E]{elems: r.elems, pos: len(r.elems)}
}

func (r *SliceRange[E]) Len() int { return len(r.elems) }

// Const returns the immutable projection of the range.
func (r *SliceRange[E]) Const() *ConstSliceRange[E] {
	return &ConstSliceRange[E]{elems: r.elems}
}

func (r *SliceRange[E]) Traits() Traits {
	return Traits{Tier: RandomAccessTier, Common: true, Sized: true}
}

// SliceCursor is the mutable cursor of a SliceRange.
type SliceCursor[E any] struct {
	elems []E
	pos   int
}

func (c *SliceCursor[E]) Value() E { return c.elems[c.pos] }

func (c *SliceCursor[E]) Next() { c.pos++ }

func (c *SliceCursor[E]) Prev() { c.pos-- }

func (c *SliceCursor[E]) Advance(n int) { c.pos += n }

func (c *SliceCursor[E]) Clone() *SliceCursor[E] {
	cp := *c
	return &cp
}

func (c *SliceCursor[E]) Equal(oth *SliceCursor[E]) bool { return c.pos == oth.pos }

func (c *SliceCursor[E]) Distance(oth *SliceCursor[E]) int { return c.pos - oth.pos }

func (c *SliceCursor[E]) Compare(oth *SliceCursor[E]) int { return cmp.Compare(c.pos, oth.pos) }

func (c *SliceCursor[E]) Reached(oth *SliceCursor[E]) bool { return c.Equal(oth) }

func (c *SliceCursor[E]) Remaining(oth *SliceCursor[E]) int { return c.Distance(oth) }

// Move returns the current element and leaves its zero value behind in the slice.
func (c *SliceCursor[E]) Move() E {
	var (
		v    = c.elems[c.pos]
		zero E
	)
	c.elems[c.pos] = zero
	return v
}

func (c *SliceCursor[E]) Const() *ConstSliceCursor[E] {
	return &ConstSliceCursor[E]{elems: c.elems, pos: c.pos}
}

func (c *SliceCursor[E]) Concept() Tier { return RandomAccessTier }

func (c *SliceCursor[E]) Category() Tier { return RandomAccessTier }

// ConstSlice returns the immutable range over a slice.
func ConstSlice[E any](s []E) *ConstSliceRange[E] {
	return &ConstSliceRange[E]{elems: s}
}

type ConstSliceRange[E any] struct {
	elems []E
}

func (r *ConstSliceRange[E]) Begin() *ConstSliceCursor[E] {
	return &ConstSliceCursor[E]{elems: r.elems}
}

func (r *ConstSliceRange[E]) End() *ConstSliceCursor[E] {
	return &ConstSliceCursor[E]{elems: r.elems, pos: len(r.elems)}
}

func (r *ConstSliceRange[E]) Len() int { return len(r.elems) }

func (r *ConstSliceRange[E]) Traits() Traits {
	return Traits{Tier: RandomAccessTier, Common: true, Sized: true}
}

// ConstSliceCursor reads a slice but never modifies it.
type ConstSliceCursor[E any] struct {
	elems []E
	pos   int
}

func (c *ConstSliceCursor[E]) Value() E { return c.elems[c.pos] }

func (c *ConstSliceCursor[E]) Next() { c.pos++ }

func (c *ConstSliceCursor[E]) Prev() { c.pos-- }

func (c *ConstSliceCursor[E]) Advance(n int) { c.pos += n }

func (c *ConstSliceCursor[E]) Clone() *ConstSliceCursor[E] {
	cp := *c
	return &cp
}

func (c *ConstSliceCursor[E]) Equal(oth *ConstSliceCursor[E]) bool { return c.pos == oth.pos }

func (c *ConstSliceCursor[E]) Distance(oth *ConstSliceCursor[E]) int { return c.pos - oth.pos }

func (c *ConstSliceCursor[E]) Compare(oth *ConstSliceCursor[E]) int {
	return cmp.Compare(c.pos, oth.pos)
}

func (c *ConstSliceCursor[E]) Reached(oth *ConstSliceCursor[E]) bool { return c.Equal(oth) }

func (c *ConstSliceCursor[E]) Remaining(oth *ConstSliceCursor[E]) int { return c.Distance(oth) }

func (c *ConstSliceCursor[E]) Concept() Tier { return RandomAccessTier }

func (c *ConstSliceCursor[E]) Category() Tier { return RandomAccessTier }
