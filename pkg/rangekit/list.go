package rangekit

import "container/list"

// List returns a bidirectional, common and sized range over a container/list.
// Every element of the list must hold a value of type T.
func List[T any](l *list.List) *ListRange[T] {
	return &ListRange[T]{list: l}
}

type ListRange[T any] struct {
	list *list.List
}

func (r *ListRange[T]) Begin() *ListCursor[T] {
	return &ListCursor[T]{list: r.list, elem: r.list.Front()}
}

// End returns the past-the-last cursor, which holds no element.
func (r *ListRange[T]) End() *ListCursor[T] {
	return &ListCursor[T]{list: r.list}
}

func (r *ListRange[T]) Len() int { return r.list.Len() }

func (r *ListRange[T]) Traits() Traits {
	return Traits{Tier: BidirectionalTier, Common: true, Sized: true}
}

type ListCursor[T any] struct {
	list *list.List
	elem *list.Element
}

func (c *ListCursor[T]) Value() T { return c.elem.Value.(T) }

func (c *ListCursor[T]) Next() { c.elem = c.elem.Next() }

// Prev steps back to the previous element.
// Stepping back from the end position lands on the last element.
func (c *ListCursor[T]) Prev() {
	if c.elem == nil {
		c.elem = c.list.Back()
		return
	}
	c.elem = c.elem.Prev()
}

func (c *ListCursor[T]) Clone() *ListCursor[T] {
	cp := *c
	return &cp
}

func (c *ListCursor[T]) Equal(oth *ListCursor[T]) bool { return c.elem == oth.elem }

func (c *ListCursor[T]) Reached(oth *ListCursor[T]) bool { return c.Equal(oth) }

func (c *ListCursor[T]) Concept() Tier { return BidirectionalTier }

func (c *ListCursor[T]) Category() Tier { return BidirectionalTier }
