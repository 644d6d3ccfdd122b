package rangekit

// ForwardList is a singly linked list.
// It is a forward and common range, but it is not sized:
// its length is only known by walking it.
type ForwardList[T any] struct {
	head *fwdNode[T]
}

type fwdNode[T any] struct {
	value T
	next  *fwdNode[T]
}

func NewForwardList[T any](vs ...T) *ForwardList[T] {
	var fl ForwardList[T]
	for i := len(vs) - 1; 0 <= i; i-- {
		fl.PushFront(vs[i])
	}
	return &fl
}

func (fl *ForwardList[T]) PushFront(v T) {
	fl.head = &fwdNode[T]{value: v, next: fl.head}
}

func (fl *ForwardList[T]) Begin() *ForwardListCursor[T] {
	return &ForwardListCursor[T]{node: fl.head}
}

func (fl *ForwardList[T]) End() *ForwardListCursor[T] {
	return &ForwardListCursor[T]{}
}

func (fl *ForwardList[T]) Traits() Traits {
	return Traits{Tier: ForwardTier, Common: true}
}

type ForwardListCursor[T any] struct {
	node *fwdNode[T]
}

func (c *ForwardListCursor[T]) Value() T { return c.node.value }

func (c *ForwardListCursor[T]) Next() { c.node = c.node.next }

func (c *ForwardListCursor[T]) Clone() *ForwardListCursor[T] {
	return &ForwardListCursor[T]{node: c.node}
}

func (c *ForwardListCursor[T]) Equal(oth *ForwardListCursor[T]) bool { return c.node == oth.node }

func (c *ForwardListCursor[T]) Reached(oth *ForwardListCursor[T]) bool { return c.Equal(oth) }

func (c *ForwardListCursor[T]) Concept() Tier { return ForwardTier }

func (c *ForwardListCursor[T]) Category() Tier { return ForwardTier }
