package rangekit

// Filter returns a forward range of the elements of r that satisfy pred.
//
// The first matching position is searched on the first Begin call and cached afterwards,
// which is why a filtered range has no immutable projection:
// the cache belongs to the mutable range value.
func Filter[T any, C Forward[T, C], S Sentinel[C]](r Range[C, S], pred func(T) bool) *FilterRange[T, C, S] {
	return &FilterRange[T, C, S]{base: r, pred: pred}
}

type FilterRange[T any, C Forward[T, C], S Sentinel[C]] struct {
	base   Range[C, S]
	pred   func(T) bool
	begin  C
	cached bool
}

func (r *FilterRange[T, C, S]) Begin() *FilterCursor[T, C, S] {
	end := r.base.End()
	if !r.cached {
		r.begin = r.base.Begin()
		skipUntil(r.begin, end, r.pred)
		r.cached = true
	}
	return &FilterCursor[T, C, S]{base: r.begin.Clone(), end: end, pred: r.pred}
}

func (r *FilterRange[T, C, S]) End() FilterEnd[T, C, S] {
	return FilterEnd[T, C, S]{end: r.base.End()}
}

func (r *FilterRange[T, C, S]) Traits() Traits { return Traits{Tier: ForwardTier} }

func skipUntil[T any, C Input[T], S Sentinel[C]](c C, end S, pred func(T) bool) {
	for !end.Reached(c) && !pred(c.Value()) {
		c.Next()
	}
}

type FilterCursor[T any, C Forward[T, C], S Sentinel[C]] struct {
	base C
	end  S
	pred func(T) bool
}

func (c *FilterCursor[T, C, S]) Value() T { return c.base.Value() }

func (c *FilterCursor[T, C, S]) Next() {
	c.base.Next()
	skipUntil(c.base, c.end, c.pred)
}

func (c *FilterCursor[T, C, S]) Clone() *FilterCursor[T, C, S] {
	return &FilterCursor[T, C, S]{base: c.base.Clone(), end: c.end, pred: c.pred}
}

func (c *FilterCursor[T, C, S]) Equal(oth *FilterCursor[T, C, S]) bool {
	return c.base.Equal(oth.base)
}

// Base returns the wrapped cursor.
func (c *FilterCursor[T, C, S]) Base() C { return c.base }

func (c *FilterCursor[T, C, S]) Concept() Tier { return ForwardTier }

func (c *FilterCursor[T, C, S]) Category() Tier {
	if _, ok := CategoryOf(c.base); ok {
		return ForwardTier
	}
	return 0
}

type FilterEnd[T any, C Forward[T, C], S Sentinel[C]] struct {
	end S
}

func (e FilterEnd[T, C, S]) Reached(c *FilterCursor[T, C, S]) bool {
	return e.end.Reached(c.base)
}
