package rangekit

import "cmp"

// Iota is an unbounded random access range of consecutive integers.
// Bound it with Counted to get a finite range.
func Iota(start int) *IotaRange {
	return &IotaRange{start: start}
}

type IotaRange struct {
	start int
}

func (r *IotaRange) Begin() *IotaCursor { return &IotaCursor{n: r.start} }

func (r *IotaRange) End() Unreachable[*IotaCursor] { return Unreachable[*IotaCursor]{} }

func (r *IotaRange) Traits() Traits { return Traits{Tier: RandomAccessTier} }

type IotaCursor struct {
	n int
}

func (c *IotaCursor) Value() int { return c.n }

func (c *IotaCursor) Next() { c.n++ }

func (c *IotaCursor) Prev() { c.n-- }

func (c *IotaCursor) Advance(n int) { c.n += n }

func (c *IotaCursor) Clone() *IotaCursor { return &IotaCursor{n: c.n} }

func (c *IotaCursor) Equal(oth *IotaCursor) bool { return c.n == oth.n }

func (c *IotaCursor) Distance(oth *IotaCursor) int { return c.n - oth.n }

func (c *IotaCursor) Compare(oth *IotaCursor) int { return cmp.Compare(c.n, oth.n) }

func (c *IotaCursor) Concept() Tier { return RandomAccessTier }

func (c *IotaCursor) Category() Tier { return RandomAccessTier }

// Unreachable is a Sentinel that is never reached.
type Unreachable[C any] struct{}

func (Unreachable[C]) Reached(C) bool { return false }
