package rangekitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/port/contract"
)

// Subject is a range together with the values it is expected to yield, in order.
type Subject[T any, C any, S any] struct {
	Range  rangekit.Range[C, S]
	Values []T
}

func walk[T any, C rangekit.Input[T], S rangekit.Sentinel[C]](r rangekit.Range[C, S]) []T {
	var vs = make([]T, 0)
	end := r.End()
	for c := r.Begin(); !end.Reached(c); c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}

func Input[T any, C rangekit.Input[T], S rangekit.Sentinel[C]](mk contract.Make[Subject[T, C, S]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C, S] {
		return mk(t)
	})

	s.Then("walking the range yields the expected values in order", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, sub.Values, walk[T](sub.Range))
	})

	s.Then("reading the current value is repeatable", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("empty range")
		}
		c := sub.Range.Begin()
		assert.Equal(t, c.Value(), c.Value())
		assert.Equal(t, sub.Values[0], c.Value())
	})

	return s.AsSuite("input")
}

func Forward[T any, C rangekit.Forward[T, C], S rangekit.Sentinel[C]](mk contract.Make[Subject[T, C, S]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C, S] {
		return mk(t)
	})

	s.Then("the range can be walked more than once", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, sub.Values, walk[T](sub.Range))
		assert.Equal(t, sub.Values, walk[T](sub.Range))
	})

	s.Then("two beginnings are equal", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.Range.Begin().Equal(sub.Range.Begin()))
	})

	s.Then("a clone walks independently from the original", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) < 2 {
			t.Skip("the range needs at least two values")
		}
		c := sub.Range.Begin()
		cp := c.Clone()
		c.Next()
		assert.Equal(t, sub.Values[1], c.Value())
		assert.Equal(t, sub.Values[0], cp.Value())
		assert.False(t, c.Equal(cp))
		cp.Next()
		assert.True(t, c.Equal(cp))
	})

	return s.AsSuite("forward")
}

func Bidirectional[T any, C rangekit.Bidirectional[T, C], S rangekit.Sentinel[C]](mk contract.Make[Subject[T, C, S]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C, S] {
		return mk(t)
	})

	s.Then("stepping back from the end yields the values in reverse", func(t *testcase.T) {
		sub := subject.Get(t)
		c := sub.Range.Begin()
		for range sub.Values {
			c.Next()
		}
		assert.True(t, sub.Range.End().Reached(c))
		for i := len(sub.Values) - 1; 0 <= i; i-- {
			c.Prev()
			assert.Equal(t, sub.Values[i], c.Value())
		}
		assert.True(t, c.Equal(sub.Range.Begin()))
	})

	s.Then("Next followed by Prev is a no-op", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("empty range")
		}
		c := sub.Range.Begin()
		c.Next()
		c.Prev()
		assert.True(t, c.Equal(sub.Range.Begin()))
	})

	return s.AsSuite("bidirectional")
}

func RandomAccess[T any, C rangekit.RandomAccess[T, C], S rangekit.Sentinel[C]](mk contract.Make[Subject[T, C, S]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C, S] {
		return mk(t)
	})

	s.Then("Advance lands on the same position as the same number of Next calls", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Values))
		jumped := sub.Range.Begin()
		jumped.Advance(n)
		walked := sub.Range.Begin()
		for i := 0; i < n; i++ {
			walked.Next()
		}
		assert.True(t, jumped.Equal(walked))
		if n < len(sub.Values) {
			assert.Equal(t, sub.Values[n], jumped.Value())
		}
	})

	s.Then("Distance and Compare agree with the positions", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Values))
		begin := sub.Range.Begin()
		c := sub.Range.Begin()
		c.Advance(n)
		assert.Equal(t, n, c.Distance(begin))
		assert.Equal(t, -n, begin.Distance(c))
		assert.Equal(t, 0, c.Compare(c.Clone()))
		if 0 < n {
			assert.Equal(t, 1, c.Compare(begin))
			assert.Equal(t, -1, begin.Compare(c))
		}
	})

	s.Then("a negative Advance steps back", func(t *testcase.T) {
		sub := subject.Get(t)
		c := sub.Range.Begin()
		c.Advance(len(sub.Values))
		c.Advance(-len(sub.Values))
		assert.True(t, c.Equal(sub.Range.Begin()))
	})

	return s.AsSuite("random access")
}
