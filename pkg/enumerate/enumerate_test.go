package enumerate_test

import (
	"container/list"
	"io"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/rangekit/internal/fixtures"
	"go.llib.dev/rangekit/pkg/enumerate"
	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/rangekit/pkg/rangekit/rangekitcontract"
)

func ExampleSlice() {
	for i, v := range enumerate.Slice([]string{"a", "b", "c"}).All() {
		_, _ = i, v // 0 a, 1 b, 2 c
	}
}

func ExampleLines() {
	v, closer := enumerate.Lines(strings.NewReader("foo\nbar"))
	defer closer.Close()

	end := v.End()
	for it := v.Begin(); !end.Reached(it); it.Next() {
		n, line := it.Value().Unpack()
		_, _ = n, line
	}
}

func pairsOf[T any](vs []T) []enumerate.Pair[T] {
	var ps = make([]enumerate.Pair[T], 0, len(vs))
	for i, v := range vs {
		ps = append(ps, enumerate.Pair[T]{Index: uint(i), Value: v})
	}
	return ps
}

func runesList(rs ...rune) *list.List {
	l := list.New()
	for _, r := range rs {
		l.PushBack(r)
	}
	return l
}

func TestEnumerate_yieldsEveryElementWithItsIndex(t *testing.T) {
	vs := fixtures.Words(fixtures.IntBetween(0, 12))
	got := enumerate.Collect(enumerate.Slice(vs).All())
	if diff := cmp.Diff(pairsOf(vs), got); diff != "" {
		t.Fatalf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestScenario_randomAccess(t *testing.T) {
	v := enumerate.Slice([]rune{'a', 'b', 'c'})

	require.Equal(t, []enumerate.Pair[rune]{{0, 'a'}, {1, 'b'}, {2, 'c'}}, enumerate.Collect(v.All()))
	require.Equal(t, 3, v.Len())
	require.Equal(t, 3, v.End().Distance(v.Begin()))
	require.Equal(t, rangekit.Traits{Tier: rangekit.RandomAccessTier, Common: true, Sized: true}, v.Traits())
	require.Equal(t, rangekit.RandomAccessTier, rangekit.TierOf(v.Begin()))
	require.Equal(t, uint(3), v.End().Index())
}

func TestScenario_singlePass(t *testing.T) {
	v, closer := enumerate.Seq(slices.Values([]rune{'a'}))
	defer closer.Close()

	it := v.Begin()
	end := v.End()
	require.False(t, end.Reached(it))
	require.Equal(t, enumerate.Pair[rune]{Index: 0, Value: 'a'}, it.Value())
	it.Next()
	require.True(t, end.Reached(it))
	require.Equal(t, rangekit.Traits{Tier: rangekit.InputTier}, v.Traits())
	require.Equal(t, rangekit.InputTier, rangekit.TierOf(it))
}

func TestScenario_bidirectional(t *testing.T) {
	v := enumerate.List[rune](runesList('a', 'b', 'c'))

	tr := v.Traits()
	require.True(t, tr.Common)
	require.Equal(t, rangekit.BidirectionalTier, tr.Tier)
	require.False(t, tr.Tier.AtLeast(rangekit.RandomAccessTier))
	_, ok := any(v.Begin()).(interface{ Advance(int) })
	require.False(t, ok, "a bidirectional iterator must not jump")

	it := v.Begin()
	it.Next()
	it.Next()
	require.Equal(t, enumerate.Pair[rune]{Index: 2, Value: 'c'}, it.Value())
	it.Prev()
	require.Equal(t, enumerate.Pair[rune]{Index: 1, Value: 'b'}, it.Value())
	require.Equal(t, []enumerate.Pair[rune]{{0, 'a'}, {1, 'b'}, {2, 'c'}}, enumerate.Collect(v.All()))
}

func TestScenario_window(t *testing.T) {
	v := enumerate.Window([]rune{'a', 'b', 'c'}, 2)

	require.Equal(t, rangekit.Traits{Tier: rangekit.RandomAccessTier, Sized: true}, v.Traits())
	require.Equal(t, []enumerate.Pair[rune]{{0, 'a'}, {1, 'b'}}, enumerate.Collect(v.All()))

	it := v.Begin()
	end := v.End()
	require.Equal(t, 2, enumerate.Remaining(it, end))
	require.Equal(t, -2, enumerate.Overshoot(it, end))
	it.Next()
	it.Next()
	require.True(t, end.Reached(it))
	require.Equal(t, 0, enumerate.Remaining(it, end))
	require.Equal(t, 2, enumerate.Len(v))
}

func TestForwardList_isNotCommon(t *testing.T) {
	vs := fixtures.Words(fixtures.IntBetween(1, 7))
	v := enumerate.ForwardList(rangekit.NewForwardList(vs...))

	require.Equal(t, rangekit.Traits{Tier: rangekit.ForwardTier}, v.Traits())
	require.Equal(t, pairsOf(vs), enumerate.Collect(v.All()))
	_, ok := v.Size()
	require.False(t, ok)
	_, ok = any(v.Begin()).(interface{ Prev() })
	require.False(t, ok, "a forward iterator must not step back")
}

func TestEnumerate_concept(t *testing.T) {
	type concept interface{ Concept() rangekit.Tier }
	ints := []int{1, 2, 3}
	lines, closer := enumerate.Lines(strings.NewReader("a"))
	defer closer.Close()

	for name, tc := range map[string]struct {
		It  concept
		Exp rangekit.Tier
	}{
		"input":         {It: lines.Begin(), Exp: rangekit.InputTier},
		"forward":       {It: enumerate.ForwardList(rangekit.NewForwardList(ints...)).Begin(), Exp: rangekit.ForwardTier},
		"bidirectional": {It: enumerate.List[rune](runesList('x')).Begin(), Exp: rangekit.BidirectionalTier},
		"random access": {It: enumerate.Slice(ints).Begin(), Exp: rangekit.RandomAccessTier},
		"window":        {It: enumerate.Window(ints, 2).Begin(), Exp: rangekit.RandomAccessTier},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Exp, tc.It.Concept())
			assert.Equal(t, tc.Exp, rangekit.TierOf(tc.It))
		})
	}
}

// The legacy category stays "input" even when the real tier is richer.
// Callers that inspect the legacy category rely on this, so it is kept as is.
func TestEnumerate_legacyCategory(t *testing.T) {
	ints := []int{1, 2, 3}
	seqView, closer := enumerate.Seq(slices.Values(ints))
	defer closer.Close()

	for name, tc := range map[string]struct {
		It         any
		Tagged     bool
		ReportTier rangekit.Tier
	}{
		"random access": {It: enumerate.Slice(ints).Begin(), Tagged: true, ReportTier: rangekit.InputTier},
		"bidirectional": {It: enumerate.List[rune](runesList('x')).Begin(), Tagged: true, ReportTier: rangekit.InputTier},
		"forward":       {It: enumerate.ForwardList(rangekit.NewForwardList(ints...)).Begin(), Tagged: true, ReportTier: rangekit.InputTier},
		"window":        {It: enumerate.Window(ints, 2).Begin(), Tagged: true, ReportTier: rangekit.InputTier},
		"untagged":      {It: seqView.Begin(), Tagged: false},
	} {
		t.Run(name, func(t *testing.T) {
			tier, ok := rangekit.CategoryOf(tc.It)
			assert.Equal(t, tc.Tagged, ok)
			assert.Equal(t, tc.ReportTier, tier)
		})
	}
}

func TestEnumerate_moveLeavesTheSourceMovedFrom(t *testing.T) {
	vs := []string{"foo", "bar", "baz"}
	it := enumerate.Slice(vs).Begin()
	it.Next()

	assert.Equal(t, enumerate.Pair[string]{Index: 1, Value: "bar"}, it.Move())
	assert.Equal(t, []string{"foo", "", "baz"}, vs)

	t.Run("immutable cursors can't move, so they copy", func(t *testing.T) {
		vs := []string{"foo", "bar"}
		it := enumerate.ConstSlice(vs).Begin()
		assert.Equal(t, enumerate.Pair[string]{Index: 0, Value: "foo"}, it.Move())
		assert.Equal(t, []string{"foo", "bar"}, vs)
	})
}

func TestInputIterator_copiesShareTheSource(t *testing.T) {
	v, closer := enumerate.Seq(slices.Values([]string{"a", "b", "c"}))
	defer closer.Close()

	it1 := v.Begin()
	it2 := v.Begin()
	it1.Next()
	// it2 didn't move, but its underlying position did.
	assert.Equal(t, enumerate.Pair[string]{Index: 0, Value: "b"}, it2.Value())
	assert.Equal(t, enumerate.Pair[string]{Index: 1, Value: "b"}, it1.Value())
}

func TestInputIterator_Err(t *testing.T) {
	v, closer := enumerate.Lines(&BrokenReader{})
	defer closer.Close()
	it := v.Begin()
	assert.True(t, v.End().Reached(it))
	assert.ErrorIs(t, io.ErrUnexpectedEOF, it.Err())

	assert.NoError(t, enumerate.Slice([]int{}).Begin().Err())
}

func TestEnumerate_ofEnumerate(t *testing.T) {
	inner := enumerate.Slice([]string{"x", "y"})
	outer := enumerate.CommonRandomAccess[enumerate.Pair[string], *enumerate.RandomAccessIterator[string, *rangekit.SliceCursor[string]]](inner)

	exp := []enumerate.Pair[enumerate.Pair[string]]{
		{Index: 0, Value: enumerate.Pair[string]{Index: 0, Value: "x"}},
		{Index: 1, Value: enumerate.Pair[string]{Index: 1, Value: "y"}},
	}
	assert.Equal(t, exp, enumerate.Collect(outer.All()))
	assert.Equal(t, 2, outer.End().Distance(outer.Begin()))
}

func TestView_defaultRange(t *testing.T) {
	v := enumerate.RandomAccess[int, *rangekit.SliceCursor[int], *rangekit.SliceCursor[int]](&rangekit.SliceRange[int]{})
	assert.Empty(t, enumerate.Collect(v.All()))
	assert.Equal(t, 0, enumerate.Len(v))
}

func TestWindow_negativeWidth(t *testing.T) {
	v := enumerate.Window([]int{1, 2, 3}, -1)
	assert.Empty(t, enumerate.Collect(v.All()))
	assert.Equal(t, 0, enumerate.Len(v))
}

func TestView_zeroValue(t *testing.T) {
	var v enumerate.View[int, *rangekit.SliceCursor[int], *rangekit.SliceCursor[int], *enumerate.RandomAccessIterator[int, *rangekit.SliceCursor[int]]]
	n, ok := v.Size()
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal[any](t, enumerate.ErrUnboundView, assert.Panic(t, func() { v.Begin() }))
	assert.Equal[any](t, enumerate.ErrUnboundView, assert.Panic(t, func() { v.End() }))

	var cv enumerate.CommonView[int, *rangekit.SliceCursor[int], *enumerate.RandomAccessIterator[int, *rangekit.SliceCursor[int]]]
	assert.Equal[any](t, enumerate.ErrUnboundView, assert.Panic(t, func() { cv.Begin() }))
}

func TestView_sizedCommonRangeHasLen(t *testing.T) {
	l := list.New()
	for _, s := range []string{"a", "b", "c"} {
		l.PushBack(s)
	}
	v := enumerate.List[string](l)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, uint(3), v.End().Index())
}

func TestView_Size(t *testing.T) {
	vs := []int{1, 2, 3}
	v := enumerate.Forward[int, *rangekit.SliceCursor[int], *rangekit.SliceCursor[int]](rangekit.Slice(vs))
	n, ok := v.Size()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, enumerate.Len(v))
	assert.Equal(t, rangekit.Traits{Tier: rangekit.ForwardTier, Sized: true}, v.Traits())
}

func TestLen_measuresUnsizedRanges(t *testing.T) {
	type sentinelOnly struct {
		rangekit.Range[*rangekit.SliceCursor[int], *rangekit.SliceCursor[int]]
	}
	r := sentinelOnly{Range: rangekit.Slice([]int{1, 2, 3, 4})}
	v := enumerate.RandomAccess[int, *rangekit.SliceCursor[int], *rangekit.SliceCursor[int]](r)
	_, ok := v.Size()
	assert.False(t, ok)
	assert.Equal(t, 4, enumerate.Len(v))
}

func TestAll_stopsEarly(t *testing.T) {
	var got []enumerate.Pair[int]
	for i, v := range enumerate.Slice([]int{7, 8, 9}).All() {
		got = append(got, enumerate.Pair[int]{Index: i, Value: v})
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []enumerate.Pair[int]{{0, 7}, {1, 8}}, got)
}

func TestChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	assert.Equal(t, []enumerate.Pair[int]{{0, 1}, {1, 2}, {2, 3}}, enumerate.Collect(enumerate.Chan(ch).All()))
}

func TestConst(t *testing.T) {
	s := testcase.NewSpec(t)

	vs := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
	})

	s.Test("an iterator converts to its immutable counterpart with its position and index", func(t *testcase.T) {
		it := enumerate.Slice(vs.Get(t)).Begin()
		it.Advance(2)
		cit := enumerate.ConstRandomAccess[*rangekit.ConstSliceCursor[int]](it)
		assert.Equal(t, enumerate.Pair[int]{Index: 2, Value: vs.Get(t)[2]}, cit.Value())
		cit.Prev()
		assert.Equal(t, uint(1), cit.Index())
		assert.Equal(t, uint(2), it.Index(), "the original is untouched")
	})

	s.Test("every tier converts", func(t *testcase.T) {
		r := rangekit.Slice(vs.Get(t))
		in := enumerate.ConstInput[*rangekit.ConstSliceCursor[int]](enumerate.NewInputIterator[int](r.Begin(), 0))
		fw := enumerate.ConstForward[*rangekit.ConstSliceCursor[int]](enumerate.NewForwardIterator[int](r.Begin(), 0))
		bi := enumerate.ConstBidirectional[*rangekit.ConstSliceCursor[int]](enumerate.NewBidirectionalIterator[int](r.Begin(), 0))
		assert.Equal(t, vs.Get(t)[0], in.Value().Value)
		assert.Equal(t, vs.Get(t)[0], fw.Value().Value)
		assert.Equal(t, vs.Get(t)[0], bi.Value().Value)
	})

	s.Test("a sentinel converts together with the iterator", func(t *testcase.T) {
		v := enumerate.Forward[int, *rangekit.SliceCursor[int], *rangekit.SliceCursor[int]](rangekit.Slice(vs.Get(t)))
		end := enumerate.ConstSentinel[*enumerate.ForwardIterator[int, *rangekit.ConstSliceCursor[int]], *rangekit.ConstSliceCursor[int], *rangekit.ConstSliceCursor[int]](v.End())
		var got []int
		for it := enumerate.ConstForward[*rangekit.ConstSliceCursor[int]](v.Begin()); !end.Reached(it); it.Next() {
			got = append(got, it.Value().Value)
		}
		assert.Equal(t, vs.Get(t), got)
	})

	s.Test("the immutable projection of a range can be enumerated", func(t *testcase.T) {
		r := rangekit.Slice(vs.Get(t))
		v := enumerate.CommonRandomAccess[int, *rangekit.ConstSliceCursor[int]](r.Const())
		assert.Equal(t, pairsOf(vs.Get(t)), enumerate.Collect(v.All()))
	})

	s.Test("a filtered range has no immutable projection", func(t *testcase.T) {
		r := rangekit.Filter[int](rangekit.Slice(vs.Get(t)), func(int) bool { return true })
		_, ok := reflect.TypeOf(r).MethodByName("Const")
		assert.False(t, ok)
	})
}

func TestRandomAccessIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	vs := testcase.Let(s, func(t *testcase.T) []string {
		return random.Slice(t.Random.IntBetween(4, 9), func() string { return t.Random.String() })
	})
	subject := testcase.Let(s, func(t *testcase.T) *enumerate.RandomAccessIterator[string, *rangekit.SliceCursor[string]] {
		return enumerate.Slice(vs.Get(t)).Begin()
	})

	s.Test("Add and Sub return new iterators", func(t *testcase.T) {
		it := subject.Get(t)
		n := t.Random.IntBetween(1, len(vs.Get(t))-1)
		moved := it.Add(n)
		assert.Equal(t, uint(0), it.Index())
		assert.Equal(t, enumerate.Pair[string]{Index: uint(n), Value: vs.Get(t)[n]}, moved.Value())
		assert.True(t, moved.Sub(n).Equal(it))
		assert.Equal(t, n, moved.Distance(it))
		assert.Equal(t, -n, it.Distance(moved))
	})

	s.Test("At reads without moving", func(t *testcase.T) {
		it := subject.Get(t)
		n := t.Random.IntBetween(0, len(vs.Get(t))-1)
		assert.Equal(t, enumerate.Pair[string]{Index: uint(n), Value: vs.Get(t)[n]}, it.At(n))
		assert.Equal(t, uint(0), it.Index())
	})

	s.Test("ordering", func(t *testcase.T) {
		a := subject.Get(t)
		b := a.Add(1)
		assert.True(t, a.Less(b))
		assert.True(t, b.Greater(a))
		assert.True(t, a.LessOrEqual(a.Clone()))
		assert.True(t, a.GreaterOrEqual(a.Clone()))
		assert.False(t, b.LessOrEqual(a))
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 0, a.Compare(a.Clone()))
	})

	s.Test("PostNext and PostPrev return the previous state", func(t *testcase.T) {
		it := subject.Get(t)
		prev := it.PostNext()
		assert.Equal(t, uint(0), prev.Index())
		assert.Equal(t, uint(1), it.Index())
		prev = it.PostPrev()
		assert.Equal(t, uint(1), prev.Index())
		assert.Equal(t, uint(0), it.Index())
	})

	s.Test("the end iterator knows the remaining length", func(t *testcase.T) {
		v := enumerate.Slice(vs.Get(t))
		assert.Equal(t, len(vs.Get(t)), v.End().Remaining(v.Begin()))
		assert.True(t, v.End().Reached(v.Begin().Add(len(vs.Get(t)))))
	})
}

func TestRandomAccessIterator_indexWraparound(t *testing.T) {
	v := enumerate.RandomAccess[int, *rangekit.IotaCursor, rangekit.Unreachable[*rangekit.IotaCursor]](rangekit.Iota(0))
	it := v.Begin()
	it.Advance(-1)
	assert.Equal(t, enumerate.Pair[int]{Index: math.MaxUint, Value: -1}, it.Value())
	it.Next()
	assert.Equal(t, enumerate.Pair[int]{Index: 0, Value: 0}, it.Value())
	assert.False(t, v.End().Reached(it.Add(1<<20)))
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }

type (
	sliceSubject = rangekitcontract.Subject[
		enumerate.Pair[int],
		*enumerate.RandomAccessIterator[int, *rangekit.SliceCursor[int]],
		*enumerate.RandomAccessIterator[int, *rangekit.SliceCursor[int]],
	]
	listSubject = rangekitcontract.Subject[
		enumerate.Pair[string],
		*enumerate.BidirectionalIterator[string, *rangekit.ListCursor[string]],
		*enumerate.BidirectionalIterator[string, *rangekit.ListCursor[string]],
	]
	forwardListSubject = rangekitcontract.Subject[
		enumerate.Pair[string],
		*enumerate.ForwardIterator[string, *rangekit.ForwardListCursor[string]],
		enumerate.Sentinel[*rangekit.ForwardListCursor[string], *rangekit.ForwardListCursor[string], *enumerate.ForwardIterator[string, *rangekit.ForwardListCursor[string]]],
	]
	windowSubject = rangekitcontract.Subject[
		enumerate.Pair[int],
		*enumerate.RandomAccessIterator[int, *rangekit.CountedCursor[int, *rangekit.SliceCursor[int]]],
		enumerate.Sentinel[*rangekit.CountedCursor[int, *rangekit.SliceCursor[int]], rangekit.CountedEnd[int, *rangekit.SliceCursor[int]], *enumerate.RandomAccessIterator[int, *rangekit.CountedCursor[int, *rangekit.SliceCursor[int]]]],
	]
	linesSubject = rangekitcontract.Subject[
		enumerate.Pair[string],
		*enumerate.InputIterator[string, *rangekit.PullCursor[string]],
		enumerate.Sentinel[*rangekit.PullCursor[string], rangekit.PullEnd[string], *enumerate.InputIterator[string, *rangekit.PullCursor[string]]],
	]
)

func TestEnumerate_keepsTheTierContract(t *testing.T) {
	t.Run("random access", func(t *testing.T) {
		mk := func(tb testing.TB) sliceSubject {
			vs := fixtures.Ints(fixtures.IntBetween(2, 9), 100)
			return sliceSubject{Range: enumerate.Slice(vs), Values: pairsOf(vs)}
		}
		rangekitcontract.Input(mk).Test(t)
		rangekitcontract.Forward(mk).Test(t)
		rangekitcontract.Bidirectional(mk).Test(t)
		rangekitcontract.RandomAccess(mk).Test(t)
	})
	t.Run("random access window", func(t *testing.T) {
		mk := func(tb testing.TB) windowSubject {
			vs := fixtures.Ints(fixtures.IntBetween(2, 9), 100)
			n := fixtures.IntBetween(0, len(vs))
			return windowSubject{Range: enumerate.Window(vs, n), Values: pairsOf(vs[:n])}
		}
		rangekitcontract.Forward(mk).Test(t)
		rangekitcontract.RandomAccess(mk).Test(t)
	})
	t.Run("bidirectional", func(t *testing.T) {
		mk := func(tb testing.TB) listSubject {
			vs := fixtures.Tokens(fixtures.IntBetween(2, 9))
			l := list.New()
			for _, v := range vs {
				l.PushBack(v)
			}
			return listSubject{Range: enumerate.List[string](l), Values: pairsOf(vs)}
		}
		rangekitcontract.Forward(mk).Test(t)
		rangekitcontract.Bidirectional(mk).Test(t)
	})
	t.Run("forward", func(t *testing.T) {
		mk := func(tb testing.TB) forwardListSubject {
			vs := fixtures.Words(fixtures.IntBetween(2, 9))
			return forwardListSubject{Range: enumerate.ForwardList(rangekit.NewForwardList(vs...)), Values: pairsOf(vs)}
		}
		rangekitcontract.Input(mk).Test(t)
		rangekitcontract.Forward(mk).Test(t)
	})
	t.Run("input", func(t *testing.T) {
		mk := func(tb testing.TB) linesSubject {
			vs := fixtures.Words(fixtures.IntBetween(1, 9))
			v, _ := enumerate.Lines(strings.NewReader(strings.Join(vs, "\n")))
			return linesSubject{Range: v, Values: pairsOf(vs)}
		}
		rangekitcontract.Input(mk).Test(t)
	})
}
