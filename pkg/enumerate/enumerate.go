// Package enumerate pairs every element of a range with its zero based position.
//
// # Summary
//
// An enumerated range walks its underlying range lazily,
// and every step yields a Pair of the running index and the current element.
// The enumerated range keeps the capabilities of what it wraps:
//
//	underlying cursor        -> enumerate iterator
//	rangekit.Input           -> *InputIterator
//	rangekit.Forward         -> *ForwardIterator
//	rangekit.Bidirectional   -> *BidirectionalIterator
//	rangekit.RandomAccess    -> *RandomAccessIterator
//
// Each iterator type embeds the previous one,
// so a *RandomAccessIterator can do everything a *ForwardIterator can,
// while a *ForwardIterator has no Prev, Advance or Distance methods at all.
//
// The end of an enumerated range is a Sentinel, unless the underlying range is both common and sized.
// In that case the CommonView constructors return an iterator positioned at the length of the range,
// which keeps the enumerated range common, sized and cheap to measure.
//
// # Legacy category
//
// Every iterator reports two classifications.
// Concept returns the real tier which selects the available operations.
// Category exists for callers that only look at the legacy single-pass classification:
// it reports rangekit.InputTier when the underlying cursor is categorized at all,
// regardless of how rich the underlying cursor is.
//
// # Resources
//
// https://en.cppreference.com/w/cpp/ranges/enumerate_view
package enumerate

import (
	"iter"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Pair is an element of an enumerated range.
type Pair[T any] struct {
	Index uint
	Value T
}

func (p Pair[T]) Unpack() (uint, T) { return p.Index, p.Value }

// Based is implemented by everything that wraps an underlying cursor.
type Based[C any] interface {
	Base() C
}

// Iterator is the method set shared by all the enumerate iterators.
type Iterator[T any, C any] interface {
	rangekit.Input[Pair[T]]
	Based[C]
	Index() uint
}

// Collect gathers the pairs of an enumerated sequence.
func Collect[T any](seq iter.Seq2[uint, T]) []Pair[T] {
	var ps = make([]Pair[T], 0)
	for i, v := range seq {
		ps = append(ps, Pair[T]{Index: i, Value: v})
	}
	return ps
}
