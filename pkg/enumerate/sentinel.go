package enumerate

import (
	"go.llib.dev/rangekit/pkg/rangekit"
)

// Sentinel is the end of an enumerated range whose underlying range is not both common and sized.
// It only holds the underlying end, and every comparison is delegated to it.
type Sentinel[C any, S rangekit.Sentinel[C], It Based[C]] struct {
	end S
}

// NewSentinel wraps the end of the underlying range.
// The iterator type can't be inferred from the arguments, so it comes first in the type parameter list.
func NewSentinel[It Based[C], C any, S rangekit.Sentinel[C]](end S) Sentinel[C, S, It] {
	return Sentinel[C, S, It]{end: end}
}

// Reached reports whether the iterator's underlying cursor reached the underlying end.
func (s Sentinel[C, S, It]) Reached(it It) bool {
	return s.end.Reached(it.Base())
}

// Base returns the underlying end.
func (s Sentinel[C, S, It]) Base() S { return s.end }

// Remaining returns the signed number of elements between the iterator and the sentinel (sentinel - iterator).
// It is only available when the underlying end can measure its distance from a cursor.
func Remaining[C any, S rangekit.SizedSentinel[C], It Based[C]](it It, s Sentinel[C, S, It]) int {
	return s.end.Remaining(it.Base())
}

// Overshoot is the opposite of Remaining (iterator - sentinel).
func Overshoot[C any, S rangekit.SizedSentinel[C], It Based[C]](it It, s Sentinel[C, S, It]) int {
	return -Remaining(it, s)
}
