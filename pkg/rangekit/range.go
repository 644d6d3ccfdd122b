package rangekit

import "iter"

// Range is a pair of positions.
// Begin returns a cursor to the first element,
// End returns the value that tells when the cursor walked past the last element.
type Range[C, S any] interface {
	Begin() C
	End() S
}

// CommonRange is a range where the end is a cursor of the same type as the beginning.
type CommonRange[C any] interface {
	Begin() C
	End() C
}

// Sized ranges know their length without walking them.
type Sized interface {
	Len() int
}

// SizedCommonRange is a common range that knows its length.
// Such a range can hand out its end as a positioned cursor.
type SizedCommonRange[C any] interface {
	CommonRange[C]
	Sized
}

// ConstRange is implemented by ranges that can be walked through an immutable projection.
type ConstRange[CR any] interface {
	Const() CR
}

// Seq walks a range as an iter.Seq.
func Seq[T any, C Input[T], S Sentinel[C]](r Range[C, S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := r.End()
		for c := r.Begin(); !end.Reached(c); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Collect walks a range and gathers its values into a slice.
func Collect[T any, C Input[T], S Sentinel[C]](r Range[C, S]) []T {
	var vs = make([]T, 0)
	for v := range Seq[T](r) {
		vs = append(vs, v)
	}
	return vs
}

// Count walks a range and counts its elements.
//
// For Sized ranges use Len instead.
func Count[T any, C Input[T], S Sentinel[C]](r Range[C, S]) int {
	var n int
	end := r.End()
	for c := r.Begin(); !end.Reached(c); c.Next() {
		n++
	}
	return n
}
