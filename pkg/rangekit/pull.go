package rangekit

import (
	"bufio"
	"io"
	"iter"
)

// PullIter is a pull style source that knows nothing about positions.
// Pull turns it into a range: Next reports whether a value was read,
// Value returns the last one read, and Err tells why reading stopped early.
type PullIter[V any] interface {
	// Next reads the following value, and returns false once the source is exhausted or failed.
	Next() bool
	// Value must be repeatable without side effects.
	Value() V
	// Close releases what the source holds, sources without resources return nil.
	io.Closer
	Err() error
}

// Pull turns a PullIter into a single-pass input range.
//
// Every cursor of the range shares the same read position,
// so advancing one cursor advances all of them.
// Calling Begin again continues from where the previous cursor stopped.
func Pull[T any](itr PullIter[T]) *PullRange[T] {
	return &PullRange[T]{state: &pullState[T]{itr: itr}}
}

// Once returns a single-pass input range over an iter.Seq.
// Close must be called if the range is abandoned before its end is reached.
func Once[T any](seq iter.Seq[T]) *PullRange[T] {
	next, stop := iter.Pull(seq)
	return Pull[T](&seqIter[T]{next: next, stop: stop})
}

// Chan returns a single-pass input range that receives from a channel until it is closed.
func Chan[T any](ch <-chan T) *PullRange[T] {
	return Pull[T](&chanIter[T]{ch: ch})
}

// Lines returns a single-pass input range over the lines of a reader.
// Read errors are reported by the cursor's Err method.
func Lines(r io.Reader) *PullRange[string] {
	var closer io.Closer
	if c, ok := r.(io.Closer); ok {
		closer = c
	}
	return Pull[string](&lineIter{scanner: bufio.NewScanner(r), closer: closer})
}

type PullRange[T any] struct {
	state *pullState[T]
}

type pullState[T any] struct {
	itr     PullIter[T]
	started bool
	done    bool
	value   T
}

func (s *pullState[T]) advance() {
	if s.done {
		return
	}
	if !s.itr.Next() {
		s.done = true
		var zero T
		s.value = zero
		return
	}
	s.value = s.itr.Value()
}

func (r *PullRange[T]) Begin() *PullCursor[T] {
	if !r.state.started {
		r.state.started = true
		r.state.advance()
	}
	return &PullCursor[T]{state: r.state}
}

func (r *PullRange[T]) End() PullEnd[T] { return PullEnd[T]{} }

func (r *PullRange[T]) Close() error { return r.state.itr.Close() }

func (r *PullRange[T]) Traits() Traits { return Traits{Tier: InputTier} }

// PullCursor is an input cursor.
// It has no Clone, and it doesn't take part in the legacy category classification.
type PullCursor[T any] struct {
	state *pullState[T]
}

func (c *PullCursor[T]) Value() T { return c.state.value }

func (c *PullCursor[T]) Next() { c.state.advance() }

func (c *PullCursor[T]) Err() error { return c.state.itr.Err() }

func (c *PullCursor[T]) Concept() Tier { return InputTier }

// PullEnd is reached when the underlying iterator has no more values.
type PullEnd[T any] struct{}

func (PullEnd[T]) Reached(c *PullCursor[T]) bool { return c.state.done }

type seqIter[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
}

func (i *seqIter[T]) Next() bool {
	v, ok := i.next()
	if ok {
		i.value = v
	}
	return ok
}

func (i *seqIter[T]) Value() T { return i.value }

func (i *seqIter[T]) Err() error { return nil }

func (i *seqIter[T]) Close() error {
	i.stop()
	return nil
}

type chanIter[T any] struct {
	ch    <-chan T
	value T
}

func (i *chanIter[T]) Next() bool {
	v, ok := <-i.ch
	if ok {
		i.value = v
	}
	return ok
}

func (i *chanIter[T]) Value() T { return i.value }

func (i *chanIter[T]) Err() error { return nil }

func (i *chanIter[T]) Close() error { return nil }

// lineIter reads lines until the scanner stops.
// A scanner that failed once is not asked again.
type lineIter struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    string
}

func (i *lineIter) Next() bool {
	if i.scanner.Err() != nil || !i.scanner.Scan() {
		return false
	}
	i.line = i.scanner.Text()
	return true
}

func (i *lineIter) Value() string { return i.line }

func (i *lineIter) Err() error { return i.scanner.Err() }

func (i *lineIter) Close() error {
	if i.closer == nil {
		return nil
	}
	return i.closer.Close()
}
