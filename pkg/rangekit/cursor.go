package rangekit

// Input is the minimal cursor.
// Value must be repeatable without side effects,
// Next moves the cursor to the following element.
// Copies of an Input cursor may share state,
// advancing one of them can invalidate all the others.
type Input[T any] interface {
	Value() T
	Next()
}

// Forward is a multi-pass cursor.
// A Clone walks independently of the original,
// and two cursors over the same range are Equal when they point to the same position.
type Forward[T any, C any] interface {
	Input[T]
	Clone() C
	Equal(C) bool
}

type Bidirectional[T any, C any] interface {
	Forward[T, C]
	Prev()
}

// RandomAccess cursors jump in constant time.
// Distance returns the signed element count between the receiver and the argument (receiver - argument),
// and Compare orders them the same way as cmp.Compare would do for their positions.
type RandomAccess[T any, C any] interface {
	Bidirectional[T, C]
	Advance(n int)
	Distance(C) int
	Compare(C) int
}

// Sentinel marks the end of a range.
type Sentinel[C any] interface {
	Reached(C) bool
}

// SizedSentinel is a Sentinel which knows how many elements are left until it is reached.
type SizedSentinel[C any] interface {
	Sentinel[C]
	// Remaining returns the end position minus the cursor's position.
	Remaining(C) int
}

// Conceptual cursors report their own tier.
type Conceptual interface {
	Concept() Tier
}

// Categorized cursors take part in the legacy single-pass/multi-pass classification.
type Categorized interface {
	Category() Tier
}

// Mover cursors can hand over the current element,
// leaving their source in a moved-from (zero) state.
type Mover[T any] interface {
	Move() T
}

// Failer is implemented by cursors over sources that can fail while they are being walked.
type Failer interface {
	Err() error
}

// ConstConverter converts a mutable cursor or sentinel into its immutable counterpart.
type ConstConverter[CC any] interface {
	Const() CC
}
