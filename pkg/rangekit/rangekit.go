// Package rangekit provides position-based sequences.
//
// # Summary
//
// Where iter.Seq gives you a push style, single entry sequence,
// a rangekit Range gives you a pair of positions: a cursor that points at the first element,
// and an end marker that tells when the cursor walked past the last one.
// Cursors come in four tiers, each one a strict superset of the previous:
//
//	Input         -> Value, Next
//	Forward       -> + Clone, Equal (multi-pass)
//	Bidirectional -> + Prev
//	RandomAccess  -> + Advance, Distance, Compare
//
// An adaptor that wraps a cursor should expose exactly the tier of the wrapped cursor.
// Operations that the wrapped cursor can't support are simply not part of the narrower type,
// so a misuse is a compile error and not a runtime surprise.
//
// The end of a Range is either a Sentinel, or in the case of a common range, a cursor of the same type.
// Every cursor that serves as the end of a common range also implements Sentinel for its own type,
// so common ranges can be used wherever a Sentinel terminated range is expected.
//
// # Resources
//
// https://en.cppreference.com/w/cpp/iterator
// https://en.wikipedia.org/wiki/Iterator_pattern
package rangekit

import "reflect"

// Tier is the traversal category of a cursor.
type Tier int

const (
	InputTier Tier = iota + 1
	ForwardTier
	BidirectionalTier
	RandomAccessTier
)

func (t Tier) String() string {
	switch t {
	case InputTier:
		return "input"
	case ForwardTier:
		return "forward"
	case BidirectionalTier:
		return "bidirectional"
	case RandomAccessTier:
		return "random-access"
	default:
		return "unknown"
	}
}

// AtLeast reports whether t supports every operation of the oth tier.
func (t Tier) AtLeast(oth Tier) bool { return oth <= t }

// Traits summarise what a range can do.
type Traits struct {
	// Tier is the traversal category of the range's cursor.
	Tier Tier
	// Common is true when the end of the range is a cursor of the same type as its beginning.
	Common bool
	// Sized is true when the length of the range is known without walking it.
	Sized bool
}

type traitful interface{ Traits() Traits }

// TraitsOf returns the Traits of a range.
// Ranges that describe themselves are trusted,
// otherwise only the Sized trait can be observed from the outside.
func TraitsOf(r any) Traits {
	if tr, ok := r.(traitful); ok {
		return tr.Traits()
	}
	_, sized := r.(Sized)
	return Traits{Sized: sized}
}

// TierOf tells the traversal category of a cursor value.
// Cursors that implement Conceptual are asked directly,
// the rest is classified by the presence of the tier specific methods.
// Clone and Equal are looked up by name, since their signatures depend on the cursor type.
func TierOf(cursor any) Tier {
	if c, ok := cursor.(Conceptual); ok {
		return c.Concept()
	}
	typ := reflect.TypeOf(cursor)
	if typ == nil {
		return 0
	}
	has := func(names ...string) bool {
		for _, name := range names {
			if _, ok := typ.MethodByName(name); !ok {
				return false
			}
		}
		return true
	}
	switch {
	case !has("Value", "Next"):
		return 0
	case !has("Clone", "Equal"):
		return InputTier
	case !has("Prev"):
		return ForwardTier
	case !has("Advance", "Distance", "Compare"):
		return BidirectionalTier
	default:
		return RandomAccessTier
	}
}

// CategoryOf returns the legacy category of a cursor.
// The second return value is false when the cursor doesn't participate in the legacy classification.
// A zero Category is treated as not categorized, which lets wrapper cursors forward the category of what they wrap.
func CategoryOf(cursor any) (Tier, bool) {
	c, ok := cursor.(Categorized)
	if !ok {
		return 0, false
	}
	tier := c.Category()
	return tier, tier != 0
}
