// Package api
// Author: momentics <momentics@gmail.com>
//
// Forward, bidirectional and random-access collection contracts.
//
// Each level is a strict superset of the previous one. The index type I is
// the container's own concrete position type; the erasure core boxes it, so
// it never leaks into the public wrapper surface.

package api

// Collection is the forward-traversal contract. The container exposes a
// total, well-ordered index space delimited by the Start and End sentinels
// (half-open: End addresses no element).
//
// Preconditions on At, After and SubRange arguments (index in range,
// from <= to) are the container's own; this layer forwards positions it
// obtained from the container and never manufactures them.
type Collection[E, I any] interface {
	Sequence[E]

	// Start returns the position of the first element (== End when empty).
	Start() I

	// End returns the past-the-end sentinel.
	End() I

	// At returns the element at position i. i must be a valid element
	// position obtained from this container (not End).
	At(i I) E

	// After returns the position following i.
	After(i I) I

	// Compare orders two positions: negative when a precedes b, zero when
	// equal, positive when a follows b.
	Compare(a, b I) int

	// SubRange returns a view over the half-open range [from, to). The view
	// must be O(1), share the underlying storage, keep positions from the
	// parent meaningful, and carry the same capability level as the parent.
	SubRange(from, to I) Collection[E, I]
}

// Bidirectional adds reverse stepping to Collection.
type Bidirectional[E, I any] interface {
	Collection[E, I]

	// Before returns the position preceding i. i must not be Start.
	Before(i I) I
}

// RandomAccess certifies O(1) index arithmetic on top of Bidirectional.
// The level adds the two arithmetic operations whose constant cost it
// promises; everything else is a capability marker consumed by upgrade
// conversions.
type RandomAccess[E, I any] interface {
	Bidirectional[E, I]

	// Distance returns the number of After steps from a to b, negative when
	// b precedes a. O(1).
	Distance(a, b I) int

	// Advance returns i moved by n positions (n may be negative). O(1).
	// The result must stay within [Start, End].
	Advance(i I, n int) I
}
