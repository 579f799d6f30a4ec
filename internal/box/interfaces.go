// Package box
// Author: momentics <momentics@gmail.com>
//
// The erased capability lattice. Sequence ⊂ Collection ⊂ Bidirectional ⊂
// RandomAccess: a box of any level serves anywhere a lower level is
// expected. Structural operations return a box of the caller's own level;
// the static return type is Sequence, the dynamic type carries the real
// capability and is re-asserted by the wrapper layer.

package box

import "github.com/momentics/anycoll/api"

// Sequence is the erased operation set shared by all capability levels.
type Sequence[E any] interface {
	// Iterate obtains a fresh type-erased iterator.
	Iterate() api.Iterator[E]

	// Underestimate is an O(1), possibly pessimistic lower element-count
	// bound.
	Underestimate() int

	// ContainsFast consults the container's membership shortcut; known is
	// false when no shortcut exists.
	ContainsFast(e E) (ok, known bool)

	// CountFast consults the container's exact-count shortcut; known is
	// false when no shortcut exists.
	CountFast() (n int, known bool)

	// ForEach applies fn to every element in iteration order.
	ForEach(fn func(E))

	// CopyInto bulk-copies into dst, in iteration order, stopping at
	// min(remaining, len(dst)). Returns the number written and an iterator
	// over the unconsumed remainder.
	CopyInto(dst []E) (int, api.Iterator[E])

	// Structural operations. Each wraps the corresponding sub-range of the
	// original container in a fresh box of the same capability level.
	DropFirst(n int) Sequence[E]
	DropLast(n int) Sequence[E]
	DropWhile(pred func(E) bool) Sequence[E]
	Prefix(n int) Sequence[E]
	PrefixWhile(pred func(E) bool) Sequence[E]
	Suffix(n int) Sequence[E]

	// Split partitions on separator elements (separators are not part of
	// any sub-box). At most maxSplits separations are performed; the
	// remainder lands in the final sub-box.
	Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []Sequence[E]
}

// Collection adds position-addressable forward traversal.
type Collection[E any] interface {
	Sequence[E]

	// Start and End return the pre-boxed boundary positions computed once
	// at wrap time.
	Start() Index
	End() Index

	// At reads the element at i. Fatal if i's runtime identity does not
	// match the container's index type.
	At(i Index) E

	// After returns the position following i.
	After(i Index) Index

	// FormAfter is the mutating fast path of After: it rewrites the boxed
	// position through a caller-owned, unaliased pointer instead of
	// allocating. Result equals After(*i) observably.
	FormAfter(i *Index)

	// Advance moves i by n positions. With a nil limit, overrunning a
	// boundary is fatal. With a limit, the walk stops there and the second
	// result reports whether all n steps completed.
	Advance(i Index, n int, limit *Index) (Index, bool)

	// Distance counts After steps from a to b. Below RandomAccess, b must
	// not precede a.
	Distance(a, b Index) int

	// Count returns the exact element count.
	Count() int

	// First returns the first element, absent when empty.
	First() (E, bool)

	// SubRange wraps the half-open range [a, b) in a fresh same-level box.
	SubRange(a, b Index) Collection[E]
}

// Bidirectional adds reverse stepping.
type Bidirectional[E any] interface {
	Collection[E]

	// Before returns the position preceding i. i must not be Start.
	Before(i Index) Index

	// FormBefore is the mutating counterpart of Before; same ownership
	// contract as FormAfter.
	FormBefore(i *Index)

	// Last returns the last element, absent when empty.
	Last() (E, bool)
}

// RandomAccess is the O(1) index-arithmetic capability marker. It adds no
// operations; upgrade conversions probe for it.
type RandomAccess[E any] interface {
	Bidirectional[E]

	randomAccessMarker()
}
