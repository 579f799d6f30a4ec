// Package facade
// Author: momentics <momentics@gmail.com>
//
// AnyCollection: the forward-collection capability level.

package facade

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/internal/box"
)

// AnyCollection is a type-erased forward collection of E.
type AnyCollection[E any] struct {
	b box.Collection[E]
}

// Collection erases c at the forward-collection level.
func Collection[E, I any](c api.Collection[E, I]) AnyCollection[E] {
	return AnyCollection[E]{b: box.NewCollection(c)}
}

func wrapColl[E any](b box.Sequence[E]) AnyCollection[E] {
	return AnyCollection[E]{b: b.(box.Collection[E])}
}

// Capability names the level of this wrapper.
func (AnyCollection[E]) Capability() string { return "collection" }

// Iterate obtains a fresh type-erased iterator.
func (c AnyCollection[E]) Iterate() api.Iterator[E] { return c.b.Iterate() }

// Underestimate is an O(1), possibly pessimistic lower count bound.
func (c AnyCollection[E]) Underestimate() int { return c.b.Underestimate() }

// ContainsFast consults the wrapped container's membership shortcut.
func (c AnyCollection[E]) ContainsFast(e E) (ok, known bool) { return c.b.ContainsFast(e) }

// CountFast consults the wrapped container's exact-count shortcut.
func (c AnyCollection[E]) CountFast() (n int, known bool) { return c.b.CountFast() }

// ForEach applies fn to every element in iteration order.
func (c AnyCollection[E]) ForEach(fn func(E)) { c.b.ForEach(fn) }

// CopyInto bulk-copies into dst and returns the count written plus an
// iterator over the unconsumed remainder.
func (c AnyCollection[E]) CopyInto(dst []E) (int, api.Iterator[E]) { return c.b.CopyInto(dst) }

// StartIndex returns the erased position of the first element.
func (c AnyCollection[E]) StartIndex() Index { return c.b.Start() }

// EndIndex returns the erased past-the-end sentinel.
func (c AnyCollection[E]) EndIndex() Index { return c.b.End() }

// At reads the element at i. Fatal if i did not originate from this
// collection's concrete index type.
func (c AnyCollection[E]) At(i Index) E { return c.b.At(i) }

// IndexAfter returns the position following i.
func (c AnyCollection[E]) IndexAfter(i Index) Index { return c.b.After(i) }

// FormIndexAfter advances i in place. The pointer must be the exclusive
// reference to the index value; under that contract the rewrite avoids a
// fresh allocation and is observably identical to i = IndexAfter(*i).
func (c AnyCollection[E]) FormIndexAfter(i *Index) { c.b.FormAfter(i) }

// AdvanceIndex moves i by n positions, stopping at limit when one is
// given; the second result reports whether all n steps completed. Negative
// n requires bidirectional capability.
func (c AnyCollection[E]) AdvanceIndex(i Index, n int, limit *Index) (Index, bool) {
	return c.b.Advance(i, n, limit)
}

// Distance counts positions from a to b.
func (c AnyCollection[E]) Distance(a, b Index) int { return c.b.Distance(a, b) }

// Count returns the exact element count. O(n) at this level, O(1) when the
// box carries random-access capability or an exact-count shortcut.
func (c AnyCollection[E]) Count() int { return c.b.Count() }

// First returns the first element, absent when empty.
func (c AnyCollection[E]) First() (E, bool) { return c.b.First() }

// IsEmpty reports whether the collection has no elements.
func (c AnyCollection[E]) IsEmpty() bool { return c.b.Start().Equal(c.b.End()) }

// SubRange wraps the half-open range [a, b) without copying.
func (c AnyCollection[E]) SubRange(a, b Index) AnyCollection[E] {
	return AnyCollection[E]{b: c.b.SubRange(a, b)}
}

// DropFirst returns the collection without the first n elements. O(1)
// element copies: the result is a sub-range view.
func (c AnyCollection[E]) DropFirst(n int) AnyCollection[E] { return wrapColl(c.b.DropFirst(n)) }

// DropLast returns the collection without the final n elements.
func (c AnyCollection[E]) DropLast(n int) AnyCollection[E] { return wrapColl(c.b.DropLast(n)) }

// DropWhile returns the collection without the leading elements satisfying
// pred.
func (c AnyCollection[E]) DropWhile(pred func(E) bool) AnyCollection[E] {
	return wrapColl(c.b.DropWhile(pred))
}

// Prefix returns at most the first n elements as a sub-range view.
func (c AnyCollection[E]) Prefix(n int) AnyCollection[E] { return wrapColl(c.b.Prefix(n)) }

// PrefixWhile returns the leading elements satisfying pred.
func (c AnyCollection[E]) PrefixWhile(pred func(E) bool) AnyCollection[E] {
	return wrapColl(c.b.PrefixWhile(pred))
}

// Suffix returns at most the final n elements as a sub-range view.
func (c AnyCollection[E]) Suffix(n int) AnyCollection[E] { return wrapColl(c.b.Suffix(n)) }

// Split partitions on separator elements into sub-range views.
func (c AnyCollection[E]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []AnyCollection[E] {
	parts := c.b.Split(maxSplits, omitEmpty, isSep)
	out := make([]AnyCollection[E], len(parts))
	for i, p := range parts {
		out[i] = wrapColl(p)
	}
	return out
}

// AsSequence downgrades to the single-pass level, reusing the box.
func (c AnyCollection[E]) AsSequence() AnySequence[E] { return AnySequence[E]{b: c.b} }

// ToBidirectional upgrades when the box carries bidirectional capability.
func (c AnyCollection[E]) ToBidirectional() (AnyBidirectionalCollection[E], bool) {
	if bb, ok := c.b.(box.Bidirectional[E]); ok {
		return AnyBidirectionalCollection[E]{b: bb}, true
	}
	return AnyBidirectionalCollection[E]{}, false
}

// ToRandomAccess upgrades when the box carries random-access capability.
func (c AnyCollection[E]) ToRandomAccess() (AnyRandomAccessCollection[E], bool) {
	if rb, ok := c.b.(box.RandomAccess[E]); ok {
		return AnyRandomAccessCollection[E]{b: rb}, true
	}
	return AnyRandomAccessCollection[E]{}, false
}
