// Package facade
// Author: momentics <momentics@gmail.com>
//
// AnyBidirectionalCollection: adds reverse traversal.

package facade

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/internal/box"
)

// AnyBidirectionalCollection is a type-erased bidirectional collection of E.
type AnyBidirectionalCollection[E any] struct {
	b box.Bidirectional[E]
}

// Bidirectional erases c at the bidirectional level.
func Bidirectional[E, I any](c api.Bidirectional[E, I]) AnyBidirectionalCollection[E] {
	return AnyBidirectionalCollection[E]{b: box.NewBidirectional(c)}
}

func wrapBidi[E any](b box.Sequence[E]) AnyBidirectionalCollection[E] {
	return AnyBidirectionalCollection[E]{b: b.(box.Bidirectional[E])}
}

// Capability names the level of this wrapper.
func (AnyBidirectionalCollection[E]) Capability() string { return "bidirectional" }

// Iterate obtains a fresh type-erased iterator.
func (c AnyBidirectionalCollection[E]) Iterate() api.Iterator[E] { return c.b.Iterate() }

// Underestimate is an O(1), possibly pessimistic lower count bound.
func (c AnyBidirectionalCollection[E]) Underestimate() int { return c.b.Underestimate() }

// ContainsFast consults the wrapped container's membership shortcut.
func (c AnyBidirectionalCollection[E]) ContainsFast(e E) (ok, known bool) {
	return c.b.ContainsFast(e)
}

// CountFast consults the wrapped container's exact-count shortcut.
func (c AnyBidirectionalCollection[E]) CountFast() (n int, known bool) { return c.b.CountFast() }

// ForEach applies fn to every element in iteration order.
func (c AnyBidirectionalCollection[E]) ForEach(fn func(E)) { c.b.ForEach(fn) }

// CopyInto bulk-copies into dst and returns the count written plus an
// iterator over the unconsumed remainder.
func (c AnyBidirectionalCollection[E]) CopyInto(dst []E) (int, api.Iterator[E]) {
	return c.b.CopyInto(dst)
}

// StartIndex returns the erased position of the first element.
func (c AnyBidirectionalCollection[E]) StartIndex() Index { return c.b.Start() }

// EndIndex returns the erased past-the-end sentinel.
func (c AnyBidirectionalCollection[E]) EndIndex() Index { return c.b.End() }

// At reads the element at i.
func (c AnyBidirectionalCollection[E]) At(i Index) E { return c.b.At(i) }

// IndexAfter returns the position following i.
func (c AnyBidirectionalCollection[E]) IndexAfter(i Index) Index { return c.b.After(i) }

// IndexBefore returns the position preceding i.
func (c AnyBidirectionalCollection[E]) IndexBefore(i Index) Index { return c.b.Before(i) }

// FormIndexAfter advances i in place; same exclusive-ownership contract as
// AnyCollection.FormIndexAfter.
func (c AnyBidirectionalCollection[E]) FormIndexAfter(i *Index) { c.b.FormAfter(i) }

// FormIndexBefore steps i back in place; same ownership contract.
func (c AnyBidirectionalCollection[E]) FormIndexBefore(i *Index) { c.b.FormBefore(i) }

// AdvanceIndex moves i by n positions in either direction, stopping at
// limit when one is given.
func (c AnyBidirectionalCollection[E]) AdvanceIndex(i Index, n int, limit *Index) (Index, bool) {
	return c.b.Advance(i, n, limit)
}

// Distance counts positions from a to b.
func (c AnyBidirectionalCollection[E]) Distance(a, b Index) int { return c.b.Distance(a, b) }

// Count returns the exact element count.
func (c AnyBidirectionalCollection[E]) Count() int { return c.b.Count() }

// First returns the first element, absent when empty.
func (c AnyBidirectionalCollection[E]) First() (E, bool) { return c.b.First() }

// Last returns the last element, absent when empty.
func (c AnyBidirectionalCollection[E]) Last() (E, bool) { return c.b.Last() }

// IsEmpty reports whether the collection has no elements.
func (c AnyBidirectionalCollection[E]) IsEmpty() bool { return c.b.Start().Equal(c.b.End()) }

// SubRange wraps the half-open range [a, b) without copying.
func (c AnyBidirectionalCollection[E]) SubRange(a, b Index) AnyBidirectionalCollection[E] {
	return wrapBidi[E](c.b.SubRange(a, b))
}

// DropFirst returns the collection without the first n elements.
func (c AnyBidirectionalCollection[E]) DropFirst(n int) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.DropFirst(n))
}

// DropLast returns the collection without the final n elements. Exact at
// this level: no buffering, a sub-range view.
func (c AnyBidirectionalCollection[E]) DropLast(n int) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.DropLast(n))
}

// DropWhile returns the collection without the leading elements satisfying
// pred.
func (c AnyBidirectionalCollection[E]) DropWhile(pred func(E) bool) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.DropWhile(pred))
}

// Prefix returns at most the first n elements as a sub-range view.
func (c AnyBidirectionalCollection[E]) Prefix(n int) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.Prefix(n))
}

// PrefixWhile returns the leading elements satisfying pred.
func (c AnyBidirectionalCollection[E]) PrefixWhile(pred func(E) bool) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.PrefixWhile(pred))
}

// Suffix returns at most the final n elements as a sub-range view.
func (c AnyBidirectionalCollection[E]) Suffix(n int) AnyBidirectionalCollection[E] {
	return wrapBidi(c.b.Suffix(n))
}

// Split partitions on separator elements into sub-range views.
func (c AnyBidirectionalCollection[E]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []AnyBidirectionalCollection[E] {
	parts := c.b.Split(maxSplits, omitEmpty, isSep)
	out := make([]AnyBidirectionalCollection[E], len(parts))
	for i, p := range parts {
		out[i] = wrapBidi(p)
	}
	return out
}

// AsSequence downgrades to the single-pass level, reusing the box.
func (c AnyBidirectionalCollection[E]) AsSequence() AnySequence[E] { return AnySequence[E]{b: c.b} }

// AsCollection downgrades to the forward level, reusing the box.
func (c AnyBidirectionalCollection[E]) AsCollection() AnyCollection[E] {
	return AnyCollection[E]{b: c.b}
}

// ToRandomAccess upgrades when the box carries random-access capability.
func (c AnyBidirectionalCollection[E]) ToRandomAccess() (AnyRandomAccessCollection[E], bool) {
	if rb, ok := c.b.(box.RandomAccess[E]); ok {
		return AnyRandomAccessCollection[E]{b: rb}, true
	}
	return AnyRandomAccessCollection[E]{}, false
}
