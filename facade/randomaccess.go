// Package facade
// Author: momentics <momentics@gmail.com>
//
// AnyRandomAccessCollection: certifies O(1) index arithmetic.

package facade

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/internal/box"
)

// AnyRandomAccessCollection is a type-erased random-access collection of E.
// Count, Distance and AdvanceIndex are O(1) here; that promise is the whole
// point of the level.
type AnyRandomAccessCollection[E any] struct {
	b box.RandomAccess[E]
}

// RandomAccess erases c at the random-access level.
func RandomAccess[E, I any](c api.RandomAccess[E, I]) AnyRandomAccessCollection[E] {
	return AnyRandomAccessCollection[E]{b: box.NewRandomAccess(c)}
}

func wrapRand[E any](b box.Sequence[E]) AnyRandomAccessCollection[E] {
	return AnyRandomAccessCollection[E]{b: b.(box.RandomAccess[E])}
}

// Capability names the level of this wrapper.
func (AnyRandomAccessCollection[E]) Capability() string { return "random-access" }

// Iterate obtains a fresh type-erased iterator.
func (c AnyRandomAccessCollection[E]) Iterate() api.Iterator[E] { return c.b.Iterate() }

// Underestimate equals Count at this level.
func (c AnyRandomAccessCollection[E]) Underestimate() int { return c.b.Underestimate() }

// ContainsFast consults the wrapped container's membership shortcut.
func (c AnyRandomAccessCollection[E]) ContainsFast(e E) (ok, known bool) {
	return c.b.ContainsFast(e)
}

// CountFast consults the wrapped container's exact-count shortcut.
func (c AnyRandomAccessCollection[E]) CountFast() (n int, known bool) { return c.b.CountFast() }

// ForEach applies fn to every element in iteration order.
func (c AnyRandomAccessCollection[E]) ForEach(fn func(E)) { c.b.ForEach(fn) }

// CopyInto bulk-copies into dst and returns the count written plus an
// iterator over the unconsumed remainder.
func (c AnyRandomAccessCollection[E]) CopyInto(dst []E) (int, api.Iterator[E]) {
	return c.b.CopyInto(dst)
}

// StartIndex returns the erased position of the first element.
func (c AnyRandomAccessCollection[E]) StartIndex() Index { return c.b.Start() }

// EndIndex returns the erased past-the-end sentinel.
func (c AnyRandomAccessCollection[E]) EndIndex() Index { return c.b.End() }

// At reads the element at i.
func (c AnyRandomAccessCollection[E]) At(i Index) E { return c.b.At(i) }

// IndexAfter returns the position following i.
func (c AnyRandomAccessCollection[E]) IndexAfter(i Index) Index { return c.b.After(i) }

// IndexBefore returns the position preceding i.
func (c AnyRandomAccessCollection[E]) IndexBefore(i Index) Index { return c.b.Before(i) }

// FormIndexAfter advances i in place; exclusive-ownership contract.
func (c AnyRandomAccessCollection[E]) FormIndexAfter(i *Index) { c.b.FormAfter(i) }

// FormIndexBefore steps i back in place; exclusive-ownership contract.
func (c AnyRandomAccessCollection[E]) FormIndexBefore(i *Index) { c.b.FormBefore(i) }

// AdvanceIndex moves i by n positions in O(1), stopping at limit when one
// is given.
func (c AnyRandomAccessCollection[E]) AdvanceIndex(i Index, n int, limit *Index) (Index, bool) {
	return c.b.Advance(i, n, limit)
}

// Distance returns the signed position count from a to b in O(1).
func (c AnyRandomAccessCollection[E]) Distance(a, b Index) int { return c.b.Distance(a, b) }

// Count returns the exact element count in O(1).
func (c AnyRandomAccessCollection[E]) Count() int { return c.b.Count() }

// First returns the first element, absent when empty.
func (c AnyRandomAccessCollection[E]) First() (E, bool) { return c.b.First() }

// Last returns the last element, absent when empty.
func (c AnyRandomAccessCollection[E]) Last() (E, bool) { return c.b.Last() }

// IsEmpty reports whether the collection has no elements.
func (c AnyRandomAccessCollection[E]) IsEmpty() bool { return c.b.Start().Equal(c.b.End()) }

// SubRange wraps the half-open range [a, b) without copying.
func (c AnyRandomAccessCollection[E]) SubRange(a, b Index) AnyRandomAccessCollection[E] {
	return wrapRand[E](c.b.SubRange(a, b))
}

// DropFirst returns the collection without the first n elements, O(1).
func (c AnyRandomAccessCollection[E]) DropFirst(n int) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.DropFirst(n))
}

// DropLast returns the collection without the final n elements, O(1).
func (c AnyRandomAccessCollection[E]) DropLast(n int) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.DropLast(n))
}

// DropWhile returns the collection without the leading elements satisfying
// pred.
func (c AnyRandomAccessCollection[E]) DropWhile(pred func(E) bool) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.DropWhile(pred))
}

// Prefix returns at most the first n elements, O(1).
func (c AnyRandomAccessCollection[E]) Prefix(n int) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.Prefix(n))
}

// PrefixWhile returns the leading elements satisfying pred.
func (c AnyRandomAccessCollection[E]) PrefixWhile(pred func(E) bool) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.PrefixWhile(pred))
}

// Suffix returns at most the final n elements, O(1).
func (c AnyRandomAccessCollection[E]) Suffix(n int) AnyRandomAccessCollection[E] {
	return wrapRand(c.b.Suffix(n))
}

// Split partitions on separator elements into sub-range views.
func (c AnyRandomAccessCollection[E]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []AnyRandomAccessCollection[E] {
	parts := c.b.Split(maxSplits, omitEmpty, isSep)
	out := make([]AnyRandomAccessCollection[E], len(parts))
	for i, p := range parts {
		out[i] = wrapRand(p)
	}
	return out
}

// AsSequence downgrades to the single-pass level, reusing the box.
func (c AnyRandomAccessCollection[E]) AsSequence() AnySequence[E] { return AnySequence[E]{b: c.b} }

// AsCollection downgrades to the forward level, reusing the box.
func (c AnyRandomAccessCollection[E]) AsCollection() AnyCollection[E] {
	return AnyCollection[E]{b: c.b}
}

// AsBidirectional downgrades to the bidirectional level, reusing the box.
func (c AnyRandomAccessCollection[E]) AsBidirectional() AnyBidirectionalCollection[E] {
	return AnyBidirectionalCollection[E]{b: c.b}
}
