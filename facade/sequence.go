// Package facade
// Author: momentics <momentics@gmail.com>
//
// AnySequence: the single-pass capability level.

package facade

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/internal/box"
)

// AnySequence is a type-erased single-pass sequence of E.
type AnySequence[E any] struct {
	b box.Sequence[E]
}

// Sequence erases c at the single-pass level.
func Sequence[E any](c api.Sequence[E]) AnySequence[E] {
	return AnySequence[E]{b: box.NewSequence(c)}
}

// SequenceFunc erases a "produce next or absent" closure. The closure owns
// the sticky-exhaustion contract; each Iterate call continues the same
// underlying stream.
func SequenceFunc[E any](next func() (E, bool)) AnySequence[E] {
	return Sequence[E](closureSeq[E](next))
}

type closureSeq[E any] func() (E, bool)

func (c closureSeq[E]) Iterate() api.Iterator[E] { return api.IteratorFunc[E](c) }

func wrapSeq[E any](b box.Sequence[E]) AnySequence[E] { return AnySequence[E]{b: b} }

// Capability names the level of this wrapper.
func (AnySequence[E]) Capability() string { return "sequence" }

// Iterate obtains a fresh type-erased iterator.
func (s AnySequence[E]) Iterate() api.Iterator[E] { return s.b.Iterate() }

// Underestimate is an O(1), possibly pessimistic lower count bound.
func (s AnySequence[E]) Underestimate() int { return s.b.Underestimate() }

// ContainsFast consults the wrapped container's membership shortcut.
func (s AnySequence[E]) ContainsFast(e E) (ok, known bool) { return s.b.ContainsFast(e) }

// CountFast consults the wrapped container's exact-count shortcut.
func (s AnySequence[E]) CountFast() (n int, known bool) { return s.b.CountFast() }

// ForEach applies fn to every element in iteration order.
func (s AnySequence[E]) ForEach(fn func(E)) { s.b.ForEach(fn) }

// CopyInto bulk-copies into dst and returns the count written plus an
// iterator over the unconsumed remainder.
func (s AnySequence[E]) CopyInto(dst []E) (int, api.Iterator[E]) { return s.b.CopyInto(dst) }

// DropFirst returns a sequence without the first n elements. n must be
// non-negative.
func (s AnySequence[E]) DropFirst(n int) AnySequence[E] { return wrapSeq(s.b.DropFirst(n)) }

// DropLast returns a sequence without the final n elements. n must be
// non-negative. The view buffers up to n elements during iteration.
func (s AnySequence[E]) DropLast(n int) AnySequence[E] { return wrapSeq(s.b.DropLast(n)) }

// DropWhile returns a sequence without the leading elements satisfying
// pred.
func (s AnySequence[E]) DropWhile(pred func(E) bool) AnySequence[E] {
	return wrapSeq(s.b.DropWhile(pred))
}

// Prefix returns a sequence of at most the first n elements. n must be
// non-negative.
func (s AnySequence[E]) Prefix(n int) AnySequence[E] { return wrapSeq(s.b.Prefix(n)) }

// PrefixWhile returns the leading elements satisfying pred.
func (s AnySequence[E]) PrefixWhile(pred func(E) bool) AnySequence[E] {
	return wrapSeq(s.b.PrefixWhile(pred))
}

// Suffix returns a sequence of at most the final n elements. n must be
// non-negative. The view buffers up to n elements.
func (s AnySequence[E]) Suffix(n int) AnySequence[E] { return wrapSeq(s.b.Suffix(n)) }

// Split partitions on separator elements; separators appear in no sub-
// sequence. maxSplits caps the number of separations; omitEmpty drops empty
// sub-sequences.
func (s AnySequence[E]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []AnySequence[E] {
	parts := s.b.Split(maxSplits, omitEmpty, isSep)
	out := make([]AnySequence[E], len(parts))
	for i, p := range parts {
		out[i] = wrapSeq(p)
	}
	return out
}

// ToCollection upgrades to the forward-collection level. Succeeds in O(1),
// reusing the box, only when the underlying box actually carries collection
// capability (for example, the sequence was downgraded from a collection
// wrapper); otherwise reports false.
func (s AnySequence[E]) ToCollection() (AnyCollection[E], bool) {
	if cb, ok := s.b.(box.Collection[E]); ok {
		return AnyCollection[E]{b: cb}, true
	}
	return AnyCollection[E]{}, false
}
