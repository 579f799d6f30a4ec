// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Ordered string collection with a digest-indexed membership shortcut.
// This is the one adapter that supplies real answers to the optional
// accelerator hints; everything else reports "unknown" and behaves
// identically, just slower.

package adapters

import (
	"cmp"

	"github.com/cespare/xxhash/v2"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// HashedStrings is an immutable, ordered collection of strings carrying an
// xxhash digest index. Positional reads are O(1); membership tests are O(1)
// amortized through the index, with digest collisions resolved by direct
// comparison.
type HashedStrings struct {
	items   []string
	digests map[uint64][]int
}

// NewHashedStrings indexes items in the given order.
func NewHashedStrings(items ...string) *HashedStrings {
	h := &HashedStrings{
		items:   items,
		digests: make(map[uint64][]int, len(items)),
	}
	for i, s := range items {
		d := xxhash.Sum64String(s)
		h.digests[d] = append(h.digests[d], i)
	}
	return h
}

// Strings erases a fresh HashedStrings behind a random-access wrapper.
func Strings(items ...string) facade.AnyRandomAccessCollection[string] {
	return facade.RandomAccess[string, int](NewHashedStrings(items...))
}

func (h *HashedStrings) Iterate() api.Iterator[string] {
	i := 0
	return api.IteratorFunc[string](func() (string, bool) {
		if i >= len(h.items) {
			return "", false
		}
		s := h.items[i]
		i++
		return s, true
	})
}

func (h *HashedStrings) Underestimate() int { return len(h.items) }

// CountFast answers the exact-count hint.
func (h *HashedStrings) CountFast() (int, bool) { return len(h.items), true }

// ContainsFast answers the membership hint through the digest index. The
// answer is always known for this adapter.
func (h *HashedStrings) ContainsFast(s string) (bool, bool) {
	for _, i := range h.digests[xxhash.Sum64String(s)] {
		if h.items[i] == s {
			return true, true
		}
	}
	return false, true
}

func (h *HashedStrings) Start() int            { return 0 }
func (h *HashedStrings) End() int              { return len(h.items) }
func (h *HashedStrings) At(i int) string       { return h.items[i] }
func (h *HashedStrings) After(i int) int       { return i + 1 }
func (h *HashedStrings) Before(i int) int      { return i - 1 }
func (h *HashedStrings) Compare(a, b int) int  { return cmp.Compare(a, b) }
func (h *HashedStrings) Distance(a, b int) int { return b - a }
func (h *HashedStrings) Advance(i, n int) int  { return i + n }

// SubRange drops the digest index: it covers the whole collection, so a
// partial view must not answer membership hints with it.
func (h *HashedStrings) SubRange(from, to int) api.Collection[string, int] {
	return intView[string]{at: func(i int) string { return h.items[i] }, lo: from, hi: to}
}
