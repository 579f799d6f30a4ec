// File: pool/collect.go
// Author: momentics <momentics@gmail.com>
//
// Iterator materialization through pooled slabs.

package pool

import (
	"github.com/momentics/anycoll/api"
)

// Collect drains it into a single slice. sizeHint is a lower bound on the
// element count (zero when unknown) and sizes the initial allocation; when
// the hint is exceeded, the overflow is staged through pooled slabs and
// merged in one final copy.
func Collect[E any](it api.Iterator[E], sizeHint int) []E {
	if sizeHint < 0 {
		sizeHint = 0
	}
	out := make([]E, 0, sizeHint)

	// Fast path: the hint was exact or generous.
	for len(out) < cap(out) {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
	first, ok := it.Next()
	if !ok {
		return out
	}

	sp := For[E]()
	var slabs []*Slab[E]
	slab := sp.Get()
	slab.buf = append(slab.buf, first)
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		if len(slab.buf) == cap(slab.buf) {
			slabs = append(slabs, slab)
			slab = sp.Get()
		}
		slab.buf = append(slab.buf, e)
	}
	slabs = append(slabs, slab)

	total := len(out)
	for _, s := range slabs {
		total += len(s.buf)
	}
	final := make([]E, 0, total)
	final = append(final, out...)
	for _, s := range slabs {
		final = append(final, s.buf...)
		sp.Put(s)
	}
	return final
}
