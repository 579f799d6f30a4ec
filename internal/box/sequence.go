// Package box
// Author: momentics <momentics@gmail.com>
//
// Sequence-level box: erases any api.Sequence behind the Sequence box
// interface. Structural operations are lazy views re-wrapped at the same
// level; operations that need tail knowledge (DropLast, Suffix) buffer
// through a ring queue.

package box

import (
	"github.com/eapache/queue"

	"github.com/momentics/anycoll/api"
)

type seqBox[E any] struct {
	c api.Sequence[E]
}

// NewSequence erases c at the single-pass capability level.
func NewSequence[E any](c api.Sequence[E]) Sequence[E] {
	return &seqBox[E]{c: c}
}

func (b *seqBox[E]) Iterate() api.Iterator[E] { return b.c.Iterate() }

func (b *seqBox[E]) Underestimate() int { return api.UnderestimateOf(b.c) }

func (b *seqBox[E]) ContainsFast(e E) (bool, bool) {
	if h, ok := b.c.(api.ContainsHint[E]); ok {
		return h.ContainsFast(e)
	}
	return false, false
}

func (b *seqBox[E]) CountFast() (int, bool) {
	if h, ok := b.c.(api.CountHint); ok {
		return h.CountFast()
	}
	return 0, false
}

func (b *seqBox[E]) ForEach(fn func(E)) {
	it := b.c.Iterate()
	for {
		e, ok := it.Next()
		if !ok {
			return
		}
		fn(e)
	}
}

func (b *seqBox[E]) CopyInto(dst []E) (int, api.Iterator[E]) {
	return copyInto(dst, b.c.Iterate())
}

func (b *seqBox[E]) DropFirst(n int) Sequence[E] {
	checkCount(n)
	under := func() int { return max(0, api.UnderestimateOf(b.c)-n) }
	return derive(under, func() api.Iterator[E] {
		it := b.c.Iterate()
		for i := 0; i < n; i++ {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		return it
	})
}

func (b *seqBox[E]) DropLast(n int) Sequence[E] {
	checkCount(n)
	under := func() int { return max(0, api.UnderestimateOf(b.c)-n) }
	return derive(under, func() api.Iterator[E] {
		it := b.c.Iterate()
		// Emit with a delay of n elements; whatever is still queued at
		// exhaustion is the dropped tail.
		q := queue.New()
		return api.IteratorFunc[E](func() (E, bool) {
			for q.Length() <= n {
				e, ok := it.Next()
				if !ok {
					var zero E
					return zero, false
				}
				q.Add(e)
			}
			return q.Remove().(E), true
		})
	})
}

func (b *seqBox[E]) DropWhile(pred func(E) bool) Sequence[E] {
	return derive(nil, func() api.Iterator[E] {
		it := b.c.Iterate()
		dropping := true
		return api.IteratorFunc[E](func() (E, bool) {
			for {
				e, ok := it.Next()
				if !ok {
					var zero E
					return zero, false
				}
				if dropping && pred(e) {
					continue
				}
				dropping = false
				return e, true
			}
		})
	})
}

func (b *seqBox[E]) Prefix(n int) Sequence[E] {
	checkCount(n)
	under := func() int { return min(api.UnderestimateOf(b.c), n) }
	return derive(under, func() api.Iterator[E] {
		it := b.c.Iterate()
		left := n
		return api.IteratorFunc[E](func() (E, bool) {
			if left <= 0 {
				var zero E
				return zero, false
			}
			e, ok := it.Next()
			if !ok {
				left = 0
				var zero E
				return zero, false
			}
			left--
			return e, true
		})
	})
}

func (b *seqBox[E]) PrefixWhile(pred func(E) bool) Sequence[E] {
	return derive(nil, func() api.Iterator[E] {
		it := b.c.Iterate()
		done := false
		return api.IteratorFunc[E](func() (E, bool) {
			if done {
				var zero E
				return zero, false
			}
			e, ok := it.Next()
			if !ok || !pred(e) {
				done = true
				var zero E
				return zero, false
			}
			return e, true
		})
	})
}

func (b *seqBox[E]) Suffix(n int) Sequence[E] {
	checkCount(n)
	under := func() int { return min(api.UnderestimateOf(b.c), n) }
	return derive(under, func() api.Iterator[E] {
		it := b.c.Iterate()
		// Ring of the last n elements; filled on first pull.
		q := queue.New()
		filled := false
		return api.IteratorFunc[E](func() (E, bool) {
			if !filled {
				filled = true
				for {
					e, ok := it.Next()
					if !ok {
						break
					}
					q.Add(e)
					if q.Length() > n {
						q.Remove()
					}
				}
			}
			if q.Length() == 0 {
				var zero E
				return zero, false
			}
			return q.Remove().(E), true
		})
	})
}

func (b *seqBox[E]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []Sequence[E] {
	checkCount(maxSplits)
	groups := splitIterator(b.c.Iterate(), maxSplits, omitEmpty, isSep)
	out := make([]Sequence[E], 0, len(groups))
	for _, g := range groups {
		out = append(out, NewSequence[E](sliceSeq[E](g)))
	}
	return out
}

// derive wraps a make-iterator closure as a fresh sequence-level box.
func derive[E any](under func() int, iterate func() api.Iterator[E]) Sequence[E] {
	return &seqBox[E]{c: funcSeq[E]{iterate: iterate, under: under}}
}

// funcSeq adapts a make-iterator closure to the api.Sequence contract.
type funcSeq[E any] struct {
	iterate func() api.Iterator[E]
	under   func() int
}

func (s funcSeq[E]) Iterate() api.Iterator[E] { return s.iterate() }

func (s funcSeq[E]) Underestimate() int {
	if s.under == nil {
		return 0
	}
	return s.under()
}

// sliceSeq adapts an owned slice to the api.Sequence contract. Split
// sub-boxes are backed by it.
type sliceSeq[E any] []E

func (s sliceSeq[E]) Iterate() api.Iterator[E] {
	i := 0
	return api.IteratorFunc[E](func() (E, bool) {
		if i >= len(s) {
			var zero E
			return zero, false
		}
		e := s[i]
		i++
		return e, true
	})
}

func (s sliceSeq[E]) Underestimate() int { return len(s) }

func copyInto[E any](dst []E, it api.Iterator[E]) (int, api.Iterator[E]) {
	n := 0
	for n < len(dst) {
		e, ok := it.Next()
		if !ok {
			break
		}
		dst[n] = e
		n++
	}
	return n, it
}

func splitIterator[E any](it api.Iterator[E], maxSplits int, omitEmpty bool, isSep func(E) bool) [][]E {
	var groups [][]E
	var cur []E
	splits := 0
	flush := func() {
		if len(cur) > 0 || !omitEmpty {
			groups = append(groups, cur)
		}
		cur = nil
	}
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		if splits < maxSplits && isSep(e) {
			flush()
			splits++
			continue
		}
		cur = append(cur, e)
	}
	flush()
	return groups
}

func checkCount(n int) {
	if n < 0 {
		api.Violate(api.ErrNegativeCount, "count %d", n)
	}
}
