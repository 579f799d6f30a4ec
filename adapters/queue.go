// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Ring-queue adapter. eapache's queue backs its storage with a power-of-two
// ring, so positional Get and Length are O(1) and the random-access
// contract holds honestly.

package adapters

import (
	"cmp"

	"github.com/eapache/queue"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// Queue bridges *queue.Queue onto the random-access contract with int
// positions. The queue stores untyped elements; every element must be an E
// or positional reads panic with the underlying assertion failure.
type Queue[E any] struct {
	q *queue.Queue
}

// WrapQueue builds the bridge without erasing.
func WrapQueue[E any](q *queue.Queue) Queue[E] { return Queue[E]{q: q} }

// FromQueue erases q behind a random-access wrapper. Boundaries snapshot at
// wrap time; adding or removing elements afterwards breaks the wrap
// contract.
func FromQueue[E any](q *queue.Queue) facade.AnyRandomAccessCollection[E] {
	return facade.RandomAccess[E, int](WrapQueue[E](q))
}

func (w Queue[E]) at(i int) E { return w.q.Get(i).(E) }

func (w Queue[E]) Iterate() api.Iterator[E] {
	i := 0
	return api.IteratorFunc[E](func() (E, bool) {
		if i >= w.q.Length() {
			var zero E
			return zero, false
		}
		e := w.at(i)
		i++
		return e, true
	})
}

func (w Queue[E]) Underestimate() int { return w.q.Length() }

func (w Queue[E]) Start() int            { return 0 }
func (w Queue[E]) End() int              { return w.q.Length() }
func (w Queue[E]) At(i int) E            { return w.at(i) }
func (w Queue[E]) After(i int) int       { return i + 1 }
func (w Queue[E]) Before(i int) int      { return i - 1 }
func (w Queue[E]) Compare(a, b int) int  { return cmp.Compare(a, b) }
func (w Queue[E]) Distance(a, b int) int { return b - a }
func (w Queue[E]) Advance(i, n int) int  { return i + n }

func (w Queue[E]) SubRange(from, to int) api.Collection[E, int] {
	return intView[E]{at: w.at, lo: from, hi: to}
}
