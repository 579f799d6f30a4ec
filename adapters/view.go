// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Shared int-indexed random-access view. Sub-ranging an int-indexed adapter
// lands here: the view keeps absolute positions from the parent meaningful
// and re-slices in O(1).

package adapters

import (
	"cmp"

	"github.com/momentics/anycoll/api"
)

type intView[E any] struct {
	at     func(int) E
	lo, hi int
}

func (v intView[E]) Iterate() api.Iterator[E] {
	i := v.lo
	return api.IteratorFunc[E](func() (E, bool) {
		if i >= v.hi {
			var zero E
			return zero, false
		}
		e := v.at(i)
		i++
		return e, true
	})
}

func (v intView[E]) Underestimate() int { return v.hi - v.lo }

func (v intView[E]) Start() int            { return v.lo }
func (v intView[E]) End() int              { return v.hi }
func (v intView[E]) At(i int) E            { return v.at(i) }
func (v intView[E]) After(i int) int       { return i + 1 }
func (v intView[E]) Before(i int) int      { return i - 1 }
func (v intView[E]) Compare(a, b int) int  { return cmp.Compare(a, b) }
func (v intView[E]) Distance(a, b int) int { return b - a }
func (v intView[E]) Advance(i, n int) int  { return i + n }

func (v intView[E]) SubRange(from, to int) api.Collection[E, int] {
	return intView[E]{at: v.at, lo: from, hi: to}
}
