// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Slice adapter: the canonical random-access container.

package adapters

import (
	"cmp"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// SliceOf bridges []E onto the random-access contract with int positions.
type SliceOf[E any] []E

// Slice erases s behind a random-access wrapper.
func Slice[E any](s []E) facade.AnyRandomAccessCollection[E] {
	return facade.RandomAccess[E, int](SliceOf[E](s))
}

func (s SliceOf[E]) Iterate() api.Iterator[E] {
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

func (s SliceOf[E]) Underestimate() int { return len(s) }

func (s SliceOf[E]) Start() int            { return 0 }
func (s SliceOf[E]) End() int              { return len(s) }
func (s SliceOf[E]) At(i int) E            { return s[i] }
func (s SliceOf[E]) After(i int) int       { return i + 1 }
func (s SliceOf[E]) Before(i int) int      { return i - 1 }
func (s SliceOf[E]) Compare(a, b int) int  { return cmp.Compare(a, b) }
func (s SliceOf[E]) Distance(a, b int) int { return b - a }
func (s SliceOf[E]) Advance(i, n int) int  { return i + n }

func (s SliceOf[E]) SubRange(from, to int) api.Collection[E, int] {
	return intView[E]{at: func(i int) E { return s[i] }, lo: from, hi: to}
}
