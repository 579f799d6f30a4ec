package box_test

import (
	"cmp"

	"github.com/momentics/anycoll/api"
)

// fwdRange is a forward-only collection of the ints [lo, hi); the element
// at position i is i itself. It deliberately stops at the forward level so
// capability-edge behavior can be exercised.
type fwdRange struct{ lo, hi int }

func (r fwdRange) Iterate() api.Iterator[int] {
	i := r.lo
	return api.IteratorFunc[int](func() (int, bool) {
		if i >= r.hi {
			return 0, false
		}
		v := i
		i++
		return v, true
	})
}

func (r fwdRange) Start() int           { return r.lo }
func (r fwdRange) End() int             { return r.hi }
func (r fwdRange) At(i int) int         { return i }
func (r fwdRange) After(i int) int      { return i + 1 }
func (r fwdRange) Compare(a, b int) int { return cmp.Compare(a, b) }

func (r fwdRange) SubRange(from, to int) api.Collection[int, int] {
	return fwdRange{lo: from, hi: to}
}

// bidiRange adds reverse stepping.
type bidiRange struct{ fwdRange }

func (r bidiRange) Before(i int) int { return i - 1 }

func (r bidiRange) SubRange(from, to int) api.Collection[int, int] {
	return bidiRange{fwdRange{lo: from, hi: to}}
}

// randRange adds O(1) arithmetic.
type randRange struct{ bidiRange }

func newRandRange(lo, hi int) randRange {
	return randRange{bidiRange{fwdRange{lo: lo, hi: hi}}}
}

func (r randRange) Distance(a, b int) int { return b - a }
func (r randRange) Advance(i, n int) int  { return i + n }

func (r randRange) SubRange(from, to int) api.Collection[int, int] {
	return randRange{bidiRange{fwdRange{lo: from, hi: to}}}
}

// ints is a restartable single-pass-contract sequence over the given
// values.
func ints(vals ...int) api.Sequence[int] {
	return &api.MockSequence[int]{IterateFunc: func() api.Iterator[int] {
		i := 0
		return api.IteratorFunc[int](func() (int, bool) {
			if i >= len(vals) {
				return 0, false
			}
			v := vals[i]
			i++
			return v, true
		})
	}}
}

func drain[E any](it api.Iterator[E]) []E {
	var out []E
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
