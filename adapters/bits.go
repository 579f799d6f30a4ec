// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Bitset adapter: a random-access collection of bool, one element per bit.

package adapters

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// Bits bridges *bitset.BitSet onto the random-access contract with uint
// positions (the bitset's own index type).
type Bits struct {
	b *bitset.BitSet
}

// WrapBits builds the bridge without erasing.
func WrapBits(b *bitset.BitSet) Bits { return Bits{b: b} }

// FromBitSet erases b behind a random-access wrapper over its first Len()
// bits.
func FromBitSet(b *bitset.BitSet) facade.AnyRandomAccessCollection[bool] {
	return facade.RandomAccess[bool, uint](WrapBits(b))
}

func (w Bits) Iterate() api.Iterator[bool] {
	i := uint(0)
	return api.IteratorFunc[bool](func() (bool, bool) {
		if i >= w.b.Len() {
			return false, false
		}
		v := w.b.Test(i)
		i++
		return v, true
	})
}

func (w Bits) Underestimate() int { return int(w.b.Len()) }

func (w Bits) Start() uint             { return 0 }
func (w Bits) End() uint               { return w.b.Len() }
func (w Bits) At(i uint) bool          { return w.b.Test(i) }
func (w Bits) After(i uint) uint       { return i + 1 }
func (w Bits) Before(i uint) uint      { return i - 1 }
func (w Bits) Compare(a, b uint) int   { return cmp.Compare(a, b) }
func (w Bits) Distance(a, b uint) int  { return int(b) - int(a) }
func (w Bits) Advance(i uint, n int) uint {
	return uint(int(i) + n)
}

func (w Bits) SubRange(from, to uint) api.Collection[bool, uint] {
	return bitsView{b: w.b, lo: from, hi: to}
}

// bitsView keeps absolute bit positions valid across sub-ranging.
type bitsView struct {
	b      *bitset.BitSet
	lo, hi uint
}

func (v bitsView) Iterate() api.Iterator[bool] {
	i := v.lo
	return api.IteratorFunc[bool](func() (bool, bool) {
		if i >= v.hi {
			return false, false
		}
		r := v.b.Test(i)
		i++
		return r, true
	})
}

func (v bitsView) Underestimate() int { return int(v.hi - v.lo) }

func (v bitsView) Start() uint            { return v.lo }
func (v bitsView) End() uint              { return v.hi }
func (v bitsView) At(i uint) bool         { return v.b.Test(i) }
func (v bitsView) After(i uint) uint      { return i + 1 }
func (v bitsView) Before(i uint) uint     { return i - 1 }
func (v bitsView) Compare(a, b uint) int  { return cmp.Compare(a, b) }
func (v bitsView) Distance(a, b uint) int { return int(b) - int(a) }
func (v bitsView) Advance(i uint, n int) uint {
	return uint(int(i) + n)
}

func (v bitsView) SubRange(from, to uint) api.Collection[bool, uint] {
	return bitsView{b: v.b, lo: from, hi: to}
}
