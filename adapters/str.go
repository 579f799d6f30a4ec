// Package adapters
// Author: momentics <momentics@gmail.com>
//
// String adapter: runes addressed by byte offset. Deliberately capped at
// the bidirectional level: variable-width encoding makes O(1) offset
// arithmetic impossible, so the random-access contract would be a lie.

package adapters

import (
	"cmp"
	"unicode/utf8"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// Str bridges a string onto the bidirectional contract as a collection of
// runes with byte-offset positions.
type Str string

// String erases s behind a bidirectional wrapper.
func String(s string) facade.AnyBidirectionalCollection[rune] {
	return facade.Bidirectional[rune, int](Str(s))
}

func (s Str) Iterate() api.Iterator[rune] {
	i := 0
	return api.IteratorFunc[rune](func() (rune, bool) {
		if i >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(string(s)[i:])
		i += size
		return r, true
	})
}

// Underestimate: every rune occupies at most UTFMax bytes, so this bound
// is O(1) and never exceeds the true rune count.
func (s Str) Underestimate() int { return len(s) / utf8.UTFMax }

func (s Str) Start() int { return 0 }
func (s Str) End() int   { return len(s) }

func (s Str) At(i int) rune {
	r, _ := utf8.DecodeRuneInString(string(s)[i:])
	return r
}

func (s Str) After(i int) int {
	_, size := utf8.DecodeRuneInString(string(s)[i:])
	return i + size
}

func (s Str) Before(i int) int {
	_, size := utf8.DecodeLastRuneInString(string(s)[:i])
	return i - size
}

func (s Str) Compare(a, b int) int { return cmp.Compare(a, b) }

func (s Str) SubRange(from, to int) api.Collection[rune, int] {
	return strView{s: s, lo: from, hi: to}
}

// strView keeps absolute byte offsets valid across sub-ranging.
type strView struct {
	s      Str
	lo, hi int
}

func (v strView) Iterate() api.Iterator[rune] {
	return Str(v.s[v.lo:v.hi]).Iterate()
}

func (v strView) Underestimate() int { return (v.hi - v.lo) / utf8.UTFMax }

func (v strView) Start() int           { return v.lo }
func (v strView) End() int             { return v.hi }
func (v strView) At(i int) rune        { return v.s.At(i) }
func (v strView) After(i int) int      { return v.s.After(i) }
func (v strView) Before(i int) int     { return v.s.Before(i) }
func (v strView) Compare(a, b int) int { return cmp.Compare(a, b) }

func (v strView) SubRange(from, to int) api.Collection[rune, int] {
	return strView{s: v.s, lo: from, hi: to}
}
