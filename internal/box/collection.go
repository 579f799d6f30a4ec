// Package box
// Author: momentics <momentics@gmail.com>
//
// Collection-level boxes. One generic adapter per capability level, each
// embedding the level below; the structural operations are written once on
// collBox and dispatch through the self field, so a random-access box
// slicing itself produces a random-access box without re-implementing the
// slicing logic at every level.

package box

import (
	"github.com/momentics/anycoll/api"
)

type collBox[E, I any] struct {
	seqBox[E]
	c          api.Collection[E, I]
	start, end Index

	// self is the most-derived box, set once by the level constructor.
	// Same-level re-wrapping (SubRange, drops, prefixes, split) dispatches
	// through it.
	self Collection[E]
}

// NewCollection erases c at the forward-collection capability level.
func NewCollection[E, I any](c api.Collection[E, I]) Collection[E] {
	b := newCollBox(c)
	b.self = b
	return b
}

func newCollBox[E, I any](c api.Collection[E, I]) *collBox[E, I] {
	return &collBox[E, I]{
		seqBox: seqBox[E]{c: c},
		c:      c,
		start:  NewIndex(c.Start(), c.Compare),
		end:    NewIndex(c.End(), c.Compare),
	}
}

// unbox recovers the concrete position or dies: a foreign index reaching a
// box is the contract violation this layer exists to catch.
func (b *collBox[E, I]) unbox(i Index, op string) I {
	v, ok := IndexAs[I](i)
	if !ok {
		api.Violate(api.ErrIndexMismatch,
			"%s: index of type %v used on a container indexed by %v",
			op, i.TypeID(), b.start.TypeID())
	}
	return v
}

func (b *collBox[E, I]) boxIndex(v I) Index { return NewIndex(v, b.c.Compare) }

func (b *collBox[E, I]) Start() Index { return b.start }
func (b *collBox[E, I]) End() Index   { return b.end }

func (b *collBox[E, I]) At(i Index) E {
	return b.c.At(b.unbox(i, "At"))
}

func (b *collBox[E, I]) After(i Index) Index {
	return b.boxIndex(b.c.After(b.unbox(i, "After")))
}

func (b *collBox[E, I]) FormAfter(i *Index) {
	i.rebind(b.c.After(b.unbox(*i, "FormAfter")))
}

func (b *collBox[E, I]) Advance(i Index, n int, limit *Index) (Index, bool) {
	if n < 0 {
		api.Violate(api.ErrCapability, "negative advance %d on a forward collection", n)
	}
	cur := b.unbox(i, "Advance")
	var lim *I
	if limit != nil {
		v := b.unbox(*limit, "Advance limit")
		lim = &v
	}
	end := b.c.End()
	for k := 0; k < n; k++ {
		if lim != nil && b.c.Compare(cur, *lim) == 0 {
			return b.boxIndex(*lim), false
		}
		if b.c.Compare(cur, end) == 0 {
			api.Violate(api.ErrOutOfBounds, "advance by %d passed the end sentinel after %d steps", n, k)
		}
		cur = b.c.After(cur)
	}
	return b.boxIndex(cur), true
}

func (b *collBox[E, I]) Distance(a, z Index) int {
	from := b.unbox(a, "Distance")
	to := b.unbox(z, "Distance")
	if b.c.Compare(from, to) > 0 {
		api.Violate(api.ErrCapability, "backward distance on a forward collection")
	}
	d := 0
	for b.c.Compare(from, to) != 0 {
		from = b.c.After(from)
		d++
	}
	return d
}

func (b *collBox[E, I]) Count() int {
	if n, known := b.CountFast(); known {
		return n
	}
	return b.self.Distance(b.start, b.end)
}

func (b *collBox[E, I]) First() (E, bool) {
	s := b.c.Start()
	if b.c.Compare(s, b.c.End()) == 0 {
		var zero E
		return zero, false
	}
	return b.c.At(s), true
}

func (b *collBox[E, I]) SubRange(a, z Index) Collection[E] {
	from := b.unbox(a, "SubRange")
	to := b.unbox(z, "SubRange")
	if b.c.Compare(from, to) > 0 {
		api.Violate(api.ErrOutOfBounds, "inverted sub-range")
	}
	return NewCollection(b.c.SubRange(from, to))
}

// Structural operations: exact, index-based, dispatching through self so
// the result keeps the most-derived capability.

func (b *collBox[E, I]) DropFirst(n int) Sequence[E] {
	checkCount(n)
	i, _ := b.self.Advance(b.start, n, &b.end)
	return b.self.SubRange(i, b.end)
}

func (b *collBox[E, I]) DropLast(n int) Sequence[E] {
	checkCount(n)
	keep := max(0, b.self.Count()-n)
	i, _ := b.self.Advance(b.start, keep, &b.end)
	return b.self.SubRange(b.start, i)
}

func (b *collBox[E, I]) DropWhile(pred func(E) bool) Sequence[E] {
	cur := b.c.Start()
	end := b.c.End()
	for b.c.Compare(cur, end) != 0 && pred(b.c.At(cur)) {
		cur = b.c.After(cur)
	}
	return b.self.SubRange(b.boxIndex(cur), b.end)
}

func (b *collBox[E, I]) Prefix(n int) Sequence[E] {
	checkCount(n)
	i, _ := b.self.Advance(b.start, n, &b.end)
	return b.self.SubRange(b.start, i)
}

func (b *collBox[E, I]) PrefixWhile(pred func(E) bool) Sequence[E] {
	cur := b.c.Start()
	end := b.c.End()
	for b.c.Compare(cur, end) != 0 && pred(b.c.At(cur)) {
		cur = b.c.After(cur)
	}
	return b.self.SubRange(b.start, b.boxIndex(cur))
}

func (b *collBox[E, I]) Suffix(n int) Sequence[E] {
	checkCount(n)
	skip := max(0, b.self.Count()-n)
	i, _ := b.self.Advance(b.start, skip, &b.end)
	return b.self.SubRange(i, b.end)
}

func (b *collBox[E, I]) Split(maxSplits int, omitEmpty bool, isSep func(E) bool) []Sequence[E] {
	checkCount(maxSplits)
	var out []Sequence[E]
	groupStart := b.c.Start()
	cur := b.c.Start()
	end := b.c.End()
	splits := 0
	flush := func(to I) {
		if b.c.Compare(groupStart, to) != 0 || !omitEmpty {
			out = append(out, b.self.SubRange(b.boxIndex(groupStart), b.boxIndex(to)))
		}
	}
	for b.c.Compare(cur, end) != 0 {
		if splits < maxSplits && isSep(b.c.At(cur)) {
			flush(cur)
			cur = b.c.After(cur)
			groupStart = cur
			splits++
			continue
		}
		cur = b.c.After(cur)
	}
	flush(cur)
	return out
}

type bidiBox[E, I any] struct {
	collBox[E, I]
	bc api.Bidirectional[E, I]
}

// NewBidirectional erases c at the bidirectional capability level.
func NewBidirectional[E, I any](c api.Bidirectional[E, I]) Bidirectional[E] {
	b := &bidiBox[E, I]{collBox: *newCollBox[E, I](c), bc: c}
	b.self = b
	return b
}

func (b *bidiBox[E, I]) Before(i Index) Index {
	return b.boxIndex(b.bc.Before(b.unbox(i, "Before")))
}

func (b *bidiBox[E, I]) FormBefore(i *Index) {
	i.rebind(b.bc.Before(b.unbox(*i, "FormBefore")))
}

func (b *bidiBox[E, I]) Last() (E, bool) {
	s := b.c.Start()
	e := b.c.End()
	if b.c.Compare(s, e) == 0 {
		var zero E
		return zero, false
	}
	return b.c.At(b.bc.Before(e)), true
}

// Advance gains the negative direction at this level.
func (b *bidiBox[E, I]) Advance(i Index, n int, limit *Index) (Index, bool) {
	if n >= 0 {
		return b.collBox.Advance(i, n, limit)
	}
	cur := b.unbox(i, "Advance")
	var lim *I
	if limit != nil {
		v := b.unbox(*limit, "Advance limit")
		lim = &v
	}
	start := b.c.Start()
	for k := 0; k > n; k-- {
		if lim != nil && b.c.Compare(cur, *lim) == 0 {
			return b.boxIndex(*lim), false
		}
		if b.c.Compare(cur, start) == 0 {
			api.Violate(api.ErrOutOfBounds, "advance by %d passed the start sentinel after %d steps", n, -k)
		}
		cur = b.bc.Before(cur)
	}
	return b.boxIndex(cur), true
}

func (b *bidiBox[E, I]) SubRange(a, z Index) Collection[E] {
	from := b.unbox(a, "SubRange")
	to := b.unbox(z, "SubRange")
	if b.c.Compare(from, to) > 0 {
		api.Violate(api.ErrOutOfBounds, "inverted sub-range")
	}
	sub, ok := b.c.SubRange(from, to).(api.Bidirectional[E, I])
	if !ok {
		api.Violate(api.ErrCapability, "container sub-range lost bidirectional capability")
	}
	return NewBidirectional(sub)
}

type randBox[E, I any] struct {
	bidiBox[E, I]
	rc api.RandomAccess[E, I]
}

// NewRandomAccess erases c at the random-access capability level.
func NewRandomAccess[E, I any](c api.RandomAccess[E, I]) RandomAccess[E] {
	b := &randBox[E, I]{
		bidiBox: bidiBox[E, I]{collBox: *newCollBox[E, I](c), bc: c},
		rc:      c,
	}
	b.self = b
	return b
}

func (*randBox[E, I]) randomAccessMarker() {}

// Underestimate tightens to the exact count: it is O(1) here.
func (b *randBox[E, I]) Underestimate() int { return b.Count() }

func (b *randBox[E, I]) Count() int {
	return b.rc.Distance(b.c.Start(), b.c.End())
}

func (b *randBox[E, I]) Distance(a, z Index) int {
	return b.rc.Distance(b.unbox(a, "Distance"), b.unbox(z, "Distance"))
}

func (b *randBox[E, I]) Advance(i Index, n int, limit *Index) (Index, bool) {
	cur := b.unbox(i, "Advance")
	if limit != nil {
		lim := b.unbox(*limit, "Advance limit")
		// The limit binds only when it lies in the direction of travel.
		allowed := b.rc.Distance(cur, lim)
		if (n > 0 && allowed >= 0 && n > allowed) || (n < 0 && allowed <= 0 && n < allowed) {
			return b.boxIndex(lim), false
		}
	}
	next := b.rc.Advance(cur, n)
	if b.rc.Distance(b.c.Start(), next) < 0 || b.rc.Distance(next, b.c.End()) < 0 {
		api.Violate(api.ErrOutOfBounds, "advance by %d left the index space", n)
	}
	return b.boxIndex(next), true
}

func (b *randBox[E, I]) SubRange(a, z Index) Collection[E] {
	from := b.unbox(a, "SubRange")
	to := b.unbox(z, "SubRange")
	if b.c.Compare(from, to) > 0 {
		api.Violate(api.ErrOutOfBounds, "inverted sub-range")
	}
	sub, ok := b.c.SubRange(from, to).(api.RandomAccess[E, I])
	if !ok {
		api.Violate(api.ErrCapability, "container sub-range lost random-access capability")
	}
	return NewRandomAccess(sub)
}
