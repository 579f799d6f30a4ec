package box_test

import (
	"cmp"
	"errors"
	"testing"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/internal/box"
)

func expectViolation(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a %v panic", kind)
		}
		err, ok := r.(*api.Violation)
		if !ok || !errors.Is(err, kind) {
			t.Fatalf("unexpected panic payload: %v", r)
		}
	}()
	fn()
}

func TestForwardBoxBasics(t *testing.T) {
	b := box.NewCollection[int, int](fwdRange{0, 5})

	if b.Count() != 5 {
		t.Errorf("Count = %d", b.Count())
	}
	if v, ok := b.First(); !ok || v != 0 {
		t.Errorf("First = (%d, %v)", v, ok)
	}
	if got := drain(b.Iterate()); !equalInts(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("elements = %v", got)
	}
	if d := b.Distance(b.Start(), b.End()); d != 5 {
		t.Errorf("Distance(start, end) = %d", d)
	}
	i := b.After(b.Start())
	if v := b.At(i); v != 1 {
		t.Errorf("At(after start) = %d", v)
	}
}

func TestForwardBoxCapabilityEdges(t *testing.T) {
	b := box.NewCollection[int, int](fwdRange{0, 5})

	expectViolation(t, api.ErrCapability, func() {
		b.Advance(b.End(), -1, nil)
	})
	expectViolation(t, api.ErrCapability, func() {
		b.Distance(b.End(), b.Start())
	})
	expectViolation(t, api.ErrOutOfBounds, func() {
		b.Advance(b.Start(), 6, nil)
	})

	// A forward box never upgrades.
	if _, ok := any(b).(box.Bidirectional[int]); ok {
		t.Error("forward box satisfied the bidirectional interface")
	}
}

func TestAdvanceLimit(t *testing.T) {
	b := box.NewCollection[int, int](fwdRange{0, 5})
	end := b.End()

	i, complete := b.Advance(b.Start(), 3, &end)
	if !complete || !i.Equal(b.After(b.After(b.After(b.Start())))) {
		t.Errorf("Advance(3) incomplete or misplaced")
	}
	i, complete = b.Advance(b.Start(), 10, &end)
	if complete {
		t.Error("Advance(10) claimed completion past the limit")
	}
	if !i.Equal(end) {
		t.Error("limited advance did not stop at the limit")
	}
}

func TestForwardBoxStructuralOpsKeepLevel(t *testing.T) {
	b := box.NewCollection[int, int](fwdRange{0, 5})

	sub := b.DropFirst(2)
	if got := drain(sub.Iterate()); !equalInts(got, []int{2, 3, 4}) {
		t.Errorf("DropFirst(2) = %v", got)
	}
	cb, ok := sub.(box.Collection[int])
	if !ok {
		t.Fatal("DropFirst lost collection capability")
	}
	if cb.Count() != 3 {
		t.Errorf("sub Count = %d", cb.Count())
	}
	if _, ok := sub.(box.Bidirectional[int]); ok {
		t.Error("DropFirst upgraded a forward box")
	}
}

func TestBidirectionalBox(t *testing.T) {
	b := box.NewBidirectional[int, int](bidiRange{fwdRange{0, 5}})

	if v, ok := b.Last(); !ok || v != 4 {
		t.Errorf("Last = (%d, %v)", v, ok)
	}
	i := b.Before(b.End())
	if v := b.At(i); v != 4 {
		t.Errorf("At(before end) = %d", v)
	}

	// Negative advance works at this level.
	i, complete := b.Advance(b.End(), -2, nil)
	if !complete || b.At(i) != 3 {
		t.Error("Advance(-2) misplaced")
	}
	start := b.Start()
	i, complete = b.Advance(b.End(), -10, &start)
	if complete || !i.Equal(b.Start()) {
		t.Error("limited backward advance did not stop at start")
	}
	expectViolation(t, api.ErrOutOfBounds, func() {
		b.Advance(b.Start(), -1, nil)
	})

	// Sub-boxes keep the level, and only the level.
	sub := b.DropLast(2)
	if got := drain(sub.Iterate()); !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("DropLast(2) = %v", got)
	}
	if _, ok := sub.(box.Bidirectional[int]); !ok {
		t.Error("DropLast lost bidirectional capability")
	}
	if _, ok := sub.(box.RandomAccess[int]); ok {
		t.Error("DropLast upgraded a bidirectional box")
	}
}

func TestRandomAccessBox(t *testing.T) {
	b := box.NewRandomAccess[int, int](newRandRange(0, 100))

	if b.Count() != 100 {
		t.Errorf("Count = %d", b.Count())
	}
	if b.Underestimate() != 100 {
		t.Errorf("Underestimate = %d, want exact count", b.Underestimate())
	}
	if d := b.Distance(b.End(), b.Start()); d != -100 {
		t.Errorf("backward Distance = %d, want -100", d)
	}

	i, complete := b.Advance(b.Start(), 40, nil)
	if !complete || b.At(i) != 40 {
		t.Error("Advance(40) misplaced")
	}
	end := b.End()
	i, complete = b.Advance(b.Start(), 1000, &end)
	if complete || !i.Equal(end) {
		t.Error("limited advance did not clamp to end")
	}
	start := b.Start()
	i, complete = b.Advance(b.End(), -1000, &start)
	if complete || !i.Equal(start) {
		t.Error("limited backward advance did not clamp to start")
	}
	// A limit behind the direction of travel does not bind.
	mid, _ := b.Advance(b.Start(), 50, nil)
	i, complete = b.Advance(mid, 5, &start)
	if !complete || b.At(i) != 55 {
		t.Error("irrelevant limit bound a forward advance")
	}
	expectViolation(t, api.ErrOutOfBounds, func() {
		b.Advance(b.Start(), 101, nil)
	})

	sub := b.Suffix(10)
	rb, ok := sub.(box.RandomAccess[int])
	if !ok {
		t.Fatal("Suffix lost random-access capability")
	}
	if rb.Count() != 10 {
		t.Errorf("suffix Count = %d", rb.Count())
	}
	if got := drain(rb.Iterate()); got[0] != 90 || got[9] != 99 {
		t.Errorf("suffix elements = %v", got)
	}
}

func TestCollectionSplit(t *testing.T) {
	// 0..9 split on multiples of 3: [1 2] [4 5] [7 8] [] -> omitted
	b := box.NewRandomAccess[int, int](newRandRange(0, 10))
	parts := b.Split(int(^uint(0)>>1), true, func(v int) bool { return v%3 == 0 })
	want := [][]int{{1, 2}, {4, 5}, {7, 8}}
	if len(parts) != len(want) {
		t.Fatalf("Split produced %d parts, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if got := drain(p.Iterate()); !equalInts(got, want[i]) {
			t.Errorf("part %d = %v, want %v", i, got, want[i])
		}
		if _, ok := p.(box.RandomAccess[int]); !ok {
			t.Errorf("part %d lost random-access capability", i)
		}
	}
}

func TestForeignIndexSubscriptIsFatal(t *testing.T) {
	b := box.NewCollection[int, int](fwdRange{0, 5})
	foreign := box.NewIndex(uint(1), cmp.Compare[uint])
	expectViolation(t, api.ErrIndexMismatch, func() {
		b.At(foreign)
	})
}

func TestFormAfterMatchesAfter(t *testing.T) {
	b := box.NewBidirectional[int, int](bidiRange{fwdRange{0, 5}})
	mut := b.Start()
	pure := b.Start()
	for k := 0; k < 5; k++ {
		b.FormAfter(&mut)
		pure = b.After(pure)
		if !mut.Equal(pure) {
			t.Fatalf("in-place and fresh advance diverged at step %d", k)
		}
	}
	for k := 0; k < 5; k++ {
		b.FormBefore(&mut)
		pure = b.Before(pure)
		if !mut.Equal(pure) {
			t.Fatalf("in-place and fresh step-back diverged at step %d", k)
		}
	}
	if !mut.Equal(b.Start()) {
		t.Error("round trip did not return to start")
	}
}

func TestEmptyCollection(t *testing.T) {
	b := box.NewBidirectional[int, int](bidiRange{fwdRange{3, 3}})
	if _, ok := b.First(); ok {
		t.Error("empty collection produced a first element")
	}
	if _, ok := b.Last(); ok {
		t.Error("empty collection produced a last element")
	}
	if b.Count() != 0 {
		t.Errorf("Count = %d", b.Count())
	}
	if !b.Start().Equal(b.End()) {
		t.Error("start != end on an empty collection")
	}
}
