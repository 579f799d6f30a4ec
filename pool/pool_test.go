package pool_test

import (
	"testing"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/pool"
)

func counting(n int) api.Iterator[int] {
	i := 0
	return api.IteratorFunc[int](func() (int, bool) {
		if i >= n {
			return 0, false
		}
		i++
		return i, true
	})
}

func TestCollectExactHint(t *testing.T) {
	got := pool.Collect(counting(100), 100)
	if len(got) != 100 || cap(got) != 100 {
		t.Fatalf("len=%d cap=%d", len(got), cap(got))
	}
	if got[0] != 1 || got[99] != 100 {
		t.Errorf("boundary elements %d, %d", got[0], got[99])
	}
}

func TestCollectNoHint(t *testing.T) {
	// Large enough to span several slabs.
	const n = 1700
	got := pool.Collect(counting(n), 0)
	if len(got) != n {
		t.Fatalf("len = %d, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("element %d = %d", i, v)
		}
	}
}

func TestCollectLowHint(t *testing.T) {
	got := pool.Collect(counting(600), 10)
	if len(got) != 600 {
		t.Fatalf("len = %d", len(got))
	}
	if got[599] != 600 {
		t.Errorf("last = %d", got[599])
	}
}

func TestCollectEmpty(t *testing.T) {
	if got := pool.Collect(counting(0), 0); len(got) != 0 {
		t.Errorf("collected %v from an empty iterator", got)
	}
	if got := pool.Collect(counting(0), 8); len(got) != 0 {
		t.Errorf("collected %v from an empty iterator with hint", got)
	}
}

func TestSlabPoolRecycles(t *testing.T) {
	sp := pool.NewSlabPool[string]()
	s := sp.Get()
	if len(s.Elems()) != 0 {
		t.Fatal("fresh slab not empty")
	}
	sp.Put(s)
	again := sp.Get()
	if len(again.Elems()) != 0 {
		t.Error("recycled slab retained elements")
	}
}

func TestForIsStablePerType(t *testing.T) {
	if pool.For[int]() != pool.For[int]() {
		t.Error("For[int] returned different pools")
	}
	// Distinct element types get distinct pools; this must not panic or
	// cross wires.
	_ = pool.For[string]()
}
