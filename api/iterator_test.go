package api_test

import (
	"testing"

	"github.com/momentics/anycoll/api"
)

func TestIteratorFunc(t *testing.T) {
	i := 0
	it := api.IteratorFunc[int](func() (int, bool) {
		if i >= 3 {
			return 0, false
		}
		i++
		return i * 10, true
	})
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Fatalf("unexpected elements: %v", got)
	}
	// Exhaustion stays sticky for this closure.
	if _, ok := it.Next(); ok {
		t.Error("iterator produced an element after exhaustion")
	}
}

func TestDrain(t *testing.T) {
	left := 5
	it := &api.MockIterator[string]{NextFunc: func() (string, bool) {
		if left == 0 {
			return "", false
		}
		left--
		return "x", true
	}}
	if n := api.Drain[string](it); n != 5 {
		t.Errorf("Drain = %d, want 5", n)
	}
}

func TestUnderestimateOfProbe(t *testing.T) {
	seq := &api.MockSequence[int]{IterateFunc: func() api.Iterator[int] {
		return api.IteratorFunc[int](func() (int, bool) { return 0, false })
	}}
	if n := api.UnderestimateOf(seq); n != 0 {
		t.Errorf("plain sequence underestimate = %d, want 0", n)
	}
}
