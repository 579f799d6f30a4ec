package adapters_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/eapache/queue"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/momentics/anycoll/adapters"
	"github.com/momentics/anycoll/facade"
)

func TestStringAdapterBidirectionalWalk(t *testing.T) {
	f := adapters.String("héllo, wörld")
	want := []rune("héllo, wörld")

	got := facade.ToSlice[rune](f)
	if string(got) != string(want) {
		t.Fatalf("forward walk = %q", string(got))
	}
	if f.Count() != len(want) {
		t.Errorf("Count = %d, want %d", f.Count(), len(want))
	}

	// Reverse walk through IndexBefore.
	var back []rune
	i := f.EndIndex()
	for !i.Equal(f.StartIndex()) {
		i = f.IndexBefore(i)
		back = append(back, f.At(i))
	}
	for k, j := 0, len(back)-1; k < j; k, j = k+1, j-1 {
		back[k], back[j] = back[j], back[k]
	}
	if string(back) != string(want) {
		t.Errorf("reverse walk = %q", string(back))
	}
}

func TestStringAdapterSubRange(t *testing.T) {
	f := adapters.String("abcdef")
	a := f.IndexAfter(f.StartIndex())
	b, _ := f.AdvanceIndex(a, 3, nil)
	sub := f.SubRange(a, b)
	if got := string(facade.ToSlice[rune](sub)); got != "bcd" {
		t.Errorf("SubRange = %q", got)
	}
	// Positions from the parent stay valid on the view.
	if sub.At(a) != 'b' {
		t.Error("parent position invalid on sub-range view")
	}
}

func TestQueueAdapter(t *testing.T) {
	q := queue.New()
	for _, v := range []int{5, 6, 7, 8} {
		q.Add(v)
	}
	f := adapters.FromQueue[int](q)

	if f.Count() != 4 {
		t.Errorf("Count = %d", f.Count())
	}
	if v := f.At(f.IndexAfter(f.StartIndex())); v != 6 {
		t.Errorf("At(1) = %d", v)
	}
	got := facade.ToSlice[int](f.DropFirst(1).DropLast(1))
	if len(got) != 2 || got[0] != 6 || got[1] != 7 {
		t.Errorf("trimmed = %v", got)
	}
	if _, ok := f.AsCollection().ToRandomAccess(); !ok {
		t.Error("queue wrapper lost random access through downgrade")
	}
}

func TestBitSetAdapter(t *testing.T) {
	b := bitset.New(5)
	b.Set(1)
	b.Set(3)
	f := adapters.FromBitSet(b)

	if f.Count() != 5 {
		t.Errorf("Count = %d", f.Count())
	}
	got := facade.ToSlice[bool](f)
	want := []bool{false, true, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bits = %v, want %v", got, want)
		}
	}
	if v, _ := f.Last(); v != false {
		t.Error("Last should be the unset fifth bit")
	}
	ones := facade.Filter[bool](f, func(v bool) bool { return v })
	if len(ones) != 2 {
		t.Errorf("set bits = %d, want 2", len(ones))
	}
}

func TestCMapAdapterSnapshot(t *testing.T) {
	m := cmap.New[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	f := adapters.FromCMap(m)

	if f.Underestimate() > 3 {
		t.Errorf("Underestimate = %d exceeds the count", f.Underestimate())
	}
	sum := 0
	seen := map[string]bool{}
	f.ForEach(func(kv adapters.KV[int]) {
		sum += kv.Value
		seen[kv.Key] = true
	})
	if sum != 6 || len(seen) != 3 {
		t.Errorf("snapshot saw %d keys, sum %d", len(seen), sum)
	}
	// Unordered source never claims collection capability.
	if _, ok := f.ToCollection(); ok {
		t.Error("concurrent-map sequence upgraded to collection")
	}
}

func TestHashedStringsHints(t *testing.T) {
	h := adapters.NewHashedStrings("red", "green", "blue", "green")

	if ok, known := h.ContainsFast("green"); !known || !ok {
		t.Error("ContainsFast(green) should be a known yes")
	}
	if ok, known := h.ContainsFast("teal"); !known || ok {
		t.Error("ContainsFast(teal) should be a known no")
	}
	if n, known := h.CountFast(); !known || n != 4 {
		t.Errorf("CountFast = (%d, %v)", n, known)
	}

	f := adapters.Strings("red", "green", "blue")
	if got := facade.ToSlice[string](f); len(got) != 3 || got[1] != "green" {
		t.Errorf("order not preserved: %v", got)
	}

	// Sub-range views must not answer with the whole-collection index.
	sub := f.DropFirst(1)
	if _, known := sub.ContainsFast("red"); known {
		t.Error("sub-range view answered a membership hint it cannot honor")
	}
}

func TestSliceAdapterViewIndependence(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	f := adapters.Slice(src)
	sub := f.DropFirst(2)
	if got := facade.ToSlice[int](sub); len(got) != 3 || got[0] != 3 {
		t.Errorf("view = %v", got)
	}
	// The view shares storage, not a copy.
	src[2] = 99
	if got := facade.ToSlice[int](sub); got[0] != 99 {
		t.Error("sub-range copied instead of viewing")
	}
}
