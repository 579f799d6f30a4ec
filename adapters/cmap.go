// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Concurrent-map adapter: a sharded map iterated as a single-pass snapshot
// sequence of key/value pairs. Order is unspecified (shard order), which is
// exactly why this adapter never claims collection capability.

package adapters

import (
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/facade"
)

// KV is one key/value pair produced by the concurrent-map adapter.
type KV[V any] struct {
	Key   string
	Value V
}

// CMap bridges a concurrent map onto the sequence contract. Each Iterate
// call starts a fresh buffered snapshot of the shards.
type CMap[V any] struct {
	m cmap.ConcurrentMap[string, V]
}

// WrapCMap builds the bridge without erasing.
func WrapCMap[V any](m cmap.ConcurrentMap[string, V]) CMap[V] { return CMap[V]{m: m} }

// FromCMap erases m behind a single-pass wrapper.
func FromCMap[V any](m cmap.ConcurrentMap[string, V]) facade.AnySequence[KV[V]] {
	return facade.Sequence[KV[V]](WrapCMap(m))
}

func (w CMap[V]) Iterate() api.Iterator[KV[V]] {
	ch := w.m.IterBuffered()
	return api.IteratorFunc[KV[V]](func() (KV[V], bool) {
		t, ok := <-ch
		if !ok {
			var zero KV[V]
			return zero, false
		}
		return KV[V]{Key: t.Key, Value: t.Val}, true
	})
}

// Underestimate reports the current count; O(shards), amortized constant.
// Concurrent writers may change the count before iteration finishes, which
// keeps this a lower-bound hint, not a promise.
func (w CMap[V]) Underestimate() int { return w.m.Count() }
