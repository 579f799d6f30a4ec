// File: pool/slab.go
// Author: momentics <momentics@gmail.com>
//
// Type-keyed slab pools. One SlabPool per element type, created on first
// use and shared for the life of the process.

package pool

import (
	"reflect"
	"sync"
)

// slabLen is the element capacity of a staging slab.
const slabLen = 512

// Slab is a fixed-capacity staging buffer for elements of type E.
type Slab[E any] struct {
	buf []E
}

// Elems exposes the filled portion written so far.
func (s *Slab[E]) Elems() []E { return s.buf }

// SlabPool recycles slabs of one element type.
type SlabPool[E any] struct {
	p sync.Pool
}

// NewSlabPool creates a standalone pool. Most callers go through For.
func NewSlabPool[E any]() *SlabPool[E] {
	sp := &SlabPool[E]{}
	sp.p.New = func() any {
		return &Slab[E]{buf: make([]E, 0, slabLen)}
	}
	return sp
}

// Get returns an empty slab.
func (sp *SlabPool[E]) Get() *Slab[E] {
	s := sp.p.Get().(*Slab[E])
	s.buf = s.buf[:0]
	return s
}

// Put returns a slab to the pool; the slab must not be used afterwards.
// Element storage is cleared so pooled slabs do not pin caller values.
func (sp *SlabPool[E]) Put(s *Slab[E]) {
	var zero E
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.buf = s.buf[:0]
	sp.p.Put(s)
}

// registry maps reflect.Type of E to *SlabPool[E].
var registry sync.Map

// For obtains the process-wide pool for element type E.
func For[E any]() *SlabPool[E] {
	key := reflect.TypeOf((*E)(nil)).Elem()
	if p, ok := registry.Load(key); ok {
		return p.(*SlabPool[E])
	}
	p, _ := registry.LoadOrStore(key, NewSlabPool[E]())
	return p.(*SlabPool[E])
}
