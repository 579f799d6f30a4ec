// Package facade
// Author: momentics <momentics@gmail.com>
//
// Generic helpers over any erased (or concrete) sequence. Go methods
// cannot introduce type parameters, so element-type-changing operations
// live here as free functions; every wrapper satisfies api.Sequence and
// slots straight in.

package facade

import (
	"github.com/momentics/anycoll/api"
	"github.com/momentics/anycoll/pool"
)

// ToSlice materializes s into a fresh slice, sizing the first allocation
// from the sequence's underestimate and staging any overflow through pooled
// slabs.
func ToSlice[E any](s api.Sequence[E]) []E {
	return pool.Collect(s.Iterate(), api.UnderestimateOf(s))
}

// Map applies f to every element and materializes the results.
func Map[E, T any](s api.Sequence[E], f func(E) T) []T {
	it := s.Iterate()
	return pool.Collect(api.IteratorFunc[T](func() (T, bool) {
		e, ok := it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		return f(e), true
	}), api.UnderestimateOf(s))
}

// Filter materializes the elements satisfying pred.
func Filter[E any](s api.Sequence[E], pred func(E) bool) []E {
	it := s.Iterate()
	return pool.Collect(api.IteratorFunc[E](func() (E, bool) {
		for {
			e, ok := it.Next()
			if !ok {
				var zero E
				return zero, false
			}
			if pred(e) {
				return e, true
			}
		}
	}), 0)
}

// Reduce folds s left-to-right starting from seed.
func Reduce[A, E any](s api.Sequence[E], seed A, f func(A, E) A) A {
	acc := seed
	it := s.Iterate()
	for {
		e, ok := it.Next()
		if !ok {
			return acc
		}
		acc = f(acc, e)
	}
}

// Contains reports membership. The wrapped container's O(1) shortcut is
// consulted first; an unknown answer falls back to a linear scan.
func Contains[E comparable](s api.Sequence[E], e E) bool {
	if h, ok := s.(api.ContainsHint[E]); ok {
		if r, known := h.ContainsFast(e); known {
			return r
		}
	}
	it := s.Iterate()
	for {
		v, ok := it.Next()
		if !ok {
			return false
		}
		if v == e {
			return true
		}
	}
}
