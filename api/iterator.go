// Package api
// Author: momentics <momentics@gmail.com>
//
// Pull-iterator contract and closure-backed iterator source.

package api

// Iterator is a type-erased pull iterator over elements of type E.
//
// Next returns the next element and true, or the zero value and false once
// the iteration is exhausted. Exhaustion is sticky by contract: after the
// first false, every further call must return false. The producer honors
// that contract; this layer does not police it.
//
// An Iterator is single-pass and non-restartable. It may be finite or
// infinite, and it is lazy: no work happens until Next is called.
type Iterator[E any] interface {
	Next() (E, bool)
}

// IteratorFunc adapts a "produce next or absent" closure to Iterator.
type IteratorFunc[E any] func() (E, bool)

// Next invokes the wrapped closure.
func (f IteratorFunc[E]) Next() (E, bool) { return f() }

// Drain pulls it to exhaustion, discarding elements, and returns how many
// were consumed. Calling Drain on an infinite iterator does not return.
func Drain[E any](it Iterator[E]) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
