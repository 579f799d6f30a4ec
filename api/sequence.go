// Package api
// Author: momentics <momentics@gmail.com>
//
// Single-pass sequence contract, the base of the capability lattice.

package api

// Sequence is the minimal contract a wrapped container must satisfy:
// produce a fresh pull iterator over its elements.
//
// A Sequence makes no multi-pass promise. Calling Iterate twice on a
// genuinely single-pass source (a channel, a consumed reader) may yield the
// remainder of the same underlying stream; only Collection and above
// guarantee restartable traversal.
type Sequence[E any] interface {
	Iterate() Iterator[E]
}

// Underestimator is an optional refinement of Sequence. Underestimate
// returns a lower bound on the element count in O(1); it may be pessimistic
// (zero is always a valid answer) but must never exceed the true count.
type Underestimator interface {
	Underestimate() int
}

// UnderestimateOf probes s for the Underestimator refinement and returns
// its bound, or zero when the container offers none.
func UnderestimateOf(s any) int {
	if u, ok := s.(Underestimator); ok {
		return u.Underestimate()
	}
	return 0
}
