// Package api
// Author: momentics <momentics@gmail.com>
//
// Optional best-effort accelerator hints.
//
// A hint is never required for correctness: a container that answers
// "unknown" everywhere behaves identically to one that answers, only
// slower. "Unknown" is an explicit result, not an error.

package api

// ContainsHint is an optional shortcut for membership tests. ContainsFast
// returns (result, true) when the container can answer in O(1) amortized
// (a hash index, a digest set), or (false, false) when it cannot say.
type ContainsHint[E any] interface {
	ContainsFast(e E) (ok, known bool)
}

// CountHint is an optional single-pass preprocessing shortcut: an exact
// element count available without traversal. Useful when intersecting with
// a known-size source.
type CountHint interface {
	CountFast() (n int, known bool)
}
