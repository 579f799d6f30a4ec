// Package facade
// Author: momentics <momentics@gmail.com>
//
// The four public type-erased wrapper types, one per traversal capability
// level: AnySequence, AnyCollection, AnyBidirectionalCollection and
// AnyRandomAccessCollection.
//
// A wrapper is a small value holding one reference to an erased box; copies
// share the box (O(1)) and the box never mutates after construction.
// Construction from a concrete container is a static decision: each
// constructor requires the matching capability contract from the api
// package, so the most capable box the container supports is chosen at
// compile time. Conversions between wrappers reuse the box: downgrades
// always succeed in O(1); upgrades probe the box's dynamic capability and
// report failure as an absent result, never a crash.
//
// Every wrapper itself satisfies api.Sequence, so wrappers can be passed to
// the generic helpers (Map, Filter, Reduce, ToSlice, Contains) and even
// re-wrapped.
package facade
