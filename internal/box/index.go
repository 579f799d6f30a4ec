// Package box
// Author: momentics <momentics@gmail.com>
//
// Type-erased position values with runtime identity checking.
//
// An Index remembers the concrete index type it was built from. Two Index
// values may meet in a comparison only when those identities match; mixing
// positions that originated from unrelated index types is the one
// memory-safety invariant of the whole erasure layer, so a mismatch is a
// fatal contract violation, never a silent false.

package box

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"

	"github.com/momentics/anycoll/api"
)

// Index is a type-erased, comparable position.
//
// The zero Index is invalid; positions come from a wrapper's StartIndex /
// EndIndex / IndexAfter family or from NewIndex.
type Index struct {
	value any
	tag   reflect.Type
	cmp   func(a, b any) int
}

// NewIndex boxes a concrete position together with its ordering. The
// runtime identity of I is captured once; cmp is the container's own
// Compare.
func NewIndex[I any](v I, cmp func(a, b I) int) Index {
	return Index{
		value: v,
		tag:   reflect.TypeOf(v),
		cmp:   func(a, b any) int { return cmp(a.(I), b.(I)) },
	}
}

// IndexAs attempts a checked unbox to the candidate concrete index type.
// Returns the zero value and false on mismatch.
func IndexAs[I any](ix Index) (I, bool) {
	v, ok := ix.value.(I)
	return v, ok
}

// TypeID returns the runtime identity of the boxed index type, nil for the
// zero Index.
func (ix Index) TypeID() reflect.Type { return ix.tag }

// Compare orders ix against other: negative, zero or positive. Both
// operands must carry the same runtime identity; a mismatch panics with an
// ErrIndexMismatch violation.
func (ix Index) Compare(other Index) int {
	if ix.cmp == nil || other.cmp == nil {
		api.Violate(api.ErrIndexMismatch, "comparison with the zero Index")
	}
	if ix.tag != other.tag {
		api.Violate(api.ErrIndexMismatch,
			"cannot compare %v (%s) with %v (%s)",
			spew.Sprintf("%#v", ix.value), ix.tag,
			spew.Sprintf("%#v", other.value), other.tag)
	}
	return ix.cmp(ix.value, other.value)
}

// Equal reports whether both positions are the same. Same identity
// precondition as Compare.
func (ix Index) Equal(other Index) bool { return ix.Compare(other) == 0 }

// Less reports whether ix precedes other. Same identity precondition as
// Compare.
func (ix Index) Less(other Index) bool { return ix.Compare(other) < 0 }

// rebind replaces the boxed value in place, keeping tag and ordering.
// Used by the in-place advance fast path; the caller guarantees exclusive
// ownership of the Index variable.
func (ix *Index) rebind(v any) { ix.value = v }
