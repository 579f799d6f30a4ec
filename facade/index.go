// Package facade
// Author: momentics <momentics@gmail.com>
//
// Re-export of the erased position type.

package facade

import "github.com/momentics/anycoll/internal/box"

// Index is a type-erased, comparable position into an erased collection.
// Positions carry the runtime identity of the concrete index type they were
// built from; comparing positions with different identities is a fatal
// contract violation.
type Index = box.Index

// IndexAs attempts a checked unbox of an erased position to the candidate
// concrete index type. Returns the zero value and false on mismatch.
func IndexAs[I any](ix Index) (I, bool) { return box.IndexAs[I](ix) }
