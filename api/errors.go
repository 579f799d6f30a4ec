// Package api
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for the erasure core.
//
// Exactly two failure classes exist. Contract violations (foreign-index
// comparison or subscript, impossible capability requests) and precondition
// violations (negative counts, advancing past a boundary) are programmer
// misuse: they panic with a *Violation and are never caught, retried or
// defaulted. Everything else (a failed upgrade, an absent first element,
// an unknown hint) is an ordinary value, never an error.

package api

import (
	"errors"
	"fmt"
)

// Violation kinds. Each panic payload wraps exactly one of these.
var (
	// ErrIndexMismatch: two erased indices with different runtime type
	// identities met in a comparison or a subscript.
	ErrIndexMismatch = errors.New("anycoll: erased index type mismatch")

	// ErrCapability: an operation was requested below the capability level
	// that supports it (negative advance on a forward collection).
	ErrCapability = errors.New("anycoll: operation exceeds capability level")

	// ErrNegativeCount: a negative count reached prefix/dropFirst/suffix.
	ErrNegativeCount = errors.New("anycoll: negative element count")

	// ErrOutOfBounds: an index walk was asked to pass a boundary sentinel.
	ErrOutOfBounds = errors.New("anycoll: index advanced past boundary")
)

// Violation is the panic payload for both failure classes.
type Violation struct {
	Kind   error  // one of the sentinels above
	Detail string // operation-specific diagnostic
}

// Error implements error.
func (v *Violation) Error() string {
	if v.Detail == "" {
		return v.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", v.Kind.Error(), v.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (v *Violation) Unwrap() error { return v.Kind }

// Violate panics with a Violation of the given kind.
func Violate(kind error, format string, args ...any) {
	panic(&Violation{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
