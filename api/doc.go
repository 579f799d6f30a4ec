// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts for type-erased traversal wrappers.
// Part of anycoll type-erasure core.
//
// The package defines the four nested traversal capability levels a wrapped
// container may claim:
//   - Sequence: single-pass, possibly infinite, pull iteration
//   - Collection: forward, multi-pass, position-addressable traversal
//   - Bidirectional: adds reverse stepping
//   - RandomAccess: certifies O(1) index arithmetic
//
// Contracts are trust boundaries: this layer assumes, and never re-verifies,
// that a container actually delivers the complexity its capability promises.
// Optional accelerator hints live in hints.go and answer "unknown" rather
// than erroring when no shortcut exists.
package api
