// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection layer for erased wrappers.
//
// Provides a concurrent-safe probe registry and spew-based description
// helpers: a registered wrapper probe reports its capability level, count
// bound and a bounded dump of the erased state. Purely observational; no
// probe influences traversal behavior.
package control
