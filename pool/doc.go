// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable staging slabs for bulk element copies.
//
// Materializing an erased sequence of unknown length would otherwise grow a
// slice through repeated reallocation. Collect stages elements through
// pooled fixed-size slabs instead, keyed per element type, and assembles
// the result in one final allocation. The pool registry is concurrent-safe;
// individual slabs are single-owner between Get and Put.
package pool
