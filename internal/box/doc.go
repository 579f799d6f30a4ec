// Package box
// Author: momentics <momentics@gmail.com>
//
// Erasure machinery behind the public wrapper types.
//
// The package erases two things. Index erases a container's concrete
// position type behind a runtime type tag (index.go). The box interfaces
// (Sequence, Collection, Bidirectional, RandomAccess) erase the container
// itself behind one generic adapter per capability level, each level
// embedding the one below. There is no implementation inheritance and no
// runtime "must override" trap: a level that misses an operation does not
// compile.
//
// Boxes have reference identity. A box owns exactly one copy of the wrapped
// container value plus, at collection level and above, the two boundary
// indices pre-boxed at wrap time. No box mutates after construction; the
// only mutating operations in the package (FormAfter, FormBefore) write
// through a caller-owned *Index.
package box
