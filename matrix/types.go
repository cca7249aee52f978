// SPDX-License-Identifier: MIT

// Package matrix: domain types of the algebra engine.
// This file intentionally contains ONLY the value model (storage core,
// transform tag, Matrix handle). Errors and options live in dedicated
// files (errors.go, options.go) per the global conventions.
package matrix

import "fmt"

// transform is the 2-bit tag a view applies while reading through to its
// storage core. Composition is XOR, which makes double negation and double
// transpose cancel structurally instead of stacking wrapper objects.
// The four reachable states are exactly: identity, negate, transpose,
// transpose∘negate.
type transform uint8

const (
	// tfIdentity reads the core verbatim.
	tfIdentity transform = 0

	// tfNegate flips the sign of every entry on read.
	tfNegate transform = 1 << 0

	// tfTranspose swaps (i, j) to (j, i) on read.
	tfTranspose transform = 1 << 1
)

// core is the owned backing grid of a Matrix: a row-major flat float64
// slice plus its shape and the numeric policy it was constructed under.
// A core is immutable after the constructor that filled it returns; every
// materializing operation allocates a fresh one. Views share a core by
// pointer — the garbage collector keeps it alive for as long as any view
// references it, which is the ownership contract the view layer relies on.
type core struct {
	rows int       // number of rows, ≥ 1
	cols int       // number of columns, ≥ 1
	data []float64 // row-major entries, len == rows*cols

	opts Options // numeric policy snapshot (render precision et al.)
}

// index maps a (row, col) pair to the flat offset in data.
// Callers guarantee bounds; no validation here.
// Complexity: O(1).
func (c *core) index(i, j int) int {
	return i*c.cols + j
}

// Matrix is an immutable matrix value: a shared storage core plus the
// transform tag under which this particular handle reads it.
//
// Shape accessors report the LOGICAL shape (after any transpose), and all
// reads resolve the transform, so two handles over one core can disagree
// about shape and sign while sharing every byte of storage.
//
// The zero value is not usable; obtain values from the constructors.
// All methods are O(1) except String (O(r·c)).
type Matrix struct {
	core *core     // shared backing storage, never nil for constructed values
	tag  transform // view transform composed onto the core
}

// Compile-time interface assertions.
var _ fmt.Stringer = (*Matrix)(nil)
