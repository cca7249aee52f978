// SPDX-License-Identifier: MIT

// Package matrix: the view layer.
// T and Neg are O(1): they return a new handle over the SAME storage core
// with the transform tag toggled. Reads resolve the tag on the fly (index
// swap for transpose, sign flip for negate); nothing is ever copied until a
// materializing operation or Clone asks for it.

package matrix

// Rows returns the number of rows of the logical (post-transform) shape.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	if m.tag&tfTranspose != 0 {
		return m.core.cols
	}

	return m.core.rows
}

// Cols returns the number of columns of the logical shape.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	if m.tag&tfTranspose != 0 {
		return m.core.rows
	}

	return m.core.cols
}

// Shape returns (rows, cols) of the logical shape.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	return m.Rows(), m.Cols()
}

// Len returns the outer dimension (row count): the component count for a
// column vector, 1 for a row vector, Rows() for anything else.
// Complexity: O(1).
func (m *Matrix) Len() int {
	return m.Rows()
}

// IsVector reports whether m is a single row or a single column.
// Complexity: O(1).
func (m *Matrix) IsVector() bool {
	return m.Rows() == 1 || m.Cols() == 1
}

// IsSquare reports whether the logical shape is n×n.
// Complexity: O(1).
func (m *Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// at reads the logical entry (i, j) with the transform resolved.
// Callers guarantee bounds; no validation here.
// Complexity: O(1).
func (m *Matrix) at(i, j int) float64 {
	if m.tag&tfTranspose != 0 {
		i, j = j, i // transposed view: swap before hitting storage
	}
	v := m.core.data[m.core.index(i, j)]
	if m.tag&tfNegate != 0 {
		v = -v
	}

	return v
}

// At retrieves the logical element at position (i, j).
// Returns ErrNilMatrix on the zero value and ErrOutOfRange when the index
// falls outside the logical shape.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opAt, err)
	}
	if err := validateBounds(m, i, j); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.at(i, j), nil
}

// T returns the transpose of m as a view: a (cols×rows)-shaped handle over
// the same storage core with the transpose bit toggled. Composing with an
// existing tag is XOR, so a double transpose hands back the original tag
// (and the original core) instead of stacking wrappers, and transposing a
// negated view yields transpose∘negate. No data is copied.
//
// The returned value holds the core pointer, so it keeps the storage alive
// independently of the handle it was derived from.
// Complexity: O(1).
func (m *Matrix) T() *Matrix {
	return &Matrix{core: m.core, tag: m.tag ^ tfTranspose}
}

// Neg returns the negation of m as a view: a same-shaped handle over the
// same storage core with the negate bit toggled. A double negation cancels
// back to the original tag. No data is copied, and the returned value keeps
// the shared core alive on its own (dropping the source binding is safe).
// Complexity: O(1).
func (m *Matrix) Neg() *Matrix {
	return &Matrix{core: m.core, tag: m.tag ^ tfNegate}
}

// Clone materializes m into a fresh identity-tagged core holding the
// logical values. Cloning a view bakes the transform in; cloning an owned
// value is a flat copy. The result shares nothing with m.
// Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	rows, cols := m.Rows(), m.Cols()
	c := newCore(rows, cols, m.core.opts)

	// Fast-path: untransformed source copies flat.
	if m.tag == tfIdentity {
		copy(c.data, m.core.data)

		return &Matrix{core: c, tag: tfIdentity}
	}

	// Fallback: resolve the transform cell by cell.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			c.data[c.index(i, j)] = m.at(i, j)
		}
	}

	return &Matrix{core: c, tag: tfIdentity}
}
