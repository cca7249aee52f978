// SPDX-License-Identifier: MIT

// Package matrix: centralized validators.
// Every public operation routes its preconditions through this file so that
// each rule lives in exactly one place and returns exactly one sentinel.
// Validators return PLAIN sentinels; operation entry points add call-site
// context via matrixErrorf. Keep validators allocation-free on the happy path.

package matrix

import "math"

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures m is a usable value: non-nil handle over non-nil
// storage. The zero Matrix{} fails here, which keeps every other validator
// free of nil checks.
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil || m.core == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateRows ensures a construction input is a non-empty rectangular grid:
// at least one row, at least one column, and every row of equal length.
// Returns ErrShape on violation.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrShape
	}
	width := len(rows[0]) // all rows must match the first
	for _, row := range rows {
		if len(row) != width {
			return ErrShape
		}
	}

	return nil
}

// ValidateDims ensures requested dimensions are strictly positive.
// Returns ErrShape on violation.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrShape
	}

	return nil
}

// ValidateSameShape ensures a and b have identical logical shapes, as
// required by elementwise Add/Sub and exact comparison.
// Returns ErrShape on mismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrShape
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions agree for the product
// a × b (a.Cols == b.Rows).
// Returns ErrShape on mismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrShape
	}

	return nil
}

// ValidateVector ensures m is a vector shape: a single column or a single
// row. Norm and the geometry helpers require this.
// Returns ErrShape on violation.
// Complexity: O(1).
func ValidateVector(m *Matrix) error {
	if m.Rows() != 1 && m.Cols() != 1 {
		return ErrShape
	}

	return nil
}

// ValidateSquare ensures the logical shape is n×n.
// Returns ErrShape on violation.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrShape
	}

	return nil
}

// ValidateBinaryNotNil is the composite nil gate for two-operand entry
// points: both operands must pass ValidateNotNil.
// Complexity: O(1).
func ValidateBinaryNotNil(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// validateFinite rejects NaN/±Inf entries during construction ingestion.
// Gated by the validateNaNInf policy at the call sites.
// Returns ErrNaNInf on the first non-finite value.
// Complexity: O(n).
func validateFinite(vals []float64) error {
	for _, v := range vals {
		if isNonFinite(v) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateBounds ensures (i, j) addresses a cell inside the logical shape.
// Returns ErrOutOfRange on violation.
// Complexity: O(1).
func validateBounds(m *Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return ErrOutOfRange
	}

	return nil
}
