// SPDX-License-Identifier: MIT

// Package matrix: equality and tolerant comparison.
// Equal is the value-semantics predicate: differing shapes simply mean "not
// equal". AllClose is the numeric tool: it demands equal shapes up front and
// fails loudly otherwise, matching how tolerance checks are actually used.

package matrix

import "math"

// Equal reports whether a and b have the same logical shape and exactly
// equal logical entries. Exact comparison is the documented policy for the
// value model (construction data round-trips bit-for-bit); reach for
// AllClose when tolerance is wanted.
//
// Errors:
//   - ErrNilMatrix only; a shape difference is inequality, not an error.
//
// Complexity: O(r·c).
func Equal(a, b *Matrix) (bool, error) {
	// Stage 1: Validate operands.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	// Stage 2: Shape difference short-circuits to "not equal".
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Stage 3: Fast-path when both operands read their cores verbatim.
	rows, cols := a.Shape()
	if a.tag == tfIdentity && b.tag == tfIdentity {
		for idx, av := range a.core.data {
			if av != b.core.data[idx] {
				return false, nil
			}
		}

		return true, nil
	}

	// Fallback: transform-aware loop.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if a.at(i, j) != b.at(i, j) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| over identical
// shapes. NaN never compares close; equal infinities of the same sign do.
// Negative tolerances are normalized by absolute value.
//
// Errors:
//   - ErrNilMatrix; ErrShape when shapes differ (unlike Equal, a mismatch
//     here is a usage error, not a comparison result).
//
// Complexity: O(r·c), O(1) space.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	// Stage 1: Validate operands and shapes.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Stage 2: Normalize tolerances.
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	// Stage 3: Element scan; the closeness rule lives in one helper.
	rows, cols := a.Shape()
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !closeEnough(a.at(i, j), b.at(i, j), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough applies the elementwise closeness rule for AllClose.
// Exact equality short-circuits (covering equal infinities); any remaining
// non-finite operand can never be close; otherwise the tolerance inequality
// decides.
// Complexity: O(1).
func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv {
		return true
	}
	if isNonFinite(av) || isNonFinite(bv) {
		return false
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
