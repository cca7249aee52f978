// SPDX-License-Identifier: MIT

// Package matrix: measurement operators.

package matrix

import "math"

// Norm returns the Euclidean norm √(Σ v²) of a vector-shaped Matrix.
// The norm is transform-invariant — negation cannot change a square and
// transposition cannot change the component set — so the kernel streams the
// flat core storage regardless of the view tag (a vector core is linear in
// either orientation).
//
// Errors:
//   - ErrNilMatrix; ErrShape when m is neither a single row nor a single column.
//
// Complexity: O(n).
func Norm(m *Matrix) (float64, error) {
	// Stage 1: Validate.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if err := ValidateVector(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	// Stage 2: Accumulate squares over flat storage.
	var sum float64
	for _, v := range m.core.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// Norm is the method form of the package-level Norm.
func (m *Matrix) Norm() (float64, error) {
	return Norm(m)
}
