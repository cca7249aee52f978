// SPDX-License-Identifier: MIT

// Package matrix: gonum bridge.
// This library deliberately stops at value arithmetic — no inverses, no
// decompositions. Callers that need solvers hand their values to
// gonum.org/v1/gonum/mat through this file and copy results back. Both
// directions copy: the two libraries never share storage, so the
// immutability contract survives the round trip.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum materializes the logical values of m into a fresh *mat.Dense.
// The result owns its storage; later operations on either side are
// invisible to the other.
//
// Errors:
//   - ErrNilMatrix on the zero value.
//
// Complexity: O(r·c).
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	rows, cols := m.Shape()
	out := make([]float64, rows*cols)

	// Fast-path: untransformed source copies flat (both sides row-major).
	if m.tag == tfIdentity {
		copy(out, m.core.data)

		return mat.NewDense(rows, cols, out), nil
	}

	// Fallback: resolve the view transform cell by cell.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j] = m.at(i, j)
		}
	}

	return mat.NewDense(rows, cols, out), nil
}

// FromGonum copies any gonum mat.Matrix into an owned *Matrix under the
// given (or default) numeric policy. Works for views returned by gonum's
// own lazy T() as well — Dims/At resolve them.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrShape (empty dimensions),
//     ErrNaNInf (policy violation).
//
// Complexity: O(r·c).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	o := gatherOptions(opts...)
	c := newCore(rows, cols, o)
	var (
		i, j int     // loop iterators
		v    float64 // current source entry
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, ErrNaNInf)
			}
			c.data[c.index(i, j)] = v
		}
	}

	return &Matrix{core: c, tag: tfIdentity}, nil
}
