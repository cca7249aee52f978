// SPDX-License-Identifier: MIT

// Package geometry: binary vector operations (cross product, angle).

package geometry

import (
	"math"

	"github.com/katalvlaran/linath/matrix"
)

// components flattens a vector-shaped Matrix into its logical component
// slice, accepting both orientations (n×1 column and 1×n row view).
//
// Errors:
//   - matrix.ErrNilMatrix on nil input; matrix.ErrShape unless m is a vector.
func components(m *matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVector(m); err != nil {
		return nil, err
	}

	rows, cols := m.Shape()
	if rows == 1 {
		out := make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(0, j)
			if err != nil {
				return nil, err
			}
			out[j] = v
		}

		return out, nil
	}

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		v, err := m.At(i, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Cross returns the cross product a × b of two 3-component vectors as a
// fresh 3×1 column. Either operand may arrive in row orientation; the
// logical components are what matters.
// Implementation:
//   - Stage 1 (Validate): both operands flatten to exactly 3 components.
//   - Stage 2 (Execute): textbook determinant expansion.
//   - Stage 3 (Finalize): rebuild a column vector under the default policy.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShape (not vector-shaped),
//     ErrNot3D (vector of the wrong length).
//
// Complexity: O(1).
func Cross(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	// Stage 1: Validate.
	av, err := components(a)
	if err != nil {
		return nil, geometryErrorf(opCross, err)
	}
	bv, err := components(b)
	if err != nil {
		return nil, geometryErrorf(opCross, err)
	}
	if len(av) != 3 || len(bv) != 3 {
		return nil, geometryErrorf(opCross, ErrNot3D)
	}

	// Stage 2: Execute.
	x := av[1]*bv[2] - av[2]*bv[1]
	y := av[2]*bv[0] - av[0]*bv[2]
	z := av[0]*bv[1] - av[1]*bv[0]

	// Stage 3: Finalize.
	out, err := matrix.NewVector(x, y, z)
	if err != nil {
		return nil, geometryErrorf(opCross, err)
	}

	return out, nil
}

// Angle returns the angle between two vectors in radians, in [0, π].
// Both operands may be rows or columns; they must have the same component
// count and non-zero length.
// Implementation:
//   - Stage 1 (Validate): flatten both operands; equal component counts.
//   - Stage 2 (Execute): cos = (a·b)/(‖a‖‖b‖), clamped into [-1, 1] so
//     rounding at the boundaries never escapes Acos's domain.
//   - Stage 3 (Finalize): math.Acos.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShape (not a vector / length mismatch),
//     matrix.ErrDegenerateVector (zero-length operand).
//
// Complexity: O(n).
func Angle(a, b *matrix.Matrix) (float64, error) {
	// Stage 1: Validate.
	av, err := components(a)
	if err != nil {
		return 0, geometryErrorf(opAngle, err)
	}
	bv, err := components(b)
	if err != nil {
		return 0, geometryErrorf(opAngle, err)
	}
	if len(av) != len(bv) {
		return 0, geometryErrorf(opAngle, matrix.ErrShape)
	}

	// Stage 2: Execute.
	var dot, aa, bb float64
	for k := range av {
		dot += av[k] * bv[k]
		aa += av[k] * av[k]
		bb += bv[k] * bv[k]
	}
	if aa == 0 || bb == 0 {
		return 0, geometryErrorf(opAngle, matrix.ErrDegenerateVector)
	}

	cos := dot / (math.Sqrt(aa) * math.Sqrt(bb))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	// Stage 3: Finalize.
	return math.Acos(cos), nil
}
