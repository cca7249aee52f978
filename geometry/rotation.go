// SPDX-License-Identifier: MIT

// Package geometry: rotation matrix builders.
//
// Angles are radians, counterclockwise-positive around the named axis when
// looking down the axis toward the origin (right-hand rule).

package geometry

import (
	"math"

	"github.com/katalvlaran/linath/matrix"
)

// Rotation2D returns the 2×2 rotation by theta radians.
//
// Errors:
//   - matrix.ErrNaNInf when theta is non-finite (NaN propagates through
//     Sincos and the constructor's ingestion policy rejects it).
//
// Complexity: O(1).
func Rotation2D(theta float64) (*matrix.Matrix, error) {
	sin, cos := math.Sincos(theta)
	out, err := matrix.New([][]float64{
		{cos, -sin},
		{sin, cos},
	})
	if err != nil {
		return nil, geometryErrorf(opRotation2D, err)
	}

	return out, nil
}

// RotationX returns the 3×3 rotation by theta radians around the X axis.
//
// Errors: matrix.ErrNaNInf on non-finite theta.
// Complexity: O(1).
func RotationX(theta float64) (*matrix.Matrix, error) {
	sin, cos := math.Sincos(theta)
	out, err := matrix.New([][]float64{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	})
	if err != nil {
		return nil, geometryErrorf(opRotationX, err)
	}

	return out, nil
}

// RotationY returns the 3×3 rotation by theta radians around the Y axis.
//
// Errors: matrix.ErrNaNInf on non-finite theta.
// Complexity: O(1).
func RotationY(theta float64) (*matrix.Matrix, error) {
	sin, cos := math.Sincos(theta)
	out, err := matrix.New([][]float64{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	})
	if err != nil {
		return nil, geometryErrorf(opRotationY, err)
	}

	return out, nil
}

// RotationZ returns the 3×3 rotation by theta radians around the Z axis.
//
// Errors: matrix.ErrNaNInf on non-finite theta.
// Complexity: O(1).
func RotationZ(theta float64) (*matrix.Matrix, error) {
	sin, cos := math.Sincos(theta)
	out, err := matrix.New([][]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	})
	if err != nil {
		return nil, geometryErrorf(opRotationZ, err)
	}

	return out, nil
}
