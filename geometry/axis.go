// SPDX-License-Identifier: MIT

// Package geometry: canonical basis vectors.

package geometry

import "github.com/katalvlaran/linath/matrix"

// AxisX returns the unit vector along the X axis as a fresh 3×1 column.
// Each call allocates its own value; handles never alias package state.
func AxisX() *matrix.Matrix {
	v, _ := matrix.NewVector(1, 0, 0) // cannot fail on fixed finite literals

	return v
}

// AxisY returns the unit vector along the Y axis as a fresh 3×1 column.
func AxisY() *matrix.Matrix {
	v, _ := matrix.NewVector(0, 1, 0) // cannot fail on fixed finite literals

	return v
}

// AxisZ returns the unit vector along the Z axis as a fresh 3×1 column.
func AxisZ() *matrix.Matrix {
	v, _ := matrix.NewVector(0, 0, 1) // cannot fail on fixed finite literals

	return v
}
