// SPDX-License-Identifier: MIT

// Package geometry: sentinel errors.
//
// Each sentinel is prefixed "geometry:" so a wrapped chain reads cleanly.
// Conditions already covered by the matrix taxonomy are NOT duplicated here:
// mismatched vector lengths surface as matrix.ErrShape and zero directions
// as matrix.ErrDegenerateVector, so errors.Is works uniformly across both
// packages.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNot3D reports an operand that is not a 3-component vector where the
	// operation is only defined in three dimensions (Cross).
	ErrNot3D = errors.New("geometry: operation requires a 3-component vector")
)

// Operation tags used to prefix wrapped errors.
const (
	opCross      = "Cross"
	opAngle      = "Angle"
	opRotationX  = "RotationX"
	opRotationY  = "RotationY"
	opRotationZ  = "RotationZ"
	opRotation2D = "Rotation2D"
)

// geometryErrorf wraps err with the operation tag: "Cross: geometry: ...".
func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
