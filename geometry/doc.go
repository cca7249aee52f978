// Package geometry builds on package matrix with the small kinematics
// toolkit the value model exists for: unit basis vectors (AxisX, AxisY,
// AxisZ), the 3-vector cross product, angles between vectors, and planar or
// axis-aligned rotation builders (Rotation2D, RotationX/Y/Z).
//
// All values are immutable matrix.Matrix handles; every operation returns a
// fresh value and reports malformed input through sentinel errors
// (geometry's own ErrNot3D plus the matrix package's shape taxonomy).
package geometry
