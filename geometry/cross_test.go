// geometry/cross_test.go
// SPDX-License-Identifier: MIT
// Package geometry_test covers the basis vectors and binary vector
// operations against textbook identities.
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linath/geometry"
	"github.com/katalvlaran/linath/matrix"
)

// mustEqual asserts exact value equality between two matrices.
func mustEqual(t *testing.T, want, got *matrix.Matrix) {
	t.Helper()
	eq, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.True(t, eq, "want\n%svs got\n%s", want, got)
}

func TestAxes_AreUnitColumns(t *testing.T) {
	for name, axis := range map[string]*matrix.Matrix{
		"X": geometry.AxisX(),
		"Y": geometry.AxisY(),
		"Z": geometry.AxisZ(),
	} {
		require.Equal(t, 3, axis.Rows(), "axis %s", name)
		require.Equal(t, 1, axis.Cols(), "axis %s", name)

		n, err := matrix.Norm(axis)
		require.NoError(t, err)
		require.Equal(t, 1.0, n, "axis %s", name)
	}
}

func TestCross_RightHandedBasis(t *testing.T) {
	// X×Y=Z, Y×Z=X, Z×X=Y
	xy, err := geometry.Cross(geometry.AxisX(), geometry.AxisY())
	require.NoError(t, err)
	mustEqual(t, geometry.AxisZ(), xy)

	yz, err := geometry.Cross(geometry.AxisY(), geometry.AxisZ())
	require.NoError(t, err)
	mustEqual(t, geometry.AxisX(), yz)

	zx, err := geometry.Cross(geometry.AxisZ(), geometry.AxisX())
	require.NoError(t, err)
	mustEqual(t, geometry.AxisY(), zx)
}

func TestCross_Anticommutes(t *testing.T) {
	a, err := matrix.NewVector(1, 2, 3)
	require.NoError(t, err)
	b, err := matrix.NewVector(4, 5, 6)
	require.NoError(t, err)

	ab, err := geometry.Cross(a, b)
	require.NoError(t, err)
	ba, err := geometry.Cross(b, a)
	require.NoError(t, err)

	// a×b + b×a = 0
	sum, err := matrix.Add(ab, ba)
	require.NoError(t, err)
	zero, err := matrix.NewZeros(3, 1)
	require.NoError(t, err)
	mustEqual(t, zero, sum)

	// Known expansion for this pair.
	want, err := matrix.NewVector(-3, 6, -3)
	require.NoError(t, err)
	mustEqual(t, want, ab)
}

func TestCross_ParallelIsZero(t *testing.T) {
	a, err := matrix.NewVector(2, -1, 5)
	require.NoError(t, err)

	self, err := geometry.Cross(a, a)
	require.NoError(t, err)
	zero, err := matrix.NewZeros(3, 1)
	require.NoError(t, err)
	mustEqual(t, zero, self)
}

func TestCross_AcceptsRowViews(t *testing.T) {
	a, err := matrix.NewVector(1, 2, 3)
	require.NoError(t, err)
	b, err := matrix.NewVector(4, 5, 6)
	require.NoError(t, err)

	plain, err := geometry.Cross(a, b)
	require.NoError(t, err)
	viaViews, err := geometry.Cross(a.T(), b.Neg().Neg())
	require.NoError(t, err)
	mustEqual(t, plain, viaViews)
}

func TestCross_RejectsWrongShapes(t *testing.T) {
	v2, err := matrix.NewVector(1, 2)
	require.NoError(t, err)
	v3, err := matrix.NewVector(1, 2, 3)
	require.NoError(t, err)

	_, err = geometry.Cross(v2, v3)
	require.ErrorIs(t, err, geometry.ErrNot3D)
	_, err = geometry.Cross(v3, v2)
	require.ErrorIs(t, err, geometry.ErrNot3D)

	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = geometry.Cross(m, v3)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = geometry.Cross(nil, v3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAngle_KnownValues(t *testing.T) {
	x, y := geometry.AxisX(), geometry.AxisY()

	right, err := geometry.Angle(x, y)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, right, 1e-15)

	zero, err := geometry.Angle(x, x)
	require.NoError(t, err)
	require.InDelta(t, 0, zero, 1e-7)

	flat, err := geometry.Angle(x, x.Neg())
	require.NoError(t, err)
	require.InDelta(t, math.Pi, flat, 1e-15)

	diag, err := matrix.NewVector(1, 1, 0)
	require.NoError(t, err)
	eighth, err := geometry.Angle(x, diag)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, eighth, 1e-15)
}

func TestAngle_OrientationIndependent(t *testing.T) {
	a, err := matrix.NewVector(3, 4, 0)
	require.NoError(t, err)
	b, err := matrix.NewVector(0, 1, 1)
	require.NoError(t, err)

	plain, err := geometry.Angle(a, b)
	require.NoError(t, err)
	mixed, err := geometry.Angle(a.T(), b)
	require.NoError(t, err)
	require.Equal(t, plain, mixed)
}

func TestAngle_Errors(t *testing.T) {
	v3, err := matrix.NewVector(1, 2, 3)
	require.NoError(t, err)
	v2, err := matrix.NewVector(1, 2)
	require.NoError(t, err)

	_, err = geometry.Angle(v3, v2)
	require.ErrorIs(t, err, matrix.ErrShape)

	zero, err := matrix.NewVector(0, 0, 0)
	require.NoError(t, err)
	_, err = geometry.Angle(v3, zero)
	require.ErrorIs(t, err, matrix.ErrDegenerateVector)

	_, err = geometry.Angle(nil, v3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAngle_ClampNeverEscapesDomain(t *testing.T) {
	// Self-angle of an irrational direction: rounding may push the raw
	// cosine a hair past 1; the clamp keeps Acos out of NaN territory.
	u, err := matrix.NewUnitVector(1, 1, 1)
	require.NoError(t, err)

	a, err := geometry.Angle(u, u)
	require.NoError(t, err)
	require.False(t, math.IsNaN(a))
	require.InDelta(t, 0, a, 1e-7)
}
