// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and assertions for the engine tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linath/matrix"
)

// Shared tolerance constants for CompareClose-style checks.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
)

// MustNew BUILDS a Matrix from rows or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.New(rows).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustNew(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows)
	if err != nil {
		t.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// MustVector BUILDS a column vector or fails the test.
func MustVector(t *testing.T, components ...float64) *matrix.Matrix {
	t.Helper()
	v, err := matrix.NewVector(components...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", components, err)
	}

	return v
}

// MustUnitVector BUILDS a normalized column vector or fails the test.
func MustUnitVector(t *testing.T, components ...float64) *matrix.Matrix {
	t.Helper()
	u, err := matrix.NewUnitVector(components...)
	if err != nil {
		t.Fatalf("NewUnitVector(%v): %v", components, err)
	}

	return u
}

// MustAt READS m[i,j] or fails the test.
// Behavior highlights:
//   - Clear failure site on bounds errors.
//
// Complexity:
//   - O(1) per call.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDims ASSERTS the logical shape of m.
func MustDims(t *testing.T, m *matrix.Matrix, r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("shape = %dx%d; want %dx%d", m.Rows(), m.Cols(), r, c)
	}
}

// RandGrid RETURNS an r×c grid with deterministic U(-1,1) values by seed.
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)).
//   - Stage 2: fill rows in fixed order.
//
// Behavior highlights:
//   - Reproducible randomness for property tests; values stay finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandGrid(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
		}
	}

	return rows
}

// RandFilled RETURNS a new r×c Matrix filled with deterministic U(-1,1).
// Deterministic per seed; prefer identical seeds across fast vs fallback
// paths to isolate path differences.
func RandFilled(t *testing.T, r, c int, seed int64) *matrix.Matrix {
	t.Helper()

	return MustNew(t, RandGrid(r, c, seed))
}

// CompareExact ASSERTS strict equality between a 2D literal and m.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices;
//     for floats use CompareClose instead.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
// Encapsulates the numeric tolerance logic used across tests.
func CompareClose(t *testing.T, a, b *matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\na=\n%sb=\n%s", rtol, atol, a, b)
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
// Prefer for ErrShape, ErrNilMatrix, ErrDegenerateVector checks.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
// Use for contracts that panic rather than return errors, like nil
// method receivers.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// InDelta RETURNS whether |a-b| ≤ delta (boolean, non-fatal).
// Prefer CompareClose for matrices; keep InDelta for scalar asserts.
func InDelta(t *testing.T, a, b float64, delta float64) bool {
	t.Helper()
	diff := a - b
	if diff < -delta || diff > delta {
		return false
	}

	return true
}

// ---------- bench helpers ----------

func mustFilled(b *testing.B, r, c int, seed int64) *matrix.Matrix {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = rng.Float64()*2 - 1 // [-1,1]
		}
	}
	m, err := matrix.New(rows)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", r, c, err)
	}
	return m
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
