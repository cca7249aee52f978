// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels or right here; facades only compose or forward.

package matrix

// ---------- Operator aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(r·c).
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(r·c).
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r·n·c).
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// Abs is an alias for Norm: the Euclidean length of a vector-shaped Matrix.
// Named after the measurement operator it implements.
// Complexity: O(n).
func Abs(m *Matrix) (float64, error) { return Norm(m) }

// ---------- Validated function forms of the view methods ----------

// T returns mᵀ as a view over m's storage, with the nil gate the method
// form leaves to the caller.
// Complexity: O(1).
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("T", err)
	}

	return m.T(), nil
}

// Neg returns −m as a view over m's storage, with the nil gate the method
// form leaves to the caller.
// Complexity: O(1).
func Neg(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Neg", err)
	}

	return m.Neg(), nil
}

// Len returns the outer dimension (row count) of m: component count for a
// column vector, Rows() in general.
// Complexity: O(1).
func Len(m *Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("Len", err)
	}

	return m.Len(), nil
}

// CloneMatrix materializes m into an independent owned value.
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r·c).
func CloneMatrix(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ---------- Shape-derived constructors ----------

// ZerosLike returns a new zero matrix with the same logical shape as m.
// Handy to preallocate accumulators in caller code.
// Complexity: O(r·c) zeroing.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	// Read shape once and delegate; result carries m's numeric policy.
	return NewZeros(m.Rows(), m.Cols(), withOptions(m.core.opts))
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²).
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), withOptions(m.core.opts))
}

// withOptions adapts an already-resolved Options snapshot back into a
// single Option, so the *Like facades can forward a source value's policy
// through the public constructors.
func withOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}
