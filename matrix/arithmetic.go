// SPDX-License-Identifier: MIT

// Package matrix: the operator layer.
// All arithmetic entry points validate fail-fast, materialize a fresh core
// (operands are never mutated, results are never views), and stamp the left
// operand's numeric policy onto the result. Fast paths run flat over raw
// storage when both operands are untransformed; fallbacks resolve the view
// transform per cell.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew           = "New"
	opNewVector     = "NewVector"
	opNewUnitVector = "NewUnitVector"
	opNewZeros      = "NewZeros"
	opNewIdentity   = "NewIdentity"
	opAt            = "At"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opDiv           = "Div"
	opDot           = "Dot"
	opMatVec        = "MatVec"
	opNorm          = "Norm"
	opEqual         = "Equal"
	opAllClose      = "AllClose"
	opToGonum       = "ToGonum"
	opFromGonum     = "FromGonum"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// signPlus and signMinus select the addSub kernel direction.
const (
	signPlus  = 1.0
	signMinus = -1.0
)

// Add returns a new Matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result core.
// Stage 3 (Execute): flat fast-path or transform-aware fallback.
// Stage 4 (Finalize): return result.
// Complexity: O(r·c) time and memory.
func Add(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, signPlus, opAdd)
}

// Sub returns a new Matrix containing the element-wise difference a − b.
// Same staging and complexity as Add.
func Sub(a, b *Matrix) (*Matrix, error) {
	return addSub(a, b, signMinus, opSub)
}

// addSub is the shared elementwise kernel behind Add and Sub:
// res = a + sign·b. Validation and allocation happen once here so the two
// public entry points cannot drift apart.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	// Stage 1: Validate inputs non-nil, then shapes.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Stage 2: Allocate the result core under the left operand's policy.
	rows, cols := a.Shape()
	res := newCore(rows, cols, a.core.opts)

	// Stage 3: Fast-path when both operands read their cores verbatim.
	if a.tag == tfIdentity && b.tag == tfIdentity {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = a.core.data[idx] + sign*b.core.data[idx]
		}

		return &Matrix{core: res, tag: tfIdentity}, nil
	}

	// Fallback: transform-aware loop.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[res.index(i, j)] = a.at(i, j) + sign*b.at(i, j) // bounds ensured by shape check
		}
	}

	// Stage 4: Return result.
	return &Matrix{core: res, tag: tfIdentity}, nil
}

// Mul performs standard matrix multiplication a × b.
// Stage 1 (Validate): nil-checks and inner-dimension match.
// Stage 2 (Prepare): allocate result core (a.Rows × b.Cols).
// Stage 3 (Execute): i→k→j fast-path over flat storage, or transform-aware
// i→j→k fallback.
// Stage 4 (Finalize): return result.
//
// A column Vector is a Matrix, so Matrix×Vector needs no separate entry
// point; a 1×1 product stays a Matrix — use Dot for the bare scalar.
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul(a, b *Matrix) (*Matrix, error) {
	// Stage 1: Validate inputs.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result core.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newCore(aRows, bCols, a.core.opts)

	var (
		i, j, k int     // loop iterators
		av      float64 // current a element
	)
	// Stage 3: Fast-path when both operands read their cores verbatim.
	if a.tag == tfIdentity && b.tag == tfIdentity {
		// row-major accumulation into res.data
		// a.core.data layout: i*aCols + k
		// b.core.data layout: k*bCols + j
		var rowOffsetA, rowOffsetB, rowOffsetR int
		for i = 0; i < aRows; i++ {
			rowOffsetA = i * aCols
			rowOffsetR = i * bCols
			for k = 0; k < aCols; k++ {
				av = a.core.data[rowOffsetA+k]
				if av == 0 {
					continue // skip zero for performance
				}
				rowOffsetB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowOffsetR+j] += av * b.core.data[rowOffsetB+j]
				}
			}
		}

		return &Matrix{core: res, tag: tfIdentity}, nil
	}

	// Fallback: transform-aware triple loop (i-j-k).
	var current float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av = a.at(i, k)
				if av == 0 {
					continue // skip zero for performance
				}
				current += av * b.at(k, j) // accumulate product
			}
			res.data[res.index(i, j)] = current
		}
	}

	// Stage 4: Return result.
	return &Matrix{core: res, tag: tfIdentity}, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Scalar multiplication has a single entry point, so it commutes trivially.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is non-finite under m's policy.
//
// Complexity: O(r·c).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	return scaleBy(m, alpha, opScale)
}

// Div returns a new Matrix with every element divided by the scalar alpha.
// There is no matrix-by-matrix division. Each entry is divided directly;
// multiplying by a precomputed reciprocal loses the last ulp.
//
// Errors:
//   - ErrNilMatrix; ErrDivisionByZero when alpha == 0; ErrNaNInf when alpha
//     is non-finite under m's policy.
//
// Complexity: O(r·c).
func Div(m *Matrix, alpha float64) (*Matrix, error) {
	// Stage 1: Validate input; the scalar counts as ingested data.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if alpha == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}
	if m.core.opts.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opDiv, ErrNaNInf)
	}

	// Stage 2: Allocate result core.
	rows, cols := m.Shape()
	res := newCore(rows, cols, m.core.opts)

	// Stage 3: Fast-path for an untransformed source.
	if m.tag == tfIdentity {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = m.core.data[idx] / alpha
		}

		return &Matrix{core: res, tag: tfIdentity}, nil
	}

	// Fallback: transform-aware loop.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[res.index(i, j)] = m.at(i, j) / alpha // bounds ensured
		}
	}

	// Stage 4: Return result.
	return &Matrix{core: res, tag: tfIdentity}, nil
}

// scaleBy is the multiplication kernel behind Scale.
// Stage 1 (Validate): nil-check and scalar policy.
// Stage 2 (Prepare): allocate result core.
// Stage 3 (Execute): flat fast-path or transform-aware fallback.
// Stage 4 (Finalize): return result.
func scaleBy(m *Matrix, alpha float64, opTag string) (*Matrix, error) {
	// Stage 1: Validate input; the scalar counts as ingested data.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if m.core.opts.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opTag, ErrNaNInf)
	}

	// Stage 2: Allocate result core.
	rows, cols := m.Shape()
	res := newCore(rows, cols, m.core.opts)

	// Stage 3: Fast-path for an untransformed source.
	if m.tag == tfIdentity {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = m.core.data[idx] * alpha
		}

		return &Matrix{core: res, tag: tfIdentity}, nil
	}

	// Fallback: transform-aware loop.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[res.index(i, j)] = m.at(i, j) * alpha // bounds ensured
		}
	}

	// Stage 4: Return result.
	return &Matrix{core: res, tag: tfIdentity}, nil
}

// Dot is the scalar-unwrap entry point: the product of a 1×n row vector and
// an n×1 column vector collapses to a single cell, and Dot hands that cell
// back as a bare float64 instead of a 1×1 Matrix. Any other operand shape is
// rejected — use Mul when a Matrix result is wanted.
//
// Errors:
//   - ErrNilMatrix; ErrShape unless a is 1×n, b is n×1 with matching n.
//
// Complexity: O(n).
func Dot(a, b *Matrix) (float64, error) {
	// Stage 1: Validate operands and the collapsing shape.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if a.Rows() != 1 || b.Cols() != 1 || a.Cols() != b.Rows() {
		return 0, matrixErrorf(opDot, ErrShape)
	}

	// Stage 2: Accumulate. A vector core is linear in either orientation
	// (1×n and n×1 share the same flat layout), so both operands stream
	// straight from storage; negation folds into one sign factor.
	sign := 1.0
	if a.tag&tfNegate != 0 {
		sign = -sign
	}
	if b.tag&tfNegate != 0 {
		sign = -sign
	}
	var sum float64
	n := a.Cols()
	for k := 0; k < n; k++ {
		sum += a.core.data[k] * b.core.data[k]
	}

	return sign * sum, nil
}

// MatVec computes y = m·x for a plain float64 slice x, returning a plain
// slice. Convenience plumbing for callers that do not carry column vectors.
//
// Errors:
//   - ErrNilMatrix; ErrShape when len(x) != m.Cols().
//
// Complexity: O(r·c).
func MatVec(m *Matrix, x []float64) ([]float64, error) {
	// Stage 1: Validate.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrShape)
	}

	// Stage 2: Allocate output.
	rows, cols := m.Shape()
	y := make([]float64, rows)

	var (
		i, k int     // loop iterators
		sum  float64 // row accumulator
	)
	// Stage 3: Fast-path for an untransformed source.
	if m.tag == tfIdentity {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = 0.0
			for k = 0; k < cols; k++ {
				sum += m.core.data[base+k] * x[k]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: transform-aware loop.
	for i = 0; i < rows; i++ {
		sum = 0.0
		for k = 0; k < cols; k++ {
			sum += m.at(i, k) * x[k]
		}
		y[i] = sum
	}

	return y, nil
}
