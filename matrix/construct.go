// SPDX-License-Identifier: MIT

// Package matrix: constructors.
// Every value enters the engine through this file. Constructors validate
// fail-fast, resolve the numeric policy once, copy caller data (no
// aliasing), and hand back an identity-tagged handle over a fresh core.

package matrix

import "math"

// New builds a Matrix from an ordered slice of ordered rows.
// Implementation:
//   - Stage 1 (Validate): rectangular non-empty input, then the numeric policy.
//   - Stage 2 (Prepare): resolve options; allocate the backing core.
//   - Stage 3 (Execute): copy rows into row-major storage.
//   - Stage 4 (Finalize): wrap in an identity-tagged handle.
//
// Behavior highlights:
//   - The input slices are copied, never aliased: later caller mutation of
//     rows cannot be observed through the returned value.
//   - Under WithValidateNaNInf (the default) any NaN/±Inf entry is rejected.
//
// Inputs:
//   - rows: outer slice of equal-length inner rows, both dimensions ≥ 1.
//   - opts: optional numeric policy overrides.
//
// Returns:
//   - *Matrix, or nil with a sentinel error.
//
// Errors:
//   - ErrShape (empty or ragged input), ErrNaNInf (policy violation).
//
// Complexity: O(r·c) time and memory.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	// Stage 1: Validate the grid before any allocation.
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// Stage 2: Resolve policy and allocate the core.
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for _, row := range rows {
			if err := validateFinite(row); err != nil {
				return nil, matrixErrorf(opNew, err)
			}
		}
	}
	c := newCore(len(rows), len(rows[0]), o)

	// Stage 3: Copy row-major.
	var offset int // running start of the current row in c.data
	for _, row := range rows {
		copy(c.data[offset:offset+c.cols], row)
		offset += c.cols
	}

	// Stage 4: Return the identity view.
	return &Matrix{core: c, tag: tfIdentity}, nil
}

// NewVector builds a column vector (n×1) with one entry per argument.
// Uses the default numeric policy; construct via New for custom options.
//
// Errors:
//   - ErrShape (no components), ErrNaNInf (policy violation).
//
// Complexity: O(n).
func NewVector(components ...float64) (*Matrix, error) {
	// Stage 1: at least one component is required.
	if len(components) == 0 {
		return nil, matrixErrorf(opNewVector, ErrShape)
	}
	o := gatherOptions()
	if o.validateNaNInf {
		if err := validateFinite(components); err != nil {
			return nil, matrixErrorf(opNewVector, err)
		}
	}

	// Stage 2: single column core, one copy.
	c := newCore(len(components), 1, o)
	copy(c.data, components)

	return &Matrix{core: c, tag: tfIdentity}, nil
}

// NewUnitVector builds a column vector rescaled to Euclidean norm 1.
// Implementation:
//   - Stage 1 (Validate): delegate component checks to NewVector.
//   - Stage 2 (Execute): compute the norm; reject a zero direction.
//   - Stage 3 (Finalize): divide every entry by the norm in place on the
//     still-private core (the handle has not escaped yet, so immutability
//     is preserved from the caller's perspective).
//
// Errors:
//   - ErrShape (no components), ErrNaNInf (policy violation),
//     ErrDegenerateVector (all components zero).
//
// Complexity: O(n).
func NewUnitVector(components ...float64) (*Matrix, error) {
	v, err := NewVector(components...)
	if err != nil {
		return nil, matrixErrorf(opNewUnitVector, err)
	}

	// Norm of the freshly built column; loop over the private core directly.
	var sum float64
	for _, x := range v.core.data {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return nil, matrixErrorf(opNewUnitVector, ErrDegenerateVector)
	}

	// Per-entry division keeps each component correctly rounded;
	// multiplying by a precomputed reciprocal loses the last ulp.
	for i := range v.core.data {
		v.core.data[i] /= norm
	}

	return v, nil
}

// NewZeros returns a zero-initialized rows×cols Matrix.
// Thin intention-revealing constructor; the runtime zeroes the storage.
//
// Errors:
//   - ErrShape (non-positive dimensions).
//
// Complexity: O(r·c) zero-init.
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewZeros, err)
	}

	return &Matrix{core: newCore(rows, cols, gatherOptions(opts...)), tag: tfIdentity}, nil
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Determinism: fixed i-loop; single write per diagonal cell.
//
// Errors:
//   - ErrShape (n < 1).
//
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	if err := ValidateDims(n, n); err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	c := newCore(n, n, gatherOptions(opts...))
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		c.data[c.index(i, i)] = 1.0
	}

	return &Matrix{core: c, tag: tfIdentity}, nil
}

// newCore allocates a zeroed rows×cols core carrying the resolved policy.
// Callers guarantee positive dimensions.
// Complexity: O(r·c).
func newCore(rows, cols int, o Options) *core {
	return &core{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
		opts: o,
	}
}
