// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("op: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrShape covers every shape violation: ragged or empty construction
	// input, non-positive requested dimensions, operand dimension mismatch
	// in Add/Sub/Mul/Dot, and Norm on a non-vector shape.
	ErrShape = errors.New("matrix: invalid or mismatched shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. The public indexer At MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDegenerateVector is returned by NewUnitVector when every component
	// is zero: the norm is zero and no direction can be derived.
	ErrDegenerateVector = errors.New("matrix: zero vector has no direction")

	// ErrDivisionByZero is returned by Div when the scalar divisor is zero.
	ErrDivisionByZero = errors.New("matrix: division by zero scalar")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (construction ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
