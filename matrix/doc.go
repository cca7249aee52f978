// Package matrix implements the linath algebra engine: immutable Matrix,
// Vector and UnitVector values over shared row-major storage.
//
// The matrix package provides:
//
//   - Constructors (New, NewVector, NewUnitVector, NewZeros, NewIdentity)
//     with fail-fast shape validation and an explicit numeric policy.
//   - Lazy views: T() and Neg() return O(1) handles that read through a
//     shared storage core instead of copying; double transpose and double
//     negation cancel structurally.
//   - Dimension-checked operators (Add, Sub, Mul, Scale, Div, Dot) that
//     always materialize fresh storage and never mutate an operand.
//   - Measurement (Len, Norm), exact and tolerant comparison
//     (Equal, AllClose) and stable row-wise rendering.
//   - A bridge to gonum.org/v1/gonum/mat for callers that need solvers
//     beyond this package's scope.
//
// Values are best for small fixed-shape matrices (2×2 … 4×4) used in
// geometry and kinematics, where O(r·c) copies on materializing ops are
// irrelevant and shape bugs are the real enemy.
//
// Because constructed values never change, any number of goroutines may
// read the same Matrix concurrently. Nothing else is promised.
//
// See the examples in this package and geometry for usage patterns.
package matrix
