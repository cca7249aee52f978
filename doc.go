// Package linath is a small linear-algebra value library: matrices,
// vectors and unit vectors with dimension-checked arithmetic, built for
// the tiny fixed-size matrices (2×2 … 4×4) that drive geometry and
// kinematics code.
//
// 🚀 What is linath?
//
//	A compact, immutable-value library that brings together:
//		• Matrix / Vector / UnitVector: one value model, strict shape rules
//		• Lazy views: transpose and negation share storage, never copy
//		• Operators: Add, Sub, Mul, Scale, Div, Dot — validated fail-fast
//		• Measurement: row count and Euclidean norm with vector checks
//		• Rendering & equality: stable row-wise output, exact and tolerant compare
//		• Kinematics helpers: axes, cross products, rotation builders
//
// ✨ Why choose linath?
//
//   - Value semantics – operators return new values, operands never mutate
//   - Views, not copies – T() and Neg() are O(1) handles over shared storage
//   - Fail-fast errors – every shape rule is a sentinel you can errors.Is
//   - Interop – bridges to gonum.org/v1/gonum/mat when you need solvers
//
// Everything is organized under two subpackages:
//
//	matrix/   — the algebra engine: values, views, operators, comparison
//	geometry/ — axis vectors, cross products, rotation matrices
//
// Quick ASCII example:
//
//	    ⎡1 2⎤        ⎡-1 -2⎤
//	A = ⎣3 4⎦ , -A = ⎣-3 -4⎦  share one storage core; -A reads through it.
//
// Dive into the package docs of matrix and geometry for full examples.
//
//	go get github.com/katalvlaran/linath
package linath
