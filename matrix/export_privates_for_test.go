// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private View State and Options Snapshot
//
// Purpose:
//   - Expose the UNEXPORTED view internals (core identity, transform tag)
//     and the internal options snapshot to matrix_test ONLY.
//   - Enable white-box verification of the no-copy contract (views share
//     cores) and tag composition, without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while
//     letting it live in package matrix with access to private symbols.
//
// Behavior & Determinism:
//   - Pure accessors; no allocations beyond snapshot values; no side effects.

// SharesCore_TestOnly reports whether two handles read the same storage core.
// The heart of the view contract: T()/Neg() must share, Clone()/ops must not.
func SharesCore_TestOnly(a, b *Matrix) bool {
	return a.core == b.core
}

// TagBits_TestOnly exposes the raw transform tag for composition tests.
func TagBits_TestOnly(m *Matrix) uint8 {
	return uint8(m.tag)
}

// Transform bit exports so tests can assert exact composed states.
const (
	TagIdentity_TestOnly  = uint8(tfIdentity)
	TagNegate_TestOnly    = uint8(tfNegate)
	TagTranspose_TestOnly = uint8(tfTranspose)
)

// CoreData_TestOnly returns the LIVE backing slice of m's core so tests can
// prove storage independence after Clone. Production code never sees this.
func CoreData_TestOnly(m *Matrix) []float64 {
	return m.core.data
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicRenderPrecisionInvalid_TestOnly = panicRenderPrecisionInvalid
)

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
type OptionsSnapshot struct {
	ValidateNaNInf  bool
	RenderPrecision int
}

// GatherOptionsSnapshot_TestOnly resolves opts through the internal pipeline
// and returns a snapshot. Keep in sync with the Options layout.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ValidateNaNInf:  o.validateNaNInf,
		RenderPrecision: o.renderPrec,
	}
}

// PolicySnapshot_TestOnly returns the policy a constructed value carries on
// its core (views inherit it; materialized results inherit the left operand).
func PolicySnapshot_TestOnly(m *Matrix) OptionsSnapshot {
	return OptionsSnapshot{
		ValidateNaNInf:  m.core.opts.validateNaNInf,
		RenderPrecision: m.core.opts.renderPrec,
	}
}
