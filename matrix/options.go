// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of
// constructed values. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The policy is resolved ONCE at construction and travels with the
//     storage core: views inherit it untouched (they share the core), and
//     materializing operations stamp the left operand's policy onto their
//     fresh result. That keeps a whole expression tree on one policy without
//     re-threading options through every call.
//   - validateNaNInf guards ingestion only. Operations cannot manufacture
//     NaN from finite inputs (division by zero is rejected up front), so
//     re-validating every result would be pure overhead.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// construction ingestion. Enabled: NaN and ±Inf entries are rejected
	// with ErrNaNInf.
	DefaultValidateNaNInf = true

	// DefaultRenderPrecision is the digit count passed to %.*g when
	// rendering entries; -1 selects the shortest representation that
	// round-trips (the strconv 'g' default).
	DefaultRenderPrecision = -1

	// maxRenderPrecision bounds WithRenderPrecision: float64 never needs
	// more than 17 significant digits to round-trip.
	maxRenderPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRenderPrecisionInvalid = "matrix: WithRenderPrecision: digits must be -1..17"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	renderPrec     int  // DefaultRenderPrecision; -1..17
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation on construction.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing values keep their policy.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRenderPrecision sets the significant-digit count used by String.
// Inputs:
//   - digits: -1 for shortest round-trip form, otherwise 0..17.
//
// Errors:
//   - Panics with a stable message when digits is outside -1..17.
//
// Complexity: O(1).
func WithRenderPrecision(digits int) Option {
	if digits < -1 || digits > maxRenderPrecision {
		panic(panicRenderPrecisionInvalid)
	}

	// Assign validated precision
	return func(o *Options) { o.renderPrec = digits }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry for
// every constructor.
// Implementation:
//   - Stage 1: start from the documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: normalize via finalizeOptions.
//
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		renderPrec:     DefaultRenderPrecision,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Option constructors already reject nonsensical inputs, so the only job
// left is normalizing a hand-built Options zero value.
// Complexity: O(1).
func finalizeOptions(o *Options) {
	if o.renderPrec < -1 || o.renderPrec > maxRenderPrecision {
		o.renderPrec = DefaultRenderPrecision
	}
}
