// SPDX-License-Identifier: MIT

// Package complexnum: functional configuration for comparisons and power.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Consumers:
//   - Equal / AllClose read eps and validateNaNInf.
//   - Power reads validateNaNInf and integerFastPath.
package complexnum

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by Equal and AllClose.
	// It acts as an absolute bound near zero and a relative bound for
	// large magnitudes: |z−w| ≤ eps·(1 + max(|z|, |w|)).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf rejects NaN/±Inf operands (ErrDomain) in Power,
	// and makes Equal report false for them.
	DefaultValidateNaNInf = true

	// DefaultIntegerFastPath computes z^n by binary exponentiation when the
	// exponent is a real integer with |n| ≤ MaxIntegerPowerExponent,
	// instead of exp(n·ln z).
	DefaultIntegerFastPath = true

	// MaxIntegerPowerExponent bounds the integer fast path of Power.
	MaxIntegerPowerExponent = 1024
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "complexnum: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps             float64 // >= 0; DefaultEpsilon
	validateNaNInf  bool    // DefaultValidateNaNInf
	integerFastPath bool    // DefaultIntegerFastPath
}

// WithEpsilon sets the tolerance used by Equal and AllClose.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps = 0 turns Equal into exact component comparison.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-operand validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-operand validation.
// Power then lets NaN/±Inf propagate through IEEE arithmetic, and Equal
// treats bit-identical infinities as equal.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithIntegerFastPath enables the binary-exponentiation path of Power (default).
func WithIntegerFastPath() Option {
	return func(o *Options) { o.integerFastPath = true }
}

// WithoutIntegerFastPath forces Power through exp(w·ln z) even for small
// integer exponents.
func WithoutIntegerFastPath() Option {
	return func(o *Options) { o.integerFastPath = false }
}

// gatherOptions applies user options over the documented defaults.
// Options are applied in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:             DefaultEpsilon,
		validateNaNInf:  DefaultValidateNaNInf,
		integerFastPath: DefaultIntegerFastPath,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
