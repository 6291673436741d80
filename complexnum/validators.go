// SPDX-License-Identifier: MIT
// Package: complexnum
//
// Purpose:
//  - Single source of truth for operand checks shared by the fallible
//    operations (Divide, Ln, Log, Power, NthRoot, ...).
//  - Return sentinels tagged with the calling operation.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package complexnum

import "math"

// validateFinite returns ErrDomain+ErrNonFinite if any value is NaN or ±Inf.
func validateFinite(tag string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return complexErrorf(tag, errNonFinite)
		}
	}

	return nil
}

// validateResult returns ErrDomain if finite operands produced a NaN or
// ±Inf result (overflow).
func validateResult(tag string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return complexErrorf(tag, errOverflow)
		}
	}

	return nil
}

// validateDivisor returns ErrDivisionByZero if w has magnitude exactly 0.
// Assumes w is finite (caller validates first).
func validateDivisor(tag string, w Rectangular) error {
	if w.IsZero() {
		return complexErrorf(tag, ErrDivisionByZero)
	}

	return nil
}

// validateLogArgument returns ErrDomain if z has magnitude exactly 0.
func validateLogArgument(tag string, z Rectangular) error {
	if z.IsZero() {
		return complexErrorf(tag, ErrDomain)
	}

	return nil
}

// validateRootDegree returns ErrInvalidRoot unless n ≥ 1.
func validateRootDegree(tag string, n int) error {
	if n < 1 {
		return complexErrorf(tag, ErrInvalidRoot)
	}

	return nil
}
