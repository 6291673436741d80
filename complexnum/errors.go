// SPDX-License-Identifier: MIT
// Package complexnum: sentinel error set.
// Every fallible operation returns one of these sentinels wrapped with the
// operation tag ("complexnum: Divide: ..."); callers match with errors.Is.
// No operation panics on user input. Panics are reserved for the Must*
// helpers and for nonsensical option values (programmer error).

package complexnum

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Divide and Reciprocal when the divisor
	// has magnitude exactly 0, and by Log when ln(base) is exactly 0.
	ErrDivisionByZero = errors.New("complexnum: division by zero")

	// ErrDomain is returned when an operation is undefined for its operand:
	// the logarithm of 0, 0 raised to an exponent whose real part is not
	// strictly positive, any non-finite operand, or a result that overflows
	// float64 in Divide, Reciprocal, Power and PowerInt.
	ErrDomain = errors.New("complexnum: domain error")

	// ErrInvalidRoot is returned by NthRoot and PrincipalRoot when n < 1.
	ErrInvalidRoot = errors.New("complexnum: invalid root degree")

	// ErrNonFinite marks a NaN or ±Inf operand. It is always reported
	// together with ErrDomain, so errors.Is matches either.
	ErrNonFinite = errors.New("complexnum: NaN or Inf operand")
)

// errLogBaseOne is the failure of Log when ln(base) is exactly zero.
// It matches both ErrDomain and ErrDivisionByZero.
var errLogBaseOne = fmt.Errorf("ln(base) is zero: %w; %w", ErrDomain, ErrDivisionByZero)

// errOverflow is returned when finite operands produce a NaN or ±Inf result.
var errOverflow = fmt.Errorf("result is not representable as float64: %w", ErrDomain)

// errNonFinite is the composite returned by the finiteness validator.
var errNonFinite = fmt.Errorf("%w: %w", ErrDomain, ErrNonFinite)

// complexErrorf tags err with the operation that produced it.
func complexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
