// SPDX-License-Identifier: MIT

/*
Package complexnum implements immutable double-precision complex numbers in
two interchangeable representations, with elementary arithmetic and the
multi-valued transcendental functions on an explicit principal branch.

# Representation

  - [Rectangular]: (real, imaginary). Any pair of finite floats is valid.
  - [Polar]: (magnitude, [angle.Angle]). The magnitude is never negative and
    the zero value always carries a zero angle.

Both are comparable value types with unexported fields; the zero value of
either is the number 0. Neither form embeds the other: they are connected
only by [Rectangular.ToPolar] and [Polar.ToRectangular], and both satisfy
[Number], which every binary operation accepts:

	z := complexnum.FromCartesian(3, 4)
	p := complexnum.FromPolar(2, angle.FromDegrees(30))
	z.Multiply(p)   // Rectangular, component formula
	p.Multiply(z)   // Polar, magnitudes multiplied and angles added

# Principal branch

The argument of a non-zero number is taken in (−π, π]; the argument of 0 is
0 by convention. [Rectangular.Ln], [Rectangular.Log], [Rectangular.Log10] and
[Rectangular.Power] all use this branch. [Rectangular.NthRoot] returns every
root, ordered by k:

	root_k = |z|^(1/n) ∠ (Arg z + 2πk)/n,  k = 0 … n−1

# Power

[Rectangular.Power] computes exp(w·ln z). When w is a real integer with
|w| ≤ [MaxIntegerPowerExponent] it uses binary exponentiation instead
([Rectangular.PowerInt]), so results such as i² = −1 are exact. Pass
[WithoutIntegerFastPath] to force the logarithmic path.

# Errors

All operations are pure and never panic on user input (except the Must*
helpers). Failures are reported as wrapped sentinels:

  - [ErrDivisionByZero]: Divide or Reciprocal by 0; Log with base 1.
  - [ErrDomain]: Ln/Log/Log10 of 0; Power of 0 with Re w ≤ 0 (0⁰ included);
    NaN or ±Inf operands (also matching [ErrNonFinite]); a Divide,
    Reciprocal, Power or PowerInt result that overflows float64.
  - [ErrInvalidRoot]: NthRoot or PrincipalRoot with n < 1.

Add, Subtract, Multiply and MultiplyScalar are total and follow IEEE 754.

# Equality

== is exact structural equality. [Rectangular.Equal] and [Polar.Equal]
compare values within a tolerance, [DefaultEpsilon] unless [WithEpsilon]
is given:

	|z − w| ≤ eps·(1 + max(|z|, |w|))

# Display and serialization

[Rectangular.String] returns "3 + 4i" / "1 - 2i" and is for display only.
Both forms encode to YAML (gopkg.in/yaml.v3) and decode from YAML and TOML
(github.com/BurntSushi/toml) as {real, imaginary} and {magnitude, angle}
tables.
*/
package complexnum
