// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"

	"github.com/katalvlaran/complexible/angle"
)

// ---------- Rectangular ----------

// Ln returns the principal natural logarithm ln|z| + i·Arg z,
// with Arg z in (−π, π].
//
// Errors:
//   - ErrDomain when z == 0, or (with ErrNonFinite) for NaN/±Inf z.
func (z Rectangular) Ln() (Rectangular, error) {
	const tag = "Ln"
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return Rectangular{}, err
	}
	if err := validateLogArgument(tag, z); err != nil {
		return Rectangular{}, err
	}

	return z.ln(), nil
}

// ln assumes z is finite and non-zero.
func (z Rectangular) ln() Rectangular {
	return Rectangular{re: math.Log(z.Magnitude()), im: principalArg(z.re, z.im)}
}

// Log returns the principal logarithm of z in the given base, ln z / ln b.
// Implementation:
//   - Stage 1: validate z and base (finite, non-zero).
//   - Stage 2: ln b; exactly 0 (b = 1) is rejected.
//   - Stage 3: real ln b divides both parts directly; complex ln b goes
//     through Smith's division.
//
// Errors:
//   - ErrDomain when z == 0 or base == 0, or for NaN/±Inf operands.
//   - base == 1: an error matching both ErrDomain and ErrDivisionByZero.
func (z Rectangular) Log(base Number) (Rectangular, error) {
	const tag = "Log"
	b := base.ToRectangular()
	if err := validateFinite(tag, z.re, z.im, b.re, b.im); err != nil {
		return Rectangular{}, err
	}
	if err := validateLogArgument(tag, z); err != nil {
		return Rectangular{}, err
	}
	if err := validateLogArgument(tag+": base", b); err != nil {
		return Rectangular{}, err
	}
	lnb := b.ln()
	if lnb.IsZero() {
		return Rectangular{}, complexErrorf(tag, errLogBaseOne)
	}
	lnz := z.ln()
	if lnb.im == 0 {
		return Rectangular{re: lnz.re / lnb.re, im: lnz.im / lnb.re}, nil
	}

	return divide(lnz, lnb), nil
}

// Log10 returns the principal base-10 logarithm (log10|z|, Arg z / ln 10).
// It is Log with base 10 and has the same failure modes.
func (z Rectangular) Log10() (Rectangular, error) {
	const tag = "Log10"
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return Rectangular{}, err
	}
	if err := validateLogArgument(tag, z); err != nil {
		return Rectangular{}, err
	}

	return Rectangular{re: math.Log10(z.Magnitude()), im: principalArg(z.re, z.im) / math.Ln10}, nil
}

// Exp returns e^z = e^re·(cos im + i·sin im).
// A real z yields an exactly real result. Exp is total: a large real part
// overflows to ±Inf as in IEEE 754; use Power with base e for a checked result.
func (z Rectangular) Exp() Rectangular {
	e := math.Exp(z.re)
	if z.im == 0 {
		return Rectangular{re: e}
	}
	s, c := math.Sincos(z.im)

	return Rectangular{re: e * c, im: e * s}
}

// Power returns the principal value of z^w = exp(w·ln z).
// Implementation:
//   - Stage 1: resolve options; validate operands unless disabled.
//   - Stage 2: z == 0 ⇒ 0 when Re w > 0, ErrDomain otherwise (0^0 included).
//   - Stage 3: integer fast path: w real, integral and
//     |w| ≤ MaxIntegerPowerExponent ⇒ binary exponentiation (see PowerInt).
//     No logarithm is taken, so e.g. i^2 is exactly −1.
//   - Stage 4: general path exp(w·ln z) on the principal branch.
//
//   - Stage 5: a result that overflowed float64 is rejected (ErrDomain).
//
// Options:
//   - WithoutIntegerFastPath forces Stage 4 for every exponent.
//   - WithNoValidateNaNInf lets NaN/±Inf propagate instead of ErrDomain,
//     for operands and results alike.
//
// Complexity:
//   - Time O(log |w|) on the fast path, O(1) otherwise.
func (z Rectangular) Power(w Number, opts ...Option) (Rectangular, error) {
	const tag = "Power"
	o := gatherOptions(opts...)
	e := w.ToRectangular()
	if o.validateNaNInf {
		if err := validateFinite(tag, z.re, z.im, e.re, e.im); err != nil {
			return Rectangular{}, err
		}
	}
	if z.IsZero() {
		if e.re > 0 {
			return Zero, nil
		}

		return Rectangular{}, complexErrorf(tag, ErrDomain)
	}
	var r Rectangular
	if n, ok := smallInteger(e); ok && o.integerFastPath {
		r = powInt(z, n)
	} else {
		r = multiply(e, z.ln()).Exp()
	}
	if o.validateNaNInf {
		if err := validateResult(tag, r.re, r.im); err != nil {
			return Rectangular{}, err
		}
	}

	return r, nil
}

// smallInteger reports whether e is a real integer within the fast-path bound.
func smallInteger(e Rectangular) (int, bool) {
	if e.im != 0 || e.re != math.Trunc(e.re) || math.Abs(e.re) > MaxIntegerPowerExponent {
		return 0, false
	}

	return int(e.re), true
}

// PowerInt returns z^n by binary exponentiation.
// Negative n raises 1/z to |n|; n == 0 yields 1 for any non-zero z.
//
// Errors:
//   - ErrDomain when z == 0 and n ≤ 0, for NaN/±Inf z, or when z^n
//     overflows float64.
func (z Rectangular) PowerInt(n int) (Rectangular, error) {
	const tag = "PowerInt"
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return Rectangular{}, err
	}
	if z.IsZero() {
		if n > 0 {
			return Zero, nil
		}

		return Rectangular{}, complexErrorf(tag, ErrDomain)
	}
	r := powInt(z, n)
	if err := validateResult(tag, r.re, r.im); err != nil {
		return Rectangular{}, err
	}

	return r, nil
}

// powInt assumes z != 0.
func powInt(z Rectangular, n int) Rectangular {
	u := uint64(n)
	if n < 0 {
		z = divide(One, z)
		u = uint64(-(n + 1)) + 1
	}
	acc := One
	for u > 0 {
		if u&1 == 1 {
			acc = multiply(acc, z)
		}
		u >>= 1
		if u > 0 {
			z = multiply(z, z)
		}
	}

	return acc
}

// NthRoot returns all n complex n-th roots of z.
// Implementation:
//   - Stage 1: n < 1 ⇒ ErrInvalidRoot; non-finite z ⇒ ErrDomain.
//   - Stage 2: z == 0 ⇒ n zeros (0 is a root of multiplicity n).
//   - Stage 3: root k = |z|^(1/n) ∠ (Arg z + 2πk)/n for k = 0..n−1.
//
// Behavior highlights:
//   - The slice is ordered by increasing k; roots[0] is the principal root.
//   - The slice is freshly allocated and fully materialized.
//
// Complexity:
//   - Time O(n), Space O(n).
func (z Rectangular) NthRoot(n int) ([]Rectangular, error) {
	const tag = "NthRoot"
	if err := validateRootDegree(tag, n); err != nil {
		return nil, err
	}
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return nil, err
	}
	roots := make([]Rectangular, n)
	if z.IsZero() {
		return roots, nil
	}
	mag := rootMagnitude(z.Magnitude(), n)
	theta := principalArg(z.re, z.im)
	for k := range roots {
		s, c := math.Sincos(rootAngle(theta, n, k))
		roots[k] = Rectangular{re: mag * c, im: mag * s}
	}

	return roots, nil
}

// PrincipalRoot returns the k = 0 root of NthRoot without building the rest.
func (z Rectangular) PrincipalRoot(n int) (Rectangular, error) {
	const tag = "PrincipalRoot"
	if err := validateRootDegree(tag, n); err != nil {
		return Rectangular{}, err
	}
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return Rectangular{}, err
	}
	if z.IsZero() {
		return Zero, nil
	}
	mag := rootMagnitude(z.Magnitude(), n)
	s, c := math.Sincos(rootAngle(principalArg(z.re, z.im), n, 0))

	return Rectangular{re: mag * c, im: mag * s}, nil
}

// Sqrt returns the principal square root.
func (z Rectangular) Sqrt() (Rectangular, error) {
	return z.PrincipalRoot(2)
}

func rootMagnitude(mag float64, n int) float64 {
	switch n {
	case 1:
		return mag
	case 2:
		return math.Sqrt(mag)
	case 3:
		return math.Cbrt(mag)
	default:
		return math.Pow(mag, 1/float64(n))
	}
}

// rootAngle is (theta + 2πk)/n in radians.
func rootAngle(theta float64, n, k int) float64 {
	return (theta + 2*math.Pi*float64(k)) / float64(n)
}

// ---------- Polar ----------

// polarResult converts a rectangular result back into the unit u.
func polarResult(r Rectangular, err error, u angle.Unit) (Polar, error) {
	if err != nil {
		return Polar{}, err
	}

	return r.toPolarIn(u), nil
}

// Ln returns the principal natural logarithm, computed straight from the
// polar components: ln(mag) + i·Arg.
func (p Polar) Ln() (Polar, error) {
	const tag = "Ln"
	if err := validateFinite(tag, p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	if p.mag == 0 {
		return Polar{}, complexErrorf(tag, ErrDomain)
	}
	r := Rectangular{re: math.Log(p.mag), im: p.ArgumentRadians()}

	return r.toPolarIn(p.arg.Unit()), nil
}

// Log returns the principal logarithm of p in the given base.
// Same failure modes as Rectangular.Log.
func (p Polar) Log(base Number) (Polar, error) {
	if err := validateFinite("Log", p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	r, err := p.ToRectangular().Log(base)

	return polarResult(r, err, p.arg.Unit())
}

// Log10 returns the principal base-10 logarithm of p.
func (p Polar) Log10() (Polar, error) {
	if err := validateFinite("Log10", p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	r, err := p.ToRectangular().Log10()

	return polarResult(r, err, p.arg.Unit())
}

// Exp returns e^p as e^re ∠ im, keeping the receiver's angle unit.
func (p Polar) Exp() Polar {
	r := p.ToRectangular()

	return FromPolar(math.Exp(r.re), angle.FromRadians(r.im).In(p.arg.Unit()))
}

// Power returns the principal value of p^w. See Rectangular.Power.
func (p Polar) Power(w Number, opts ...Option) (Polar, error) {
	r, err := p.ToRectangular().Power(w, opts...)

	return polarResult(r, err, p.arg.Unit())
}

// PowerInt returns p^n = mag^n ∠ n·θ, keeping the receiver's angle unit.
//
// Errors:
//   - ErrDomain when p == 0 and n ≤ 0, for NaN/±Inf p, or when mag^n
//     overflows float64.
func (p Polar) PowerInt(n int) (Polar, error) {
	const tag = "PowerInt"
	if err := validateFinite(tag, p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	if p.mag == 0 {
		if n > 0 {
			return Polar{}, nil
		}

		return Polar{}, complexErrorf(tag, ErrDomain)
	}

	mag := math.Pow(p.mag, float64(n))
	if err := validateResult(tag, mag); err != nil {
		return Polar{}, err
	}

	return FromPolar(mag, p.arg.Scale(float64(n)).Normalized()), nil
}

// NthRoot returns all n roots of p in increasing k order.
// Each root carries the angle (Arg p + 2πk)/n in the receiver's unit,
// without normalization. See Rectangular.NthRoot.
func (p Polar) NthRoot(n int) ([]Polar, error) {
	const tag = "NthRoot"
	if err := validateRootDegree(tag, n); err != nil {
		return nil, err
	}
	if err := validateFinite(tag, p.mag, p.arg.Value()); err != nil {
		return nil, err
	}
	roots := make([]Polar, n)
	if p.mag == 0 {
		return roots, nil
	}
	mag := rootMagnitude(p.mag, n)
	theta := p.ArgumentRadians()
	u := p.arg.Unit()
	for k := range roots {
		roots[k] = FromPolar(mag, angle.FromRadians(rootAngle(theta, n, k)).In(u))
	}

	return roots, nil
}

// PrincipalRoot returns the k = 0 root of NthRoot.
func (p Polar) PrincipalRoot(n int) (Polar, error) {
	const tag = "PrincipalRoot"
	if err := validateRootDegree(tag, n); err != nil {
		return Polar{}, err
	}
	if err := validateFinite(tag, p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	if p.mag == 0 {
		return Polar{}, nil
	}
	theta := angle.FromRadians(rootAngle(p.ArgumentRadians(), n, 0))

	return FromPolar(rootMagnitude(p.mag, n), theta.In(p.arg.Unit())), nil
}

// Sqrt returns the principal square root.
func (p Polar) Sqrt() (Polar, error) {
	return p.PrincipalRoot(2)
}
