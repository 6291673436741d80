// SPDX-License-Identifier: MIT

package complexnum

import "math"

// ---------- Rectangular ----------

// Add returns z + w, component-wise.
func (z Rectangular) Add(w Number) Rectangular {
	r := w.ToRectangular()

	return Rectangular{re: z.re + r.re, im: z.im + r.im}
}

// Subtract returns z − w, component-wise.
func (z Rectangular) Subtract(w Number) Rectangular {
	r := w.ToRectangular()

	return Rectangular{re: z.re - r.re, im: z.im - r.im}
}

// Multiply returns z·w using the component formula (ac−bd, ad+bc).
// The result agrees with Polar.Multiply within DefaultEpsilon.
func (z Rectangular) Multiply(w Number) Rectangular {
	return multiply(z, w.ToRectangular())
}

func multiply(a, b Rectangular) Rectangular {
	return Rectangular{
		re: a.re*b.re - a.im*b.im,
		im: a.re*b.im + a.im*b.re,
	}
}

// MultiplyScalar returns k·z.
func (z Rectangular) MultiplyScalar(k float64) Rectangular {
	return Rectangular{re: k * z.re, im: k * z.im}
}

// Divide returns z / w.
// Implementation:
//   - Stage 1: reject non-finite operands (ErrDomain).
//   - Stage 2: reject a divisor of magnitude exactly 0 (ErrDivisionByZero).
//   - Stage 3: ((ac+bd) + (bc−ad)i) / (c²+d²), evaluated with Smith's
//     scaling so c² + d² never overflows or underflows on its own.
//   - Stage 4: reject a quotient that overflowed float64 (ErrDomain).
//
// Behavior highlights:
//   - 0 / w = 0 for every non-zero w.
//
// Errors:
//   - ErrDomain (with ErrNonFinite) for NaN/±Inf operands.
//   - ErrDivisionByZero when w == 0.
//   - ErrDomain when the quotient overflows float64.
//
// Complexity:
//   - Time O(1), Space O(1).
func (z Rectangular) Divide(w Number) (Rectangular, error) {
	const tag = "Divide"
	d := w.ToRectangular()
	if err := validateFinite(tag, z.re, z.im, d.re, d.im); err != nil {
		return Rectangular{}, err
	}
	if err := validateDivisor(tag, d); err != nil {
		return Rectangular{}, err
	}
	q := divide(z, d)
	if err := validateResult(tag, q.re, q.im); err != nil {
		return Rectangular{}, err
	}

	return q, nil
}

// divide is Smith's algorithm for (a.re + a.im·i) / (b.re + b.im·i).
// Assumes b != 0.
func divide(a, b Rectangular) Rectangular {
	if math.Abs(b.re) >= math.Abs(b.im) {
		r := b.im / b.re
		den := b.re + b.im*r

		return Rectangular{re: (a.re + a.im*r) / den, im: (a.im - a.re*r) / den}
	}
	r := b.re / b.im
	den := b.re*r + b.im

	return Rectangular{re: (a.re*r + a.im) / den, im: (a.im*r - a.re) / den}
}

// Reciprocal returns 1 / z.
//
// Errors:
//   - ErrDomain (with ErrNonFinite) for NaN/±Inf z.
//   - ErrDivisionByZero when z == 0.
//   - ErrDomain when 1/z overflows float64 (subnormal z).
func (z Rectangular) Reciprocal() (Rectangular, error) {
	const tag = "Reciprocal"
	if err := validateFinite(tag, z.re, z.im); err != nil {
		return Rectangular{}, err
	}
	if err := validateDivisor(tag, z); err != nil {
		return Rectangular{}, err
	}
	q := divide(One, z)
	if err := validateResult(tag, q.re, q.im); err != nil {
		return Rectangular{}, err
	}

	return q, nil
}

// Conjugate returns re − im·i.
func (z Rectangular) Conjugate() Rectangular {
	return Rectangular{re: z.re, im: -z.im}
}

// Negate returns −z.
func (z Rectangular) Negate() Rectangular {
	return Rectangular{re: -z.re, im: -z.im}
}

// ---------- Polar ----------

// Add returns p + w. The sum is formed on the rectangular view and the
// result carries the receiver's angle unit.
func (p Polar) Add(w Number) Polar {
	return p.ToRectangular().Add(w).toPolarIn(p.arg.Unit())
}

// Subtract returns p − w, formed on the rectangular view.
func (p Polar) Subtract(w Number) Polar {
	return p.ToRectangular().Subtract(w).toPolarIn(p.arg.Unit())
}

// Multiply returns p·w as magnitude m1·m2 and angle normalized(a1 + a2).
// The result agrees with Rectangular.Multiply within DefaultEpsilon.
func (p Polar) Multiply(w Number) Polar {
	q := w.ToPolar()

	return FromPolar(p.mag*q.mag, p.arg.Add(q.arg).Normalized())
}

// MultiplyScalar returns k·p: the magnitude is scaled by |k|, and a negative
// k rotates the angle by a half turn.
func (p Polar) MultiplyScalar(k float64) Polar {
	if k < 0 {
		return FromPolar(-k*p.mag, p.arg.Add(halfTurn).Normalized())
	}

	return FromPolar(k*p.mag, p.arg)
}

// Divide returns p / w as magnitude m1/m2 and angle normalized(a1 − a2).
//
// Errors:
//   - ErrDomain (with ErrNonFinite) for NaN/±Inf operands.
//   - ErrDivisionByZero when |w| == 0.
//   - ErrDomain when m1/m2 overflows float64.
func (p Polar) Divide(w Number) (Polar, error) {
	const tag = "Divide"
	q := w.ToPolar()
	if err := validateFinite(tag, p.mag, p.arg.Value(), q.mag, q.arg.Value()); err != nil {
		return Polar{}, err
	}
	if q.mag == 0 {
		return Polar{}, complexErrorf(tag, ErrDivisionByZero)
	}
	mag := p.mag / q.mag
	if err := validateResult(tag, mag); err != nil {
		return Polar{}, err
	}

	return FromPolar(mag, p.arg.Sub(q.arg).Normalized()), nil
}

// Reciprocal returns 1 / p = (1/mag)∠(−θ).
func (p Polar) Reciprocal() (Polar, error) {
	const tag = "Reciprocal"
	if err := validateFinite(tag, p.mag, p.arg.Value()); err != nil {
		return Polar{}, err
	}
	if p.mag == 0 {
		return Polar{}, complexErrorf(tag, ErrDivisionByZero)
	}
	if err := validateResult(tag, 1/p.mag); err != nil {
		return Polar{}, err
	}

	return FromPolar(1/p.mag, p.arg.Neg()), nil
}

// Conjugate returns mag∠(−θ).
func (p Polar) Conjugate() Polar {
	return FromPolar(p.mag, p.arg.Neg())
}

// Negate returns mag∠(θ+π), normalized.
func (p Polar) Negate() Polar {
	return FromPolar(p.mag, p.arg.Add(halfTurn).Normalized())
}
