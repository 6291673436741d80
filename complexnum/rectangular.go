// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/complexible/angle"
)

// FromCartesian returns re + im·i.
func FromCartesian(re, im float64) Rectangular {
	return Rectangular{re: re, im: im}
}

// FromReal returns x + 0i.
func FromReal(x float64) Rectangular {
	return Rectangular{re: x}
}

// FromScalar returns x + 0i for any integer or floating-point kind.
// Integers beyond 2^53 are rounded to the nearest float64.
func FromScalar[T constraints.Integer | constraints.Float](x T) Rectangular {
	return Rectangular{re: float64(x)}
}

// Real returns the real part.
func (z Rectangular) Real() float64 {
	return z.re
}

// Imaginary returns the imaginary part.
func (z Rectangular) Imaginary() float64 {
	return z.im
}

// Magnitude returns |z| = sqrt(re² + im²), computed with math.Hypot so
// that large components do not overflow in the squares.
func (z Rectangular) Magnitude() float64 {
	return math.Hypot(z.re, z.im)
}

// Abs is an alias of Magnitude.
func (z Rectangular) Abs() float64 {
	return z.Magnitude()
}

// ArgumentRadians returns the principal argument in (−π, π].
// Implementation:
//   - Stage 1: z == 0 ⇒ 0 by convention.
//   - Stage 2: atan2(im, re); a result of exactly −π (negative real axis
//     approached with im = −0) is folded to +π.
//
// Complexity:
//   - Time O(1), Space O(1).
func (z Rectangular) ArgumentRadians() float64 {
	return principalArg(z.re, z.im)
}

// ArgumentDegrees returns the principal argument in (−180°, 180°].
func (z Rectangular) ArgumentDegrees() float64 {
	return angle.FromRadians(z.ArgumentRadians()).Degrees()
}

// Argument returns the principal argument as a radian angle.
func (z Rectangular) Argument() angle.Angle {
	return angle.FromRadians(z.ArgumentRadians())
}

func principalArg(re, im float64) float64 {
	if re == 0 && im == 0 {
		return 0
	}
	t := math.Atan2(im, re)
	if t == -math.Pi {
		return math.Pi
	}

	return t
}

// ToRectangular returns z.
func (z Rectangular) ToRectangular() Rectangular {
	return z
}

// ToPolar converts z to polar form.
// Implementation:
//   - Stage 1: magnitude = hypot(re, im).
//   - Stage 2: angle = principal argument in radians; 0 when magnitude is 0.
//
// Behavior highlights:
//   - The returned angle is always in radians and in (−π, π].
//   - Polar.ToRectangular(z.ToPolar()) equals z within DefaultEpsilon scaled
//     by |z| for every finite z.
func (z Rectangular) ToPolar() Polar {
	mag := z.Magnitude()
	if mag == 0 {
		return Polar{}
	}

	return Polar{mag: mag, arg: angle.FromRadians(principalArg(z.re, z.im))}
}

// toPolarIn is ToPolar with the angle expressed in unit u.
// Zero stays the zero Polar.
func (z Rectangular) toPolarIn(u angle.Unit) Polar {
	p := z.ToPolar()
	if p.mag != 0 {
		p.arg = p.arg.In(u)
	}

	return p
}

// IsZero reports whether z is exactly 0 (either sign of zero).
func (z Rectangular) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// IsReal reports whether the imaginary part is exactly 0.
func (z Rectangular) IsReal() bool {
	return z.im == 0
}

// IsFinite reports whether both parts are neither NaN nor ±Inf.
func (z Rectangular) IsFinite() bool {
	return isFinite(z.re) && isFinite(z.im)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
