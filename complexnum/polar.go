// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"

	"github.com/katalvlaran/complexible/angle"
)

// halfTurn is π radians, added to the angle when a magnitude changes sign.
var halfTurn = angle.FromRadians(math.Pi)

// FromPolar returns the complex number with the given magnitude and angle.
// Implementation:
//   - Stage 1: mag == 0 ⇒ the zero Polar (angle reset to 0 rad).
//   - Stage 2: mag < 0 ⇒ store |mag| and rotate the angle by a half turn
//     (−r∠θ and r∠(θ+π) are the same point).
//   - Stage 3: store the angle as given (unit and range preserved).
//
// Behavior highlights:
//   - The Polar invariants (mag ≥ 0, zero has angle 0) always hold.
//   - NaN magnitudes are stored as is; fallible operations reject them.
func FromPolar(mag float64, a angle.Angle) Polar {
	switch {
	case mag == 0:
		return Polar{}
	case mag < 0:
		return Polar{mag: -mag, arg: a.Add(halfTurn)}
	default:
		return Polar{mag: mag, arg: a}
	}
}

// Magnitude returns the stored magnitude (≥ 0).
func (p Polar) Magnitude() float64 {
	return p.mag
}

// Abs is an alias of Magnitude.
func (p Polar) Abs() float64 {
	return p.mag
}

// Angle returns the stored angle, in the unit and range it was built with.
func (p Polar) Angle() angle.Angle {
	return p.arg
}

// Argument returns the principal argument in the stored angle's unit.
func (p Polar) Argument() angle.Angle {
	return p.arg.Normalized()
}

// ArgumentRadians returns the principal argument in (−π, π].
func (p Polar) ArgumentRadians() float64 {
	return p.arg.In(angle.Radian).Normalized().Value()
}

// ArgumentDegrees returns the principal argument in (−180°, 180°].
func (p Polar) ArgumentDegrees() float64 {
	return p.arg.In(angle.Degree).Normalized().Value()
}

// Real returns mag·cos θ.
func (p Polar) Real() float64 {
	return p.mag * math.Cos(p.arg.Radians())
}

// Imaginary returns mag·sin θ.
func (p Polar) Imaginary() float64 {
	return p.mag * math.Sin(p.arg.Radians())
}

// ToRectangular converts p to (mag·cos θ, mag·sin θ).
func (p Polar) ToRectangular() Rectangular {
	if p.mag == 0 {
		return Rectangular{}
	}
	s, c := math.Sincos(p.arg.Radians())

	return Rectangular{re: p.mag * c, im: p.mag * s}
}

// ToPolar returns p.
func (p Polar) ToPolar() Polar {
	return p
}

// Normalized returns p with its angle folded into the principal range
// of its unit. The point is unchanged.
func (p Polar) Normalized() Polar {
	return Polar{mag: p.mag, arg: p.arg.Normalized()}
}

// IsZero reports whether the magnitude is 0.
func (p Polar) IsZero() bool {
	return p.mag == 0
}

// IsReal reports whether p lies on the real axis, i.e. its principal
// argument is exactly 0 or π.
func (p Polar) IsReal() bool {
	if p.mag == 0 {
		return true
	}
	t := p.ArgumentRadians()

	return t == 0 || t == math.Pi
}

// IsFinite reports whether magnitude and angle are neither NaN nor ±Inf.
func (p Polar) IsFinite() bool {
	return isFinite(p.mag) && p.arg.IsFinite()
}
