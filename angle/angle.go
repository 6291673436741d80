// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

const (
	pi = math.Pi

	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180

	// DefaultEpsilon is the radian tolerance used by Equal.
	DefaultEpsilon = 1e-9
)

// FromRadians returns an angle of r radians. No validation is performed.
func FromRadians(r float64) Angle {
	return Angle{value: r, unit: Radian}
}

// FromDegrees returns an angle of d degrees. No validation is performed.
func FromDegrees(d float64) Angle {
	return Angle{value: d, unit: Degree}
}

// New returns an angle of value expressed in unit.
// Units other than Radian and Degree are treated as Radian without error;
// callers holding a unit name should go through ParseUnit first.
func New(value float64, unit Unit) Angle {
	if unit != Degree {
		unit = Radian
	}

	return Angle{value: value, unit: unit}
}

// Value returns the stored scalar in the angle's own unit.
func (a Angle) Value() float64 {
	return a.value
}

// Unit returns the unit the angle was constructed in.
func (a Angle) Unit() Unit {
	return a.unit
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	if a.unit == Degree {
		return a.value * degToRad
	}

	return a.value
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.unit == Degree {
		return a.value
	}

	return a.value * radToDeg
}

// In returns the same angle expressed in unit u.
// The receiver is returned unchanged when it is already in u.
func (a Angle) In(u Unit) Angle {
	if u == a.unit {
		return a
	}
	if u == Degree {
		return FromDegrees(a.Degrees())
	}

	return FromRadians(a.Radians())
}

// IsFinite reports whether the stored value is neither NaN nor ±Inf.
func (a Angle) IsFinite() bool {
	return !math.IsNaN(a.value) && !math.IsInf(a.value, 0)
}

// Normalized returns the equivalent angle in the principal range of its unit.
// Implementation:
//   - Stage 1: fold the value with math.Mod by a full turn into (−turn, turn).
//   - Stage 2: shift by one turn into (−half, half].
//
// Behavior highlights:
//   - Radian angles land in (−π, π], degree angles in (−180°, 180°].
//   - Exactly −π (−180°) maps to +π (+180°).
//   - Degree angles are folded in degrees, so multiples of 360 stay exact.
//   - NaN and ±Inf normalize to NaN.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a Angle) Normalized() Angle {
	return Angle{value: normalize(a.value, a.unit.halfTurn()), unit: a.unit}
}

// normalize folds v into (−half, half] where 2·half is a full turn.
func normalize(v, half float64) float64 {
	full := 2 * half
	r := math.Mod(v, full)
	if r <= -half {
		r += full
	} else if r > half {
		r -= full
	}

	return r
}

// Add returns a+b in the unit of a. The result is not normalized.
func (a Angle) Add(b Angle) Angle {
	return Angle{value: a.value + b.In(a.unit).value, unit: a.unit}
}

// Sub returns a−b in the unit of a. The result is not normalized.
func (a Angle) Sub(b Angle) Angle {
	return Angle{value: a.value - b.In(a.unit).value, unit: a.unit}
}

// Neg returns −a.
func (a Angle) Neg() Angle {
	return Angle{value: -a.value, unit: a.unit}
}

// Scale returns k·a in the unit of a.
func (a Angle) Scale(k float64) Angle {
	return Angle{value: k * a.value, unit: a.unit}
}

// Equal reports whether a and b point in the same direction within
// DefaultEpsilon radians. See EqualWithin.
func (a Angle) Equal(b Angle) bool {
	return a.EqualWithin(b, DefaultEpsilon)
}

// EqualWithin reports whether the normalized radian difference of a and b
// is smaller than eps. The comparison is independent of the units, and
// angles on either side of the ±π seam (e.g. π and −π+1e-12) compare equal.
func (a Angle) EqualWithin(b Angle, eps float64) bool {
	d := normalize(a.Radians()-b.Radians(), pi)

	return math.Abs(d) < eps
}

// String returns the shortest decimal form of the value followed by the unit,
// e.g. "0.5rad" or "45°".
func (a Angle) String() string {
	return formatValue(a.value, 'g', -1) + a.suffix()
}

func (a Angle) suffix() string {
	if a.unit == Degree {
		return "°"
	}

	return "rad"
}

func formatValue(v float64, verb byte, prec int) string {
	return strconv.FormatFloat(v, verb, prec, 64)
}

// Format implements [fmt.Formatter].
// The verbs %v and %s print String; %f, %e and %g (and upper-case forms)
// format the value with the given precision and append the unit.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Angle) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = io.WriteString(state, a.String())
	case 'f', 'F', 'e', 'E', 'g', 'G':
		prec, ok := state.Precision()
		if !ok {
			prec = -1
			if verb != 'g' && verb != 'G' {
				prec = 6
			}
		}
		if verb == 'F' {
			verb = 'f'
		}
		_, _ = io.WriteString(state, formatValue(a.value, byte(verb), prec)+a.suffix())
	default:
		_, _ = fmt.Fprintf(state, "%%!%c(angle.Angle=%s)", verb, a.String())
	}
}
