// SPDX-License-Identifier: MIT

// Package complexnum: value types.
// This file contains ONLY the two representations, the Number interface
// they share and the package-level constants built from them.

package complexnum

import "github.com/katalvlaran/complexible/angle"

// Number is the read-only view shared by Rectangular and Polar.
// Binary operations accept any Number and return the receiver's form,
// so both representations can be mixed freely.
type Number interface {
	// Real returns the real part.
	Real() float64
	// Imaginary returns the imaginary part.
	Imaginary() float64
	// Magnitude returns |z| ≥ 0.
	Magnitude() float64
	// ArgumentRadians returns the principal argument in (−π, π]; 0 for z = 0.
	ArgumentRadians() float64
	// ArgumentDegrees returns the principal argument in (−180°, 180°]; 0 for z = 0.
	ArgumentDegrees() float64
	// Argument returns the principal argument as an angle.Angle.
	Argument() angle.Angle
	// ToRectangular returns the (real, imaginary) view.
	ToRectangular() Rectangular
	// ToPolar returns the (magnitude, angle) view.
	ToPolar() Polar
}

// Rectangular is a complex number stored as (real, imaginary).
// It is an immutable value type; the zero value is 0.
// Any pair of finite floats is valid.
type Rectangular struct {
	re float64 // real part
	im float64 // imaginary part
}

// Polar is a complex number stored as (magnitude, angle).
// It is an immutable value type; the zero value is 0.
//
// Invariants (enforced by FromPolar and every operation):
//   - mag ≥ 0;
//   - mag == 0 ⇒ arg == 0 rad (the origin has no direction).
//
// The stored angle keeps the unit and the range it was built with;
// the Argument* accessors return the normalized principal value.
type Polar struct {
	mag float64
	arg angle.Angle
}

var (
	// Zero is 0 + 0i.
	Zero = Rectangular{}

	// One is 1 + 0i.
	One = Rectangular{re: 1}

	// I is the imaginary unit 0 + 1i.
	I = Rectangular{im: 1}
)

// compile-time interface checks
var (
	_ Number = Rectangular{}
	_ Number = Polar{}
)
