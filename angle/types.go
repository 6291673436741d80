// SPDX-License-Identifier: MIT

package angle

import (
	"errors"
	"strconv"
	"strings"
)

// Unit tags the scale of an Angle value. Only Radian and Degree are
// defined; New treats any other value as Radian. Use ParseUnit to reject
// unknown unit names from external input.
type Unit uint8

const (
	// Radian is the zero Unit: a full turn is 2π.
	Radian Unit = iota

	// Degree: a full turn is 360.
	Degree
)

// ErrUnknownUnit is returned by ParseUnit and by the decoders when a unit
// name is not recognised.
var ErrUnknownUnit = errors.New("angle: unknown unit")

// String returns the short unit name used by String and the codecs.
func (u Unit) String() string {
	switch u {
	case Radian:
		return "rad"
	case Degree:
		return "deg"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// halfTurn returns π or 180 for the unit.
func (u Unit) halfTurn() float64 {
	if u == Degree {
		return 180
	}

	return pi
}

// ParseUnit maps a unit name to a Unit. Matching is case-insensitive and
// accepts the short, singular and plural spellings plus the "°" sign.
// The empty string means Radian.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radian", "radians":
		return Radian, nil
	case "deg", "degree", "degrees", "°":
		return Degree, nil
	default:
		return Radian, ErrUnknownUnit
	}
}

// Angle is an immutable scalar angle tagged with its unit.
// The zero value is 0 rad. Angles are comparable with ==, which is exact
// structural equality (same value, same unit); use Equal to compare directions.
type Angle struct {
	value float64 // as constructed, never rescaled
	unit  Unit
}
