// SPDX-License-Identifier: MIT

// Package angle provides an immutable angle value tagged with its unit.
//
// 🚀 What is an Angle?
//
//	A scalar plus a unit tag (Radian or Degree). The value is stored exactly
//	as given; no range is forced on construction. Conversion between units
//	is exact up to float64 rounding:
//
//	  degrees = radians × 180/π
//
// ✨ Key features:
//   - FromRadians / FromDegrees / New constructors, zero value = 0 rad
//   - Radians / Degrees / In(unit) conversions
//   - Normalized(): principal value in (−π, π] or (−180°, 180°], same unit
//   - Equal / EqualWithin: unit-independent comparison of directions
//   - YAML and TOML codecs ({value, unit} tables or bare radians)
//
// ⚙️ Usage:
//
//	a := angle.FromDegrees(450)
//	a.Normalized()          // 90°
//	a.Radians()             // 7.853981633974483
//	a.Equal(angle.FromRadians(math.Pi / 2)) // true
//
// Normalization is applied only where a canonical direction is required,
// notably by the principal argument of complex numbers (package complexnum).
package angle
