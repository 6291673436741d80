// Package complexible is a small, pure-Go library for complex-number
// arithmetic with an explicit angle model.
//
// 🚀 What is complexible?
//
//	Two packages that work together:
//		• angle      – an Angle value with a Radian/Degree unit, normalization
//		               into (−half turn, half turn] and seam-aware equality
//		• complexnum – Rectangular and Polar complex numbers, arithmetic,
//		               ln/log/log10/exp, principal and integer powers,
//		               all n-th roots, tolerance equality and display
//
// ✨ Why choose complexible?
//
//   - Explicit branch policy – principal argument in (−π, π], always
//   - No panics on user input – failures are sentinel errors (errors.Is)
//   - Mix representations freely – every binary op accepts a Number
//   - Config-friendly – both forms decode from YAML and TOML documents
//
// Quick start:
//
//	z := complexnum.FromCartesian(3, 4)
//	p := z.ToPolar()                      // 5∠0.927…rad
//	roots, _ := complexnum.One.NthRoot(4) // 1, i, −1, −i
//	l, _ := complexnum.FromReal(8).Log(complexnum.FromReal(2)) // 3 + 0i
//
// See the package docs of angle and complexnum for details.
package complexible
