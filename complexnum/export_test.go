// SPDX-License-Identifier: MIT

package complexnum

// Test bridge: exposes a read-only snapshot of the internal Options to the
// external complexnum_test package. Compiled only with the tests.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps             float64
	ValidateNaNInf  bool
	IntegerFastPath bool
}

// GatherOptionsSnapshot applies opts over the defaults and returns the result.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:             o.eps,
		ValidateNaNInf:  o.validateNaNInf,
		IntegerFastPath: o.integerFastPath,
	}
}

// ExportedPrincipalArg exposes the atan2 seam handling.
var ExportedPrincipalArg = principalArg
