// SPDX-License-Identifier: MIT
// Package complexnum_test contains shared fixtures and assertions.
//
// Purpose:
//   - Keep tolerance handling in one place so tests state intent, not math.
//   - Provide a deterministic source of finite sample values.

package complexnum_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/complexible/complexnum"
)

// tol is the absolute tolerance used for component comparisons.
const tol = 1e-9

// assertClose fails when got and want are not Equal within the default epsilon.
func assertClose(t testing.TB, want, got complexnum.Number, msgAndArgs ...any) bool {
	t.Helper()
	if got.ToRectangular().Equal(want) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("complex values differ: want %v, got %v", want.ToRectangular(), got.ToRectangular()), msgAndArgs...)
}

// assertParts checks real and imaginary parts within tol.
func assertParts(t testing.TB, wantRe, wantIm float64, got complexnum.Number) {
	t.Helper()
	assert.InDelta(t, wantRe, got.Real(), tol, "real part of %v", got)
	assert.InDelta(t, wantIm, got.Imaginary(), tol, "imaginary part of %v", got)
}

// samples returns n deterministic finite values with components in
// [-scale, scale), plus the axis and origin cases.
func samples(n int, seed int64, scale float64) []complexnum.Rectangular {
	rng := rand.New(rand.NewSource(seed))
	out := []complexnum.Rectangular{
		complexnum.One,
		complexnum.I,
		complexnum.FromReal(-1),
		complexnum.FromCartesian(0, -1),
	}
	for i := 0; i < n; i++ {
		re := (rng.Float64()*2 - 1) * scale
		im := (rng.Float64()*2 - 1) * scale
		out = append(out, complexnum.FromCartesian(re, im))
	}

	return out
}

// nonFinite lists operands that every validating operation must reject.
var nonFinite = []complexnum.Rectangular{
	complexnum.FromCartesian(math.NaN(), 0),
	complexnum.FromCartesian(0, math.NaN()),
	complexnum.FromCartesian(math.Inf(1), 0),
	complexnum.FromCartesian(1, math.Inf(-1)),
}
