// SPDX-License-Identifier: MIT
package complexnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complexible/complexnum"
)

// 1) TestDefaultOptions_Documented verifies that no options yields the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := complexnum.GatherOptionsSnapshot()
	assert.Equal(t, complexnum.DefaultEpsilon, o.Eps)
	assert.Equal(t, complexnum.DefaultValidateNaNInf, o.ValidateNaNInf)
	assert.Equal(t, complexnum.DefaultIntegerFastPath, o.IntegerFastPath)
}

// 2) TestGatherOptions_LastWriterWins ensures each toggle pair resolves in order.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := complexnum.GatherOptionsSnapshot(complexnum.WithNoValidateNaNInf(), complexnum.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf)
	o = complexnum.GatherOptionsSnapshot(complexnum.WithValidateNaNInf(), complexnum.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf)

	o = complexnum.GatherOptionsSnapshot(complexnum.WithoutIntegerFastPath(), complexnum.WithIntegerFastPath())
	assert.True(t, o.IntegerFastPath)
	o = complexnum.GatherOptionsSnapshot(complexnum.WithIntegerFastPath(), complexnum.WithoutIntegerFastPath())
	assert.False(t, o.IntegerFastPath)

	o = complexnum.GatherOptionsSnapshot(complexnum.WithEpsilon(1e-3), complexnum.WithEpsilon(0))
	assert.Equal(t, 0.0, o.Eps)
	// unrelated fields keep their defaults
	assert.Equal(t, complexnum.DefaultValidateNaNInf, o.ValidateNaNInf)
}

// 3) TestWithEpsilon_PanicsOnInvalid checks the programmer-error guard.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, "complexnum: WithEpsilon: eps must be finite, non-negative",
			func() { complexnum.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { complexnum.WithEpsilon(0) })
}
