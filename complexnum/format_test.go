// SPDX-License-Identifier: MIT
package complexnum_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/complexible/angle"
	"github.com/katalvlaran/complexible/complexnum"
)

func TestRectangular_String(t *testing.T) {
	cases := []struct {
		z    complexnum.Rectangular
		want string
	}{
		{complexnum.FromCartesian(3, 4), "3 + 4i"},
		{complexnum.FromCartesian(1, -2.5), "1 - 2.5i"},
		{complexnum.Zero, "0 + 0i"},
		{complexnum.FromCartesian(-1.5, 0), "-1.5 + 0i"},
		{complexnum.FromCartesian(0, math.Copysign(0, -1)), "0 - 0i"},
		{complexnum.FromCartesian(0.1, 1e21), "0.1 + 1e+21i"},
		{complexnum.FromCartesian(math.Inf(-1), math.NaN()), "-Inf + NaNi"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.z.String())
	}
}

func TestRectangular_Format(t *testing.T) {
	z := complexnum.FromCartesian(3, -4)
	cases := []struct {
		format string
		want   string
	}{
		{"%v", "3 - 4i"},
		{"%s", "3 - 4i"},
		{"%q", `"3 - 4i"`},
		{"%f", "3.000000 - 4.000000i"},
		{"%.2F", "3.00 - 4.00i"},
		{"%.1e", "3.0e+00 - 4.0e+00i"},
		{"%E", "3.000000E+00 - 4.000000E+00i"},
		{"%g", "3 - 4i"},
		{"%10v", "    3 - 4i"},
		{"%-10v|", "3 - 4i    |"},
		{"%d", "%!d(complexnum.Rectangular=3 - 4i)"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			assert.Equal(t, tc.want, fmt.Sprintf(tc.format, z))
		})
	}
}

func TestPolar_String(t *testing.T) {
	assert.Equal(t, "2∠45°", complexnum.FromPolar(2, angle.FromDegrees(45)).String())
	assert.Equal(t, "5∠0.9272952180016122rad", complexnum.FromCartesian(3, 4).ToPolar().String())
	assert.Equal(t, "0∠0rad", complexnum.Polar{}.String())
	assert.Equal(t, "2∠45°", fmt.Sprint(complexnum.FromPolar(2, angle.FromDegrees(45))))
}
