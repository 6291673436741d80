// SPDX-License-Identifier: MIT
package complexnum_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/complexible/angle"
	"github.com/katalvlaran/complexible/complexnum"
)

func ExampleRectangular_ToPolar() {
	p := complexnum.FromCartesian(3, 4).ToPolar()
	fmt.Printf("%.4f %.4f\n", p.Magnitude(), p.ArgumentRadians())
	fmt.Printf("%.1f\n", p.ArgumentDegrees())
	// Output:
	// 5.0000 0.9273
	// 53.1
}

func ExampleFromPolar() {
	z := complexnum.FromPolar(2, angle.FromDegrees(90)).ToRectangular()
	fmt.Printf("%.3f\n", z)
	// Output:
	// 0.000 + 2.000i
}

func ExampleRectangular_Multiply() {
	fmt.Println(complexnum.One.Multiply(complexnum.I))
	fmt.Println(complexnum.I.Multiply(complexnum.I))
	// Output:
	// 0 + 1i
	// -1 + 0i
}

func ExampleRectangular_Divide() {
	q, err := complexnum.Zero.Divide(complexnum.FromCartesian(1, 1))
	fmt.Println(q, err)

	_, err = complexnum.FromCartesian(1, 1).Divide(complexnum.Zero)
	fmt.Println(errors.Is(err, complexnum.ErrDivisionByZero))
	// Output:
	// 0 + 0i <nil>
	// true
}

func ExampleRectangular_NthRoot() {
	roots, _ := complexnum.One.NthRoot(4)
	for k, r := range roots {
		fmt.Printf("k=%d %.3f\n", k, r)
	}
	// Output:
	// k=0 1.000 + 0.000i
	// k=1 0.000 + 1.000i
	// k=2 -1.000 + 0.000i
	// k=3 -0.000 - 1.000i
}

func ExampleRectangular_Log() {
	l, _ := complexnum.FromReal(8).Log(complexnum.FromReal(2))
	fmt.Printf("%.6g\n", l)

	_, err := complexnum.FromReal(8).Log(complexnum.One)
	fmt.Println(errors.Is(err, complexnum.ErrDomain), errors.Is(err, complexnum.ErrDivisionByZero))
	// Output:
	// 3 + 0i
	// true true
}

func ExampleRectangular_Power() {
	sq, _ := complexnum.I.Power(complexnum.FromReal(2))
	fmt.Println(sq)

	_, err := complexnum.Zero.Power(complexnum.Zero)
	fmt.Println(err)
	// Output:
	// -1 + 0i
	// Power: complexnum: domain error
}
