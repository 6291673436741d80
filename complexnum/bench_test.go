// Package complexnum_test provides benchmarks for the arithmetic and
// transcendental kernels, using deterministic random operands.
package complexnum_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/complexible/complexnum"
)

// sinks to defeat dead-code elimination
var (
	sinkR  complexnum.Rectangular
	sinkP  complexnum.Polar
	sinkRs []complexnum.Rectangular
)

func BenchmarkMultiply(b *testing.B) {
	v := samples(64, 1337, 10)
	b.Run("rectangular", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkR = v[i%len(v)].Multiply(v[(i+1)%len(v)])
		}
	})
	p := make([]complexnum.Polar, len(v))
	for i, z := range v {
		p[i] = z.ToPolar()
	}
	b.Run("polar", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkP = p[i%len(p)].Multiply(p[(i+1)%len(p)])
		}
	})
}

func BenchmarkDivide(b *testing.B) {
	v := samples(64, 4242, 10)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, err := v[i%len(v)].Divide(v[(i+1)%len(v)])
		if err != nil {
			b.Fatal(err)
		}
		sinkR = q
	}
}

func BenchmarkPower(b *testing.B) {
	z := complexnum.FromCartesian(0.9, 0.3)
	for _, n := range []float64{2, 17, 1000} {
		w := complexnum.FromReal(n)
		b.Run(fmt.Sprintf("fast/n=%v", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkR, _ = z.Power(w)
			}
		})
		b.Run(fmt.Sprintf("exp-ln/n=%v", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkR, _ = z.Power(w, complexnum.WithoutIntegerFastPath())
			}
		})
	}
}

func BenchmarkNthRoot(b *testing.B) {
	z := complexnum.FromCartesian(-3, 7)
	for _, n := range []int{2, 16, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkRs, _ = z.NthRoot(n)
			}
		})
	}
}
