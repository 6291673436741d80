// SPDX-License-Identifier: MIT

package complexnum

import "fmt"

// MustDivide is like [Rectangular.Divide] but panics on error.
func (z Rectangular) MustDivide(w Number) Rectangular {
	q, err := z.Divide(w)
	if err != nil {
		panic(fmt.Sprintf("%v.MustDivide(%v) failed: %v", z, w, err))
	}

	return q
}

// MustReciprocal is like [Rectangular.Reciprocal] but panics on error.
func (z Rectangular) MustReciprocal() Rectangular {
	q, err := z.Reciprocal()
	if err != nil {
		panic(fmt.Sprintf("%v.MustReciprocal() failed: %v", z, err))
	}

	return q
}

// MustLn is like [Rectangular.Ln] but panics on error.
func (z Rectangular) MustLn() Rectangular {
	l, err := z.Ln()
	if err != nil {
		panic(fmt.Sprintf("%v.MustLn() failed: %v", z, err))
	}

	return l
}

// MustLog is like [Rectangular.Log] but panics on error.
func (z Rectangular) MustLog(base Number) Rectangular {
	l, err := z.Log(base)
	if err != nil {
		panic(fmt.Sprintf("%v.MustLog(%v) failed: %v", z, base, err))
	}

	return l
}

// MustLog10 is like [Rectangular.Log10] but panics on error.
func (z Rectangular) MustLog10() Rectangular {
	l, err := z.Log10()
	if err != nil {
		panic(fmt.Sprintf("%v.MustLog10() failed: %v", z, err))
	}

	return l
}

// MustPower is like [Rectangular.Power] but panics on error.
func (z Rectangular) MustPower(w Number, opts ...Option) Rectangular {
	r, err := z.Power(w, opts...)
	if err != nil {
		panic(fmt.Sprintf("%v.MustPower(%v) failed: %v", z, w, err))
	}

	return r
}

// MustNthRoot is like [Rectangular.NthRoot] but panics on error.
func (z Rectangular) MustNthRoot(n int) []Rectangular {
	roots, err := z.NthRoot(n)
	if err != nil {
		panic(fmt.Sprintf("%v.MustNthRoot(%v) failed: %v", z, n, err))
	}

	return roots
}

// MustDivide is like [Polar.Divide] but panics on error.
func (p Polar) MustDivide(w Number) Polar {
	q, err := p.Divide(w)
	if err != nil {
		panic(fmt.Sprintf("%v.MustDivide(%v) failed: %v", p, w, err))
	}

	return q
}

// MustPower is like [Polar.Power] but panics on error.
func (p Polar) MustPower(w Number, opts ...Option) Polar {
	r, err := p.Power(w, opts...)
	if err != nil {
		panic(fmt.Sprintf("%v.MustPower(%v) failed: %v", p, w, err))
	}

	return r
}

// MustNthRoot is like [Polar.NthRoot] but panics on error.
func (p Polar) MustNthRoot(n int) []Polar {
	roots, err := p.NthRoot(n)
	if err != nil {
		panic(fmt.Sprintf("%v.MustNthRoot(%v) failed: %v", p, n, err))
	}

	return roots
}
