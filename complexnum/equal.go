// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Equal reports whether z and w are the same complex number within the
// configured tolerance (DefaultEpsilon unless WithEpsilon is given):
//
//	|z − w| ≤ eps·(1 + max(|z|, |w|))
//
// The bound is absolute near the origin and relative for large values.
// Under the default NaN/Inf policy any non-finite operand compares unequal;
// with WithNoValidateNaNInf bit-identical values (including infinities)
// compare equal.
func (z Rectangular) Equal(w Number, opts ...Option) bool {
	return closeTo(z, w.ToRectangular(), gatherOptions(opts...))
}

// Equal reports whether p and w are the same complex number within the
// configured tolerance. The comparison runs on the rectangular views, so
// angles a full turn apart compare equal. See Rectangular.Equal.
func (p Polar) Equal(w Number, opts ...Option) bool {
	return closeTo(p.ToRectangular(), w.ToRectangular(), gatherOptions(opts...))
}

func closeTo(a, b Rectangular, o Options) bool {
	if !a.IsFinite() || !b.IsFinite() {
		return !o.validateNaNInf && a == b
	}
	diff := math.Hypot(a.re-b.re, a.im-b.im)
	scale := math.Max(a.Magnitude(), b.Magnitude())

	return diff <= o.eps*(1+scale)
}

// AllClose reports whether a and b have the same length and Equal holds
// pairwise under the same options. Typical use is comparing root sets,
// which are ordered by k.
func AllClose(a, b []Rectangular, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !closeTo(a[i], b[i], o) {
			return false
		}
	}

	return true
}
