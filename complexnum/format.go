// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String implements the [fmt.Stringer] interface and returns the display
// form "<real> + <imaginary>i". A negative imaginary part (−0 included) is
// written with a minus sign instead: "1 - 2.5i". Both parts use the shortest decimal
// representation that round-trips the float64.
//
// The string is for display only; this package does not parse it back.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (z Rectangular) String() string {
	return z.format('g', -1)
}

func (z Rectangular) format(verb byte, prec int) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(z.re, verb, prec, 64))
	im := z.im
	if math.Signbit(im) {
		b.WriteString(" - ")
		im = -im
	} else {
		b.WriteString(" + ")
	}
	b.WriteString(strconv.FormatFloat(im, verb, prec, 64))
	b.WriteByte('i')

	return b.String()
}

// Format implements [fmt.Formatter].
// The following [verbs] are available:
//
//	%s, %v:   3 + 4i
//	%q:      "3 + 4i"
//	%f, %F:   3.000000 + 4.000000i
//	%e, %E:   3.000000e+00 + 4.000000e+00i
//	%g, %G:   3 + 4i
//
// Precision applies to each part for %f, %e and %g. Width pads the whole
// string with spaces, on the left unless the '-' flag is set.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (z Rectangular) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'v':
		s = z.String()
	case 'q':
		s = strconv.Quote(z.String())
	case 'f', 'F', 'e', 'E', 'g', 'G':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
			if verb == 'g' || verb == 'G' {
				prec = -1
			}
		}
		if verb == 'F' {
			verb = 'f'
		}
		s = z.format(byte(verb), prec)
	default:
		s = "%!" + string(verb) + "(complexnum.Rectangular=" + z.String() + ")"
	}
	writePadded(state, s)
}

func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	if n := utf8.RuneCountInString(s); ok && w > n {
		fill := strings.Repeat(" ", w-n)
		if state.Flag('-') {
			s += fill
		} else {
			s = fill + s
		}
	}
	_, _ = io.WriteString(state, s)
}

// String returns "<magnitude>∠<angle>", e.g. "5∠0.9272952180016122rad"
// or "2∠45°", using the stored (not normalized) angle.
func (p Polar) String() string {
	return strconv.FormatFloat(p.mag, 'g', -1, 64) + "∠" + p.arg.String()
}
