// SPDX-License-Identifier: MIT

// Package numcodec holds the scalar helpers shared by the YAML/TOML codecs
// of package angle and package complexnum.
package numcodec

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumber is returned by Float when a decoded TOML value is not numeric.
var ErrNotNumber = errors.New("numcodec: value is not a number")

// Float converts a value produced by the TOML decoder (int64 or float64,
// plus the other Go numeric kinds for callers building maps by hand)
// into a float64.
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, ErrNotNumber
	}
}

// TOMLFloat renders f as a TOML float literal.
// Integral values keep a ".0" so they decode back as floats, and the
// special values use the TOML spellings nan, inf and -inf.
func TOMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}
