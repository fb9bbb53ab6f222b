package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatting thresholds. Magnitudes at or above sciUpper, or below sciLower
// (but not effectively zero), are rendered in scientific notation.
const (
	sciUpper = 1e12
	sciLower = 1e-6
)

// Format renders a result for display. The convention is fixed regardless of
// host locale: period as decimal separator, no grouping, exponent letter E.
//
// Magnitudes below Tolerance render as "0". Very large and very small
// magnitudes use scientific notation with six mantissa digits. Everything
// else is rounded to ten decimal places and rendered as a plain decimal
// string without trailing zeros.
func Format(value float64) string {
	abs := math.Abs(value)
	if abs < Tolerance {
		return "0"
	}
	if abs >= sciUpper || abs < sciLower {
		return fmt.Sprintf("%.6E", value)
	}
	s := strconv.FormatFloat(value, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
