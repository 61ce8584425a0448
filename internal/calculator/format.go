package calculator

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v as the shortest decimal that parses back to v,
// without exponent notation. Non-finite values render as inf, -inf, NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber parses the display. Partial entries such as "-" or "5-3"
// fail; inf and NaN produced by earlier results are accepted.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
