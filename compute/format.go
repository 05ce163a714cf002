package compute

import (
	"math"
	"strconv"
)

// FormatFloat renders v in its shortest decimal form without an exponent,
// e.g. 5, 0.25, -1, inf, NaN.
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
