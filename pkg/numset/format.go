package numset

import (
	"math"
	"strconv"
)

// formatFloat renders a float the way this package's String() methods want
// it: "inf" / "-inf" for infinities, integers without a trailing ".0".
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
