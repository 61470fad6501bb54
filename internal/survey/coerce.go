package survey

import (
	"math"
	"strconv"
	"strings"
)

// asNumber converts a raw cell value to a float64, returning NaN when the
// value is missing or not numeric. Every operation that does arithmetic on
// ages or answers goes through this one function so that "missing" means
// the same thing everywhere: absent, null, or unparseable.
func asNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return x
	case int:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		// bools, nested objects, arrays
		return math.NaN()
	}
}

// isMissing reports whether a coerced value represents a missing cell.
func isMissing(f float64) bool { return math.IsNaN(f) }

// rowMean averages the non-missing values and reports how many were
// missing. An all-missing row yields (NaN, len(vals)).
func rowMean(vals []float64) (mean float64, missing int) {
	var sum float64
	var n int
	for _, v := range vals {
		if isMissing(v) {
			missing++
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN(), missing
	}
	return sum / float64(n), missing
}
