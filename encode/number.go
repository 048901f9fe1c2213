package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatNumber renders an int or float for formats without a native
// non-finite representation (JSON, TOON). Floats keep a decimal point
// or exponent so they decode back as floats.
func formatNumber(i *int64, f *float64) (string, error) {
	if i != nil {
		return strconv.FormatInt(*i, 10), nil
	}
	v := *f
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", fmt.Errorf("%w: non-finite number %v", ErrUnrepresentable, v)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}
