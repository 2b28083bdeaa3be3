// Package money holds the numeric conventions shared by the cost and POS
// calculators: amounts are plain float64, rounded to 2 decimals only at
// the display boundary.
package money

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal normalizes locale-formatted input like "1.234,56"
// (dot as thousands separator, comma as decimal separator) to a float.
// Empty or non-numeric input yields 0, never an error.
func ParseDecimal(value string) float64 {
	str := strings.TrimSpace(value)
	if str == "" {
		return 0
	}

	normalized := strings.ReplaceAll(str, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	num, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return 0
	}
	return num
}

// Round2 rounds to 2 decimal places for display and persistence.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
