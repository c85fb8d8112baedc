package models

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a numeric cell value as an integer.
// Decimal values are rounded the way spreadsheet integer conversion does.
// The second result is false for blank or non-numeric input.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i), true
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(math.RoundToEven(f)), true
	}
	return 0, false
}
