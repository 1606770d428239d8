// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + groupDigits(s[1:])
	}
	return groupDigits(s)
}

// groupDigits inserts a comma every three digits of an unsigned digit run.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatKcal formats a calorie amount with separators, keeping up to one
// decimal place when the value is fractional. Values too large for int64
// are grouped from their float digits.
// e.g., 1900 -> "1,900 kcal", 12.5 -> "12.5 kcal"
func FormatKcal(v float64) string {
	whole, frac := math.Modf(math.Abs(v))
	tenths := math.Round(frac * 10)
	if tenths >= 10 {
		whole++
		tenths = 0
	}

	s := groupDigits(strconv.FormatFloat(whole, 'f', 0, 64))
	if tenths > 0 {
		s += fmt.Sprintf(".%d", int(tenths))
	}
	if v < 0 && s != "0" {
		s = "-" + s
	}
	return s + " kcal"
}

// FormatSigned formats a remaining-calories value with an explicit sign.
func FormatSigned(v float64) string {
	if v > 0 {
		return "+" + FormatKcal(v)
	}
	return FormatKcal(v)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
