// Package pipeline cleans, validates and sums calorie inputs and derives the
// surplus/deficit result from them.
package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	exponentRe = regexp.MustCompile(`\d+[eE]\d+`)
	decimalRe  = regexp.MustCompile(`^(?:\d+\.?\d*|\.\d+)$`)
)

// Sanitize removes every '+', '-' and whitespace character from s.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || r == '-' || isFormSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isFormSpace reports whether a browser regexp \s matches r: the space
// separators plus tab, the line terminators and the byte order mark. Unlike
// unicode.IsSpace it leaves U+0085 alone.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// FindExponent returns the first exponential-notation run in s (e.g. "1e10"
// or "2E5"), or "" if there is none.
func FindExponent(s string) string {
	return exponentRe.FindString(s)
}

// IsInvalid reports whether s contains exponential notation.
func IsInvalid(s string) bool {
	return FindExponent(s) != ""
}

// IsNumber reports whether a sanitized value is a plain decimal number.
func IsNumber(clean string) bool {
	return decimalRe.MatchString(clean)
}

// ParseNumber converts a sanitized value to calories. Empty input is 0, and
// so is anything that is not a plain decimal number.
func ParseNumber(clean string) float64 {
	if !IsNumber(clean) {
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}
