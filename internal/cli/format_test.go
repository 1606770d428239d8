package cli

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatKcal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 kcal"},
		{1900, "1,900 kcal"},
		{12.5, "12.5 kcal"},
		{-500, "-500 kcal"},
		{99.96, "100 kcal"},
		{-0.01, "0 kcal"},
		{1e20, "100,000,000,000,000,000,000 kcal"},
		{-1e20, "-100,000,000,000,000,000,000 kcal"},
		{9.3e18, "9,300,000,000,000,000,000 kcal"},
	}
	for _, tt := range tests {
		if got := FormatKcal(tt.in); got != tt.want {
			t.Errorf("FormatKcal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(400); got != "+400 kcal" {
		t.Errorf("FormatSigned(400) = %q", got)
	}
	if got := FormatSigned(-500); got != "-500 kcal" {
		t.Errorf("FormatSigned(-500) = %q", got)
	}
	if got := FormatSigned(0); got != "0 kcal" {
		t.Errorf("FormatSigned(0) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.95); got != "95.0%" {
		t.Errorf("FormatPercent(0.95) = %q", got)
	}
}
