package model

import "math"

// Balance classifies the net calorie position for the day.
type Balance int

const (
	// Deficit means net consumption stayed at or below budget.
	Deficit Balance = iota
	// Surplus means net consumption exceeded budget.
	Surplus
)

func (b Balance) String() string {
	if b == Surplus {
		return "Surplus"
	}
	return "Deficit"
}

// Class returns the lowercase style key for the balance.
func (b Balance) Class() string {
	if b == Surplus {
		return "surplus"
	}
	return "deficit"
}

// BalanceOf classifies a remaining-calories value.
func BalanceOf(remaining float64) Balance {
	if remaining < 0 {
		return Surplus
	}
	return Deficit
}

// Result holds the totals derived from one submit. It is never stored.
type Result struct {
	Budgeted  float64
	Consumed  float64
	Burned    float64
	Remaining float64
	Balance   Balance
}

// Magnitude is the absolute value of Remaining.
func (r Result) Magnitude() float64 {
	return math.Abs(r.Remaining)
}
