// Package model defines domain types for calburn entries and results.
package model

import (
	"fmt"
	"strings"
)

// Category is one of the fixed meal/exercise groupings that accept entries.
type Category string

const (
	Breakfast Category = "breakfast"
	Lunch     Category = "lunch"
	Dinner    Category = "dinner"
	Snacks    Category = "snacks"
	Exercise  Category = "exercise"
)

// Categories lists every category in display order.
var Categories = []Category{Breakfast, Lunch, Dinner, Snacks, Exercise}

// ParseCategory resolves a category id, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	id := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c == id {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Title returns the display name, e.g. "Breakfast".
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Burns reports whether entries in c subtract from consumption.
func (c Category) Burns() bool {
	return c == Exercise
}

// Index returns the position of c in Categories, or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}
