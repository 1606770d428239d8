package model

import "fmt"

// Entry is a user-added name/calories pair within a category.
// Index is 1-based and only meaningful relative to its category.
type Entry struct {
	Category Category
	Index    int
	Name     string
	Calories string
}

// NameID identifies the entry's name field, e.g. "lunch-2-name".
func (e Entry) NameID() string {
	return fmt.Sprintf("%s-%d-name", e.Category, e.Index)
}

// CaloriesID identifies the entry's calories field, e.g. "lunch-2-calories".
func (e Entry) CaloriesID() string {
	return fmt.Sprintf("%s-%d-calories", e.Category, e.Index)
}

// NameLabel is the label bound to the name field.
func (e Entry) NameLabel() string {
	return fmt.Sprintf("Entry %d Name", e.Index)
}

// CaloriesLabel is the label bound to the calories field.
func (e Entry) CaloriesLabel() string {
	return fmt.Sprintf("Entry %d Calories", e.Index)
}
