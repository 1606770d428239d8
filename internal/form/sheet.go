// Package form holds the calculator's input tree: one entry container per
// category, the budget field, the category selector and the output panel.
// Handlers run synchronously against a *Sheet created by New.
package form

import (
	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/model"
)

// Alerter is the blocking user notification used for invalid input.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

// Alert implements Alerter.
func (f AlertFunc) Alert(msg string) { f(msg) }

// Sheet is the state of one calculator form.
type Sheet struct {
	containers map[model.Category][]model.Entry
	budget     string
	selected   model.Category
	output     Output
	log        zerolog.Logger
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithSelected sets the initially selected category.
func WithSelected(c model.Category) Option {
	return func(s *Sheet) {
		if c.Index() >= 0 {
			s.selected = c
		}
	}
}

// WithBudget pre-fills the budget field.
func WithBudget(v string) Option {
	return func(s *Sheet) { s.budget = v }
}

// WithLogger attaches a logger for form events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sheet) { s.log = l }
}

// New creates an empty sheet with breakfast selected and the output hidden.
func New(opts ...Option) *Sheet {
	s := &Sheet{
		containers: make(map[model.Category][]model.Entry, len(model.Categories)),
		selected:   model.Breakfast,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Selected returns the category new entries go to.
func (s *Sheet) Selected() model.Category { return s.selected }

// Select changes the selected category. Unknown categories are ignored.
func (s *Sheet) Select(c model.Category) {
	if c.Index() >= 0 {
		s.selected = c
	}
}

// CycleSelected moves the selection by delta, wrapping around.
func (s *Sheet) CycleSelected(delta int) model.Category {
	n := len(model.Categories)
	i := ((s.selected.Index()+delta)%n + n) % n
	s.selected = model.Categories[i]
	return s.selected
}

// Budget returns the raw budget field.
func (s *Sheet) Budget() string { return s.budget }

// SetBudget replaces the raw budget field.
func (s *Sheet) SetBudget(v string) { s.budget = v }

// Output returns the output panel state.
func (s *Sheet) Output() Output { return s.output }
