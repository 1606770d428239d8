package form

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/pipeline"
)

// Output is the result panel. It is hidden until a submit succeeds.
type Output struct {
	Visible bool
	Result  model.Result
}

// Lines renders the panel text: the balance headline followed by the
// budgeted, consumed and burned totals. A hidden panel renders nothing.
func (o Output) Lines() []string {
	if !o.Visible {
		return nil
	}
	r := o.Result
	return []string{
		fmt.Sprintf("%s Calorie %s", FormatCalories(r.Magnitude()), r.Balance),
		fmt.Sprintf("%s Calories Budgeted", FormatCalories(r.Budgeted)),
		fmt.Sprintf("%s Calories Consumed", FormatCalories(r.Consumed)),
		fmt.Sprintf("%s Calories Burned", FormatCalories(r.Burned)),
	}
}

// Class returns the style key of the headline, or "" when hidden.
func (o Output) Class() string {
	if !o.Visible {
		return ""
	}
	return o.Result.Balance.Class()
}

// FormatCalories prints v in its shortest decimal form.
func FormatCalories(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Submit runs the calculator over the current field values. Invalid input is
// reported through a and leaves the output panel exactly as it was.
func (s *Sheet) Submit(a Alerter) (model.Result, error) {
	t := pipeline.Totals{
		Entries: make(map[model.Category][]string, len(model.Categories)),
		Budget:  s.budget,
	}
	for _, c := range model.Categories {
		values := make([]string, 0, len(s.containers[c]))
		for _, e := range s.containers[c] {
			values = append(values, e.Calories)
		}
		t.Entries[c] = values
	}

	alert := func(msg string) {
		if a != nil {
			a.Alert(msg)
		}
	}
	res, err := pipeline.Calculate(t, alert)
	if err != nil {
		s.log.Debug().Err(err).Msg("submit rejected")
		return model.Result{}, fmt.Errorf("calculating calories: %w", err)
	}

	s.output = Output{Visible: true, Result: res}
	s.log.Info().
		Float64("budgeted", res.Budgeted).
		Float64("consumed", res.Consumed).
		Float64("burned", res.Burned).
		Float64("remaining", res.Remaining).
		Str("balance", res.Balance.String()).
		Msg("calories calculated")
	return res, nil
}

// Reset empties every container, clears the budget and hides the output.
func (s *Sheet) Reset() {
	for _, c := range model.Categories {
		delete(s.containers, c)
	}
	s.budget = ""
	s.output = Output{}
	s.log.Debug().Msg("form reset")
}
