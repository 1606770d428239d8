package pipeline

import (
	"github.com/theirongolddev/calburn/internal/model"
)

// Totals is the raw input of one calculation: calories values per category,
// in display order, plus the budget field.
type Totals struct {
	Entries map[model.Category][]string
	Budget  string
}

// group is one aggregation unit; the budget is aggregated like a category
// with a single field.
type group struct {
	name   string
	values []string
}

// Calculate aggregates every category and the budget, then derives the
// result. Each failing group reports through alert once; if any failed, the
// first error is returned with a zero Result.
func Calculate(t Totals, alert func(string)) (model.Result, error) {
	groups := make([]group, 0, len(model.Categories)+1)
	for _, c := range model.Categories {
		groups = append(groups, group{name: string(c), values: t.Entries[c]})
	}
	groups = append(groups, group{name: "budget", values: []string{t.Budget}})

	sums := make(map[string]float64, len(groups))
	var firstErr error
	for _, g := range groups {
		total, err := Sum(g.values)
		if err != nil {
			if alert != nil {
				alert(err.Error())
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sums[g.name] = total
	}
	if firstErr != nil {
		return model.Result{}, firstErr
	}

	var consumed, burned float64
	for _, c := range model.Categories {
		if c.Burns() {
			burned += sums[string(c)]
		} else {
			consumed += sums[string(c)]
		}
	}

	return Compute(sums["budget"], consumed, burned), nil
}

// Compute applies remaining = budget - consumed + burned and classifies it.
func Compute(budgeted, consumed, burned float64) model.Result {
	remaining := budgeted - consumed + burned
	return model.Result{
		Budgeted:  budgeted,
		Consumed:  consumed,
		Burned:    burned,
		Remaining: remaining,
		Balance:   model.BalanceOf(remaining),
	}
}
