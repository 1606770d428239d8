package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// BudgetBar renders net intake (consumed minus burned) against the budget.
// The bar is drawn in the balance color; nothing is drawn without a budget.
func BudgetBar(net, budget float64, class string, width int) string {
	if budget <= 0 {
		return ""
	}
	t := theme.Active

	pct := net / budget
	shown := pct
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	barW := width - 6
	if barW < 4 {
		barW = 4
	}

	color := t.BalanceColor(class)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(shown) + " " + pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
