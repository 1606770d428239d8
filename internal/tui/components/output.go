package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// OutputPanel renders the calculation result card. lines[0] is the balance
// headline and is styled by class; the rest sit under a rule. extra (the
// budget bar) is appended when non-empty.
func OutputPanel(lines []string, class, extra string, outerWidth int) string {
	if len(lines) == 0 {
		return ""
	}
	t := theme.Active

	headStyle := lipgloss.NewStyle().
		Foreground(t.BalanceColor(class)).
		Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border)
	lineStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	inner := CardInnerWidth(outerWidth)

	var b strings.Builder
	b.WriteString(headStyle.Render(lines[0]))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", inner)))
	for _, l := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(lineStyle.Render(l))
	}
	if extra != "" {
		b.WriteString("\n\n")
		b.WriteString(extra)
	}

	return ContentCard("Result", b.String(), outerWidth, false)
}

// AlertModal renders a blocking notification centered in a w x h area.
func AlertModal(msg string, pending, w, h int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Warn).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Warn).
		Background(t.Surface).
		Bold(true)
	msgStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)
	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	hint := "Press any key to dismiss"
	if pending > 1 {
		hint += fmt.Sprintf(" (%d more)", pending-1)
	}

	body := titleStyle.Render("! Alert") + "\n\n" +
		msgStyle.Render(msg) + "\n\n" +
		hintStyle.Render(hint)

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}
