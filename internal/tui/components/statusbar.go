package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// an info string on the right.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [tab]next  [^n]add  [^s]calculate  [^l]clear  [?]help  [^c]quit"
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Hints give way to the info text on narrow terminals.
		left = " [?]help"
		padding = width - lipgloss.Width(left) - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
