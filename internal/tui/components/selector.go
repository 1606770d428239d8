package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// Option is one choice in the category selector.
type Option struct {
	Category model.Category
	Key      rune
}

// Options lists the selector choices; Key is the category's first letter.
var Options = func() []Option {
	opts := make([]Option, 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, Option{Category: c, Key: rune(c[0])})
	}
	return opts
}()

// RenderSelector renders the category selector with the selected category
// highlighted. When focused, the other options show their shortcut letter.
func RenderSelector(selected model.Category, focused bool) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 1)

	mutedStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	parts := make([]string, 0, len(Options))
	for _, opt := range Options {
		title := opt.Category.Title()
		switch {
		case opt.Category == selected:
			parts = append(parts, activeStyle.Render(title))
		case focused:
			// Highlight the shortcut letter (always the first).
			parts = append(parts, " "+keyStyle.Render(title[:1])+mutedStyle.Render(title[1:])+" ")
		default:
			parts = append(parts, inactiveStyle.Render(title))
		}
	}

	arrow := lipgloss.NewStyle().Foreground(t.TextDim)
	if focused {
		arrow = arrow.Foreground(t.Accent)
	}
	return arrow.Render("◂ ") + strings.Join(parts, " ") + arrow.Render(" ▸")
}

// OptionByKey returns the category for a shortcut key.
func OptionByKey(key rune) (model.Category, bool) {
	for _, opt := range Options {
		if opt.Key == key {
			return opt.Category, true
		}
	}
	return "", false
}
