// Package tui provides the interactive Bubble Tea calorie form for calburn.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/form"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/tui/components"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
	minContentHeight = 5

	labelWidth = 18
)

// Options configures a new App.
type Options struct {
	Budget   string
	Category model.Category
	Logger   zerolog.Logger
	FirstRun bool // show the setup form before the calculator
}

type focusKind int

const (
	focusBudget focusKind = iota
	focusSelector
	focusAdd
	focusName
	focusCalories
	focusSubmit
	focusClear
)

// focusTarget identifies one focusable control. category and index are set
// only for entry fields.
type focusTarget struct {
	kind     focusKind
	category model.Category
	index    int
}

// entryFields are the two inputs bound to one form entry.
type entryFields struct {
	name     textinput.Model
	calories textinput.Model
}

// App is the root Bubble Tea model.
type App struct {
	sheet *form.Sheet
	log   zerolog.Logger

	budget textinput.Model
	fields map[model.Category][]entryFields
	focus  focusTarget

	alerts   []string
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues // shared with the form across model copies
	setupErr  error

	width  int
	height int
}

// NewApp creates the app and its form sheet. This is the only place the
// sheet is created; every handler works on it.
func NewApp(opts Options) App {
	a := App{
		sheet: form.New(
			form.WithBudget(opts.Budget),
			form.WithSelected(opts.Category),
			form.WithLogger(opts.Logger),
		),
		log:    opts.Logger,
		budget: newNumberInput("Calories", 12),
		fields: make(map[model.Category][]entryFields, len(model.Categories)),
	}
	// The budget may come from flags or config, so it is never cut short;
	// the field scrolls instead.
	a.budget.CharLimit = 0
	a.budget.SetValue(opts.Budget)
	a.budget.Focus()

	if opts.FirstRun {
		cfg, _ := config.Load()
		vals := SetupValuesFrom(cfg)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Sheet exposes the underlying form state.
func (a App) Sheet() *form.Sheet { return a.sheet }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit
	return ti
}

func newNumberInput(placeholder string, limit int) textinput.Model {
	return newTextInput(placeholder, limit)
}

func newEntryFields() entryFields {
	return entryFields{
		name:     newTextInput("Name", 24),
		calories: newNumberInput("Calories", 10),
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// An alert blocks everything until dismissed.
		if len(a.alerts) > 0 {
			a.alerts = a.alerts[1:]
			return a, nil
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKey(msg)
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blinks and the like go to the focused input.
	if in := a.inputFor(a.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	onText := a.inputFor(a.focus) != nil

	switch key {
	case "tab", "down":
		return a, a.moveFocus(1)
	case "shift+tab", "up":
		return a, a.moveFocus(-1)
	case "ctrl+n":
		return a, a.addEntry()
	case "ctrl+s":
		a.submit()
		return a, nil
	case "ctrl+l":
		return a, a.clear()
	}

	if !onText {
		switch key {
		case "?":
			a.showHelp = true
			return a, nil
		case "q":
			return a, tea.Quit
		}
	}

	switch a.focus.kind {
	case focusSelector:
		switch key {
		case "left":
			a.sheet.CycleSelected(-1)
		case "right":
			a.sheet.CycleSelected(1)
		case "enter":
			return a, a.moveFocus(1)
		default:
			if len(msg.Runes) == 1 {
				if c, ok := components.OptionByKey(msg.Runes[0]); ok {
					a.sheet.Select(c)
				}
			}
		}
		return a, nil

	case focusAdd:
		if key == "enter" || key == " " {
			return a, a.addEntry()
		}
		return a, nil

	case focusSubmit:
		if key == "enter" || key == " " {
			a.submit()
		}
		return a, nil

	case focusClear:
		if key == "enter" || key == " " {
			return a, a.clear()
		}
		return a, nil
	}

	// Text inputs
	if key == "enter" {
		return a, a.moveFocus(1)
	}
	if a.focus.kind == focusBudget || a.focus.kind == focusCalories {
		var ok bool
		if msg, ok = numericKey(msg); !ok {
			return a, nil
		}
	}

	in := a.inputFor(a.focus)
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	a.syncField(a.focus)
	return a, cmd
}

// numericKey drops runes a browser number field would refuse. It reports
// false when nothing is left to type.
func numericKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes {
		return msg, true
	}
	kept := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if (r >= '0' && r <= '9') || strings.ContainsRune(".eE+- ", r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	msg.Runes = kept
	return msg, true
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := a.setupForm.Update(msg)
	if hf, ok := f.(*huh.Form); ok {
		a.setupForm = hf
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.finishSetup()
		a.setupForm = nil
		return a, textinput.Blink
	case huh.StateAborted:
		a.setupForm = nil
		return a, textinput.Blink
	}
	return a, cmd
}

func (a *App) finishSetup() {
	cfg, _ := config.Load()
	cfg = ApplySetup(cfg, *a.setupVals)
	a.setupErr = config.Save(cfg)
	if a.setupErr != nil {
		a.log.Warn().Err(a.setupErr).Msg("saving setup config")
	} else {
		a.log.Info().Str("path", config.Path()).Msg("config saved")
	}

	if a.sheet.Budget() == "" && cfg.General.DefaultBudget != "" {
		a.sheet.SetBudget(cfg.General.DefaultBudget)
		a.budget.SetValue(cfg.General.DefaultBudget)
	}
	a.sheet.Select(config.DefaultCategory(cfg))
}

// ─── Handlers ───────────────────────────────────────────────────

func (a *App) addEntry() tea.Cmd {
	e := a.sheet.AddEntry()
	a.fields[e.Category] = append(a.fields[e.Category], newEntryFields())
	return a.setFocus(focusTarget{kind: focusName, category: e.Category, index: e.Index})
}

func (a *App) submit() {
	alert := form.AlertFunc(func(msg string) {
		a.alerts = append(a.alerts, msg)
	})
	// Invalid input has already been surfaced through alert.
	_, _ = a.sheet.Submit(alert)
}

func (a *App) clear() tea.Cmd {
	a.sheet.Reset()
	a.fields = make(map[model.Category][]entryFields, len(model.Categories))
	a.budget.SetValue("")
	return a.setFocus(focusTarget{kind: focusBudget})
}

// ─── Focus ──────────────────────────────────────────────────────

func (a App) focusRing() []focusTarget {
	ring := []focusTarget{{kind: focusBudget}, {kind: focusSelector}, {kind: focusAdd}}
	for _, c := range model.Categories {
		for i := range a.fields[c] {
			ring = append(ring,
				focusTarget{kind: focusName, category: c, index: i + 1},
				focusTarget{kind: focusCalories, category: c, index: i + 1},
			)
		}
	}
	return append(ring, focusTarget{kind: focusSubmit}, focusTarget{kind: focusClear})
}

func (a *App) moveFocus(delta int) tea.Cmd {
	ring := a.focusRing()
	cur := 0
	for i, f := range ring {
		if f == a.focus {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(ring) + len(ring)) % len(ring)
	return a.setFocus(ring[next])
}

func (a *App) setFocus(f focusTarget) tea.Cmd {
	if in := a.inputFor(a.focus); in != nil {
		in.Blur()
	}
	a.focus = f
	if in := a.inputFor(f); in != nil {
		return in.Focus()
	}
	return nil
}

// inputFor returns the text input behind f, or nil for buttons, the
// selector and stale entry targets.
func (a *App) inputFor(f focusTarget) *textinput.Model {
	switch f.kind {
	case focusBudget:
		return &a.budget
	case focusName, focusCalories:
		list := a.fields[f.category]
		if f.index < 1 || f.index > len(list) {
			return nil
		}
		if f.kind == focusName {
			return &list[f.index-1].name
		}
		return &list[f.index-1].calories
	}
	return nil
}

// syncField copies an input's value into the sheet.
func (a *App) syncField(f focusTarget) {
	in := a.inputFor(f)
	if in == nil {
		return
	}
	switch f.kind {
	case focusBudget:
		a.sheet.SetBudget(in.Value())
	case focusName:
		a.sheet.SetName(f.category, f.index, in.Value())
	case focusCalories:
		a.sheet.SetCalories(f.category, f.index, in.Value())
	}
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if len(a.alerts) > 0 {
		return components.AlertModal(a.alerts[0], len(a.alerts), a.width, a.height)
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  calburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	bindings := []struct{ key, desc string }{
		{"tab ↓", "Next field"},
		{"S-tab ↑", "Previous field"},
		{"← →", "Change category (selector)"},
		{"b l d s e", "Pick category (selector)"},
		{"^n", "Add entry to category"},
		{"^s", "Calculate remaining calories"},
		{"^l", "Clear the form"},
		{"Enter", "Press button / next field"},
		{"?", "Toggle help"},
		{"q ^c", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	header := " " + titleStyle.Render("◈ calburn") + subStyle.Render(" · Calorie Counter")

	info := fmt.Sprintf("%d entries · adding to %s", a.sheet.Total(), a.sheet.Selected().Title())
	if a.setupErr != nil {
		info = "config not saved: " + a.setupErr.Error()
	}
	statusBar := components.RenderStatusBar(w, info)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	body, focusLine := a.renderBody(cw)
	body = scrollTo(body, focusLine, contentH)
	body = padHeight(truncateHeight(body, contentH), contentH)
	body = lipgloss.PlaceHorizontal(w, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

// renderBody renders the whole form and reports the line the focused
// control sits on, so the view can keep it on screen.
func (a App) renderBody(cw int) (string, int) {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	line := 0
	focusLine := 0
	add := func(s string) {
		parts = append(parts, s)
		line += lipgloss.Height(s)
	}

	// Budget card: card top border + title precede the first row.
	budgetRows := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, "Budget")) + a.renderInput(&a.budget) + "\n" +
		labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, "Category")) +
		components.RenderSelector(a.sheet.Selected(), a.focus.kind == focusSelector) + "  " +
		renderButton("Add Entry", a.focus.kind == focusAdd)
	switch a.focus.kind {
	case focusBudget:
		focusLine = line + 2
	case focusSelector, focusAdd:
		focusLine = line + 3
	}
	budgetFocused := a.focus.kind == focusBudget || a.focus.kind == focusSelector || a.focus.kind == focusAdd
	add(components.ContentCard("Daily Budget", budgetRows, cw, budgetFocused))

	for _, c := range model.Categories {
		entries := a.sheet.Entries(c)
		var rows strings.Builder
		if len(entries) == 0 {
			rows.WriteString(dimStyle.Render("No entries"))
		}
		for i, e := range entries {
			ef := a.fields[c][i]
			if i > 0 {
				rows.WriteString("\n")
			}
			rows.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, e.NameLabel())))
			rows.WriteString(a.renderInput(&ef.name))
			rows.WriteString("  ")
			rows.WriteString(labelStyle.Render(e.CaloriesLabel() + " "))
			rows.WriteString(a.renderInput(&ef.calories))
		}

		focused := (a.focus.kind == focusName || a.focus.kind == focusCalories) && a.focus.category == c
		if focused {
			focusLine = line + 2 + a.focus.index - 1
		}
		title := c.Title()
		if len(entries) > 0 {
			title = fmt.Sprintf("%s (%d)", title, len(entries))
		}
		add(components.ContentCard(title, rows.String(), cw, focused))
	}

	if a.focus.kind == focusSubmit || a.focus.kind == focusClear {
		focusLine = line + 1
	}
	add("\n" + " " + renderButton("Calculate Remaining Calories", a.focus.kind == focusSubmit) +
		"  " + renderButton("Clear", a.focus.kind == focusClear) + "\n")

	out := a.sheet.Output()
	if out.Visible {
		res := out.Result
		add(components.MetricCardRow([]components.Metric{
			{Label: "Budgeted", Value: form.FormatCalories(res.Budgeted)},
			{Label: "Consumed", Value: form.FormatCalories(res.Consumed)},
			{Label: "Burned", Value: form.FormatCalories(res.Burned)},
			{Label: "Remaining", Value: form.FormatCalories(res.Remaining)},
		}, cw))
		bar := components.BudgetBar(res.Consumed-res.Burned, res.Budgeted, out.Class(), components.CardInnerWidth(cw))
		add(components.OutputPanel(out.Lines(), out.Class(), bar, cw))
		// Keep the fresh result in view when a button has focus.
		if a.focus.kind == focusSubmit || a.focus.kind == focusClear {
			focusLine = line - 1
		}
	}

	return strings.Join(parts, "\n"), focusLine
}

func (a App) renderInput(in *textinput.Model) string {
	t := theme.Active
	style := lipgloss.NewStyle().Background(t.Surface).Width(in.Width + 1)
	if in.Focused() {
		style = style.Background(t.SurfaceBright)
	}
	return style.Render(in.View())
}

func renderButton(label string, focused bool) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.Accent).
		Padding(0, 1)
	if focused {
		style = style.
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true)
	}
	return style.Render("[ " + label + " ]")
}

// ─── Helpers ────────────────────────────────────────────────────

// scrollTo drops leading lines so that line focus stays inside a window of
// h lines, leaving a little context below it.
func scrollTo(s string, focus, h int) string {
	lines := strings.Split(s, "\n")
	start := 0
	if focus >= h-2 {
		start = focus - h + 3
	}
	if start > len(lines)-h {
		start = len(lines) - h
	}
	if start <= 0 {
		return s
	}
	return strings.Join(lines[start:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
