package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/calburn/internal/model"
)

func press(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		next, ok := m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
		a = next
	}
	return a
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T, a App) App {
	t.Helper()
	return press(t, a, tea.WindowSizeMsg{Width: 100, Height: 60})
}

func TestAppComputesDeficit(t *testing.T) {
	a := sized(t, NewApp(Options{}))

	a = press(t, a,
		typeText("2000"),
		key(tea.KeyCtrlN),
		typeText("Eggs"),
		key(tea.KeyTab),
		typeText("500"),
		key(tea.KeyCtrlS),
	)

	if got := a.Sheet().Budget(); got != "2000" {
		t.Errorf("budget = %q, want 2000", got)
	}
	entries := a.Sheet().Entries(model.Breakfast)
	if len(entries) != 1 {
		t.Fatalf("breakfast entries = %d, want 1", len(entries))
	}
	if entries[0].Name != "Eggs" || entries[0].Calories != "500" {
		t.Errorf("entry = %+v, want Eggs/500", entries[0])
	}

	out := a.Sheet().Output()
	if !out.Visible {
		t.Fatal("output should be visible after submit")
	}
	if out.Result.Remaining != 1500 || out.Result.Balance != model.Deficit {
		t.Errorf("result = %+v, want 1500 deficit", out.Result)
	}
	if len(a.alerts) != 0 {
		t.Errorf("alerts = %v, want none", a.alerts)
	}

	view := a.View()
	if !strings.Contains(view, "1500 Calorie Deficit") {
		t.Errorf("view missing result line:\n%s", view)
	}
}

func TestAppLongBudgetMatchesSheet(t *testing.T) {
	const long = "99999999999999999999"
	a := NewApp(Options{Budget: long})
	if got := a.budget.Value(); got != long {
		t.Errorf("budget field = %q, want %q", got, long)
	}
	if a.Sheet().Budget() != a.budget.Value() {
		t.Errorf("sheet %q and field %q disagree", a.Sheet().Budget(), a.budget.Value())
	}

	a = press(t, a, typeText("9"))
	if got := a.Sheet().Budget(); got != long+"9" {
		t.Errorf("typed budget = %q, want %q", got, long+"9")
	}
}

func TestAppCaloriesRejectLetters(t *testing.T) {
	a := NewApp(Options{})
	a = press(t, a,
		key(tea.KeyCtrlN),
		key(tea.KeyTab),
		typeText("abc"),
		typeText("1x2"),
	)

	e := a.Sheet().Entries(model.Breakfast)[0]
	if e.Calories != "12" {
		t.Errorf("calories = %q, want 12", e.Calories)
	}
}

func TestAppInvalidInputShowsAlert(t *testing.T) {
	a := sized(t, NewApp(Options{}))
	a = press(t, a, typeText("1e5"), key(tea.KeyCtrlS))

	if len(a.alerts) != 1 {
		t.Fatalf("alerts = %v, want one", a.alerts)
	}
	if a.Sheet().Output().Visible {
		t.Error("output should stay hidden on invalid input")
	}
	if view := a.View(); !strings.Contains(view, "Invalid Input: 1e5") {
		t.Errorf("alert modal missing message:\n%s", view)
	}

	// Any key dismisses and is swallowed.
	a = press(t, a, typeText("9"))
	if len(a.alerts) != 0 {
		t.Errorf("alert not dismissed: %v", a.alerts)
	}
	if got := a.Sheet().Budget(); got != "1e5" {
		t.Errorf("dismiss key reached the input: budget = %q", got)
	}
}

func TestAppOneAlertPerFailingGroup(t *testing.T) {
	a := NewApp(Options{})
	a = press(t, a,
		typeText("2e3"),
		key(tea.KeyCtrlN),
		key(tea.KeyTab),
		typeText("1e2"),
		key(tea.KeyCtrlS),
	)

	if len(a.alerts) != 2 {
		t.Fatalf("alerts = %v, want two", a.alerts)
	}
	if a.alerts[0] != "Invalid Input: 1e2" || a.alerts[1] != "Invalid Input: 2e3" {
		t.Errorf("alerts = %v", a.alerts)
	}
}

func TestAppClearResetsEverything(t *testing.T) {
	a := NewApp(Options{})
	a = press(t, a,
		typeText("1500"),
		key(tea.KeyCtrlN),
		key(tea.KeyTab),
		typeText("2000"),
		key(tea.KeyCtrlS),
	)
	if !a.Sheet().Output().Visible {
		t.Fatal("setup: output should be visible")
	}

	a = press(t, a, key(tea.KeyCtrlL))

	if a.Sheet().Total() != 0 {
		t.Errorf("entries left after clear: %d", a.Sheet().Total())
	}
	if a.Sheet().Budget() != "" || a.budget.Value() != "" {
		t.Errorf("budget not cleared: %q / %q", a.Sheet().Budget(), a.budget.Value())
	}
	if a.Sheet().Output().Visible {
		t.Error("output still visible after clear")
	}
	if a.focus.kind != focusBudget {
		t.Errorf("focus = %v, want budget", a.focus.kind)
	}
	if len(a.fields[model.Breakfast]) != 0 {
		t.Error("entry inputs survived clear")
	}
}

func TestAppSelectorAddsToChosenCategory(t *testing.T) {
	a := NewApp(Options{Category: model.Lunch})
	if a.Sheet().Selected() != model.Lunch {
		t.Fatalf("selected = %s, want lunch", a.Sheet().Selected())
	}

	a = press(t, a,
		key(tea.KeyTab),   // selector
		key(tea.KeyRight), // dinner
		typeText("e"),     // exercise
		key(tea.KeyTab),   // add button
		key(tea.KeyEnter),
	)

	if n := a.Sheet().Count(model.Exercise); n != 1 {
		t.Errorf("exercise entries = %d, want 1", n)
	}
	if n := a.Sheet().Count(model.Dinner); n != 0 {
		t.Errorf("dinner entries = %d, want 0", n)
	}
	want := focusTarget{kind: focusName, category: model.Exercise, index: 1}
	if a.focus != want {
		t.Errorf("focus = %+v, want %+v", a.focus, want)
	}
}

func TestAppFocusRingWraps(t *testing.T) {
	a := NewApp(Options{})
	if n := len(a.focusRing()); n != 5 {
		t.Fatalf("empty ring = %d, want 5", n)
	}

	a = press(t, a, key(tea.KeyShiftTab))
	if a.focus.kind != focusClear {
		t.Errorf("shift+tab from budget = %v, want clear", a.focus.kind)
	}
	a = press(t, a, key(tea.KeyTab))
	if a.focus.kind != focusBudget {
		t.Errorf("tab from clear = %v, want budget", a.focus.kind)
	}

	a = press(t, a, key(tea.KeyCtrlN), key(tea.KeyCtrlN))
	if n := len(a.focusRing()); n != 9 {
		t.Errorf("ring with two entries = %d, want 9", n)
	}
}

func TestAppEnterOnSubmitButton(t *testing.T) {
	a := NewApp(Options{Budget: "1800"})
	a = press(t, a, key(tea.KeyShiftTab), key(tea.KeyShiftTab), key(tea.KeyEnter))

	out := a.Sheet().Output()
	if !out.Visible || out.Result.Remaining != 1800 {
		t.Errorf("output = %+v, want visible 1800", out)
	}
}

func TestAppHelpToggle(t *testing.T) {
	a := sized(t, NewApp(Options{}))

	// On a text input '?' is typed, not a shortcut.
	a = press(t, a, typeText("?"))
	if a.showHelp {
		t.Fatal("help opened while typing in budget")
	}

	a = press(t, a, key(tea.KeyTab), typeText("?"))
	if !a.showHelp {
		t.Fatal("help did not open from selector")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	a = press(t, a, key(tea.KeyRight))
	if a.showHelp {
		t.Error("help not dismissed")
	}
	if a.Sheet().Selected() != model.Breakfast {
		t.Error("dismiss key changed the selection")
	}
}

func TestAppViewSizes(t *testing.T) {
	a := NewApp(Options{})
	if v := a.View(); v != "" {
		t.Errorf("view before size = %q, want empty", v)
	}

	a = press(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if v := a.View(); !strings.Contains(v, "too narrow") {
		t.Errorf("narrow view = %q", v)
	}

	a = press(t, a, tea.WindowSizeMsg{Width: 100, Height: 60})
	v := a.View()
	for _, want := range []string{"Daily Budget", "Breakfast", "Exercise", "Calculate Remaining Calories", "No entries"} {
		if !strings.Contains(v, want) {
			t.Errorf("main view missing %q", want)
		}
	}
	if got := strings.Count(v, "\n") + 1; got != 60 {
		t.Errorf("view height = %d, want 60", got)
	}
}

func TestAppQuitKeys(t *testing.T) {
	a := NewApp(Options{})
	if _, cmd := a.Update(key(tea.KeyCtrlC)); cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}

	// 'q' on the budget input is just a rune the filter drops.
	m, cmd := a.Update(typeText("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q quit while typing")
		}
	}
	if m.(App).Sheet().Budget() != "" {
		t.Error("q reached the budget input")
	}
}

func TestNumericKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"123", "123", true},
		{"1.5e+3", "1.5e+3", true},
		{"abc", "", false},
		{"a1b", "1", true},
	}
	for _, tt := range tests {
		got, ok := numericKey(typeText(tt.in))
		if ok != tt.ok {
			t.Errorf("numericKey(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && string(got.Runes) != tt.want {
			t.Errorf("numericKey(%q) = %q, want %q", tt.in, string(got.Runes), tt.want)
		}
	}
}
