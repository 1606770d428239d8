package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/theirongolddev/calburn/internal/model"
)

// runCLI executes the root command with args and an isolated config dir.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flagCalcBudget = ""
	flagCalcJSON = false
	for _, vals := range flagCalcEntries {
		*vals = nil
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseEntryFlag(t *testing.T) {
	tests := []struct {
		in, name, calories string
	}{
		{"350", "", "350"},
		{"eggs=350", "eggs", "350"},
		{" toast = 120", "toast", " 120"},
		{"a=b=5", "a=b", "5"},
		{"=5", "", "5"},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, cal := parseEntryFlag(tt.in)
		if name != tt.name || cal != tt.calories {
			t.Errorf("parseEntryFlag(%q) = (%q, %q), want (%q, %q)", tt.in, name, cal, tt.name, tt.calories)
		}
	}
}

func TestBuildSheetKeepsOrder(t *testing.T) {
	sheet := buildSheet("2000", map[model.Category][]string{
		model.Lunch:    {"soup=200", "bread=150"},
		model.Exercise: {"300"},
	})

	if sheet.Budget() != "2000" {
		t.Errorf("budget = %q", sheet.Budget())
	}
	lunch := sheet.Entries(model.Lunch)
	if len(lunch) != 2 || lunch[0].Name != "soup" || lunch[1].Index != 2 || lunch[1].Calories != "150" {
		t.Errorf("lunch entries = %+v", lunch)
	}
	if sheet.Count(model.Exercise) != 1 || sheet.Count(model.Breakfast) != 0 {
		t.Errorf("counts: exercise %d, breakfast %d", sheet.Count(model.Exercise), sheet.Count(model.Breakfast))
	}
}

func TestCalcJSON(t *testing.T) {
	out, _, err := runCLI(t, "calc",
		"--budget", "2000",
		"--breakfast", "eggs=500",
		"--lunch", "600",
		"--dinner", "700",
		"--snacks", "100",
		"--exercise", "run=300",
		"--json",
	)
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	var got calcResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := calcResult{
		Budgeted:  2000,
		Consumed:  1900,
		Burned:    300,
		Remaining: 400,
		Balance:   "Deficit",
		Magnitude: 400,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCalcTable(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--budget", "1500", "--dinner", "2000")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	for _, want := range []string{"CALORIE BUDGET", "Budgeted", "Remaining", "-500 kcal", "500 Calorie Surplus"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalcHugeBudget(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--budget", "99999999999999999999", "--lunch", "100")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	for _, want := range []string{"100,000,000,000,000,000,000 kcal", "100 kcal", "Calorie Deficit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalcInvalidInput(t *testing.T) {
	out, errOut, err := runCLI(t, "calc", "--budget", "1e5", "--lunch", "2E3")
	if err == nil {
		t.Fatal("expected an error for exponential input")
	}
	if out != "" {
		t.Errorf("stdout should be empty on error, got %q", out)
	}
	for _, want := range []string{"Invalid Input: 2E3", "Invalid Input: 1e5"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q: %q", want, errOut)
		}
	}
	if strings.Index(errOut, "2E3") > strings.Index(errOut, "1e5") {
		t.Errorf("lunch alert should come before budget alert: %q", errOut)
	}
}

func TestCalcRepeatedFlagsAccumulate(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--budget", "1000", "--snacks", "100", "--snacks", "chips=150", "--json")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	var got calcResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got.Consumed != 250 || got.Remaining != 750 {
		t.Errorf("got %+v, want consumed 250 remaining 750", got)
	}
}

func TestConfigCommand(t *testing.T) {
	out, _, err := runCLI(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"using defaults", "Default category: breakfast", "Theme: flexoki-dark", "File:  off"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
