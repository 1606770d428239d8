package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/cli"
	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/form"
	"github.com/theirongolddev/calburn/internal/model"
)

var (
	flagCalcBudget  string
	flagCalcJSON    bool
	flagCalcEntries = make(map[model.Category]*[]string, len(model.Categories))
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate remaining calories without the TUI",
	Example: `  calburn calc --budget 2000 --breakfast eggs=350 --lunch 600 --exercise run=300
  calburn calc --budget 1800 --dinner "pasta=900" --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&flagCalcBudget, "budget", "", "Daily calorie budget")
	calcCmd.Flags().BoolVar(&flagCalcJSON, "json", false, "Print the result as JSON")
	for _, c := range model.Categories {
		vals := new([]string)
		flagCalcEntries[c] = vals
		calcCmd.Flags().StringArrayVar(vals, string(c), nil,
			fmt.Sprintf("%s entry as name=calories or calories (repeatable)", c.Title()))
	}
	rootCmd.AddCommand(calcCmd)
}

// calcResult is the --json shape.
type calcResult struct {
	Budgeted  float64 `json:"budgeted"`
	Consumed  float64 `json:"consumed"`
	Burned    float64 `json:"burned"`
	Remaining float64 `json:"remaining"`
	Balance   string  `json:"balance"`
	Magnitude float64 `json:"magnitude"`
}

func runCalc(c *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	entries := make(map[model.Category][]string, len(model.Categories))
	for cat, vals := range flagCalcEntries {
		entries[cat] = *vals
	}
	sheet := buildSheet(flagCalcBudget, entries, form.WithLogger(logger))

	stderr := c.ErrOrStderr()
	alert := form.AlertFunc(func(msg string) {
		fmt.Fprintln(stderr, cli.WarnStyle.Render(msg))
	})

	res, err := sheet.Submit(alert)
	if err != nil {
		return err
	}

	if flagCalcJSON {
		return writeCalcJSON(c.OutOrStdout(), res)
	}
	renderCalc(c.OutOrStdout(), sheet)
	return nil
}

// buildSheet fills a fresh sheet the way a user would: one entry per value,
// in the order given.
func buildSheet(budget string, entries map[model.Category][]string, opts ...form.Option) *form.Sheet {
	sheet := form.New(append(opts, form.WithBudget(budget))...)
	for _, cat := range model.Categories {
		for _, v := range entries[cat] {
			name, calories := parseEntryFlag(v)
			e := sheet.AddEntryTo(cat)
			sheet.SetName(cat, e.Index, name)
			sheet.SetCalories(cat, e.Index, calories)
		}
	}
	return sheet
}

// parseEntryFlag splits "name=calories". A value without '=' is calories
// only.
func parseEntryFlag(v string) (name, calories string) {
	i := strings.LastIndex(v, "=")
	if i < 0 {
		return "", v
	}
	return strings.TrimSpace(v[:i]), v[i+1:]
}

func writeCalcJSON(w io.Writer, res model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(calcResult{
		Budgeted:  res.Budgeted,
		Consumed:  res.Consumed,
		Burned:    res.Burned,
		Remaining: res.Remaining,
		Balance:   res.Balance.String(),
		Magnitude: res.Magnitude(),
	})
}

func renderCalc(w io.Writer, sheet *form.Sheet) {
	out := sheet.Output()
	res := out.Result

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("CALORIE BUDGET"))
	fmt.Fprintln(w)

	rows := [][]string{
		{"Budgeted", cli.FormatKcal(res.Budgeted)},
		{"Consumed", cli.FormatKcal(res.Consumed)},
		{"Burned", cli.FormatKcal(res.Burned)},
		{"---"},
		{"Remaining", cli.FormatSigned(res.Remaining)},
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Summary (%d entries)", sheet.Total()),
		Headers: []string{"", "Calories"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s\n", cli.RenderBalance(out.Lines()[0], res.Balance))
	if bar := cli.RenderBudgetBar(res.Consumed-res.Burned, res.Budgeted, 30); bar != "" {
		fmt.Fprintf(w, "  %s\n", bar)
	}
	fmt.Fprintln(w)
}
