package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/tui"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

var (
	flagBudget   string
	flagCategory string
	flagTheme    string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calorie form",
	RunE:  runTUI,
}

func init() {
	addTUIFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func addTUIFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagBudget, "budget", "b", "", "Pre-fill the daily budget")
	c.Flags().StringVarP(&flagCategory, "category", "c", "", "Category new entries go to")
	c.Flags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	firstRun := !config.Exists()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	name := cfg.Appearance.Theme
	if flagTheme != "" {
		name = flagTheme
	}
	theme.SetActive(name)

	category := config.DefaultCategory(cfg)
	if flagCategory != "" {
		c, err := model.ParseCategory(flagCategory)
		if err != nil {
			return err
		}
		category = c
	}

	budget := cfg.General.DefaultBudget
	if flagBudget != "" {
		budget = flagBudget
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Budget:   budget,
		Category: category,
		Logger:   logger,
		FirstRun: firstRun,
	})
	logger.Debug().Bool("first_run", firstRun).Str("theme", theme.Active.Name).Msg("starting tui")

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
