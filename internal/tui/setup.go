package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/model"
	"github.com/theirongolddev/calburn/internal/pipeline"
	"github.com/theirongolddev/calburn/internal/tui/theme"
)

// SetupValues holds the answers of the first-run setup form.
type SetupValues struct {
	Theme    string
	Budget   string
	Category string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:    theme.ByName(cfg.Appearance.Theme).Name,
		Budget:   cfg.General.DefaultBudget,
		Category: string(config.DefaultCategory(cfg)),
	}
}

// NewSetupForm builds the setup form bound to vals. The same form runs
// standalone from `calburn setup` and embedded in the TUI on first launch.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	catOpts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		catOpts = append(catOpts, huh.NewOption(c.Title(), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to calburn!").
				Description("Let's set up a few things. Run `calburn setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Default daily budget").
				Description("Calories; leave blank to start empty").
				Placeholder("2000").
				Value(&vals.Budget).
				Validate(validateBudget),
			huh.NewSelect[string]().
				Title("Add new entries to").
				Options(catOpts...).
				Value(&vals.Category),
		),
	).WithShowHelp(true)
}

// validateBudget accepts blank input or a plain number once signs and
// spaces are stripped; exponential notation is refused like in the form.
func validateBudget(s string) error {
	clean := pipeline.Sanitize(s)
	if clean == "" {
		return nil
	}
	if match := pipeline.FindExponent(clean); match != "" {
		return &pipeline.InvalidInputError{Match: match}
	}
	if !pipeline.IsNumber(clean) {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

// ApplySetup copies the answers into cfg and activates the chosen theme.
func ApplySetup(cfg config.Config, vals SetupValues) config.Config {
	cfg.Appearance.Theme = theme.ByName(vals.Theme).Name
	theme.SetActive(cfg.Appearance.Theme)

	cfg.General.DefaultBudget = pipeline.Sanitize(vals.Budget)

	if c, err := model.ParseCategory(vals.Category); err == nil {
		cfg.General.DefaultCategory = string(c)
	}
	return cfg
}
