package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(c *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	if cfg.General.DefaultBudget != "" {
		fmt.Fprintf(w, "    Default budget:   %s\n", cfg.General.DefaultBudget)
	} else {
		fmt.Fprintln(w, "    Default budget:   not set")
	}
	fmt.Fprintf(w, "    Default category: %s\n", config.DefaultCategory(cfg))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Log]")
	fmt.Fprintf(w, "    Level: %s\n", config.LogLevel(cfg))
	if f := config.LogFile(cfg); f != "" {
		fmt.Fprintf(w, "    File:  %s\n", f)
	} else {
		fmt.Fprintln(w, "    File:  off")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `calburn setup` to reconfigure.")
	return nil
}
