// Package cmd implements the calburn CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/calburn/internal/config"
	"github.com/theirongolddev/calburn/internal/logging"
)

var (
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "calburn",
	Short: "Calorie budget calculator",
	Long:  "Track what you eat and burn against a daily calorie budget.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	addTUIFlags(rootCmd)
}

// openLogger builds the logger from config with flag overrides applied.
func openLogger(cfg config.Config) (zerolog.Logger, io.Closer, error) {
	path := config.LogFile(cfg)
	if flagLogFile != "" {
		path = flagLogFile
	}
	level := config.LogLevel(cfg)
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	logger, closer, err := logging.Open(path, level)
	if err != nil {
		return logger, closer, fmt.Errorf("opening log: %w", err)
	}
	return logger, closer, nil
}
