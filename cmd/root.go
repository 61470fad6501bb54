package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyloom-cli/internal/config"
	"github.com/KaramelBytes/surveyloom-cli/internal/survey"
)

var (
	// Global flags (wired to config on initialize)
	cfgFile  string
	logLevel string
	noColor  bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "surveyloom",
	Short: "Surveyloom CLI: clean and summarize questionnaire survey data",
	Long: `Surveyloom is a CLI tool that loads questionnaire submissions from a JSON
file and runs a fixed set of cleaning and summary operations over them:
age distribution, email filtering, missing-answer imputation, per-subject
scoring and a gender/age-group breakdown.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.surveyloom/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error|off (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so analysis commands still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			MaxMissingPerSubject: survey.DefaultMaxMissing,
			LogLevel:             "warn",
			Color:                true,
			PreviewRows:          10,
		}
	}
	cfg = c

	// Apply CLI overrides if provided
	if rootCmd.PersistentFlags().Changed("log-level") && logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noColor {
		cfg.Color = false
	}
	if !cfg.Color {
		color.NoColor = true
	}
	configureLogging(cfg.LogLevel)
}

func configureLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// loadAnalysis builds an analysis session over path and loads it.
func loadAnalysis(path string) (*survey.Analysis, error) {
	a := survey.New(path)
	if err := a.Load(); err != nil {
		return nil, err
	}
	return a, nil
}

// configuredMaxMissing resolves the scoring threshold from config.
func configuredMaxMissing() int {
	if cfg != nil {
		return cfg.MaxMissingPerSubject
	}
	return survey.DefaultMaxMissing
}

// configuredPreviewRows resolves the table preview limit from config.
func configuredPreviewRows() int {
	if cfg != nil {
		return cfg.PreviewRows
	}
	return 10
}
