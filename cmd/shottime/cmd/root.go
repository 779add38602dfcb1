package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mediatools/shottime/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile            string
	logLevel           string
	logFormat          string
	overrideDays       int64
	gapLimitDays       int64
	stepSeconds        int64
	noStep             bool
	noFilenameFallback bool
	noFilenameOverride bool
	noRecursive        bool
)

var rootCmd = &cobra.Command{
	Use:   "shottime",
	Short: "Shot-time reconstruction for photo and video collections",
	Long: `shottime reconstructs a plausible chronological shot time for every
media file in a collection and applies it to EXIF metadata and
filesystem timestamps.

Files are ordered by modification time; shot times are read from EXIF
or parsed from filenames, and gaps are filled by interpolating between
the nearest known anchors. Copied files whose filesystem times drifted
far from a filename-embedded timestamp are pinned back to the filename
time.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "shottime.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Resolution overrides
	rootCmd.PersistentFlags().Int64Var(&overrideDays, "override-days", -1,
		"Override filename drift threshold in days")
	rootCmd.PersistentFlags().Int64Var(&gapLimitDays, "gap-limit-days", -1,
		"Override anchor gap limit in days (wider gaps skip interpolation)")
	rootCmd.PersistentFlags().Int64Var(&stepSeconds, "step-seconds", 0,
		"Override step size in seconds for one-sided fills")
	rootCmd.PersistentFlags().BoolVar(&noStep, "no-step", false,
		"Disable stepped one-sided fills (use flat anchor time)")
	rootCmd.PersistentFlags().BoolVar(&noFilenameFallback, "no-filename-fallback", false,
		"Never use filename timestamps as shot anchors")
	rootCmd.PersistentFlags().BoolVar(&noFilenameOverride, "no-filename-override", false,
		"Disable the filename drift override rule")

	// Scan overrides
	rootCmd.PersistentFlags().BoolVar(&noRecursive, "no-recursive", false,
		"Do not descend into subdirectories")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.CLIOverrides {
	return config.CLIOverrides{
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		OverrideDays:       overrideDays,
		GapLimitDays:       gapLimitDays,
		StepSeconds:        stepSeconds,
		NoStep:             noStep,
		NoFilenameFallback: noFilenameFallback,
		NoFilenameOverride: noFilenameOverride,
		NoRecursive:        noRecursive,
	}
}

// loadConfig loads the config file, applies CLI overrides and validates
// the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(GetCLIOverrides())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
