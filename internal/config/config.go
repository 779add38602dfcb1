// Package config provides configuration structures and loading for shottime.
package config

import "github.com/mediatools/shottime/internal/timeline"

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Resolve ResolveConfig `yaml:"resolve" mapstructure:"resolve"`
	Apply   ApplyConfig   `yaml:"apply" mapstructure:"apply"`
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig controls directory traversal and extension filtering.
type ScanConfig struct {
	Recursive       bool     `yaml:"recursive" mapstructure:"recursive"`
	PhotoExtensions []string `yaml:"photo_extensions" mapstructure:"photo_extensions"`
	VideoExtensions []string `yaml:"video_extensions" mapstructure:"video_extensions"`
}

// ResolveConfig controls the target-time resolution engine.
type ResolveConfig struct {
	// FilenameFallback allows a filename timestamp to serve as the shot
	// anchor when metadata has none.
	FilenameFallback bool `yaml:"filename_fallback" mapstructure:"filename_fallback"`

	// FilenameOverride enables the drift override rule; when filesystem
	// times drift more than FilenameOverrideDays from a filename
	// timestamp, the filename timestamp becomes the target outright.
	FilenameOverride     bool  `yaml:"filename_override" mapstructure:"filename_override"`
	FilenameOverrideDays int64 `yaml:"filename_override_days" mapstructure:"filename_override_days"`

	// AnchorGapLimitDays disables interpolation across anchor gaps wider
	// than this many days.
	AnchorGapLimitDays int64 `yaml:"anchor_gap_limit_days" mapstructure:"anchor_gap_limit_days"`

	// OneSideStep spaces one-sided fills by OneSideStepSeconds instead of
	// collapsing them onto the anchor time.
	OneSideStep        bool  `yaml:"one_side_step" mapstructure:"one_side_step"`
	OneSideStepSeconds int64 `yaml:"one_side_step_seconds" mapstructure:"one_side_step_seconds"`
}

// ApplyConfig controls what gets written once targets are resolved.
type ApplyConfig struct {
	WriteExifIfMissing bool `yaml:"write_exif_if_missing" mapstructure:"write_exif_if_missing"`
	SyncFileTimes      bool `yaml:"sync_file_times" mapstructure:"sync_file_times"`
}

// HistoryConfig controls the run journal.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with the tool's default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Recursive: true,
			PhotoExtensions: []string{
				".jpg", ".jpeg", ".tif", ".tiff", ".png", ".heic", ".webp", ".dng", ".bmp", ".gif",
			},
			VideoExtensions: []string{
				".mp4", ".mov", ".m4v", ".3gp", ".3g2", ".avi", ".mkv", ".wmv",
			},
		},
		Resolve: ResolveConfig{
			FilenameFallback:     true,
			FilenameOverride:     true,
			FilenameOverrideDays: 7,
			AnchorGapLimitDays:   90,
			OneSideStep:          true,
			OneSideStepSeconds:   1,
		},
		Apply: ApplyConfig{
			WriteExifIfMissing: true,
			SyncFileTimes:      true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "shottime-history.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// TimelineOptions converts the resolve section into engine options.
func (rc ResolveConfig) TimelineOptions() timeline.Options {
	return timeline.Options{
		EnableFilenameOverride: rc.FilenameOverride,
		FilenameOverrideDays:   rc.FilenameOverrideDays,
		AnchorGapLimitDays:     rc.AnchorGapLimitDays,
		OneSideStep:            rc.OneSideStep,
		OneSideStepSeconds:     rc.OneSideStepSeconds,
	}
}

// CLIOverrides contains flag values that override config file settings.
type CLIOverrides struct {
	LogLevel           string
	LogFormat          string
	OverrideDays       int64
	GapLimitDays       int64
	StepSeconds        int64
	NoStep             bool
	NoFilenameFallback bool
	NoFilenameOverride bool
	NoRecursive        bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Negative day values and a zero step mean "not set".
func (c *Config) ApplyOverrides(o CLIOverrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.OverrideDays >= 0 {
		c.Resolve.FilenameOverrideDays = o.OverrideDays
	}
	if o.GapLimitDays >= 0 {
		c.Resolve.AnchorGapLimitDays = o.GapLimitDays
	}
	if o.StepSeconds > 0 {
		c.Resolve.OneSideStepSeconds = o.StepSeconds
	}
	if o.NoStep {
		c.Resolve.OneSideStep = false
	}
	if o.NoFilenameFallback {
		c.Resolve.FilenameFallback = false
	}
	if o.NoFilenameOverride {
		c.Resolve.FilenameOverride = false
	}
	if o.NoRecursive {
		c.Scan.Recursive = false
	}
}
