package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if len(c.Scan.PhotoExtensions) == 0 && len(c.Scan.VideoExtensions) == 0 {
		errs = append(errs, ValidationError{
			Field:   "scan.photo_extensions",
			Message: "at least one media extension must be configured",
		})
	}

	if c.Resolve.FilenameOverrideDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "resolve.filename_override_days",
			Message: "must be zero or positive",
		})
	}
	if c.Resolve.AnchorGapLimitDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "resolve.anchor_gap_limit_days",
			Message: "must be zero or positive",
		})
	}
	if c.Resolve.OneSideStepSeconds < 1 {
		errs = append(errs, ValidationError{
			Field:   "resolve.one_side_step_seconds",
			Message: "must be at least 1",
		})
	}

	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "history.path",
			Message: "required when history is enabled",
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (expected debug, info, warn or error)", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (expected json or text)", c.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
