package config

import (
	"fmt"
	"strings"

	"github.com/ajxudir/workspaces/pkg/output"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message string.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate checks cfg for values the commands cannot use.
//
// It performs the following checks:
//   - cargo and manifest_name are non-empty
//   - manifest_name is a bare filename
//   - timeout is not negative
//   - color is auto, always, or never
//   - list.output names a supported format
//
// Parameters:
//   - cfg: configuration to check
//
// Returns:
//   - error: *ValidationError for the first invalid field; nil when valid
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Cargo) == "" {
		return &ValidationError{Field: "cargo", Message: "must not be empty"}
	}
	if strings.TrimSpace(cfg.ManifestName) == "" {
		return &ValidationError{Field: "manifest_name", Message: "must not be empty"}
	}
	if strings.ContainsAny(cfg.ManifestName, `/\`) {
		return &ValidationError{Field: "manifest_name", Message: fmt.Sprintf("%q must be a file name, not a path", cfg.ManifestName)}
	}
	if cfg.Timeout < 0 {
		return &ValidationError{Field: "timeout", Message: fmt.Sprintf("must not be negative (got %d)", cfg.Timeout)}
	}
	if _, err := output.ParseColorMode(cfg.Color); err != nil {
		return &ValidationError{Field: "color", Message: err.Error()}
	}
	if _, err := output.ValidateFormat(cfg.List.Output); err != nil {
		return &ValidationError{Field: "list.output", Message: err.Error()}
	}
	return nil
}
