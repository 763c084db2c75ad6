// Package preflight checks that external tools are available before a
// command shells out to them.
package preflight

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/ajxudir/workspaces/pkg/verbose"
)

// CommandResolutionHints maps command names to installation instructions.
var CommandResolutionHints = map[string]string{
	"cargo":  "Install Rust: https://rustup.rs/",
	"rustup": "Install Rust: https://rustup.rs/",
	"cross":  "Install cross: cargo install cross",
}

// lookPath resolves a command against PATH.
var lookPath = exec.LookPath

// ValidationError represents a missing command with resolution hints.
//
// Fields:
//   - Command: The name of the missing command
//   - Hint: Installation instructions (empty if no hint available)
type ValidationError struct {
	Command string
	Hint    string
}

// Error returns a formatted error message with resolution instructions.
func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("command not found: %s\n  Resolution: %s", e.Command, e.Hint)
	}
	return fmt.Sprintf("command not found: %s\n  Resolution: Ensure '%s' is installed and available in your PATH, or set 'cargo' in .workspaces.yml.", e.Command, e.Command)
}

// CheckCommand verifies that cmd can be executed.
//
// Bare names are looked up in PATH; names containing a separator are
// checked as paths.
//
// Parameters:
//   - cmd: The command name or path (e.g., "cargo", "/opt/rust/bin/cargo")
//
// Returns:
//   - error: *ValidationError with a resolution hint if the command is missing; nil otherwise
func CheckCommand(cmd string) error {
	if cmd == "" {
		return nil
	}

	verbose.Infof("Preflight: checking command %q", cmd)
	if _, err := lookPath(cmd); err == nil {
		return nil
	}

	hint := GetResolutionHint(cmd)
	verbose.Infof("Preflight: command %q not found", cmd)
	return &ValidationError{Command: cmd, Hint: hint}
}

// GetResolutionHint returns the installation hint for a command, if available.
// Paths are matched by their base name.
func GetResolutionHint(cmd string) string {
	return CommandResolutionHints[filepath.Base(cmd)]
}
