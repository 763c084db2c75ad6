package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "executable file not found",
		Hint:       "cargo is not installed or not on PATH",
		Resolution: "Install Rust from https://rustup.rs/ or set 'cargo' in .workspaces.yml",
	},
	{
		Pattern:    "could not find `cargo.toml`",
		Hint:       "No Cargo manifest in this directory",
		Resolution: "Run from the workspace root or pass --manifest-path",
	},
	{
		Pattern:    "is not inside workspace",
		Hint:       "A member manifest lies outside the workspace root",
		Resolution: "Check the [workspace] members globs in the root Cargo.toml",
	},
	{
		Pattern:    "has no packages to list",
		Hint:       "Every member was filtered out",
		Resolution: "Use --all to include private packages",
	},
	{
		Pattern:    "command timed out",
		Hint:       "cargo metadata took too long",
		Resolution: "Increase 'timeout' in .workspaces.yml",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Check .workspaces.yml syntax or pass --config with a valid path",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	if hint := GetHint(err); hint != "" {
		return err.Error() + "\n  \U0001F4A1 " + hint
	}

	return err.Error()
}
