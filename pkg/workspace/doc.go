// Package workspace resolves the member packages of a workspace.
//
// Resolve turns provider metadata into an ordered, filtered slice of Package
// records:
//
//   - members without a package record are skipped and reported as warnings
//   - private packages (publish = []) are dropped unless IncludePrivate is set
//   - a member manifest outside the workspace root aborts resolution
//   - the result is sorted by name, then by semantic version precedence
//   - an empty result is an error (errors.ErrEmptyWorkspace)
package workspace
