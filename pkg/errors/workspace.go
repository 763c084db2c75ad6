package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyWorkspace is returned when no package remains after resolution and filtering.
var ErrEmptyWorkspace = errors.New("workspace has no packages to list")

// PackageNotInWorkspaceError indicates a member manifest that is not rooted under
// the workspace root. The project graph is malformed and resolution stops.
//
// Fields:
//   - ID: Provider identity of the offending package
//   - Root: Workspace root the manifest was expected under
type PackageNotInWorkspaceError struct {
	ID   string
	Root string
}

// Error implements the error interface.
func (e *PackageNotInWorkspaceError) Error() string {
	return fmt.Sprintf("package %s is not inside workspace %s", e.ID, e.Root)
}

// PackageNotFoundError indicates a declared workspace member with no package record.
// It is reported as a warning and the member is skipped.
type PackageNotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package %s not found in metadata", e.ID)
}

// IsPackageNotInWorkspace checks if err is a PackageNotInWorkspaceError and returns it.
func IsPackageNotInWorkspace(err error) (*PackageNotInWorkspaceError, bool) {
	var e *PackageNotInWorkspaceError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsPackageNotFound checks if err is a PackageNotFoundError and returns it.
func IsPackageNotFound(err error) (*PackageNotFoundError, bool) {
	var e *PackageNotFoundError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// MetadataError wraps a failure to obtain or decode workspace metadata.
//
// Fields:
//   - Source: Where the metadata came from ("cargo metadata", a file path, "stdin")
//   - Err: The underlying failure
type MetadataError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *MetadataError) Error() string {
	return fmt.Sprintf("failed to load metadata from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *MetadataError) Unwrap() error {
	return e.Err
}

// IsMetadataError checks if err is a MetadataError and returns it.
func IsMetadataError(err error) (*MetadataError, bool) {
	var e *MetadataError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WriteError wraps an I/O failure of the output sink.
type WriteError struct {
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError checks if err is a WriteError and returns it.
func IsWriteError(err error) (*WriteError, bool) {
	var e *WriteError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
