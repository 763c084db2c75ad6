package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitCodes tests the exit code constants.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 2, ExitFailure)
	assert.Equal(t, 3, ExitConfigError)
}

// TestExitError tests the behavior of ExitError.
//
// It verifies:
//   - Message takes priority over the wrapped error
//   - The wrapped error is reachable through errors.Is
//   - A bare code renders a default message
func TestExitError(t *testing.T) {
	inner := errors.New("inner")

	assert.Equal(t, "outer", (&ExitError{Code: 2, Message: "outer", Err: inner}).Error())
	assert.Equal(t, "inner", NewExitError(3, inner).Error())
	assert.Equal(t, "exit code 2", (&ExitError{Code: 2}).Error())
	assert.True(t, errors.Is(NewExitError(2, inner), inner))
	assert.Equal(t, "bad flag --x", NewExitErrorf(ExitConfigError, "bad flag %s", "--x").Error())
}

// TestGetExitCode tests exit code extraction.
func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain", err: errors.New("x"), want: ExitFailure},
		{name: "exit error", err: NewExitError(ExitConfigError, nil), want: ExitConfigError},
		{name: "wrapped exit error", err: fmt.Errorf("ctx: %w", NewExitError(ExitConfigError, nil)), want: ExitConfigError},
		{name: "empty workspace", err: ErrEmptyWorkspace, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

// TestIsExitError tests IsExitError.
func TestIsExitError(t *testing.T) {
	e, ok := IsExitError(fmt.Errorf("wrap: %w", NewExitError(3, nil)))
	require.True(t, ok)
	assert.Equal(t, 3, e.Code)

	_, ok = IsExitError(errors.New("plain"))
	assert.False(t, ok)
}

// TestResolutionErrors tests the resolver error types and their Is* helpers.
func TestResolutionErrors(t *testing.T) {
	notIn := &PackageNotInWorkspaceError{ID: "b 0.1.0 (path+file:///elsewhere/b)", Root: "/ws"}
	assert.Equal(t, "package b 0.1.0 (path+file:///elsewhere/b) is not inside workspace /ws", notIn.Error())

	got, ok := IsPackageNotInWorkspace(fmt.Errorf("resolve: %w", notIn))
	require.True(t, ok)
	assert.Equal(t, "/ws", got.Root)

	notFound := &PackageNotFoundError{ID: "ghost 1.0.0"}
	assert.Equal(t, "package ghost 1.0.0 not found in metadata", notFound.Error())
	_, ok = IsPackageNotFound(notFound)
	assert.True(t, ok)
	_, ok = IsPackageNotFound(notIn)
	assert.False(t, ok)
}

// TestMetadataAndWriteErrors tests the wrapping error types.
func TestMetadataAndWriteErrors(t *testing.T) {
	inner := errors.New("boom")

	me := &MetadataError{Source: "cargo metadata", Err: inner}
	assert.Equal(t, "failed to load metadata from cargo metadata: boom", me.Error())
	assert.True(t, errors.Is(me, inner))
	_, ok := IsMetadataError(fmt.Errorf("x: %w", me))
	assert.True(t, ok)

	we := &WriteError{Err: inner}
	assert.Equal(t, "failed to write output: boom", we.Error())
	assert.True(t, errors.Is(we, inner))
	_, ok = IsWriteError(we)
	assert.True(t, ok)
}

// TestHints tests hint lookup and enhancement.
//
// It verifies:
//   - Known patterns match case-insensitively
//   - Unknown errors get no hint
//   - nil errors produce empty strings
func TestHints(t *testing.T) {
	assert.Contains(t, GetHint(errors.New(`exec: "cargo": executable file not found in $PATH`)), "rustup.rs")
	assert.Contains(t, GetHint(ErrEmptyWorkspace), "--all")
	assert.Contains(t, GetHint(&PackageNotInWorkspaceError{ID: "a", Root: "/ws"}), "members")
	assert.Empty(t, GetHint(errors.New("something else")))
	assert.Empty(t, GetHint(nil))

	assert.Equal(t, "something else", EnhanceErrorWithHint(errors.New("something else")))
	assert.Contains(t, EnhanceErrorWithHint(ErrEmptyWorkspace), "\U0001F4A1")
	assert.Empty(t, EnhanceErrorWithHint(nil))
}

// TestPrintError tests PrintError output.
func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, ErrEmptyWorkspace)
	assert.Contains(t, buf.String(), "Error: workspace has no packages to list")
	assert.Contains(t, buf.String(), "--all")

	buf.Reset()
	PrintError(&buf, nil)
	assert.Empty(t, buf.String())
}
