package cmdexec

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipOnWindows skips tests that rely on POSIX shell utilities.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX sh")
	}
}

// TestCommandString tests command line rendering.
func TestCommandString(t *testing.T) {
	assert.Equal(t, "cargo metadata --no-deps", Command{Name: "cargo", Args: []string{"metadata", "--no-deps"}}.String())
	assert.Equal(t, "cargo", Command{Name: "cargo"}.String())
}

// TestRunSuccess tests that stdout is returned.
func TestRunSuccess(t *testing.T) {
	skipOnWindows(t)

	out, err := Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "printf '{\"ok\":true}'"}})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(out))
}

// TestRunDirAndEnv tests the working directory and extra environment.
func TestRunDirAndEnv(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	out, err := Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", `printf "%s|%s" "$WS_TEST" "$(pwd -P)"`},
		Dir:  dir,
		Env:  map[string]string{"WS_TEST": "value"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "value|")
}

// TestRunExitError tests non-zero exits.
//
// It verifies:
//   - The error is an *ExitError with the exit code
//   - Stderr is carried in the message
func TestRunExitError(t *testing.T) {
	skipOnWindows(t)

	_, err := Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo 'could not find Cargo.toml' >&2; exit 101"}})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 101, exitErr.Code)
	assert.Equal(t, "could not find Cargo.toml", exitErr.Stderr)
	assert.Contains(t, err.Error(), "exit status 101")
}

// TestRunTimeout tests that a slow command is killed.
func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)

	start := time.Now()
	_, err := Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "sleep 5"}, Timeout: 100 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command timed out")
	assert.Less(t, time.Since(start), 4*time.Second)
}

// TestRunErrors tests failures before the process runs.
func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Command{Name: "  "})
	assert.EqualError(t, err, "empty command")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Command{Name: "cargo"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Run(context.Background(), Command{Name: "definitely-not-a-real-binary-ws"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executable file not found")
}

// TestExitErrorMessage tests ExitError formatting without stderr.
func TestExitErrorMessage(t *testing.T) {
	e := &ExitError{Command: "cargo metadata", Code: 1}
	assert.Equal(t, "cargo metadata: exit status 1", e.Error())
	assert.Nil(t, e.Unwrap())
}
