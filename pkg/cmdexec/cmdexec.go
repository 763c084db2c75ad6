// Package cmdexec runs external tools (cargo) on behalf of the metadata provider.
//
// Commands are executed directly from an argv slice, never through a shell, so
// manifest paths containing spaces or quotes need no escaping.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/workspaces/pkg/verbose"
)

// Command describes a single process invocation.
//
// Fields:
//   - Name: Executable name or path (resolved through PATH)
//   - Args: Arguments, not including Name
//   - Dir: Working directory; empty means the current directory
//   - Env: Extra KEY=VALUE entries appended to the current environment
//   - Timeout: Maximum run time; zero means no timeout beyond ctx
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     map[string]string
	Timeout time.Duration
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExitError reports a command that ran but exited non-zero.
//
// Fields:
//   - Command: The rendered command line
//   - Code: Process exit code
//   - Stderr: Trimmed standard error output (falls back to stdout when empty)
//   - Err: The underlying *exec.ExitError
type ExitError struct {
	Command string
	Code    int
	Stderr  string
	Err     error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Command, e.Code, e.Stderr)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - ctx: Context for cancellation
//   - c: The command to run
//
// Returns:
//   - []byte: Standard output of the command
//   - error: *ExitError for non-zero exits, a timeout error, or a start failure
type RunFunc func(ctx context.Context, c Command) ([]byte, error)

// Run is the command execution function used throughout the application.
// Tests replace it to avoid spawning real processes.
var Run RunFunc = run

// run executes c and returns its standard output.
func run(ctx context.Context, c Command) ([]byte, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, errors.New("empty command")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		environ := os.Environ()
		for key, value := range c.Env {
			environ = append(environ, key+"="+value)
		}
		cmd.Env = environ
	}
	setProcGroup(cmd)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	verbose.CommandExec(c.String(), c.Dir)
	err := cmd.Run()
	if err == nil {
		verbose.CommandResult(c.String(), 0, stdout.Len())
		return stdout.Bytes(), nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) && c.Timeout > 0 {
		if killErr := killProcGroup(cmd); killErr != nil {
			verbose.Printf("failed to kill process group on timeout: %v", killErr)
		}
		return nil, fmt.Errorf("%s: command timed out after %s: %w", c.String(), c.Timeout, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		verbose.CommandResult(c.String(), exitErr.ExitCode(), stdout.Len())
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return nil, &ExitError{Command: c.String(), Code: exitErr.ExitCode(), Stderr: msg, Err: err}
	}

	return nil, fmt.Errorf("%s: %w", c.String(), err)
}
