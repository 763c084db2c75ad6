// Package testutil provides shared test helpers: stdout/stderr capture and
// synthetic `cargo metadata` documents.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// redirect swaps *target for a pipe and returns a function that restores it
// and yields everything written in between. The pipe is drained concurrently
// so large outputs cannot block the writer.
func redirect(t *testing.T, target **os.File) func() string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}

	original := *target
	*target = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	return func() string {
		_ = w.Close()
		*target = original
		return <-done
	}
}

// CaptureStdout captures stdout during the execution of fn and returns the output.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	restore := redirect(t, &os.Stdout)
	fn()
	return restore()
}

// CaptureStderr captures stderr during the execution of fn and returns the output.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	restore := redirect(t, &os.Stderr)
	fn()
	return restore()
}

// CaptureOutput captures both stdout and stderr during the execution of fn.
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	restoreOut := redirect(t, &os.Stdout)
	restoreErr := redirect(t, &os.Stderr)
	fn()
	stderr = restoreErr()
	stdout = restoreOut()
	return stdout, stderr
}
