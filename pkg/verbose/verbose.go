// Package verbose provides debug logging for --verbose runs.
//
// Messages go through a charmbracelet/log logger at debug level, so they are
// prefixed and styled consistently on stderr. Nothing is printed unless Enable
// has been called.
package verbose

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr)
)

// newLogger builds the debug logger used for all verbose output.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "workspaces",
		Level:  log.DebugLevel,
	})
}

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
		logger = newLogger(w)
	}
}

// Writer returns the current verbose writer.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// active returns the logger when verbose output is enabled, or nil.
func active() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Printf prints a formatted debug message if enabled.
// A trailing newline in format is dropped; the logger adds its own.
func Printf(format string, args ...any) {
	if l := active(); l != nil {
		l.Debugf(strings.TrimSuffix(format, "\n"), args...)
	}
}

// Info prints a debug message if enabled.
func Info(msg string) {
	if l := active(); l != nil {
		l.Debug(msg)
	}
}

// Infof prints a formatted debug message if enabled.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// CommandExec logs a command about to run, with its working directory.
func CommandExec(cmd, workDir string) {
	if l := active(); l != nil {
		l.Debug("executing", "cmd", cmd, "dir", workDir)
	}
}

// CommandResult logs a finished command with its exit code and the size of its output.
func CommandResult(cmd string, exitCode int, outputBytes int) {
	l := active()
	if l == nil {
		return
	}
	if exitCode == 0 {
		l.Debug("command succeeded", "cmd", truncate(cmd, 60), "bytes", outputBytes)
		return
	}
	l.Debug("command failed", "cmd", truncate(cmd, 60), "exit", exitCode)
}

// ConfigLoaded logs which config file was loaded. An empty path means built-in defaults.
func ConfigLoaded(path string) {
	l := active()
	if l == nil {
		return
	}
	if path == "" {
		l.Debug("using built-in default configuration")
		return
	}
	l.Debug("config loaded", "path", path)
}

// MetadataLoaded logs the size of the workspace described by the provider.
func MetadataLoaded(source, root string, members, packages int) {
	if l := active(); l != nil {
		l.Debug("metadata loaded", "source", source, "root", root, "members", members, "packages", packages)
	}
}

// PackageSkipped logs a workspace member that resolution left out.
func PackageSkipped(id, reason string) {
	if l := active(); l != nil {
		l.Debug("package skipped", "id", id, "reason", reason)
	}
}

// truncate shortens s to maxLen characters, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
