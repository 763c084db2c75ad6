//go:build windows

package cmdexec

import (
	"os/exec"
)

// setProcGroup is a no-op on Windows.
//
// exec.CommandContext already terminates the process tree adequately here.
func setProcGroup(cmd *exec.Cmd) {}

// killProcGroup kills the process on Windows.
//
// Killing the parent is enough on Windows. A command that never started is a no-op.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
