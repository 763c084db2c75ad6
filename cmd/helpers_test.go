package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/ajxudir/workspaces/pkg/testutil"
	"github.com/ajxudir/workspaces/pkg/verbose"
	"github.com/ajxudir/workspaces/pkg/warnings"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// cliResult holds everything a command invocation produced.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// resetFlags puts every command flag back to its default value.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		rootCmd.Flags(),
		listCmd.Flags(),
		configCmd.Flags(),
		versionCmd.Flags(),
	} {
		c.VisitAll(reset)
	}
}

// runCLI executes the root command with args inside workDir.
//
// stdout is the command output; stderr collects warnings and verbose logs.
func runCLI(t *testing.T, workDir string, args ...string) cliResult {
	t.Helper()

	resetFlags()
	oldGetwd := getwdFunc
	getwdFunc = func() (string, error) { return workDir, nil }

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	restoreWarnings := warnings.SetWarningWriter(&stderr)
	oldVerboseWriter := verbose.Writer()
	verbose.SetWriter(&stderr)

	defer func() {
		restoreWarnings()
		verbose.SetWriter(oldVerboseWriter)
		verbose.Disable()
		getwdFunc = oldGetwd
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	rootCmd.SetArgs(args)
	err := ExecuteTest()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// scenarioWorkspace is a root package "a" plus private member "b".
func scenarioWorkspace() *testutil.WorkspaceBuilder {
	return testutil.NewWorkspace("/ws").Add(
		testutil.NewPackage("a").WithVersion("1.0.0"),
		testutil.NewPackage("b").WithVersion("0.9.0").InDir("crates/b").Private(),
	)
}

// writeFile writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
