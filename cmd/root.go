// Package cmd implements the command-line interface for workspaces.
// It lists the member packages of a Cargo workspace as an aligned table or
// as structured data.
package cmd

import (
	"os"

	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/verbose"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

var (
	verboseFlag      bool
	versionFlag      bool
	colorFlag        string
	configFlag       string
	manifestPathFlag string
)

var rootCmd = &cobra.Command{
	Use:           "workspaces",
	Short:         "Inspect the packages of a Cargo workspace",
	Long:          `List the member packages of a Cargo workspace with their versions, locations, and publish status.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: Failure (metadata, resolution, or output error)
//   - 3: Configuration or flag validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		errors.PrintError(rootCmd.ErrOrStderr(), err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output on stderr")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colorize output: auto, always, never (default from config, else auto)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path (default .workspaces.yml)")
	rootCmd.PersistentFlags().StringVar(&manifestPathFlag, "manifest-path", "", "Path to the workspace Cargo.toml")

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

