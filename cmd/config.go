package cmd

import (
	"fmt"
	"os"

	"github.com/ajxudir/workspaces/pkg/config"
	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/verbose"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configValidateFlag      bool
)

var (
	loadConfigFunc = config.LoadConfig
	getwdFunc      = os.Getwd
)

// loadAndValidateConfig loads the configuration for the current command.
//
// Any load or validation failure is a configuration error (exit code 3).
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for .workspaces.yml
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: *errors.ExitError with ExitConfigError on failure
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		verbose.Infof("Exit code %d (config error): %v", errors.ExitConfigError, err)
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate configuration",
	Long:  `Show the built-in defaults, the effective configuration, or validate a .workspaces.yml file.`,
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --validate: Loads the configuration and reports whether it is valid
//   - --show-defaults: Displays the built-in configuration
//   - --show-effective: Displays defaults merged with the config file
//
// Returns:
//   - error: Returns ExitError with ExitConfigError on load or validation failure
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case configValidateFlag:
		cfg, err := loadEffectiveConfig()
		if err != nil {
			return err
		}
		if cfg.IsDefault() {
			_, _ = fmt.Fprintf(out, "No %s found; using built-in defaults\n", config.FileName)
			return nil
		}
		_, _ = fmt.Fprintf(out, "Configuration is valid: %s\n", cfg.Path)
		return nil

	case configShowDefaultsFlag:
		_, _ = fmt.Fprintln(out, "Default configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, config.GetDefaultConfig())
		return nil

	case configShowEffectiveFlag:
		cfg, err := loadEffectiveConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		source := cfg.Path
		if cfg.IsDefault() {
			source = "built-in defaults"
		}
		_, _ = fmt.Fprintf(out, "Effective configuration (%s):\n\n", source)
		_, _ = fmt.Fprint(out, string(data))
		return nil
	}

	return cmd.Help()
}

// loadEffectiveConfig loads the config named by --config, or the one in the
// working directory.
func loadEffectiveConfig() (*config.Config, error) {
	workDir, err := getwdFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return loadAndValidateConfig(configFlag, workDir)
}
