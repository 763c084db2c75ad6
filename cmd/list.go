package cmd

import (
	"github.com/ajxudir/workspaces/pkg/config"
	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/metadata"
	"github.com/ajxudir/workspaces/pkg/output"
	"github.com/ajxudir/workspaces/pkg/preflight"
	"github.com/ajxudir/workspaces/pkg/verbose"
	"github.com/ajxudir/workspaces/pkg/warnings"
	"github.com/ajxudir/workspaces/pkg/workspace"
	"github.com/spf13/cobra"
)

var (
	listLongFlag     bool
	listAllFlag      bool
	listJSONFlag     bool
	listOutputFlag   string
	listMetadataFlag string
)

var (
	loadMetadataFunc = metadata.Load
	checkCommandFunc = preflight.CheckCommand
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workspace packages",
	Long: `List the member packages of the workspace, sorted by name and version.

Private packages (publish = false) are hidden unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listLongFlag, "long", "l", false, "Show version and path of each package")
	listCmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "Include private packages and mark them (PRIVATE)")
	listCmd.Flags().BoolVar(&listJSONFlag, "json", false, "Shorthand for --output json")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: table, json, csv, xml (default: table)")
	listCmd.Flags().StringVar(&listMetadataFlag, "metadata-file", "", "Read cargo metadata JSON from a file instead of running cargo (- for stdin)")
}

// listSettings is the list command configuration after merging flags over
// the config file.
type listSettings struct {
	format output.Format
	color  output.ColorMode
	long   bool
	all    bool
}

// runList executes the list command.
//
// It performs the following operations:
//   - Step 1: Loads configuration and merges the command-line flags over it
//   - Step 2: Loads workspace metadata from --metadata-file, or checks for cargo and runs it
//   - Step 3: Resolves the workspace packages, reporting missing members as warnings
//   - Step 4: Writes the listing to stdout
//
// Returns:
//   - error: ExitConfigError for config and flag problems; any other failure exits with ExitFailure
func runList(cmd *cobra.Command, args []string) error {
	workDir, err := getwdFunc()
	if err != nil {
		return err
	}

	cfg, err := loadAndValidateConfig(configFlag, workDir)
	if err != nil {
		return err
	}

	settings, err := resolveListSettings(cmd, cfg)
	if err != nil {
		return err
	}

	if listMetadataFlag == "" {
		if err := checkCommandFunc(cfg.Cargo); err != nil {
			return err
		}
	}

	md, err := loadMetadataFunc(cmd.Context(), metadata.LoadOptions{
		Cargo:        cfg.Cargo,
		ManifestPath: manifestPathFlag,
		File:         listMetadataFlag,
		Dir:          workDir,
		Timeout:      cfg.GetTimeout(),
		Stdin:        cmd.InOrStdin(),
	})
	if err != nil {
		return err
	}

	res, err := workspace.Resolve(md, workspace.Options{
		IncludePrivate: settings.all,
		ManifestName:   cfg.ManifestName,
	})
	if res != nil {
		for _, w := range res.Warnings {
			warnings.Report(w)
		}
	}
	if err != nil {
		return err
	}

	verbose.Infof("Listing %d packages as %s", len(res.Packages), settings.format)
	term := output.NewTerm(cmd.OutOrStdout(), settings.color)
	return output.WriteList(term, res.Packages, output.ListOptions{
		Format: settings.format,
		Long:   settings.long,
		All:    settings.all,
	})
}

// resolveListSettings merges explicitly set flags over the config defaults.
//
// --all both includes private packages and marks them, so the marker is
// never requested for a listing that cannot contain private packages.
//
// Parameters:
//   - cmd: The list command, used to detect which flags were set
//   - cfg: Loaded configuration
//
// Returns:
//   - listSettings: Effective settings
//   - error: ExitConfigError for an unknown format or colour mode, or --json with a conflicting --output
func resolveListSettings(cmd *cobra.Command, cfg *config.Config) (listSettings, error) {
	s := listSettings{long: cfg.List.Long, all: cfg.List.All}
	flags := cmd.Flags()

	if flags.Changed("long") {
		s.long = listLongFlag
	}
	if flags.Changed("all") {
		s.all = listAllFlag
	}

	formatName := cfg.List.Output
	if flags.Changed("output") {
		formatName = listOutputFlag
	}
	format, err := output.ValidateFormat(formatName)
	if err != nil {
		return s, errors.NewExitError(errors.ExitConfigError, err)
	}
	if listJSONFlag {
		if flags.Changed("output") && format != output.FormatJSON {
			return s, errors.NewExitErrorf(errors.ExitConfigError, "--json cannot be combined with --output %s", listOutputFlag)
		}
		format = output.FormatJSON
	}
	s.format = format

	colorName := cfg.Color
	if cmd.Flags().Changed("color") {
		colorName = colorFlag
	}
	color, err := output.ParseColorMode(colorName)
	if err != nil {
		return s, errors.NewExitError(errors.ExitConfigError, err)
	}
	s.color = color

	return s, nil
}
