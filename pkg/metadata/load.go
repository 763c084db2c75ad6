package metadata

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/ajxudir/workspaces/pkg/cmdexec"
	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/verbose"
)

// DefaultCargo is the cargo executable used when LoadOptions.Cargo is empty.
const DefaultCargo = "cargo"

// StdinFile is the LoadOptions.File value that reads metadata from standard input.
const StdinFile = "-"

// LoadOptions selects where workspace metadata comes from.
//
// Fields:
//   - Cargo: cargo executable (default "cargo")
//   - ManifestPath: Passed to cargo as --manifest-path when set
//   - File: Read a saved metadata document instead of running cargo; "-" is stdin
//   - Dir: Working directory for cargo
//   - Timeout: Maximum time cargo may run; zero means no limit
//   - Stdin: Reader used for File == "-" (default os.Stdin)
type LoadOptions struct {
	Cargo        string
	ManifestPath string
	File         string
	Dir          string
	Timeout      time.Duration
	Stdin        io.Reader
}

// CargoCommand builds the cargo invocation for opts.
func CargoCommand(opts LoadOptions) cmdexec.Command {
	cargo := opts.Cargo
	if cargo == "" {
		cargo = DefaultCargo
	}

	args := []string{"metadata", "--format-version", "1", "--no-deps"}
	if opts.ManifestPath != "" {
		args = append(args, "--manifest-path", opts.ManifestPath)
	}

	return cmdexec.Command{Name: cargo, Args: args, Dir: opts.Dir, Timeout: opts.Timeout}
}

// Load obtains workspace metadata according to opts.
//
// Parameters:
//   - ctx: Context for cancelling the cargo process
//   - opts: Source selection
//
// Returns:
//   - *Metadata: The decoded workspace description
//   - error: *errors.MetadataError naming the source on any failure
func Load(ctx context.Context, opts LoadOptions) (*Metadata, error) {
	var (
		source string
		data   []byte
		err    error
	)

	switch {
	case opts.File == StdinFile:
		source = "stdin"
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	case opts.File != "":
		source = opts.File
		data, err = os.ReadFile(opts.File)
	default:
		cmd := CargoCommand(opts)
		source = cmd.String()
		data, err = cmdexec.Run(ctx, cmd)
	}
	if err != nil {
		return nil, &errors.MetadataError{Source: source, Err: err}
	}

	md, err := Parse(data)
	if err != nil {
		return nil, &errors.MetadataError{Source: source, Err: err}
	}

	verbose.MetadataLoaded(source, md.WorkspaceRoot, len(md.WorkspaceMembers), len(md.Packages))
	return md, nil
}
