package workspace

import (
	"github.com/ajxudir/workspaces/pkg/errors"
	"github.com/ajxudir/workspaces/pkg/metadata"
	"github.com/ajxudir/workspaces/pkg/verbose"
)

// Options controls resolution.
//
// Fields:
//   - IncludePrivate: Keep packages whose publish setting is an empty list
//   - ManifestName: Manifest filename stripped from member paths (default "Cargo.toml")
type Options struct {
	IncludePrivate bool
	ManifestName   string
}

// Resolution is the outcome of Resolve.
//
// Fields:
//   - Packages: Resolved members, sorted by name then version; never empty
//     on success and always nil when Resolve fails
//   - Warnings: Non-fatal conditions, one *errors.PackageNotFoundError per member
//     that had no package record, in member order
type Resolution struct {
	Packages []Package
	Warnings []error
}

// Resolve builds the ordered package set of the workspace described by md.
//
// It performs the following operations:
//   - Step 1: Looks up each member's record; missing records become warnings
//   - Step 2: Drops private packages unless opts.IncludePrivate is set
//   - Step 3: Derives the relative path; a manifest outside the root is fatal
//   - Step 4: Computes location and the independent flag
//   - Step 5: Sorts the result and rejects an empty one
//
// md is only read, so repeated calls on the same metadata return equal results.
//
// Parameters:
//   - md: Provider metadata
//   - opts: Resolution options
//
// Returns:
//   - *Resolution: Packages and collected warnings; on failure only the
//     warnings gathered before the failure, with no partial package set
//   - error: *errors.PackageNotInWorkspaceError or errors.ErrEmptyWorkspace
func Resolve(md *metadata.Metadata, opts Options) (*Resolution, error) {
	index := md.Index()
	res := &Resolution{Packages: make([]Package, 0, len(md.WorkspaceMembers))}

	for _, id := range md.WorkspaceMembers {
		record, ok := index[id]
		if !ok {
			res.Warnings = append(res.Warnings, &errors.PackageNotFoundError{ID: id.String()})
			verbose.PackageSkipped(id.String(), "no package record")
			continue
		}

		private := IsPrivate(record.Publish)
		if private && !opts.IncludePrivate {
			verbose.PackageSkipped(id.String(), "private")
			continue
		}

		rel, ok := RelativePath(md.WorkspaceRoot, record.ManifestPath, opts.ManifestName)
		if !ok {
			return &Resolution{Warnings: res.Warnings}, &errors.PackageNotInWorkspaceError{ID: id.String(), Root: md.WorkspaceRoot}
		}

		res.Packages = append(res.Packages, Package{
			ID:          record.ID,
			Name:        record.Name,
			Version:     record.Version,
			Location:    Location(md.WorkspaceRoot, rel),
			Path:        rel,
			Private:     private,
			Independent: IsIndependent(record.Metadata),
		})
	}

	if len(res.Packages) == 0 {
		return &Resolution{Warnings: res.Warnings}, errors.ErrEmptyWorkspace
	}

	Sort(res.Packages)
	verbose.Printf("resolved %d packages (%d warnings)", len(res.Packages), len(res.Warnings))
	return res, nil
}
