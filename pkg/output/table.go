package output

import (
	"github.com/ajxudir/workspaces/pkg/utils"
	"github.com/ajxudir/workspaces/pkg/workspace"
)

// columns holds the text listing widths, measured once over the whole
// collection so every row aligns.
//
// Fields:
//   - name: widest package name
//   - version: widest "v"+version
//   - path: widest display path, at least 1 for the "." root placeholder
type columns struct {
	name    int
	version int
	path    int
}

// measure computes column widths for pkgs.
//
// Parameters:
//   - pkgs: Packages to be listed
//
// Returns:
//   - columns: Display widths for the name, version, and path columns
func measure(pkgs []workspace.Package) columns {
	names := make([]string, 0, len(pkgs))
	labels := make([]string, 0, len(pkgs))
	paths := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		names = append(names, pkg.Name)
		labels = append(labels, versionLabel(pkg))
		paths = append(paths, pkg.DisplayPath())
	}

	return columns{
		name:    utils.MaxWidth(0, names...),
		version: utils.MaxWidth(0, labels...),
		path:    utils.MaxWidth(1, paths...),
	}
}

// versionLabel is the version as shown in the long listing.
func versionLabel(pkg workspace.Package) string {
	return "v" + pkg.Version.String()
}
