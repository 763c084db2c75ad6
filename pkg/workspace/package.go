package workspace

import (
	"slices"
	"strings"

	"github.com/ajxudir/workspaces/pkg/metadata"
	"github.com/ajxudir/workspaces/pkg/version"
)

// Package is a resolved workspace member.
//
// Fields:
//   - ID: Provider identity, kept for cross-referencing; never displayed or encoded
//   - Name: Package name, unique within a workspace
//   - Version: Declared semantic version
//   - Location: Absolute package directory (workspace root joined with Path)
//   - Path: Directory relative to the workspace root; "" for the root itself
//   - Private: publish is declared as an empty list
//   - Independent: package.metadata.workspaces.independent is true
type Package struct {
	ID          metadata.PackageID `json:"-" xml:"-"`
	Name        string             `json:"name" xml:"name"`
	Version     version.Version    `json:"version" xml:"version"`
	Location    string             `json:"location" xml:"location"`
	Path        string             `json:"-" xml:"-"`
	Private     bool               `json:"private" xml:"private"`
	Independent bool               `json:"independent" xml:"independent"`
}

// DisplayPath returns Path, or "." for the workspace root.
func (p Package) DisplayPath() string {
	if p.Path == "" {
		return "."
	}
	return p.Path
}

// Compare orders packages by name, then by version precedence.
// Location and ID break any remaining tie so the order is total.
func Compare(a, b Package) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := a.Version.Compare(b.Version); c != 0 {
		return c
	}
	if c := strings.Compare(a.Location, b.Location); c != 0 {
		return c
	}
	return strings.Compare(string(a.ID), string(b.ID))
}

// Less reports whether a sorts before b.
func Less(a, b Package) bool {
	return Compare(a, b) < 0
}

// Sort orders pkgs in place by Compare.
func Sort(pkgs []Package) {
	slices.SortFunc(pkgs, Compare)
}
