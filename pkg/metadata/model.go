package metadata

import (
	"encoding/json"

	"github.com/ajxudir/workspaces/pkg/version"
)

// PackageID is the provider's opaque identity for a package, e.g.
// "path+file:///ws/crates/b#b@0.1.0".
type PackageID string

// String returns the identity as reported by the provider.
func (id PackageID) String() string {
	return string(id)
}

// Package is one package record as reported by the provider.
//
// Fields:
//   - ID: Identity used by WorkspaceMembers
//   - Name: Package name
//   - Version: Declared semantic version
//   - ManifestPath: Absolute path to the package manifest
//   - Publish: nil when publishing is unrestricted; non-nil empty when the
//     package must never be published; otherwise the allowed registries
//   - Metadata: Raw freeform package.metadata value (may be nil or "null")
type Package struct {
	ID           PackageID
	Name         string
	Version      version.Version
	ManifestPath string
	Publish      *[]string
	Metadata     json.RawMessage
}

// Metadata is the provider's description of a workspace.
//
// Fields:
//   - Packages: Every package record the provider knows about
//   - WorkspaceMembers: Identities of the workspace members, in provider order
//   - WorkspaceRoot: Absolute path of the workspace root directory
type Metadata struct {
	Packages         []Package
	WorkspaceMembers []PackageID
	WorkspaceRoot    string
}

// Index maps each package identity to its record.
//
// When an identity appears more than once the first record wins.
func (m *Metadata) Index() map[PackageID]*Package {
	index := make(map[PackageID]*Package, len(m.Packages))
	for i := range m.Packages {
		if _, exists := index[m.Packages[i].ID]; !exists {
			index[m.Packages[i].ID] = &m.Packages[i]
		}
	}
	return index
}

// rawMetadata mirrors the JSON document produced by `cargo metadata`.
type rawMetadata struct {
	Packages         []rawPackage `json:"packages"`
	WorkspaceMembers []PackageID  `json:"workspace_members"`
	WorkspaceRoot    string       `json:"workspace_root"`
}

// rawPackage mirrors one entry of the "packages" array.
type rawPackage struct {
	ID           PackageID       `json:"id"`
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	ManifestPath string          `json:"manifest_path"`
	Publish      *[]string       `json:"publish"`
	Metadata     json.RawMessage `json:"metadata"`
}
