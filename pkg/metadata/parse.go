package metadata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ajxudir/workspaces/pkg/version"
)

// Parse decodes a `cargo metadata` JSON document.
//
// It performs the following operations:
//   - Step 1: Decodes the document, ignoring fields the resolver does not use
//   - Step 2: Requires a non-empty workspace_root
//   - Step 3: Parses every package version as a semantic version
//
// Parameters:
//   - data: The JSON document
//
// Returns:
//   - *Metadata: The decoded workspace description
//   - error: When the document is not valid JSON, lacks a workspace root, or a
//     package has an invalid version (the error names the package id)
func Parse(data []byte) (*Metadata, error) {
	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid metadata JSON: %w", err)
	}

	if raw.WorkspaceRoot == "" {
		return nil, fmt.Errorf("metadata has no workspace_root")
	}

	md := &Metadata{
		Packages:         make([]Package, 0, len(raw.Packages)),
		WorkspaceMembers: raw.WorkspaceMembers,
		WorkspaceRoot:    raw.WorkspaceRoot,
	}

	for _, p := range raw.Packages {
		v, err := version.Parse(p.Version)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", p.ID, err)
		}
		md.Packages = append(md.Packages, Package{
			ID:           p.ID,
			Name:         p.Name,
			Version:      v,
			ManifestPath: p.ManifestPath,
			Publish:      p.Publish,
			Metadata:     p.Metadata,
		})
	}

	return md, nil
}

// Read decodes a metadata document from r.
func Read(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
