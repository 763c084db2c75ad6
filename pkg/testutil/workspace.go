package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WorkspaceBuilder assembles a synthetic `cargo metadata` document.
type WorkspaceBuilder struct {
	root     string
	packages []PackageRecord
}

// NewWorkspace starts a document whose workspace_root is root.
func NewWorkspace(root string) *WorkspaceBuilder {
	return &WorkspaceBuilder{root: root}
}

// Add appends package records in member order.
func (w *WorkspaceBuilder) Add(pkgs ...*PackageBuilder) *WorkspaceBuilder {
	for _, p := range pkgs {
		w.packages = append(w.packages, p.Build())
	}
	return w
}

// Root returns the workspace root.
func (w *WorkspaceBuilder) Root() string {
	return w.root
}

// JSON renders the document in the shape produced by
// `cargo metadata --format-version 1 --no-deps`.
func (w *WorkspaceBuilder) JSON() []byte {
	packages := make([]map[string]any, 0, len(w.packages))
	members := make([]string, 0, len(w.packages))

	for _, p := range w.packages {
		id := p.ID(w.root)
		if !p.Unlisted {
			members = append(members, id)
		}
		if p.Missing {
			continue
		}

		var publish any
		if p.Publish != nil {
			publish = *p.Publish
		}

		packages = append(packages, map[string]any{
			"name":          p.Name,
			"version":       p.Version,
			"id":            id,
			"license":       nil,
			"source":        nil,
			"dependencies":  []any{},
			"targets":       []any{},
			"features":      map[string]any{},
			"manifest_path": p.Manifest(w.root),
			"publish":       publish,
			"metadata":      p.Metadata,
			"edition":       "2021",
		})
	}

	doc := map[string]any{
		"packages":          packages,
		"workspace_members": members,
		"resolve":           nil,
		"target_directory":  w.root + "/target",
		"version":           1,
		"workspace_root":    w.root,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return data
}

// WriteFile writes the document into dir and returns its path.
func (w *WorkspaceBuilder) WriteFile(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(p, w.JSON(), 0o644); err != nil {
		t.Fatalf("write metadata fixture: %v", err)
	}
	return p
}
