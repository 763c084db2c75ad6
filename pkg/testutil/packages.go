package testutil

import (
	"path"
	"strings"
)

// PackageBuilder provides a fluent API for building test package records.
//
// Records are plain data so that any package (including pkg/metadata's own
// tests) can turn them into a `cargo metadata` document without import cycles.
type PackageBuilder struct {
	pkg PackageRecord
}

// PackageRecord is one entry of a synthetic `cargo metadata` document.
//
// Fields:
//   - Name: Package name
//   - Version: Version string (not validated here)
//   - Dir: Directory relative to the workspace root, slash-separated; "" is the root
//   - ManifestPath: Absolute manifest path; derived from Dir when empty
//   - Publish: nil for unrestricted, empty for private, else registry names
//   - Metadata: Freeform package.metadata value; nil encodes as JSON null
//   - Unlisted: Record exists but is not a workspace member
//   - Missing: Declared as a member but no record is emitted
type PackageRecord struct {
	Name         string
	Version      string
	Dir          string
	ManifestPath string
	Publish      *[]string
	Metadata     any
	Unlisted     bool
	Missing      bool
}

// NewPackage creates a new PackageBuilder with the given name and version "0.1.0".
func NewPackage(name string) *PackageBuilder {
	return &PackageBuilder{pkg: PackageRecord{Name: name, Version: "0.1.0"}}
}

// WithVersion sets the version.
func (b *PackageBuilder) WithVersion(v string) *PackageBuilder {
	b.pkg.Version = v
	return b
}

// InDir places the package in a directory relative to the workspace root.
func (b *PackageBuilder) InDir(dir string) *PackageBuilder {
	b.pkg.Dir = strings.Trim(dir, "/")
	return b
}

// WithManifestPath overrides the absolute manifest path.
func (b *PackageBuilder) WithManifestPath(p string) *PackageBuilder {
	b.pkg.ManifestPath = p
	return b
}

// Private marks the package as never publishable (publish = []).
func (b *PackageBuilder) Private() *PackageBuilder {
	empty := []string{}
	b.pkg.Publish = &empty
	return b
}

// PublishTo restricts publishing to the given registries.
func (b *PackageBuilder) PublishTo(registries ...string) *PackageBuilder {
	list := append([]string{}, registries...)
	b.pkg.Publish = &list
	return b
}

// WithMetadata sets the freeform package.metadata value.
func (b *PackageBuilder) WithMetadata(m any) *PackageBuilder {
	b.pkg.Metadata = m
	return b
}

// Independent sets package.metadata to {"workspaces": {"independent": true}}.
func (b *PackageBuilder) Independent() *PackageBuilder {
	b.pkg.Metadata = map[string]any{"workspaces": map[string]any{"independent": true}}
	return b
}

// Unlisted keeps the record out of workspace_members.
func (b *PackageBuilder) Unlisted() *PackageBuilder {
	b.pkg.Unlisted = true
	return b
}

// Missing lists the package as a member without emitting its record.
func (b *PackageBuilder) Missing() *PackageBuilder {
	b.pkg.Missing = true
	return b
}

// Build returns the constructed record.
func (b *PackageBuilder) Build() PackageRecord {
	return b.pkg
}

// ID returns the cargo-style package id for a record under root.
func (r PackageRecord) ID(root string) string {
	return "path+file://" + path.Join(root, r.Dir) + "#" + r.Name + "@" + r.Version
}

// Manifest returns the absolute manifest path for a record under root.
func (r PackageRecord) Manifest(root string) string {
	if r.ManifestPath != "" {
		return r.ManifestPath
	}
	return path.Join(root, r.Dir, "Cargo.toml")
}
