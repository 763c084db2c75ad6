// Package metadata is the workspace metadata provider.
//
// It obtains the structured description of a Cargo workspace, either by running
// `cargo metadata --format-version 1 --no-deps` or by reading a previously saved
// JSON document, and decodes the subset of fields the resolver consumes:
//
//	md, err := metadata.Load(ctx, metadata.LoadOptions{Dir: "."})
//	pkgs, err := workspace.Resolve(md, workspace.Options{})
//
// Manifests are never parsed here; cargo is the source of truth.
package metadata
