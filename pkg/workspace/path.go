package workspace

import (
	"path/filepath"
	"strings"
)

// DefaultManifestName is the manifest filename stripped from member paths.
const DefaultManifestName = "Cargo.toml"

// rootMarker stands for a leading separator so that rooted and relative
// paths never compare equal.
const rootMarker = "/"

// isSeparator accepts both separator conventions regardless of the host OS.
func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// splitPath breaks p into cleaned components, resolving "." and "..".
func splitPath(p string) []string {
	var parts []string
	if p != "" && isSeparator(rune(p[0])) {
		parts = append(parts, rootMarker)
	}

	for _, part := range strings.FieldsFunc(p, isSeparator) {
		switch part {
		case ".":
		case "..":
			if n := len(parts); n > 0 && parts[n-1] != rootMarker && parts[n-1] != ".." {
				parts = parts[:n-1]
			} else if n == 0 || parts[n-1] == ".." {
				parts = append(parts, "..")
			}
		default:
			parts = append(parts, part)
		}
	}
	return parts
}

// separatorOf picks the separator to rebuild a relative path with: a path
// written only with backslashes keeps them, anything else uses "/".
func separatorOf(p string) string {
	if strings.Contains(p, `\`) && !strings.Contains(p, "/") {
		return `\`
	}
	return "/"
}

// RelativePath derives a member's directory relative to the workspace root.
//
// It performs the following operations:
//   - Step 1: Splits root and manifest into components, accepting "/" and "\"
//   - Step 2: Requires every root component to prefix the manifest path
//   - Step 3: Drops a trailing manifest filename
//   - Step 4: Joins what remains; the result never ends in a separator
//
// Parameters:
//   - root: Workspace root directory
//   - manifest: Absolute path to the member manifest
//   - manifestName: Manifest filename; empty means DefaultManifestName
//
// Returns:
//   - string: Relative directory, "" for the workspace root itself
//   - bool: false when manifest is not under root
func RelativePath(root, manifest, manifestName string) (string, bool) {
	if manifestName == "" {
		manifestName = DefaultManifestName
	}

	rootParts := splitPath(root)
	parts := splitPath(manifest)
	if len(rootParts) == 0 || len(parts) < len(rootParts) {
		return "", false
	}
	for i := range rootParts {
		if rootParts[i] != parts[i] {
			return "", false
		}
	}

	rest := parts[len(rootParts):]
	if n := len(rest); n > 0 && rest[n-1] == manifestName {
		rest = rest[:n-1]
	}

	return strings.Join(rest, separatorOf(manifest)), true
}

// Location joins the workspace root with a relative member path.
//
// A root written only with backslashes is joined with a backslash so that
// RelativePath over the result yields rel again on any host.
func Location(root, rel string) string {
	if separatorOf(root) != `\` || strings.Contains(rel, "/") {
		return filepath.Join(root, rel)
	}

	base := strings.TrimRight(root, `\`)
	if rel == "" {
		if base == "" || strings.HasSuffix(base, ":") {
			return base + `\`
		}
		return base
	}
	return base + `\` + rel
}
