// Package version provides a semantic version value ordered by SemVer 2.0 precedence.
//
// Versions are stored in their original form (without a leading "v") and
// compared through golang.org/x/mod/semver, which implements the precedence
// rules for pre-release identifiers:
//
//	version.MustParse("1.0.0-alpha").Less(version.MustParse("1.0.0"))  // true
//	version.MustParse("2.0.0").Compare(version.MustParse("1.9.9"))     // 1
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a parsed semantic version (major.minor.patch[-pre][+build]).
//
// The zero value is not a valid version; construct values with Parse or MustParse.
type Version struct {
	raw string
}

// Parse validates s as a full semantic version and returns it.
//
// Shorthand forms accepted by x/mod/semver ("1", "1.2") and a leading "v" are
// rejected so that the stored value always round-trips to what the manifest declares.
//
// Parameters:
//   - s: Version string such as "1.2.3", "0.1.0-beta.2" or "1.0.0+build.5"
//
// Returns:
//   - Version: The parsed version
//   - error: When s is not a valid semantic version
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "v") {
		return Version{}, fmt.Errorf("invalid semantic version %q", s)
	}

	canonical := "v" + trimmed
	if !semver.IsValid(canonical) || semver.Canonical(canonical) != strings.TrimSuffix(canonical, semver.Build(canonical)) {
		return Version{}, fmt.Errorf("invalid semantic version %q", s)
	}

	return Version{raw: trimmed}, nil
}

// MustParse is like Parse but panics when s is invalid. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version without a "v" prefix.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or +1 comparing v to other.
//
// Precedence follows SemVer 2.0. Build metadata does not affect precedence, so
// two versions differing only in build metadata are ordered by their raw text.
// This keeps the order total: Compare returns 0 only for identical versions.
//
// Parameters:
//   - other: The version to compare against
//
// Returns:
//   - int: -1 if v < other, 0 if equal, +1 if v > other
func (v Version) Compare(other Version) int {
	if c := semver.Compare("v"+v.raw, "v"+other.raw); c != 0 {
		return c
	}
	return strings.Compare(v.raw, other.raw)
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// MarshalText encodes the version as its plain string form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText parses a version string produced by MarshalText or a manifest.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
