package workspace

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// IsPrivate reports whether a publish setting forbids publishing entirely.
//
// nil means "no restriction"; an explicit empty list means "publish to nobody".
// A list naming registries is restricted but not private.
func IsPrivate(publish *[]string) bool {
	return publish != nil && len(*publish) == 0
}

// IsIndependent reports whether freeform package metadata carries
// {"workspaces": {"independent": true}}.
//
// Any other shape, including invalid JSON, yields false.
func IsIndependent(raw json.RawMessage) bool {
	v, ok := LookupBool(DecodeTree(raw), "workspaces", "independent")
	return ok && v
}

// DecodeTree decodes a freeform JSON object into an ordered tree.
//
// Only objects can hold keyed settings, so anything else (null, arrays,
// scalars, malformed input) decodes to nil.
func DecodeTree(raw json.RawMessage) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	tree := orderedmap.New()
	if err := json.Unmarshal(trimmed, tree); err != nil {
		return nil
	}
	return tree
}

// LookupBool walks tree along keys and returns the boolean found there.
//
// Every step tolerates shape mismatches: a missing key, a non-object
// intermediate node or a non-boolean leaf returns ok == false.
//
// Parameters:
//   - tree: Root node, as produced by DecodeTree or a plain map[string]any
//   - keys: Object keys to follow
//
// Returns:
//   - value: The boolean at the path
//   - ok: Whether a boolean exists at the path
func LookupBool(tree any, keys ...string) (value bool, ok bool) {
	node := tree
	for _, key := range keys {
		var found bool
		switch m := node.(type) {
		case *orderedmap.OrderedMap:
			node, found = m.Get(key)
		case orderedmap.OrderedMap:
			node, found = m.Get(key)
		case map[string]any:
			node, found = m[key]
		}
		if !found {
			return false, false
		}
	}

	value, ok = node.(bool)
	return value, ok
}
