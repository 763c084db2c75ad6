// Package utils holds small text helpers shared by the output layer.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (CJK, most emoji) occupy two terminal cells and count as 2.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// Spaces returns n spaces, or "" when n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// MaxWidth returns the largest display width among values, but never less than floor.
//
// Parameters:
//   - floor: Minimum result, returned for an empty slice
//   - values: Strings to measure
//
// Returns:
//   - int: max(floor, DisplayWidth(v) for v in values)
func MaxWidth(floor int, values ...string) int {
	m := floor
	for _, v := range values {
		if w := DisplayWidth(v); w > m {
			m = w
		}
	}
	return m
}
