package output

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseColorMode tests colour mode parsing.
func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTerm_Profiles tests the profile chosen for each colour mode.
//
// It verifies:
//   - always forces ANSI
//   - never and auto on a non-terminal writer are plain
func TestTerm_Profiles(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	assert.Equal(t, termenv.ANSI, NewTerm(&buf, ColorAlways).Profile())
	assert.Equal(t, termenv.Ascii, NewTerm(&buf, ColorNever).Profile())
	assert.Equal(t, termenv.Ascii, NewTerm(&buf, ColorAuto).Profile())
}

// TestTerm_Write tests plain and styled writes.
func TestTerm_Write(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorNever)

	require.NoError(t, term.WriteStr("a"))
	require.NoError(t, term.WriteStyled(term.Accent, "b"))
	require.NoError(t, term.WriteLine("c"))
	assert.Equal(t, "abc\n", buf.String())
	assert.Same(t, &buf, term.Writer())

	buf.Reset()
	term = NewTerm(&buf, ColorAlways)
	require.NoError(t, term.WriteStyled(term.Danger, "PRIVATE"))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Equal(t, "PRIVATE", stripANSI(buf.String()))
}

// TestTerm_WriteError tests that sink failures are returned.
func TestTerm_WriteError(t *testing.T) {
	term := NewTerm(&errorWriter{}, ColorNever)
	assert.Error(t, term.WriteStr("x"))
	assert.Error(t, term.WriteLine("x"))
	assert.Error(t, term.WriteStyled(term.Muted, "x"))
}
