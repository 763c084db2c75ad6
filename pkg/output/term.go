package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when styled output carries ANSI escapes.
type ColorMode string

const (
	// ColorAuto styles output only when the sink is a terminal and the
	// environment allows it (NO_COLOR, CLICOLOR_FORCE are honoured).
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI styling.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses a colour mode, case-insensitively.
// An empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (expected auto, always or never)", s)
	}
}

// Term is the output sink used by the list renderer. It writes plain and
// styled text to an underlying writer and reports write failures.
//
// Fields:
//   - Accent: style for versions (green)
//   - Muted: style for secondary text such as paths (bright black)
//   - Danger: style for the private marker (red)
//   - Warning: style for warning prefixes (yellow)
type Term struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Danger  lipgloss.Style
	Warning lipgloss.Style
}

// NewTerm creates a Term writing to w.
//
// Parameters:
//   - w: Destination writer
//   - mode: Colour mode; ColorAuto detects the profile from w and the environment
//
// Returns:
//   - *Term: A sink ready for writing
func NewTerm(w io.Writer, mode ColorMode) *Term {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Term{
		w:        w,
		renderer: r,
		Accent:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		Danger:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Writer returns the underlying writer, for structured encoders.
func (t *Term) Writer() io.Writer {
	return t.w
}

// Profile returns the colour profile in effect.
func (t *Term) Profile() termenv.Profile {
	return t.renderer.ColorProfile()
}

// WriteStr writes s verbatim.
func (t *Term) WriteStr(s string) error {
	_, err := io.WriteString(t.w, s)
	return err
}

// WriteLine writes s followed by a newline.
func (t *Term) WriteLine(s string) error {
	return t.WriteStr(s + "\n")
}

// WriteStyled writes s rendered with style.
func (t *Term) WriteStyled(style lipgloss.Style, s string) error {
	return t.WriteStr(style.Render(s))
}
