// Package color wraps rendered log lines with terminal color sequences.
//
// A [Palette] owns a [lipgloss.Renderer] that detects the color profile of its
// output, including the NO_COLOR and CLICOLOR_FORCE conventions. When the
// output cannot display color, [Palette.Colorize] returns text unchanged.
package color

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Name identifies one of the colors used to annotate log lines.
type Name int

const (
	None   Name = iota // none
	Grey               // grey
	Yellow             // yellow
	Red                // red
)

// String returns the lowercase name of the color.
func (n Name) String() string {
	switch n {
	case Grey:
		return "grey"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// ParseName parses a color name. Both "grey" and "gray" are accepted.
// Unrecognized names return [None].
func ParseName(s string) Name {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grey", "gray":
		return Grey
	case "yellow":
		return Yellow
	case "red":
		return Red
	default:
		return None
	}
}

// code maps each color to its ANSI palette index.
var code = [...]lipgloss.Color{
	Grey:   "8",
	Yellow: "3",
	Red:    "1",
}

// Palette applies colors using the color profile of an output.
type Palette struct {
	renderer *lipgloss.Renderer
}

// MakePalette creates a [Palette] for output written to w.
// The color profile is detected from w unless overridden with [WithProfile] or
// [WithMode].
func MakePalette(w io.Writer, opts ...Option) Palette {
	if w == nil {
		w = io.Discard
	}

	return apply(Palette{renderer: lipgloss.NewRenderer(w)}, opts...)
}

// Profile returns the color profile in use.
func (p Palette) Profile() termenv.Profile {
	if p.renderer == nil {
		return termenv.Ascii
	}

	return p.renderer.ColorProfile()
}

// Colorize wraps the whole of text with the color's start sequence and a
// reset sequence. Text is returned unchanged for [None], for the zero
// Palette, and for outputs without color support.
func (p Palette) Colorize(name Name, text string) string {
	if name <= None || int(name) >= len(code) {
		return text
	}

	profile := p.Profile()

	return profile.String(text).
		Foreground(profile.Color(string(code[name]))).
		String()
}
