package color

import (
	"strings"

	"github.com/muesli/termenv"
)

// Option applies a configuration option to a Palette.
type Option func(Palette) Palette

// apply applies multiple options to a Palette.
func apply(p Palette, opts ...Option) Palette {
	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithProfile returns an option that forces the given color profile,
// bypassing detection.
func WithProfile(profile termenv.Profile) Option {
	return func(p Palette) Palette {
		if p.renderer != nil {
			p.renderer.SetColorProfile(profile)
		}

		return p
	}
}

// Mode selects when color is used.
type Mode int

const (
	ModeAuto   Mode = iota // auto
	ModeAlways             // always
	ModeNever              // never
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// Modes returns the names of all modes.
func Modes() []string {
	return []string{ModeAuto.String(), ModeAlways.String(), ModeNever.String()}
}

// ParseMode parses a mode name. Unrecognized names return [ModeAuto].
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "force", "on":
		return ModeAlways
	case "never", "off", "none":
		return ModeNever
	default:
		return ModeAuto
	}
}

// WithMode returns an option that applies mode to the palette.
// [ModeAlways] forces ANSI colors when detection found none, [ModeNever]
// disables colors, and [ModeAuto] keeps the detected profile.
func WithMode(mode Mode) Option {
	return func(p Palette) Palette {
		if p.renderer == nil {
			return p
		}

		switch mode {
		case ModeAlways:
			if p.renderer.ColorProfile() == termenv.Ascii {
				p.renderer.SetColorProfile(termenv.ANSI)
			}

		case ModeNever:
			p.renderer.SetColorProfile(termenv.Ascii)

		case ModeAuto:
		}

		return p
	}
}
