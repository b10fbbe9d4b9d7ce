package dispatch

import (
	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/render"
)

// Generator renders log lines and returns them.
type Generator struct {
	config  *config.Config
	palette color.Palette
}

// MakeGenerator creates a [Generator] for cfg that colors lines with palette.
func MakeGenerator(cfg *config.Config, palette color.Palette) Generator {
	return Generator{config: cfg, palette: palette}
}

// Display returns a line at the display verbosity. It is never colored.
func (g Generator) Display(category, message string, opts ...Option) (string, error) {
	return g.generate(config.Display, color.None, category, message, opts)
}

// Verbose returns a line at the verbose verbosity, grey with [WithColor].
func (g Generator) Verbose(category, message string, opts ...Option) (string, error) {
	return g.generate(config.Verbose, color.Grey, category, message, opts)
}

// Warn returns a line at the warning verbosity, yellow with [WithColor].
func (g Generator) Warn(category, message string, opts ...Option) (string, error) {
	return g.generate(config.Warning, color.Yellow, category, message, opts)
}

// Error returns a line at the error verbosity, red with [WithColor].
func (g Generator) Error(category, message string, opts ...Option) (string, error) {
	return g.generate(config.Error, color.Red, category, message, opts)
}

func (g Generator) generate(
	level string,
	name color.Name,
	category, message string,
	opts []Option,
) (string, error) {
	o := makeOptions(opts...)

	line, err := line(g.config, level, category, message, o)
	if err != nil {
		return "", err
	}

	if o.colored(false) {
		line = g.palette.Colorize(name, line)
	}

	return line, nil
}

// line renders message at the named verbosity using the configured format.
func line(cfg *config.Config, level, category, message string, o options) (string, error) {
	verbosity, err := cfg.Verbosity(level)
	if err != nil {
		return "", err
	}

	format, err := cfg.Format()
	if err != nil {
		return "", err
	}

	return render.Message(category, verbosity, message, o.renderOptions(format)...), nil
}
