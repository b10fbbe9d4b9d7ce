package dispatch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/render"
)

// MaxRepeat is the maximum length in bytes of the repeated text of a header
// or divider line.
const MaxRepeat = 1 << 16

// Sink receives a rendered line.
type Sink func(line string) error

// Linebreak is the value passed to a sink by [Printer.Linebreak].
const Linebreak = "\n"

// Writer returns a [Sink] that prints each line to w followed by a newline.
func Writer(w io.Writer) Sink {
	return func(line string) error {
		_, err := fmt.Fprintln(w, line)

		return err
	}
}

// Printer renders log lines and passes them to a sink.
type Printer struct {
	config  *config.Config
	palette color.Palette
	print   Sink
}

// MakePrinter creates a [Printer] for cfg whose default output is w.
// A nil writer selects standard output.
func MakePrinter(w io.Writer, cfg *config.Config, palette color.Palette) Printer {
	if w == nil {
		w = os.Stdout
	}

	return Printer{config: cfg, palette: palette, print: Writer(w)}
}

// Display prints a line at the display verbosity. It is never colored.
func (p Printer) Display(category, message string, opts ...Option) error {
	return p.emit(config.Display, color.None, category, message, opts)
}

// Verbose prints a line at the verbose verbosity in grey.
func (p Printer) Verbose(category, message string, opts ...Option) error {
	return p.emit(config.Verbose, color.Grey, category, message, opts)
}

// Warn prints a line at the warning verbosity in yellow.
func (p Printer) Warn(category, message string, opts ...Option) error {
	return p.emit(config.Warning, color.Yellow, category, message, opts)
}

// Error prints a line at the error verbosity in red.
func (p Printer) Error(category, message string, opts ...Option) error {
	return p.emit(config.Error, color.Red, category, message, opts)
}

func (p Printer) emit(
	level string,
	name color.Name,
	category, message string,
	opts []Option,
) error {
	o := makeOptions(opts...)

	line, err := line(p.config, level, category, message, o)
	if err != nil {
		return err
	}

	if o.sink != nil {
		return o.sink(line)
	}

	if o.colored(true) {
		line = p.palette.Colorize(name, line)
	}

	return p.print(line)
}

// Header prints a line whose message is the header character repeated.
//
// [WithCharacter], [WithWidth] and [WithFormat] override the configured
// values. The line is colored by verbosity (see [ColorOf]) only when it is
// printed to the default output.
func (p Printer) Header(category, verbosity string, opts ...Option) error {
	o := makeOptions(opts...)

	character, width, err := cosmetic(o,
		p.config.HeaderCharacter, p.config.HeaderWidth)
	if err != nil {
		return err
	}

	format := o.format
	if format == "" {
		format, err = p.config.Format()
		if err != nil {
			return err
		}
	}

	line := render.Message(category, verbosity,
		strings.Repeat(character, width), o.renderOptions(format)...)

	if o.sink != nil {
		return o.sink(line)
	}

	return p.print(p.palette.Colorize(ColorOf(p.config, verbosity), line))
}

// Divider prints a line whose message is the divider character repeated.
//
// [WithCharacter] and [WithWidth] override the configured values. The
// configured format is always used. Unlike [Printer.Header], the line is
// colored by verbosity whichever sink receives it.
func (p Printer) Divider(category, verbosity string, opts ...Option) error {
	o := makeOptions(opts...)

	character, width, err := cosmetic(o,
		p.config.DividerCharacter, p.config.DividerWidth)
	if err != nil {
		return err
	}

	format, err := p.config.Format()
	if err != nil {
		return err
	}

	line := p.palette.Colorize(ColorOf(p.config, verbosity),
		render.Message(category, verbosity,
			strings.Repeat(character, width), o.renderOptions(format)...))

	if o.sink != nil {
		return o.sink(line)
	}

	return p.print(line)
}

// Linebreak passes [Linebreak] to the sink given with [WithSink], or to the
// default output. All other options are ignored.
func (p Printer) Linebreak(opts ...Option) error {
	if o := makeOptions(opts...); o.sink != nil {
		return o.sink(Linebreak)
	}

	return p.print(Linebreak)
}

// cosmetic returns the character and width of a repeated-character line,
// reading the configuration only for values not given as options.
func cosmetic(
	o options,
	character func() (string, error),
	width func() (int, error),
) (string, int, error) {
	c, w := o.character, o.width

	var err error

	if c == "" {
		c, err = character()
		if err != nil {
			return "", 0, err
		}
	}

	if w <= 0 {
		w, err = width()
		if err != nil {
			return "", 0, err
		}
	}

	if len(c) > 0 && w > MaxRepeat/len(c) {
		return "", 0, pkg.ErrLineTooLong.Wrapf(
			"%d repetitions of %q exceed %d bytes", w, c, MaxRepeat)
	}

	return c, w, nil
}

// ColorOf returns the color of lines at the given verbosity token:
// grey for verbose, yellow for warning, red for error, and none for display
// or any unrecognized token.
func ColorOf(cfg *config.Config, verbosity string) color.Name {
	for _, c := range []struct {
		level string
		name  color.Name
	}{
		{config.Verbose, color.Grey},
		{config.Warning, color.Yellow},
		{config.Error, color.Red},
	} {
		if token, err := cfg.Verbosity(c.level); err == nil && token == verbosity {
			return c.name
		}
	}

	return color.None
}
