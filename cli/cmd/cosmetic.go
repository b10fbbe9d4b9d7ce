package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/clog/dispatch"
)

// Cosmetic holds the arguments shared by header and divider lines.
type Cosmetic struct {
	Category  string `arg:""                                         help:"Category name or token"`
	Verbosity string `arg:""                                         help:"Verbosity name or token"`
	Width     int    `help:"Number of repetitions (default: configured)" short:"w"`
	Character string `help:"Repeated text (default: configured)"      short:"C"`
	Time      string `help:"Timestamp in RFC 3339 format, or 'none'"   placeholder:"TIME" short:"t"`
}

// options returns the dispatch options selected by the flags.
func (c *Cosmetic) options() ([]dispatch.Option, error) {
	opts, err := timeOptions(c.Time)
	if err != nil {
		return nil, err
	}

	return append(opts,
		dispatch.WithWidth(c.Width),
		dispatch.WithCharacter(c.Character),
	), nil
}

// prepare loads the configuration and resolves the arguments.
func (c *Cosmetic) prepare(
	ctx context.Context,
) (dispatch.Printer, string, string, []dispatch.Option, error) {
	env := envFrom(ctx)

	cfg, err := env.load(ctx)
	if err != nil {
		return dispatch.Printer{}, "", "", nil, err
	}

	category, verbosity, err := resolve(cfg, c.Category, c.Verbosity)
	if err != nil {
		return dispatch.Printer{}, "", "", nil, err
	}

	opts, err := c.options()
	if err != nil {
		return dispatch.Printer{}, "", "", nil, err
	}

	return dispatch.MakePrinter(env.Out, cfg, env.Palette), category, verbosity, opts, nil
}

// Header prints a header line.
type Header struct {
	Cosmetic `embed:""`

	Format string `help:"Format template (default: configured)" short:"f"`
}

// Run executes the header command.
func (h *Header) Run(ctx context.Context) error {
	prn, category, verbosity, opts, err := h.prepare(ctx)
	if err != nil {
		return err
	}

	err = prn.Header(category, verbosity, append(opts, dispatch.WithFormat(h.Format))...)
	if err != nil {
		return ErrPrint.With(slog.String("line", "header")).Wrap(err)
	}

	return nil
}

// Divider prints a divider line.
type Divider struct {
	Cosmetic `embed:""`
}

// Run executes the divider command.
func (d *Divider) Run(ctx context.Context) error {
	prn, category, verbosity, opts, err := d.prepare(ctx)
	if err != nil {
		return err
	}

	err = prn.Divider(category, verbosity, opts...)
	if err != nil {
		return ErrPrint.With(slog.String("line", "divider")).Wrap(err)
	}

	return nil
}

// Linebreak prints an empty line.
type Linebreak struct{}

// Run executes the linebreak command.
func (Linebreak) Run(ctx context.Context) error {
	env := envFrom(ctx)

	// The configuration is not needed to print a line break.
	err := dispatch.MakePrinter(env.Out, nil, env.Palette).Linebreak()
	if err != nil {
		return ErrPrint.With(slog.String("line", "linebreak")).Wrap(err)
	}

	return nil
}
