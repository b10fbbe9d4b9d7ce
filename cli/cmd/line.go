package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/dispatch"
	"github.com/ardnew/clog/log"
)

// Line holds the arguments shared by the commands that print one log line.
type Line struct {
	Category string   `arg:""                                          help:"Category name or token"`
	Message  []string `arg:""                                          help:"Message text"                            optional:""`
	Time     string   `help:"Timestamp in RFC 3339 format, or 'none'"  placeholder:"TIME"                             short:"t"`
	NoColor  bool     `help:"Do not color the line"`
	Generate bool     `help:"Render with the generator and print the returned line" short:"g"`
}

// DisplayLine prints a line at the display verbosity.
type DisplayLine struct {
	Line `embed:""`
}

// VerboseLine prints a line at the verbose verbosity.
type VerboseLine struct {
	Line `embed:""`
}

// WarnLine prints a line at the warning verbosity.
type WarnLine struct {
	Line `embed:""`
}

// ErrorLine prints a line at the error verbosity.
type ErrorLine struct {
	Line `embed:""`
}

// Run executes the display command.
func (l *DisplayLine) Run(ctx context.Context) error { return l.run(ctx, config.Display) }

// Run executes the verbose command.
func (l *VerboseLine) Run(ctx context.Context) error { return l.run(ctx, config.Verbose) }

// Run executes the warn command.
func (l *WarnLine) Run(ctx context.Context) error { return l.run(ctx, config.Warning) }

// Run executes the error command.
func (l *ErrorLine) Run(ctx context.Context) error { return l.run(ctx, config.Error) }

var printers = map[string]func(dispatch.Printer, string, string, ...dispatch.Option) error{
	config.Display: dispatch.Printer.Display,
	config.Verbose: dispatch.Printer.Verbose,
	config.Warning: dispatch.Printer.Warn,
	config.Error:   dispatch.Printer.Error,
}

var generators = map[string]func(dispatch.Generator, string, string, ...dispatch.Option) (string, error){
	config.Display: dispatch.Generator.Display,
	config.Verbose: dispatch.Generator.Verbose,
	config.Warning: dispatch.Generator.Warn,
	config.Error:   dispatch.Generator.Error,
}

func (l *Line) run(ctx context.Context, level string) error {
	env := envFrom(ctx)

	cfg, err := env.load(ctx)
	if err != nil {
		return err
	}

	category, _, err := resolve(cfg, l.Category, "")
	if err != nil {
		return err
	}

	opts, err := timeOptions(l.Time)
	if err != nil {
		return err
	}

	opts = append(opts, dispatch.WithColor(!l.NoColor))
	message := strings.Join(l.Message, " ")

	log.DebugContext(ctx, "dispatch line",
		slog.String("verbosity", level),
		slog.String("category", category),
		slog.Bool("generate", l.Generate),
	)

	if l.Generate {
		line, err := generators[level](
			dispatch.MakeGenerator(cfg, env.Palette), category, message, opts...)
		if err != nil {
			return ErrPrint.With(slog.String("verbosity", level)).Wrap(err)
		}

		_, err = fmt.Fprintln(env.Out, line)
		if err != nil {
			return ErrPrint.Wrap(err)
		}

		return nil
	}

	err = printers[level](
		dispatch.MakePrinter(env.Out, cfg, env.Palette), category, message, opts...)
	if err != nil {
		return ErrPrint.With(slog.String("verbosity", level)).Wrap(err)
	}

	return nil
}
