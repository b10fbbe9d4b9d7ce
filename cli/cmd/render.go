package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/render"
)

// Render renders an arbitrary format template once. The category and
// verbosity are used verbatim and no configuration is read.
type Render struct {
	Format    string   `arg:""                                          help:"Format template"`
	Category  string   `arg:""                                          help:"Category text"`
	Verbosity string   `arg:""                                          help:"Verbosity text"`
	Message   []string `arg:""                                          help:"Message text"   optional:""`
	Time      string   `help:"Timestamp in RFC 3339 format, or 'none'"  placeholder:"TIME"    short:"t"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) error {
	env := envFrom(ctx)

	for _, token := range config.UnknownTokens(r.Format) {
		log.WarnContext(ctx, "unknown placeholder", slog.String("token", token))
	}

	opts := []render.Option{render.WithFormat(r.Format)}

	switch strings.ToLower(strings.TrimSpace(r.Time)) {
	case "", "now":

	case "none":
		opts = append(opts, render.WithoutTime())

	default:
		t, err := parseTime(r.Time)
		if err != nil {
			return err
		}

		opts = append(opts, render.WithTime(t))
	}

	line := render.Message(r.Category, r.Verbosity, strings.Join(r.Message, " "), opts...)

	_, err := fmt.Fprintln(env.Out, line)
	if err != nil {
		return ErrPrint.Wrap(err)
	}

	return nil
}
