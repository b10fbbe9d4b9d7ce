package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/dispatch"
	"github.com/ardnew/clog/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Env is the state shared by all commands of one invocation.
type Env struct {
	// Out receives rendered lines.
	Out io.Writer
	// Palette colors rendered lines.
	Palette color.Palette
	// Config is the path of the configuration file.
	Config string
}

type envKey struct{}

// WithEnv returns a new context.Context containing env.
func WithEnv(ctx context.Context, env Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// envFrom returns the Env stored in ctx, with standard output, a palette
// detected from it, and the default configuration path for missing fields.
func envFrom(ctx context.Context) Env {
	env, _ := ctx.Value(envKey{}).(Env)

	if env.Out == nil {
		env.Out = os.Stdout
		env.Palette = color.MakePalette(os.Stdout)
	}

	if env.Config == "" {
		env.Config = config.DefaultPath()
	}

	return env
}

// load reads the configuration file, or the built-in configuration if the
// file does not exist.
func (e Env) load(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(e.Config)
	if err != nil {
		return nil, ErrLoadConfig.
			With(slog.String("file", e.Config)).
			Wrap(err)
	}

	log.DebugContext(ctx, "configuration ready", slog.String("file", e.Config))

	return cfg, nil
}

// timeOptions translates the value of a --time flag into dispatch options.
// Empty or "now" selects the current time and "none" an empty timestamp.
// Anything else must be an RFC 3339 time.
func timeOptions(value string) ([]dispatch.Option, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "now":
		return nil, nil

	case "none":
		return []dispatch.Option{dispatch.WithoutTime()}, nil
	}

	t, err := parseTime(value)
	if err != nil {
		return nil, err
	}

	return []dispatch.Option{dispatch.WithTime(t)}, nil
}

// parseTime parses an RFC 3339 time argument.
func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidArgument.
			With(slog.String("time", value)).
			Wrap(err)
	}

	return t, nil
}

// resolve returns the category and verbosity tokens for the given names.
// An empty verbosity name is not resolved.
func resolve(cfg *config.Config, category, verbosity string) (string, string, error) {
	cat, err := cfg.ResolveCategory(category)
	if err != nil {
		return "", "", ErrInvalidArgument.
			With(slog.String("category", category)).
			Wrap(err)
	}

	if verbosity == "" {
		return cat, "", nil
	}

	verb, err := cfg.ResolveVerbosity(verbosity)
	if err != nil {
		return "", "", ErrInvalidArgument.
			With(slog.String("verbosity", verbosity)).
			Wrap(err)
	}

	return cat, verb, nil
}
