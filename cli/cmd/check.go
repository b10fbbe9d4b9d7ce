package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/pkg"
)

// Check loads the configuration file and reports every problem found.
type Check struct{}

// Run executes the check command.
func (Check) Run(ctx context.Context) error {
	env := envFrom(ctx)

	cfg, err := config.Load(env.Config)
	if err != nil {
		return ErrCheckConfig.
			With(slog.String("file", env.Config)).
			Wrap(err)
	}

	err = cfg.Validate()
	if err == nil {
		_, err = fmt.Fprintf(env.Out, "%s: ok\n", env.Config)
		if err != nil {
			return ErrPrint.Wrap(err)
		}

		return nil
	}

	var chain pkg.Error
	if !errors.As(err, &chain) || !errors.Is(chain, pkg.ErrInvalidConfig) {
		return ErrCheckConfig.With(slog.String("file", env.Config)).Wrap(err)
	}

	problems := chain[len(pkg.ErrInvalidConfig):]

	for _, problem := range problems {
		_, err = fmt.Fprintf(env.Out, "%s: %v\n", env.Config, problem)
		if err != nil {
			return ErrPrint.Wrap(err)
		}
	}

	return ErrCheckConfig.
		With(slog.String("file", env.Config)).
		With(slog.Int("problems", len(problems))).
		Wrap(pkg.ErrInvalidConfig)
}
