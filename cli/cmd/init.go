package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

const (
	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
)

// Init writes the built-in configuration, with the current global flag
// values as flag defaults, to the configuration file. The encoding follows
// the file extension (see [config.EncodingOf]) unless --json is given.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
	JSON  bool `help:"Write JSON regardless of the file extension" name:"json"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	path := envFrom(ctx).Config

	_, err := os.Stat(path)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	cfg := config.Default()
	cfg.Flags = i.flags(ctx)

	var buf bytes.Buffer

	enc := config.EncodingOf(path)
	if i.JSON {
		enc = config.EncodingJSON
	}

	err = cfg.Encode(&buf, enc, defaultConfigIndent)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(path), dirMode)
	if err == nil {
		err = os.WriteFile(path, buf.Bytes(), fileMode)
	}

	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.InfoContext(ctx, "initialized configuration file",
		slog.String("path", path),
		slog.String("encoding", enc.String()),
	)

	return nil
}

// flags returns the values of the global flags that have one, keyed by flag
// name. Help, profiling and the configuration path itself are skipped.
func (i *Init) flags(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	ignore := []string{"help", profile.Tag, ConfigIdentifier}
	flags := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:

		case bool:
			flags[flag.Name] = v

		case string:
			if v != "" {
				flags[flag.Name] = v
			}

		case int, int64, uint, uint64, float64:
			flags[flag.Name] = v

		default:
			if s := fmt.Sprint(v); s != "" {
				flags[flag.Name] = s
			}
		}
	}

	if len(flags) == 0 {
		return nil
	}

	return flags
}
