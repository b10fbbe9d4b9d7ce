package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/cli/cmd"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/log"
)

// resolver returns a [kong.ConfigurationLoader] that reads flag defaults from
// the "flags" mapping of the configuration file at path.
//
// Keys are flag names. Hyphens may be written as underscores:
//
//	flags:
//	  log_level: debug
//	  color: never
//	  width: 40
//
// Command-line flags override values from the file. A file that cannot be
// decoded provides no values; the command that loads it reports the error.
func resolver(path string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		cfg, err := config.DecodeAs(r, config.EncodingOf(path))
		if err != nil {
			log.Debug("ignoring flag defaults",
				slog.String("file", path),
				slog.String("error", err.Error()),
			)

			return flags{}, nil
		}

		return makeFlags(cfg.Flags), nil
	}
}

// makeFlags returns the flag values of m keyed by kong flag name.
func makeFlags(m map[string]any) flags {
	f := make(flags, len(m))

	for name, value := range m {
		// The configuration file cannot choose itself.
		if name == cmd.ConfigIdentifier {
			continue
		}

		f[strings.ReplaceAll(name, "_", "-")] = flagValue(value)
	}

	return f
}

// flags implements [kong.Resolver] for the "flags" mapping.
type flags map[string]any

// Validate implements [kong.Resolver].
func (flags) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (f flags) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if value, ok := f[flag.Name]; ok {
		return value, nil
	}

	// Not found; kong uses the flag default.
	return nil, nil
}

// flagValue converts a decoded value into a form kong's mappers accept.
// Numbers are passed as strings, and sequences as lists of strings.
func flagValue(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		list := make([]any, len(v))
		for i, e := range v {
			list[i] = flagValue(e)
		}

		return list

	case bool, string, nil:
		return v

	default:
		return fmt.Sprint(v)
	}
}
