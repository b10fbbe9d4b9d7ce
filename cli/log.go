package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so that parse errors already use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevelEnum}"  help:"Set diagnostic log level."`
	Format     logFormat `default:"${logFormat}" enum:"${logFormatEnum}" help:"Set diagnostic log format."`
	TimeLayout string    `default:"rfc3339"                              help:"Set diagnostic timestamp layout (empty disables)."`
	Caller     bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                 help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevel":      log.DefaultLevel.String(),
		"logLevelEnum":  joinEnum(slices.Collect(log.Levels())),
		"logFormat":     log.DefaultFormat.String(),
		"logFormatEnum": joinEnum([]string{log.FormatText.String(), log.FormatJSON.String()}),
	}
}

func (*logConfig) groups() []kong.Group {
	return []kong.Group{{Key: "log", Title: "Diagnostic logging options"}}
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies the logger flags found in args before kong begins parsing.
//
// The level and format flags would also be applied as kong parses them, but
// only once kong reaches them, and boolean flags never pass through
// encoding.TextUnmarshaler.
func (f *logConfig) scan(args []string) {
	isLog := func(name string) bool {
		return strings.HasPrefix(name, "log-") || strings.HasPrefix(name, "no-log-")
	}
	takesValue := func(name string) bool {
		return name == "log-level" || name == "log-format" || name == "log-time-layout"
	}

	for _, arg := range scanFlags(args, isLog, takesValue) {
		switch arg.name {
		case "log-level":
			_ = f.Level.UnmarshalText([]byte(arg.value))

		case "log-format":
			_ = f.Format.UnmarshalText([]byte(arg.value))

		case "log-time-layout":
			f.TimeLayout = arg.value
			log.Config(log.WithTimeLayout(f.TimeLayout))

		case "log-pretty", "no-log-pretty":
			if v, ok := boolArg(arg); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case "log-caller", "no-log-caller":
			if v, ok := boolArg(arg); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}

// boolArg returns the value of a boolean flag, inverted for its "no-" form.
// A flag without "=" is true.
func boolArg(arg flagArg) (value, ok bool) {
	value = true

	if arg.assigned {
		v, err := strconv.ParseBool(arg.value)
		if err != nil {
			return false, false
		}

		value = v
	}

	if strings.HasPrefix(arg.name, "no-") {
		value = !value
	}

	return value, true
}
