// Package log provides the diagnostic logger of the clog command, a
// concurrency-safe simplified interface based on [log/slog].
//
// Diagnostics describe what the program itself is doing (configuration
// loaded, command selected, failures). They are separate from the log lines
// clog formats for its callers, and they are written to standard error by
// default so the two never interleave on standard output.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("configuration loaded", slog.String("path", path))
//	logger.Error("command failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) use a default logger that [Config] reconfigures.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and [FormatJSON].
// With [WithPretty], text output colors keys and levels when the output
// supports color.
package log
