// Package cli contains the command line interface for clog.
//
// # Usage
//
//	clog [flags] <command> [args]
//
// Line commands print one rendered line to standard output:
//
//	clog display general "service started"
//	clog warn network --time=none "link flapping"
//	clog error storage --generate --no-color "disk full"
//	clog header general warning --width=40
//	clog divider general display --character='~'
//	clog linebreak
//
// Category and verbosity arguments are configured names ("network") or the
// tokens they map to ("NETWORK").
//
// The render command renders any format template without a configuration:
//
//	clog render '<<verbosity>>|<<message>>' app INFO hello
//
// # Configuration
//
// The configuration file (see --config) is YAML or JSON. Run "clog init" to
// write the built-in configuration and "clog check" to validate one. Its
// optional "flags" mapping supplies flag defaults; command-line flags
// override them.
//
// # Logging Options
//
// Diagnostics are written to standard error, never mixed with rendered lines:
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (rfc3339, kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
