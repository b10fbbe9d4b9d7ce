// Package cmd implements the clog subcommands.
//
// Commands read their shared state (output, palette and configuration path)
// from the [context.Context] passed to Run. See [WithEnv] and [WithContext].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file.
	ConfigIdentifier = "config"
)
