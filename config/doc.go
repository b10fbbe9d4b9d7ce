// Package config defines the configuration record shared by the renderer
// facades.
//
// A configuration maps category and verbosity names to the tokens written into
// log lines, and holds the default format template and the cosmetic settings
// of header and divider lines:
//
//	categories:
//	  network: NETWORK
//	verbosities:
//	  display: DISPLAY
//	  verbose: VERBOSE
//	  warning: WARNING
//	  error:   ERROR
//	settings:
//	  format: "[<<timestamp>>] <<category>> (<<verbosity>>): <<message>>"
//	  cosmetics:
//	    header:  { character: "=", width: 80 }
//	    divider: { character: "-", width: 80 }
//
// Documents are decoded as YAML, so JSON documents load as well. Files named
// with a ".toml" extension are decoded as TOML (see [EncodingOf]).
//
// Loading never validates. Accessors such as [Config.Format] report
// [pkg.ErrFieldNotFound] when the value they need is missing, so a partial
// configuration works for every operation that does not touch the missing
// field. [Config.Validate] performs an explicit check of the whole record.
package config
