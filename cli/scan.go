package cli

import (
	"slices"
	"strings"
)

// flagArg is a long flag found on the command line before parsing.
type flagArg struct {
	name     string // without leading dashes
	value    string
	assigned bool // value was given with "="
}

// scanFlags returns the flags in args whose names satisfy match, stopping at
// the first "--". A flag given without "=" takes the following argument as
// its value when takesValue reports true for it and that argument is not
// itself a flag.
func scanFlags(
	args []string,
	match func(name string) bool,
	takesValue func(name string) bool,
) []flagArg {
	var found []flagArg

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if !strings.HasPrefix(arg, "--") {
			continue
		}

		var f flagArg

		f.name, f.value, f.assigned = strings.Cut(arg[2:], "=")
		if !match(f.name) {
			continue
		}

		if !f.assigned && takesValue(f.name) &&
			i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			f.value = args[i]
		}

		found = append(found, f)
	}

	return found
}

// scanConfig returns the last value given to the --config flag in args, or
// def if there is none. The short form -c is recognized too.
func scanConfig(args []string, def string) string {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--":
			return def

		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				i++
				def = args[i]
			}

		case strings.HasPrefix(arg, "--config="):
			def = strings.TrimPrefix(arg, "--config=")

		case strings.HasPrefix(arg, "-c") && !strings.HasPrefix(arg, "--"):
			def = strings.TrimPrefix(strings.TrimPrefix(arg, "-c"), "=")
		}
	}

	return def
}

// joinEnum returns the names as a kong enum list.
func joinEnum(names []string) string {
	return strings.Join(slices.Compact(names), ",")
}
