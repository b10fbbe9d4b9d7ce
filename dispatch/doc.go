// Package dispatch renders log lines for a configured set of categories and
// verbosities and routes them to an output.
//
// Two facades share one configuration:
//
//   - [Generator] returns rendered lines and performs no I/O. Only
//     [Generator.Verbose], [Generator.Warn] and [Generator.Error] color their
//     result, and only when [WithColor] is given.
//   - [Printer] passes rendered lines to a [Sink]. Without [WithSink], lines are
//     printed to the printer's writer and colored unless [WithColor] is false.
//     A custom sink always receives uncolored lines.
//
// [Printer.Header] and [Printer.Divider] print a line whose message is a
// repeated character, colored by verbosity. Header lines are only colored
// when printed to the default output; divider lines are colored for every
// sink.
//
// A configuration field that an operation needs but that is missing is
// reported by that operation as [pkg.ErrFieldNotFound]. Errors returned by a
// sink are returned unchanged.
package dispatch
