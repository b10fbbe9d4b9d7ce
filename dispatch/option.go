package dispatch

import (
	"time"

	"github.com/ardnew/clog/render"
)

// Option applies a configuration option to a single dispatch call.
// Each operation ignores the options it does not use.
type Option func(options) options

type options struct {
	now       func() time.Time
	sink      Sink
	time      time.Time
	format    string
	character string
	width     int
	timed     bool // time was given explicitly
	color     bool
	colorSet  bool // color was given explicitly
}

// apply applies multiple options to an options value.
func apply(o options, opts ...Option) options {
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

func makeOptions(opts ...Option) options {
	return apply(options{now: time.Now}, opts...)
}

// colored reports whether color was requested, or def if the caller did not
// say.
func (o options) colored(def bool) bool {
	if o.colorSet {
		return o.color
	}

	return def
}

// renderOptions returns the renderer options for a line in format.
func (o options) renderOptions(format string) []render.Option {
	opts := []render.Option{render.WithFormat(format), render.WithClock(o.now)}
	if o.timed {
		opts = append(opts, render.WithTime(o.time))
	}

	return opts
}

// WithTime returns an option that renders t as the timestamp.
// The zero [time.Time] renders an empty timestamp.
// Without this option the current time is used.
func WithTime(t time.Time) Option {
	return func(o options) options {
		o.time = t
		o.timed = true

		return o
	}
}

// WithoutTime returns an option that renders an empty timestamp.
func WithoutTime() Option {
	return WithTime(time.Time{})
}

// WithClock returns an option that sets the source of the current time.
// A nil clock selects [time.Now].
func WithClock(now func() time.Time) Option {
	return func(o options) options {
		if now == nil {
			now = time.Now
		}

		o.now = now

		return o
	}
}

// WithSink returns an option that sends the rendered line to sink instead of
// the printer's output. A nil sink selects the printer's output.
// The [Generator] ignores it.
func WithSink(sink Sink) Option {
	return func(o options) options {
		o.sink = sink

		return o
	}
}

// WithColor returns an option that requests or suppresses color.
// The [Generator] colors only when enable is true; the [Printer] colors unless
// enable is false. Header and divider lines ignore it.
func WithColor(enable bool) Option {
	return func(o options) options {
		o.color = enable
		o.colorSet = true

		return o
	}
}

// WithFormat returns an option that overrides the configured format of a
// header line. An empty format selects the configured one.
func WithFormat(format string) Option {
	return func(o options) options {
		o.format = format

		return o
	}
}

// WithWidth returns an option that sets how many times the character of a
// header or divider line is repeated. A non-positive width selects the
// configured one.
func WithWidth(width int) Option {
	return func(o options) options {
		o.width = width

		return o
	}
}

// WithCharacter returns an option that sets the text repeated in a header or
// divider line. An empty string selects the configured one.
func WithCharacter(character string) Option {
	return func(o options) options {
		o.character = character

		return o
	}
}
