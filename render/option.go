package render

import "time"

// Option applies a configuration option to options.
type Option func(options) options

type options struct {
	now    func() time.Time
	format string
	time   time.Time
	timed  bool // time was given explicitly
}

// apply applies multiple options to an options value.
func apply(o options, opts ...Option) options {
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

func makeOptions(opts ...Option) options {
	return apply(options{now: time.Now, format: DefaultFormat}, opts...)
}

// WithTime returns an option that renders t as the timestamp.
// The zero [time.Time] renders an empty timestamp.
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

// WithFormat returns an option that sets the outer template.
// An empty format selects [DefaultFormat].
func WithFormat(format string) Option {
	return func(o options) options {
		if format == "" {
			format = DefaultFormat
		}

		o.format = format

		return o
	}
}

// WithClock returns an option that sets the source of the current time used
// when no timestamp is given. A nil clock selects [time.Now].
func WithClock(now func() time.Time) Option {
	return func(o options) options {
		if now == nil {
			now = time.Now
		}

		o.now = now

		return o
	}
}
