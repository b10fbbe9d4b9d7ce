package render

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// Placeholder delimiters.
const (
	StartTag = "<<"
	EndTag   = ">>"
)

// Placeholder names recognized in a format template.
const (
	TokenTimestamp = "timestamp"
	TokenCategory  = "category"
	TokenVerbosity = "verbosity"
	TokenMessage   = "message"
)

// Placeholder names recognized in [TimeFormat].
const (
	TokenYear    = "year"
	TokenMonth   = "month"
	TokenDay     = "day"
	TokenHours   = "hours"
	TokenMinutes = "minutes"
	TokenSeconds = "seconds"
)

// DefaultFormat is the outer template used when none is given.
const DefaultFormat = "[<<timestamp>>] <<category>> (<<verbosity>>): <<message>>"

// TimeFormat is the template used to render timestamps.
const TimeFormat = "<<year>>.<<month>>.<<day>>-<<hours>>:<<minutes>>:<<seconds>>"

// Message renders a log line from the given event values.
//
// See the package documentation for the substitution order and the handling
// of timestamps.
func Message(category, verbosity, message string, opts ...Option) string {
	o := makeOptions(opts...)

	t := o.time
	if !o.timed {
		t = o.now()
	}

	var stamp string
	if !t.IsZero() {
		stamp = Time(t)
	}

	s := Replace(o.format, TokenTimestamp, stamp)
	s = Replace(s, TokenMessage, message)
	s = Replace(s, TokenCategory, category)

	return Replace(s, TokenVerbosity, verbosity)
}

// Time renders t using [TimeFormat].
//
// The month is zero-based and no field is zero padded.
func Time(t time.Time) string {
	s := Replace(TimeFormat, TokenYear, strconv.Itoa(t.Year()))
	s = Replace(s, TokenMonth, strconv.Itoa(int(t.Month())-1))
	s = Replace(s, TokenDay, strconv.Itoa(t.Day()))
	s = Replace(s, TokenHours, strconv.Itoa(t.Hour()))
	s = Replace(s, TokenMinutes, strconv.Itoa(t.Minute()))

	return Replace(s, TokenSeconds, strconv.Itoa(t.Second()))
}

// Replace replaces every occurrence of the placeholder named token in
// template with value. All other placeholders are left unchanged.
func Replace(template, token, value string) string {
	if !strings.Contains(template, StartTag) {
		return template
	}

	tag := StartTag + token + EndTag

	return fasttemplate.ExecuteFuncString(template, StartTag, EndTag,
		func(w io.Writer, name string) (int, error) {
			if name == token {
				return io.WriteString(w, value)
			}

			// The scan pairs each start tag with the nearest end tag, so text
			// like "<<<<message>>" arrives here as "<<message". The only place
			// the placeholder can still hide is at the end of the span.
			return io.WriteString(w,
				strings.ReplaceAll(StartTag+name+EndTag, tag, value))
		},
	)
}

// Tokens returns the distinct placeholder names found in template, in order
// of first appearance.
func Tokens(template string) []string {
	var names []string

	for {
		i := strings.Index(template, StartTag)
		if i < 0 {
			return names
		}

		template = template[i+len(StartTag):]

		j := strings.Index(template, EndTag)
		if j < 0 {
			return names
		}

		name := template[:j]
		// Use the innermost start tag for spans like "<<<<message>>".
		if k := strings.LastIndex(name, StartTag); k >= 0 {
			name = name[k+len(StartTag):]
		}

		if !slices.Contains(names, name) {
			names = append(names, name)
		}

		template = template[j+len(EndTag):]
	}
}
