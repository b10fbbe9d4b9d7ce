// Package render substitutes log event values into `<<token>>` templates.
//
// # Templates
//
// A format template is plain text containing any of the placeholders
// <<timestamp>>, <<category>>, <<verbosity>> and <<message>>:
//
//	[<<timestamp>>] <<category>> (<<verbosity>>): <<message>>
//
// The timestamp itself is produced from [TimeFormat], which uses the
// placeholders <<year>>, <<month>>, <<day>>, <<hours>>, <<minutes>> and
// <<seconds>>. Values are substituted as raw decimal numbers without zero
// padding, and <<month>> is zero-based (January is 0). Existing consumers of
// the log format depend on both properties.
//
// # Substitution Order
//
// [Message] replaces every occurrence of each placeholder, one placeholder at
// a time, in the order timestamp, message, category, verbosity. Text inserted
// by an earlier pass is visible to later passes, so a message containing the
// text <<category>> is rendered with the category value in its place.
// Placeholders without a value are left in the output verbatim.
//
// # Timestamps
//
// Without a time option, [Message] uses the current time, read once per call.
// [WithTime] with the zero [time.Time] (or [WithoutTime]) renders an empty
// timestamp instead.
package render
