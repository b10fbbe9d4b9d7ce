package pkg

// Sentinel errors for the clog package and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrFieldNotFound is returned when an operation needs a configuration field
// that is absent from the document. A field present with an empty value is
// not missing.
//
// Configuration is not validated when it is loaded, so this error surfaces at
// the first use of the field. It is wrapped with the dotted path of the field.
var ErrFieldNotFound = MakeErrorf("field not found")

// ErrUnknownName is returned when a category or verbosity name is not defined
// in the configuration.
//
// It is wrapped with the requested name and, when available, the closest
// known names.
var ErrUnknownName = MakeErrorf("unknown name")

// ErrReadConfig is returned when a configuration file cannot be read.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadConfig = MakeErrorf("failed to read configuration")

// ErrParseConfig is returned when a configuration document cannot be decoded.
var ErrParseConfig = MakeErrorf("configuration parse error")

// ErrEncodeConfig is returned when a configuration cannot be encoded.
var ErrEncodeConfig = MakeErrorf("configuration encode error")

// ErrInvalidConfig is returned by an explicit configuration check.
//
// It is wrapped with one error per problem found.
var ErrInvalidConfig = MakeErrorf("invalid configuration")

// ErrLineTooLong is returned when a header or divider line would exceed the
// maximum length.
var ErrLineTooLong = MakeErrorf("line too long")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to a copy of the receiver and returns the
// result. The receiver is never modified, so sentinels can be wrapped freely.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to a copy of the receiver and returns the
// result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain. This lets a wrapped sentinel match the sentinel itself.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if t[i] != e[i] {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
