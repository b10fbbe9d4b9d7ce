package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/render"
)

// validate is created on first use of [Config.Validate].
var validate = sync.OnceValue(
	func() *validator.Validate {
		v := validator.New(validator.WithRequiredStructEnabled())

		err := v.RegisterValidation("verbosities", validateVerbosities)
		if err != nil {
			panic(err)
		}

		// Report field names using the document keys.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		return v
	},
)

// validateVerbosities reports whether every standard verbosity has a token.
func validateVerbosities(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(map[string]string)
	if !ok {
		return false
	}

	return !slices.ContainsFunc(Verbosities(), func(name string) bool {
		return m[name] == ""
	})
}

// Validate checks the whole configuration and reports every problem found,
// each wrapped in [pkg.ErrInvalidConfig].
//
// Loading a configuration never calls Validate.
func (c *Config) Validate() error {
	if c == nil {
		return pkg.ErrInvalidConfig.Wrapf("no configuration")
	}

	var problems []error

	var verrs validator.ValidationErrors
	if err := validate().Struct(c); errors.As(err, &verrs) {
		for _, e := range verrs {
			problems = append(problems, fmt.Errorf("%s: %s", fieldPath(e), message(e)))
		}
	} else if err != nil {
		return pkg.ErrInvalidConfig.Wrap(err)
	}

	if c.Settings.Format != nil {
		for _, name := range UnknownTokens(*c.Settings.Format) {
			problems = append(problems,
				fmt.Errorf("settings.format: unknown placeholder %s%s%s",
					render.StartTag, name, render.EndTag))
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return pkg.ErrInvalidConfig.Wrap(problems...)
}

// UnknownTokens returns the placeholders in format that are never
// substituted when rendering a log line.
func UnknownTokens(format string) []string {
	known := []string{
		render.TokenTimestamp,
		render.TokenCategory,
		render.TokenVerbosity,
		render.TokenMessage,
	}

	var unknown []string

	for _, name := range render.Tokens(format) {
		if !slices.Contains(known, name) {
			unknown = append(unknown, name)
		}
	}

	return unknown
}

// fieldPath returns the dotted document path of the failing field, without
// the root struct name.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "gt":
		return "must be greater than " + e.Param()
	case "verbosities":
		return "must define " + strings.Join(Verbosities(), ", ")
	default:
		return "failed " + e.Tag() + " validation"
	}
}
