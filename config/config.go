package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/render"
)

// Standard verbosity names.
const (
	Display = "display"
	Verbose = "verbose"
	Warning = "warning"
	Error   = "error"
)

// Verbosities returns the standard verbosity names in increasing severity.
func Verbosities() []string {
	return []string{Display, Verbose, Warning, Error}
}

// maxSuggestions is the maximum number of names suggested for a misspelled
// category or verbosity.
const maxSuggestions = 3

// Config is the configuration record. It is not modified after loading.
type Config struct {
	Categories  map[string]string `json:"categories"      toml:"categories"      validate:"dive,required" yaml:"categories"`
	Verbosities map[string]string `json:"verbosities"     toml:"verbosities"     validate:"verbosities"   yaml:"verbosities"`
	Flags       map[string]any    `json:"flags,omitempty" toml:"flags,omitempty" validate:"-"             yaml:"flags,omitempty"`
	Settings    Settings          `json:"settings"        toml:"settings"                                 yaml:"settings"`
}

// Settings holds the format template and cosmetics.
//
// Scalar settings are pointers so that a key absent from the document can be
// told apart from one set to its zero value.
type Settings struct {
	Format    *string   `json:"format,omitempty"    toml:"format,omitempty"    validate:"required,min=1" yaml:"format,omitempty"`
	Cosmetics Cosmetics `json:"cosmetics"           toml:"cosmetics"                                     yaml:"cosmetics"`
}

// Cosmetics holds the settings of header and divider lines.
type Cosmetics struct {
	Header  Cosmetic `json:"header"  toml:"header"  yaml:"header"`
	Divider Cosmetic `json:"divider" toml:"divider" yaml:"divider"`
}

// Cosmetic describes a line made of a repeated character.
type Cosmetic struct {
	Character *string `json:"character,omitempty" toml:"character,omitempty" validate:"required,min=1" yaml:"character,omitempty"`
	Width     *int    `json:"width,omitempty"     toml:"width,omitempty"     validate:"required,gt=0"  yaml:"width,omitempty"`
}

// MakeCosmetic returns a [Cosmetic] with both settings present.
func MakeCosmetic(character string, width int) Cosmetic {
	return Cosmetic{Character: Ref(character), Width: Ref(width)}
}

// Ref returns a pointer to a copy of v, for setting optional fields.
func Ref[T any](v T) *T {
	return &v
}

// Default returns a new copy of the built-in configuration.
func Default() *Config {
	return &Config{
		Categories: map[string]string{
			"general": "GENERAL",
			"system":  "SYSTEM",
			"network": "NETWORK",
			"storage": "STORAGE",
			"user":    "USER",
		},
		Verbosities: map[string]string{
			Display: "DISPLAY",
			Verbose: "VERBOSE",
			Warning: "WARNING",
			Error:   "ERROR",
		},
		Settings: Settings{
			Format: Ref(render.DefaultFormat),
			Cosmetics: Cosmetics{
				Header:  MakeCosmetic("=", 80),
				Divider: MakeCosmetic("-", 80),
			},
		},
	}
}

// Format returns the default format template.
func (c *Config) Format() (string, error) {
	if c == nil {
		return required(nil, "settings.format")
	}

	return required(c.Settings.Format, "settings.format")
}

// Category returns the token of the named category.
func (c *Config) Category(name string) (string, error) {
	if c == nil {
		return lookup(nil, "categories", name)
	}

	return lookup(c.Categories, "categories", name)
}

// Verbosity returns the token of the named verbosity.
func (c *Config) Verbosity(name string) (string, error) {
	if c == nil {
		return lookup(nil, "verbosities", name)
	}

	return lookup(c.Verbosities, "verbosities", name)
}

// ResolveCategory returns the token for arg, which may be a category name or
// a category token.
func (c *Config) ResolveCategory(arg string) (string, error) {
	if c == nil {
		return resolve(nil, "category", arg)
	}

	return resolve(c.Categories, "category", arg)
}

// ResolveVerbosity returns the token for arg, which may be a verbosity name
// or a verbosity token.
func (c *Config) ResolveVerbosity(arg string) (string, error) {
	if c == nil {
		return resolve(nil, "verbosity", arg)
	}

	return resolve(c.Verbosities, "verbosity", arg)
}

// HeaderCharacter returns the default character of header lines.
func (c *Config) HeaderCharacter() (string, error) {
	return required(c.cosmetics().Header.Character, "settings.cosmetics.header.character")
}

// HeaderWidth returns the default width of header lines.
func (c *Config) HeaderWidth() (int, error) {
	return nonNegative(c.cosmetics().Header.Width, "settings.cosmetics.header.width")
}

// DividerCharacter returns the default character of divider lines.
func (c *Config) DividerCharacter() (string, error) {
	return required(c.cosmetics().Divider.Character, "settings.cosmetics.divider.character")
}

// DividerWidth returns the default width of divider lines.
func (c *Config) DividerWidth() (int, error) {
	return nonNegative(c.cosmetics().Divider.Width, "settings.cosmetics.divider.width")
}

func (c *Config) cosmetics() Cosmetics {
	if c == nil {
		return Cosmetics{}
	}

	return c.Settings.Cosmetics
}

func required(value *string, path string) (string, error) {
	if value == nil {
		return "", pkg.ErrFieldNotFound.Wrapf("%s", path)
	}

	return *value, nil
}

// nonNegative reports a missing width as not found and a negative one as
// invalid. A zero width is an empty line.
func nonNegative(value *int, path string) (int, error) {
	switch {
	case value == nil:
		return 0, pkg.ErrFieldNotFound.Wrapf("%s", path)
	case *value < 0:
		return 0, pkg.ErrInvalidConfig.Wrapf("%s: negative width %d", path, *value)
	}

	return *value, nil
}

func lookup(m map[string]string, section, name string) (string, error) {
	if token, ok := m[name]; ok {
		return token, nil
	}

	return "", pkg.ErrFieldNotFound.Wrap(notFound(m, section+"."+name, name))
}

func resolve(m map[string]string, kind, arg string) (string, error) {
	if token, ok := m[arg]; ok {
		return token, nil
	}

	for token := range maps.Values(m) {
		if token != "" && token == arg {
			return token, nil
		}
	}

	return "", pkg.ErrUnknownName.Wrap(notFound(m, kind+" "+arg, arg))
}

// notFound describes a missing name with suggestions from the known names.
func notFound(m map[string]string, what, name string) error {
	suggest := Suggest(slices.Sorted(maps.Keys(m)), name)
	if len(suggest) == 0 {
		return fmt.Errorf("%s", what)
	}

	return fmt.Errorf("%s (did you mean %s?)", what, strings.Join(suggest, ", "))
}

// Suggest returns up to three of the given names that best match name, best
// match first.
func Suggest(names []string, name string) []string {
	if name == "" || len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(name, names)

	suggest := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(suggest) == maxSuggestions {
			break
		}

		suggest = append(suggest, match.Str)
	}

	return suggest
}
