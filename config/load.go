package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
)

// FileName is the base name of the default configuration file.
const FileName = "config.yaml"

// DefaultPath returns the path of the default configuration file.
func DefaultPath() string {
	return filepath.Join(pkg.ConfigDir(), FileName)
}

// Encoding is the format of a configuration document.
type Encoding int

const (
	EncodingYAML Encoding = iota // yaml
	EncodingJSON                 // json
	EncodingTOML                 // toml
)

// String returns the lowercase name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// EncodingOf returns the encoding selected by the extension of path.
// Files ending in ".toml" are TOML, ".json" JSON, and anything else YAML.
func EncodingOf(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return EncodingTOML
	case ".json":
		return EncodingJSON
	default:
		return EncodingYAML
	}
}

// Load reads the configuration file at path, decoded as [EncodingOf] path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}
	defer file.Close()

	cfg, err := DecodeAs(file, EncodingOf(path))
	if err != nil {
		return nil, err
	}

	log.Debug("configuration loaded",
		slog.String("path", path),
		slog.Int("categories", len(cfg.Categories)),
		slog.Int("verbosities", len(cfg.Verbosities)),
	)

	return cfg, nil
}

// LoadOrDefault reads the configuration file at path, or returns [Default]
// if no file exists there.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("configuration not found, using defaults",
			slog.String("path", path),
		)

		return Default(), nil
	}

	return cfg, err
}

// Decode reads a YAML or JSON configuration document from r.
// An empty document decodes to an empty configuration.
func Decode(r io.Reader) (*Config, error) {
	return DecodeAs(r, EncodingYAML)
}

// DecodeAs reads a configuration document with the given encoding from r.
// JSON is decoded as YAML, of which it is a subset.
// An empty document decodes to an empty configuration.
func DecodeAs(r io.Reader, enc Encoding) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	cfg := new(Config)

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if enc == EncodingTOML {
		err = toml.Unmarshal(data, cfg)

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()

			return nil, pkg.ErrParseConfig.Wrapf("line %d, column %d: %w", row, col, err)
		}
	} else {
		err = yaml.Unmarshal(data, cfg)
	}

	if err != nil {
		return nil, pkg.ErrParseConfig.Wrap(err)
	}

	return cfg, nil
}

// Encode writes the configuration to w with the given encoding, indenting
// nested blocks by indent spaces.
func (c *Config) Encode(w io.Writer, enc Encoding, indent int) error {
	var (
		data []byte
		err  error
	)

	switch enc {
	case EncodingTOML:
		var buf bytes.Buffer

		te := toml.NewEncoder(&buf)
		te.SetIndentTables(true)
		te.SetIndentSymbol(strings.Repeat(" ", indent))

		err = te.Encode(c)
		data = buf.Bytes()

	case EncodingJSON:
		data, err = json.MarshalIndent(c, "", strings.Repeat(" ", indent))
		data = append(data, '\n')

	default:
		data, err = yaml.MarshalWithOptions(c,
			yaml.Indent(indent), yaml.IndentSequence(true))
	}

	if err != nil {
		return pkg.ErrEncodeConfig.Wrap(err)
	}

	_, err = w.Write(data)
	if err != nil {
		return pkg.ErrEncodeConfig.Wrap(err)
	}

	return nil
}
