// Package config handles cccards configuration loading.
// Configuration is explicit and threaded through all components; nothing
// reads ambient global state.
package config

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	cerrors "github.com/codeclub/cccards/pkg/errors"
	"github.com/codeclub/cccards/pkg/render"
)

// Config is the root configuration structure for one run.
type Config struct {
	// Output is the PDF file path to write.
	Output string `yaml:"output"`

	// Wildcards is the number of wildcard cards to add to the deck.
	Wildcards int `yaml:"wildcards"`

	// Delimiter is the CSV field delimiter, exactly one character.
	Delimiter string `yaml:"delimiter"`

	// Render holds the page geometry and typography settings.
	Render render.Config `yaml:"render"`
}

// Default returns the default configuration: 5 wildcards, comma-delimited
// input, cards.pdf output.
func Default() *Config {
	return &Config{
		Output:    "cards.pdf",
		Wildcards: 5,
		Delimiter: ",",
		Render:    render.DefaultConfig(),
	}
}

// Validate checks all configuration values, failing with an
// INVALID_ARGUMENT-class error on the first violation.
func (c *Config) Validate() error {
	if c.Output == "" {
		return cerrors.ValidationError(cerrors.ErrInvalidArgument, "output path must not be empty")
	}
	if c.Wildcards < 0 {
		return cerrors.ValidationErrorf(cerrors.ErrInvalidArgument,
			"wildcard count must be >= 0, got %d", c.Wildcards).
			WithContext("flag", "--wildcards")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return cerrors.ValidationErrorf(cerrors.ErrInvalidArgument,
			"delimiter must be exactly one character, got %q", c.Delimiter).
			WithContext("flag", "--delimiter")
	}
	switch d := c.DelimiterRune(); d {
	case '\r', '\n', '"':
		return cerrors.ValidationErrorf(cerrors.ErrInvalidArgument,
			"%q cannot be used as a CSV delimiter", string(d)).
			WithContext("flag", "--delimiter")
	}
	return c.Render.Validate()
}

// DelimiterRune returns the delimiter as a rune for the CSV reader.
// Call Validate first; an invalid delimiter yields its first rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Load loads configuration from a file. Values absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.WrapConfig(err, cerrors.ErrConfigNotFound, "config file not found").
				WithContext("path", path).
				WithSuggestion("Run with --init-config to create a default config file")
		}
		return nil, cerrors.WrapConfig(err, cerrors.ErrConfigReadFailed, "cannot read config file").
			WithContext("path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, cerrors.WrapConfig(err, cerrors.ErrConfigParseFailed, "cannot parse config file").
			WithContext("path", path).
			WithSuggestion("Check the YAML syntax against a config created by --init-config")
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default config if
// no path is given or the default-path file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return cerrors.WrapConfig(err, cerrors.ErrConfigWriteFailed, "cannot create config directory").
			WithContext("path", dir)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return cerrors.WrapConfig(err, cerrors.ErrConfigWriteFailed, "cannot marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return cerrors.WrapConfig(err, cerrors.ErrConfigWriteFailed, "cannot write config file").
			WithContext("path", path)
	}
	return nil
}

// DefaultConfigPath returns the default config file path, looked up in the
// current working directory.
func DefaultConfigPath() string {
	return "cccards.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}
	return Default().Save(path)
}
