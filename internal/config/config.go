// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/addressbook/internal/contact"
	"github.com/smileynet/addressbook/internal/logging"
)

// Config holds all addressbook configuration.
type Config struct {
	Phone  Phone  `yaml:"phone"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Phone holds phone validation settings.
type Phone struct {
	DigitsOnly bool `yaml:"digits_only"` // Reject non-digit characters
	StrictEdit bool `yaml:"strict_edit"` // Validate replacement values on edit
}

// Output holds listing settings.
type Output struct {
	Format string `yaml:"format"` // "text" | "yaml"
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Phone: Phone{
			DigitsOnly: false,
			StrictEdit: false,
		},
		Output: Output{
			Format: FormatText,
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
		// valid
	default:
		return fmt.Errorf("config: output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	if !slices.Contains(logging.Levels, c.Log.Level) {
		return fmt.Errorf("config: log.level must be one of %v, got %q", logging.Levels, c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ADDRESSBOOK_DIGITS_ONLY, ADDRESSBOOK_STRICT_EDIT,
// ADDRESSBOOK_OUTPUT_FORMAT, ADDRESSBOOK_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ADDRESSBOOK_DIGITS_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ADDRESSBOOK_DIGITS_ONLY %q: %w", v, err)
		}
		c.Phone.DigitsOnly = b
	}
	if v := os.Getenv("ADDRESSBOOK_STRICT_EDIT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ADDRESSBOOK_STRICT_EDIT %q: %w", v, err)
		}
		c.Phone.StrictEdit = b
	}
	if v := os.Getenv("ADDRESSBOOK_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("ADDRESSBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Rules returns the phone validation policy described by the config.
func (c *Config) Rules() contact.Rules {
	return contact.Rules{DigitsOnly: c.Phone.DigitsOnly}
}

// RecordOptions returns the contact.Record options described by the config.
func (c *Config) RecordOptions() []contact.Option {
	opts := []contact.Option{contact.WithRules(c.Rules())}
	if c.Phone.StrictEdit {
		opts = append(opts, contact.WithStrictEdit())
	}
	return opts
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Phone  *rawPhone  `yaml:"phone"`
	Output *rawOutput `yaml:"output"`
	Log    *rawLog    `yaml:"log"`
}

type rawPhone struct {
	DigitsOnly *bool `yaml:"digits_only"`
	StrictEdit *bool `yaml:"strict_edit"`
}

type rawOutput struct {
	Format *string `yaml:"format"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Phone != nil {
		if layer.Phone.DigitsOnly != nil {
			c.Phone.DigitsOnly = *layer.Phone.DigitsOnly
		}
		if layer.Phone.StrictEdit != nil {
			c.Phone.StrictEdit = *layer.Phone.StrictEdit
		}
	}
	if layer.Output != nil {
		if layer.Output.Format != nil {
			c.Output.Format = *layer.Output.Format
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
