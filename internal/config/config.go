// Package config loads the panglib command line configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pangya-tools/panglib/format"
	"github.com/pangya-tools/panglib/locale"
	"gopkg.in/yaml.v3"
)

// Config represents the panglib configuration
type Config struct {
	Encoding Encoding `yaml:"encoding"`
	Bundle   Bundle   `yaml:"bundle"`
	Logging  Logging  `yaml:"logging"`
}

// Encoding controls how text codecs are chosen for asset files.
type Encoding struct {
	// Default forces one code page for every file. Empty means the code page
	// is derived from each file name.
	Default string `yaml:"default"`
	// Overrides maps a file base name (case-insensitive) to a code page name
	// or number, taking precedence over the file name rules.
	Overrides map[string]string `yaml:"overrides"`
}

// Bundle contains bundle writer defaults
type Bundle struct {
	Compression format.CompressionType `yaml:"compression"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Encoding: Encoding{
			Overrides: map[string]string{},
		},
		Bundle: Bundle{
			Compression: format.CompressionZstd,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load loads configuration from the specified path. Keys missing from the
// file keep their DefaultConfig values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every configured code page has a codec.
func (c *Config) Validate() error {
	if c.Encoding.Default != "" {
		if _, err := codecFor(c.Encoding.Default); err != nil {
			return fmt.Errorf("encoding.default: %w", err)
		}
	}
	for name, page := range c.Encoding.Overrides {
		if _, err := codecFor(page); err != nil {
			return fmt.Errorf("encoding.overrides[%s]: %w", name, err)
		}
	}

	return nil
}

// CodecFor returns the text codec for the file at path. An override for the
// file's base name wins over Default, which wins over the file name rules.
func (c *Config) CodecFor(path string) (*locale.Codec, error) {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	for name, page := range c.Encoding.Overrides {
		if strings.EqualFold(name, base) {
			return codecFor(page)
		}
	}
	if c.Encoding.Default != "" {
		return codecFor(c.Encoding.Default)
	}

	return locale.Resolve(path)
}

func codecFor(page string) (*locale.Codec, error) {
	cp, err := locale.ParseCodePage(page)
	if err != nil {
		return nil, err
	}

	return locale.ForCodePage(cp)
}
