// Package config loads the amountfmt configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aaroncarlucci/amount"
	"github.com/aaroncarlucci/amount/display"
)

// Config holds the defaults applied to every formatted amount.
type Config struct {
	Unit        amount.Unit `yaml:"unit"`
	Size        Size        `yaml:"size,omitempty"`
	Unconfirmed bool        `yaml:"unconfirmed"`
	Plain       bool        `yaml:"plain"`
}

// Size wraps display.Size for YAML marshal/unmarshal by name (e.g. "p1", "h2").
type Size display.Size

// Size returns the wrapped display size.
func (s Size) Size() display.Size {
	return display.Size(s)
}

// MarshalYAML implements the [yaml.Marshaler] interface and encodes the size by name.
func (s Size) MarshalYAML() (interface{}, error) {
	return display.Size(s).String(), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// An empty name selects [display.P1Size].
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	if name == "" {
		*s = Size(display.P1Size)
		return nil
	}
	size, err := display.ParseSize(name)
	if err != nil {
		return err
	}
	*s = Size(size)
	return nil
}

// Default returns the configuration used when no file is present:
// confirmed BTC amounts in paragraph size.
func Default() Config {
	return Config{
		Unit: amount.BTC,
		Size: Size(display.P1Size),
	}
}

// Dir returns the directory holding the configuration file.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "amountfmt"), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration file at path.
// An empty path loads the default path, where a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil //nolint:nilerr // no config dir, use defaults
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of the default configuration.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configured unit and size are known.
func (c Config) Validate() error {
	if _, err := amount.ParseUnit(c.Unit.Code()); err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}
	if _, err := display.ParseSize(c.Size.Size().String()); err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
