// Package config handles the HTTP server settings. The model itself has
// no configuration: weights, bias, and feature bounds are compiled in.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// PortDefault is used when no config file or flag overrides it.
	PortDefault = 8080

	fileMode = 0600
)

// Config represents the server config object.
type Config struct {
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
	Level string `yaml:"level,omitempty"`
}

// Default returns the config used in the absence of a config file.
func Default() *Config {
	return &Config{
		Port:  PortDefault,
		Level: "info",
	}
}

// Read loads a config file, applying defaults for absent fields.
func Read(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if c.Port <= 0 {
		c.Port = PortDefault
	}
	if c.Level == "" {
		c.Level = "info"
	}
	return c, nil
}

// Save writes the config to path.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}
