// Package config loads analyzer settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the configurable identifier names. Empty fields mean the
// file did not set them; the caller applies defaults.
type Config struct {
	WrapName   string `yaml:"wrap-name"`
	UnwrapName string `yaml:"unwrap-name"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
