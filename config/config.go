// Package config loads astgen CLI settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generator settings. Flags override file values; file
// values override the zero-value defaults.
type Config struct {
	// Output is the path the generated C++ is written to. Defaults to the
	// source path with a .hpp extension.
	Output string `yaml:"output"`
	// Namespace wraps the generated declarations when non-empty.
	Namespace string `yaml:"namespace"`
	// RunLog is the SQLite run history path. Empty disables the log.
	RunLog string `yaml:"runlog"`
	// Force regenerates even when the run log says the source is unchanged.
	Force bool `yaml:"force"`
}

// Load reads a config file. A missing file is not an error: it yields the
// zero-value config so the CLI works without any configuration.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
