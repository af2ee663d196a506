package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Script   string `yaml:"script"`   // txtar script; empty means the built-in initializer sequence
	Runs     int    `yaml:"runs"`     // each run gets a fresh module
	Parallel int    `yaml:"parallel"` // max concurrent runs
	Template string `yaml:"template"` // custom report templates (txtar)
	Color    string `yaml:"color"`    // auto, always, never
	Verbose  bool   `yaml:"verbose"`
}

var DefaultConfig = Config{
	Runs:     1,
	Parallel: 1,
	Color:    "auto",
}

// loadConfig reads a YAML config file on top of DefaultConfig. The result is
// validated by the caller once flags have been applied.
func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
