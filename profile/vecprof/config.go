package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMode     = errors.New("unknown profile mode")
	ErrUnknownWorkload = errors.New("unknown workload")
)

// Config describes one profiling run.
type Config struct {
	Rounds   int    `yaml:"rounds"`   // fresh vectors per run
	Iters    int    `yaml:"iters"`    // fill/drain cycles per vector
	Elements int    `yaml:"elements"` // elements per cycle
	Mode     string `yaml:"mode"`     // cpu, mem, allocs or none
	Path     string `yaml:"path"`     // directory receiving the profile
}

// DefaultConfig returns the settings used when neither a config file nor
// flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Rounds:   50,
		Iters:    1000,
		Elements: 1000,
		Mode:     "allocs",
		Path:     ".",
	}
}

// LoadConfig reads a YAML workload file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Rounds <= 0:
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	case c.Iters <= 0:
		return fmt.Errorf("iters must be positive, got %d", c.Iters)
	case c.Elements <= 0:
		return fmt.Errorf("elements must be positive, got %d", c.Elements)
	}
	if _, err := profileMode(c.Mode); err != nil {
		return err
	}
	return nil
}
