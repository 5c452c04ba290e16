package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds vlist configuration stored at ~/.vlist/config.
type Config struct {
	VisibleCount int    `yaml:"visible_count"`
	Overscan     int    `yaml:"overscan"`
	Direction    string `yaml:"direction"`
	DataFile     string `yaml:"data_file,omitempty"`
	DemoRows     int    `yaml:"demo_rows,omitempty"`
	MouseWheel   bool   `yaml:"mouse_wheel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		VisibleCount: 7,
		Overscan:     2,
		Direction:    "vertical",
		DemoRows:     10000,
		MouseWheel:   true,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vlist", "config")
}

// Load reads and validates the config file. Returns an error wrapping
// os.ErrNotExist when no config has been written yet.
func Load() (*Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads the config file, falling back to defaults when the
// file does not exist. Parse and validation errors still surface.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			def := Default()
			return &def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.VisibleCount < 0 {
		return fmt.Errorf("config visible_count must not be negative: %d", c.VisibleCount)
	}
	if c.Overscan < 0 {
		return fmt.Errorf("config overscan must not be negative: %d", c.Overscan)
	}
	switch c.Direction {
	case "", "vertical", "horizontal":
	default:
		return fmt.Errorf("config direction must be vertical or horizontal: %q", c.Direction)
	}
	if c.DemoRows < 0 {
		return fmt.Errorf("config demo_rows must not be negative: %d", c.DemoRows)
	}
	return nil
}

// Save writes the config to disk, creating the directory as needed.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
