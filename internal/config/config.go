// Package config handles loading and validating keymap-tui configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jbeckham/keymap-tui/internal/layout"
	"github.com/jbeckham/keymap-tui/internal/source"
)

// DefaultLayout is used when the config doesn't name a layout.
const DefaultLayout = "ferris"

// Config holds the application configuration.
type Config struct {
	// Keymap is a file path (relative paths resolve against the config
	// dir) or an http(s) URL.
	Keymap  string            `yaml:"keymap"`
	Layout  string            `yaml:"layout,omitempty"`
	Tints   map[string]string `yaml:"tints,omitempty"` // layer name -> lipgloss color
	ShowRaw bool              `yaml:"show_raw,omitempty"`
}

// DefaultConfigDir returns the .keymap-tui directory next to the executable.
func DefaultConfigDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("finding executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable symlinks: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ".keymap-tui"), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads and parses the config file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Layout == "" {
		cfg.Layout = DefaultLayout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required config fields are set.
func (c *Config) Validate() error {
	if c.Keymap == "" {
		return fmt.Errorf("keymap is required")
	}
	if _, err := layout.ByName(c.Layout); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	for name, color := range c.Tints {
		if name == "" {
			return fmt.Errorf("tints: layer name must not be empty")
		}
		if color == "" {
			return fmt.Errorf("tints.%s: color must not be empty", name)
		}
	}
	return nil
}

// KeymapSource returns where to load the keymap from. Relative file paths
// are resolved against configDir; URLs and absolute paths are returned
// as-is.
func (c *Config) KeymapSource(configDir string) string {
	if source.IsURL(c.Keymap) || filepath.IsAbs(c.Keymap) {
		return c.Keymap
	}
	return filepath.Join(configDir, c.Keymap)
}
