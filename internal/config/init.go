package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// SampleConfig is the default config.yaml written by Init.
const SampleConfig = `# keymap-tui configuration

# Path to your keymap (relative to this directory) or an http(s) URL, e.g.
# https://raw.githubusercontent.com/you/zmk-config/main/config/cradio.keymap
keymap: cradio.keymap

# Physical layout used to place keys. Known: ferris
layout: ferris

# Optional accent color per layer (ANSI number or hex).
tints:
  BASE: "12"
  LOWER: "10"
  RAISE: "13"
  ADJUST: "11"

# Show the raw binding under each key.
show_raw: false
`

// SampleKeymap is the keymap written next to the sample config by Init.
//
//go:embed sample.keymap
var SampleKeymap string

// Init creates the .keymap-tui directory with a sample config and keymap.
// It returns the directory path created. Existing files are left alone.
func Init() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return dir, InitDir(dir)
}

// InitDir writes the sample files into dir, creating it if needed.
func InitDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := writeIfNotExists(filepath.Join(dir, "config.yaml"), SampleConfig); err != nil {
		return err
	}
	return writeIfNotExists(filepath.Join(dir, "cradio.keymap"), SampleKeymap)
}

// DirExists returns true if the .keymap-tui config directory exists.
func DirExists() bool {
	dir, err := DefaultConfigDir()
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func writeIfNotExists(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // already exists, don't overwrite
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
