package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jbeckham/keymap-tui/internal/keymap"
)

const validConfig = `
keymap: cradio.keymap
layout: ferris
tints:
  BASE: "12"
  LOWER: "#FF5630"
show_raw: true
`

func TestLoadValidConfig(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", validConfig)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Keymap != "cradio.keymap" {
		t.Errorf("unexpected keymap: %s", cfg.Keymap)
	}
	if cfg.Layout != "ferris" {
		t.Errorf("unexpected layout: %s", cfg.Layout)
	}
	if cfg.Tints["LOWER"] != "#FF5630" {
		t.Errorf("unexpected LOWER tint: %s", cfg.Tints["LOWER"])
	}
	if !cfg.ShowRaw {
		t.Error("expected show_raw=true")
	}
}

func TestLoadDefaultsLayout(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "keymap: x.keymap\n")
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != DefaultLayout {
		t.Errorf("expected default layout %q, got %q", DefaultLayout, cfg.Layout)
	}
}

func TestLoadMissingKeymap(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "layout: ferris\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected validation error for missing keymap")
	}
}

func TestLoadUnknownLayout(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "keymap: x.keymap\nlayout: planck\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected validation error for unknown layout")
	}
}

func TestLoadBadYAML(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "keymap: [unclosed\n")
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  Config{Keymap: "cradio.keymap", Layout: "ferris"},
			wantErr: false,
		},
		{
			name:    "empty",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "empty tint",
			config:  Config{Keymap: "k", Layout: "ferris", Tints: map[string]string{"BASE": ""}},
			wantErr: true,
		},
		{
			name:    "valid with url",
			config:  Config{Keymap: "https://example.com/cradio.keymap", Layout: "ferris"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKeymapSource(t *testing.T) {
	dir := filepath.Join("/home", "me", ".keymap-tui")
	abs := filepath.Join(string(filepath.Separator), "etc", "cradio.keymap")
	tests := []struct {
		keymap string
		want   string
	}{
		{"cradio.keymap", filepath.Join(dir, "cradio.keymap")},
		{"../zmk/cradio.keymap", filepath.Join(dir, "..", "zmk", "cradio.keymap")},
		{abs, abs},
		{"https://example.com/cradio.keymap", "https://example.com/cradio.keymap"},
	}
	for _, tt := range tests {
		cfg := Config{Keymap: tt.keymap}
		if got := cfg.KeymapSource(dir); got != tt.want {
			t.Errorf("KeymapSource(%q) = %q, want %q", tt.keymap, got, tt.want)
		}
	}
}

func TestInitDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".keymap-tui")
	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}

	data, err := os.ReadFile(cfg.KeymapSource(dir))
	if err != nil {
		t.Fatalf("reading sample keymap: %v", err)
	}
	m := keymap.Parse(string(data))
	if m.Len() == 0 {
		t.Fatal("sample keymap has no layers")
	}
	for _, name := range m.Names() {
		keys, _ := m.Find(name)
		for _, tok := range keys {
			if _, err := keymap.Decode(tok); err != nil {
				t.Errorf("sample keymap %s: %v", name, err)
			}
		}
	}
}

func TestInitDirKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := "keymap: mine.keymap\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Errorf("config.yaml was overwritten: %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "cradio.keymap")); err != nil {
		t.Errorf("expected sample keymap to be written: %v", err)
	}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file %s: %v", name, err)
	}
	return path
}
