package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ngon"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Sides != 6 {
		t.Errorf("default sides = %d, want 6", cfg.Sides)
	}
	if cfg.Backend != BackendGoGPU {
		t.Errorf("default backend = %q", cfg.Backend)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngon.yml")
	data := []byte(`
sides: 8
max_sides: 32
radius: 0.5
rotation_degrees: 90
background: navy
backend: ebiten
window:
  title: Octagon
  width: 640
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Sides != 8 || cfg.MaxSides != 32 || cfg.Radius != 0.5 || cfg.RotationDegrees != 90 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.Backend != BackendEbiten {
		t.Errorf("backend = %q, want ebiten", cfg.Backend)
	}
	// Unset nested fields keep their defaults.
	if cfg.Window.Title != "Octagon" || cfg.Window.Width != 640 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if got := cfg.BackgroundColor(); got != (ngon.RGB{R: 0, G: 0, B: 128.0 / 255}) {
		t.Errorf("background = %v, want navy", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg := Default()
	if err := Parse(nil, &cfg); err != nil {
		t.Errorf("Parse(nil) = %v", err)
	}
}

func TestParseUnknownField(t *testing.T) {
	cfg := Default()
	if err := Parse([]byte("colour: red\n"), &cfg); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"sides below floor", func(c *Config) { c.Sides = 2 }},
		{"sides above cap", func(c *Config) { c.MaxSides = 10; c.Sides = 11 }},
		{"max sides above limit", func(c *Config) { c.MaxSides = ngon.MaxSides + 1 }},
		{"max sides below floor", func(c *Config) { c.MaxSides = 2 }},
		{"zero radius", func(c *Config) { c.Radius = 0 }},
		{"nan radius", func(c *Config) { c.Radius = math.NaN() }},
		{"inf rotation", func(c *Config) { c.RotationDegrees = math.Inf(-1) }},
		{"bad color", func(c *Config) { c.Background = "not-a-color" }},
		{"bad backend", func(c *Config) { c.Backend = "opengl" }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want ngon.RGB
	}{
		{"white", ngon.White},
		{"Black", ngon.Black},
		{" red ", ngon.Red},
		{"#00ff00", ngon.Green},
		{"#00F", ngon.Blue},
		{"#336699", ngon.RGB{R: 0x33 / 255.0, G: 0x66 / 255.0, B: 0x99 / 255.0}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "rainbow", "#1234567"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidConfig", bad, err)
		}
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Radius = 0.5
	cfg.RotationDegrees = 90
	m := ngon.Generate(4, cfg.Options()...)
	first := m.Perimeter()[0]
	if math.Abs(float64(first.Position[0])) > 1e-6 || math.Abs(float64(first.Position[1])-0.5) > 1e-6 {
		t.Errorf("first vertex = %v, want (0, 0.5)", first.Position)
	}
}
