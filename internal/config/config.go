// Package config loads the demo configuration from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ngon"
)

// maxConfigSize bounds the config file read.
const maxConfigSize = 1 << 20

// Backend names.
const (
	BackendGoGPU  = "gogpu"
	BackendEbiten = "ebiten"
)

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Window holds the window settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config is the demo configuration.
type Config struct {
	// Sides is the starting side count.
	Sides int `yaml:"sides"`
	// MaxSides caps the side count; at most ngon.MaxSides.
	MaxSides int `yaml:"max_sides"`
	// Radius is the perimeter radius in normalized device units.
	Radius float64 `yaml:"radius"`
	// RotationDegrees offsets the first perimeter vertex counter-clockwise.
	RotationDegrees float64 `yaml:"rotation_degrees"`
	// Background is a color name ("black", "darkslategray") or "#rrggbb".
	Background string `yaml:"background"`
	// Backend selects the window backend: "gogpu" or "ebiten".
	Backend string `yaml:"backend"`
	Window  Window `yaml:"window"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sides:      ngon.DefaultSides,
		MaxSides:   ngon.MaxSides,
		Radius:     ngon.DefaultRadius,
		Background: "#1a1a1a",
		Backend:    BackendGoGPU,
		Window: Window{
			Title:  "N-gon",
			Width:  800,
			Height: 600,
		},
	}
}

// Load reads a YAML config file and overlays it on Default. An empty path
// returns Default. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	ngon.Logger().Debug("config: loaded", "path", path, "sides", cfg.Sides, "backend", cfg.Backend)
	return cfg, nil
}

// Parse decodes YAML data on top of cfg and validates the result.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	if c.MaxSides < ngon.MinSides || c.MaxSides > ngon.MaxSides {
		return fmt.Errorf("%w: max_sides=%d, want [%d, %d]", ErrInvalidConfig, c.MaxSides, ngon.MinSides, ngon.MaxSides)
	}
	if c.Sides < ngon.MinSides || c.Sides > c.MaxSides {
		return fmt.Errorf("%w: sides=%d, want [%d, %d]", ErrInvalidConfig, c.Sides, ngon.MinSides, c.MaxSides)
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("%w: radius=%v, want > 0", ErrInvalidConfig, c.Radius)
	}
	if math.IsNaN(c.RotationDegrees) || math.IsInf(c.RotationDegrees, 0) {
		return fmt.Errorf("%w: rotation_degrees=%v", ErrInvalidConfig, c.RotationDegrees)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	switch c.Backend {
	case BackendGoGPU, BackendEbiten:
	default:
		return fmt.Errorf("%w: backend=%q, want %q or %q", ErrInvalidConfig, c.Backend, BackendGoGPU, BackendEbiten)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// BackgroundColor returns the parsed background color. Call Validate first;
// an unparsable value yields black.
func (c Config) BackgroundColor() ngon.RGB {
	col, err := ParseColor(c.Background)
	if err != nil {
		return ngon.Black
	}
	return col
}

// Options returns the generator options described by the config.
func (c Config) Options() []ngon.Option {
	return []ngon.Option{
		ngon.WithRadius(float32(c.Radius)),
		ngon.WithRotation(c.RotationDegrees * math.Pi / 180),
	}
}

// ParseColor parses an SVG color name or a "#rgb" / "#rrggbb" hex value.
func ParseColor(s string) (ngon.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ngon.RGB{}, fmt.Errorf("%w: empty color", ErrInvalidConfig)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ngon.FromColor(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return ngon.RGB{}, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return ngon.RGB{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ngon.RGB{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidConfig, s)
	}
	return ngon.RGB{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}
