package ngon

import (
	"image/color"
	"math"
)

// RGB is an opaque color with each channel in the range [0, 1].
// The float32 channels match the vertex layout uploaded to the GPU.
type RGB struct {
	R, G, B float32
}

// Common colors.
var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}
)

// RGBA implements color.Color so an RGB can be handed to image and
// drawing APIs directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(clampUnit(float64(c.R)) * 0xffff),
		uint32(clampUnit(float64(c.G)) * 0xffff),
		uint32(clampUnit(float64(c.B)) * 0xffff),
		0xffff
}

// NRGBA converts to an 8-bit color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clampUnit(float64(c.R)) * 255)),
		G: uint8(math.Round(clampUnit(float64(c.G)) * 255)),
		B: uint8(math.Round(clampUnit(float64(c.B)) * 255)),
		A: 255,
	}
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float32(r) / 0xffff,
		G: float32(g) / 0xffff,
		B: float32(b) / 0xffff,
	}
}

// HSVToRGB converts a hue in degrees, saturation and value to RGB using
// the six-sector formula. Hue is wrapped into [0, 360); saturation and
// value are clamped to [0, 1].
func HSVToRGB(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampUnit(s)
	v = clampUnit(v)

	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{R: float32(r + m), G: float32(g + m), B: float32(b + m)}
}

// Hue returns the hue in degrees for perimeter vertex i of n.
// The result is in [0, 360), so Hue(0, n) == Hue(n, n).
func Hue(i, n int) float64 {
	if n < 1 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return 360 * float64(i) / float64(n)
}

// HueColor returns the fully saturated color for perimeter vertex i of n.
// A non-positive n yields white.
func HueColor(i, n int) RGB {
	if n < 1 {
		return White
	}
	return HSVToRGB(Hue(i, n), 1, 1)
}

func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
