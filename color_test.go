package ngon

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

func TestHSVToRGBPrimaries(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want RGB
	}{
		{"red", 0, Red},
		{"yellow", 60, RGB{1, 1, 0}},
		{"green", 120, Green},
		{"cyan", 180, RGB{0, 1, 1}},
		{"blue", 240, Blue},
		{"magenta", 300, RGB{1, 0, 1}},
		{"wrapped red", 360, Red},
		{"negative wrap", -120, Blue},
		{"large wrap", 720 + 120, Green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVToRGB(tt.hue, 1, 1)
			if !rgbNear(got, tt.want) {
				t.Errorf("HSVToRGB(%v, 1, 1) = %v, want %v", tt.hue, got, tt.want)
			}
		})
	}
}

func TestHSVToRGBMatchesColorful(t *testing.T) {
	for _, sv := range [][2]float64{{1, 1}, {0.5, 1}, {1, 0.5}, {0.3, 0.8}} {
		for h := 0.0; h < 360; h += 7.5 {
			got := HSVToRGB(h, sv[0], sv[1])
			c := colorful.Hsv(h, sv[0], sv[1])
			want := RGB{float32(c.R), float32(c.G), float32(c.B)}
			if !rgbNear(got, want) {
				t.Errorf("HSVToRGB(%v, %v, %v) = %v, colorful = %v", h, sv[0], sv[1], got, want)
			}
		}
	}
}

func TestHSVToRGBGray(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1} {
		got := HSVToRGB(200, 0, v)
		want := RGB{float32(v), float32(v), float32(v)}
		if !rgbNear(got, want) {
			t.Errorf("HSVToRGB(200, 0, %v) = %v, want %v", v, got, want)
		}
	}
}

func TestHSVToRGBClampsInputs(t *testing.T) {
	if got := HSVToRGB(0, 2, 5); !rgbNear(got, Red) {
		t.Errorf("HSVToRGB(0, 2, 5) = %v, want red", got)
	}
	if got := HSVToRGB(0, -1, math.NaN()); !rgbNear(got, Black) {
		t.Errorf("HSVToRGB(0, -1, NaN) = %v, want black", got)
	}
}

func TestHSVToRGBRange(t *testing.T) {
	for h := -360.0; h <= 720; h += 0.5 {
		c := HSVToRGB(h, 1, 1)
		for _, ch := range []float32{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("HSVToRGB(%v) = %v out of [0,1]", h, c)
			}
		}
	}
}

func TestHueColorPeriodic(t *testing.T) {
	for _, n := range []int{3, 6, 7, 100, MaxSides} {
		a, b := HueColor(0, n), HueColor(n, n)
		if !rgbNear(a, b) {
			t.Errorf("HueColor(0, %d) = %v, HueColor(%d, %d) = %v", n, a, n, n, b)
		}
		if h := Hue(n, n); h != 0 {
			t.Errorf("Hue(%d, %d) = %v, want 0", n, n, h)
		}
	}
}

func TestHueEvenSweep(t *testing.T) {
	n := 12
	for i := 0; i < n; i++ {
		if got, want := Hue(i, n), 30*float64(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("Hue(%d, %d) = %v, want %v", i, n, got, want)
		}
	}
	if got := Hue(-1, n); math.Abs(got-330) > 1e-9 {
		t.Errorf("Hue(-1, %d) = %v, want 330", n, got)
	}
}

func TestHueColorDegenerate(t *testing.T) {
	if got := HueColor(0, 0); got != White {
		t.Errorf("HueColor(0, 0) = %v, want white", got)
	}
	if got := Hue(3, 0); got != 0 {
		t.Errorf("Hue(3, 0) = %v, want 0", got)
	}
}

func TestRGBConversions(t *testing.T) {
	if got := Red.NRGBA(); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("Red.NRGBA() = %v", got)
	}
	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = %d %d %d %d", r, g, b, a)
	}
	if got := FromColor(color.NRGBA{0, 255, 0, 255}); !rgbNear(got, Green) {
		t.Errorf("FromColor(green) = %v", got)
	}
	if got := (RGB{2, -1, 0.5}).NRGBA(); got != (color.NRGBA{255, 0, 128, 255}) {
		t.Errorf("out-of-range NRGBA = %v", got)
	}
}
