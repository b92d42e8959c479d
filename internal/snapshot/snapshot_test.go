package snapshot

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ngon"
)

var testBackground = ngon.RGB{R: 0.1, G: 0.1, B: 0.1}

func renderHexagon(t *testing.T, w, h int) *Image {
	t.Helper()
	img, err := Render(ngon.Generate(6), Options{Width: w, Height: h, Background: testBackground})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	t.Cleanup(func() { _ = img.Close() })
	return img
}

func TestRenderCenterIsWhite(t *testing.T) {
	img := renderHexagon(t, 101, 101)
	c := img.Pixel(50, 50)
	if c.R < 0.95 || c.G < 0.95 || c.B < 0.95 {
		t.Errorf("center pixel = %+v, want near white", c)
	}
}

func TestRenderRightOfCenterIsRed(t *testing.T) {
	img := renderHexagon(t, 101, 101)
	c := img.Pixel(80, 50)
	if c.R < 0.9 {
		t.Errorf("pixel right of center R = %v, want near 1", c.R)
	}
	if c.R <= c.G || c.R <= c.B {
		t.Errorf("pixel right of center = %+v, want red dominant", c)
	}
}

func TestRenderCornersAreBackground(t *testing.T) {
	img := renderHexagon(t, 64, 48)
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}} {
		c := img.Pixel(p[0], p[1])
		if c.R > 0.11 || c.G > 0.11 || c.B > 0.11 || c.A != 1 {
			t.Errorf("corner %v = %+v, want background", p, c)
		}
	}
}

func TestRenderAspectKeepsPolygonRound(t *testing.T) {
	// On a wide image the horizontal extent shrinks to match the vertical.
	img := renderHexagon(t, 200, 100)
	// Vertex 0 lands at x = (0.7*0.5 + 1) / 2 * 200 = 135.
	if c := img.Pixel(140, 50); c.R > 0.11 {
		t.Errorf("pixel past the first vertex = %+v, want background", c)
	}
	if c := img.Pixel(130, 50); c.R < 0.9 {
		t.Errorf("pixel inside the first vertex = %+v, want red", c)
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		name string
		mesh ngon.Mesh
		opts Options
		want error
	}{
		{"zero width", ngon.Generate(3), Options{Width: 0, Height: 10}, ErrInvalidSize},
		{"negative height", ngon.Generate(3), Options{Width: 10, Height: -1}, ErrInvalidSize},
		{"too large", ngon.Generate(3), Options{Width: MaxDimension + 1, Height: 10}, ErrInvalidSize},
		{"empty mesh", ngon.Mesh{}, Options{Width: 10, Height: 10}, ErrEmptyMesh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.mesh, tt.opts); !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderBadIndex(t *testing.T) {
	m := ngon.Generate(3)
	m.Triangles[0][2] = 99
	if _, err := Render(m, Options{Width: 10, Height: 10}); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestRenderOutline(t *testing.T) {
	plain := renderHexagon(t, 120, 120)
	outlined, err := Render(ngon.Generate(6), Options{
		Width:        120,
		Height:       120,
		Background:   testBackground,
		Outline:      4,
		OutlineColor: ngon.Black,
	})
	if err != nil {
		t.Fatalf("Render with outline failed: %v", err)
	}
	defer outlined.Close()

	changed := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			if plain.Pixel(x, y) != outlined.Pixel(x, y) {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("outline did not change any pixels")
	}
	// The center is far from the perimeter.
	if plain.Pixel(60, 60) != outlined.Pixel(60, 60) {
		t.Error("outline touched the center pixel")
	}
}

func TestRenderCaptionMissingFont(t *testing.T) {
	_, err := Render(ngon.Generate(6), Options{
		Width:    32,
		Height:   32,
		Caption:  "6 sides",
		FontPath: filepath.Join(t.TempDir(), "missing.ttf"),
	})
	if err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestEncodePNG(t *testing.T) {
	img := renderHexagon(t, 40, 30)
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("decoded size = %dx%d, want 40x30", b.Dx(), b.Dy())
	}
	if img.Width() != 40 || img.Height() != 30 {
		t.Errorf("Width/Height = %d/%d, want 40/30", img.Width(), img.Height())
	}
}

func TestSavePNG(t *testing.T) {
	img := renderHexagon(t, 16, 16)
	path := filepath.Join(t.TempDir(), "ngon.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved PNG is empty")
	}

	if err := img.SavePNG(filepath.Join(t.TempDir(), "missing", "dir", "x.png")); err == nil {
		t.Error("expected error saving into a missing directory")
	}
}
