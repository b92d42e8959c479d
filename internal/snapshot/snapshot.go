// Package snapshot renders an N-gon mesh to an image on the CPU.
//
// The fan is rasterized with barycentric color interpolation into a
// gg.Pixmap, matching what the GPU pipeline produces for the same mesh.
// A gg.Context over the same pixmap then adds the optional outline and
// caption and encodes the result as PNG.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ngon"
)

// ErrInvalidSize is returned when the requested image has no area.
var ErrInvalidSize = errors.New("snapshot: width and height must be positive")

// ErrEmptyMesh is returned when there is nothing to rasterize.
var ErrEmptyMesh = errors.New("snapshot: mesh has no triangles")

// MaxDimension limits either image side.
const MaxDimension = 8192

// DefaultFontSize is the caption size in points when Options.FontSize is zero.
const DefaultFontSize = 16

// Options configures a snapshot.
type Options struct {
	Width  int
	Height int

	// Background fills pixels outside the polygon.
	Background ngon.RGB

	// Outline strokes the polygon perimeter with OutlineColor when > 0.
	Outline      float64
	OutlineColor ngon.RGB

	// Caption is drawn in the bottom-left corner when FontPath names a
	// TrueType or OpenType file. Without a font the caption is skipped.
	Caption  string
	FontPath string
	FontSize float64
}

// Image is a rendered snapshot.
type Image struct {
	dc *gg.Context
	pm *gg.Pixmap
}

// Render rasterizes mesh into a new image.
func Render(mesh ngon.Mesh, opts Options) (*Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Width > MaxDimension || opts.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if len(mesh.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	pm := gg.NewPixmap(opts.Width, opts.Height)
	pm.Clear(toRGBA(opts.Background))

	r := newRasterizer(pm, opts.Width, opts.Height)
	for _, tri := range mesh.Triangles {
		if int(tri[0]) >= len(mesh.Vertices) || int(tri[1]) >= len(mesh.Vertices) || int(tri[2]) >= len(mesh.Vertices) {
			return nil, fmt.Errorf("snapshot: triangle %v references missing vertex", tri)
		}
		r.fill(mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]])
	}

	img := &Image{
		dc: gg.NewContext(opts.Width, opts.Height, gg.WithPixmap(pm)),
		pm: pm,
	}

	if opts.Outline > 0 {
		if err := img.strokePerimeter(r, mesh, opts); err != nil {
			_ = img.Close()
			return nil, err
		}
	}
	if opts.Caption != "" && opts.FontPath != "" {
		if err := img.drawCaption(opts); err != nil {
			_ = img.Close()
			return nil, err
		}
	}

	ngon.Logger().Debug("snapshot: rendered",
		"sides", mesh.Sides(), "width", opts.Width, "height", opts.Height)
	return img, nil
}

// Pixel returns the color at (x, y). Out-of-range coordinates return
// transparent black.
func (img *Image) Pixel(x, y int) gg.RGBA {
	return img.pm.GetPixel(x, y)
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.pm.Width() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.pm.Height() }

// EncodePNG writes the image as PNG to w.
func (img *Image) EncodePNG(w io.Writer) error {
	return img.dc.EncodePNG(w)
}

// SavePNG writes the image as PNG to path.
func (img *Image) SavePNG(path string) error {
	if err := img.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (img *Image) Close() error {
	return img.dc.Close()
}

func (img *Image) strokePerimeter(r *rasterizer, mesh ngon.Mesh, opts Options) error {
	perim := mesh.Perimeter()
	if len(perim) < 2 {
		return nil
	}
	c := opts.OutlineColor
	img.dc.SetRGB(float64(c.R), float64(c.G), float64(c.B))
	img.dc.SetLineWidth(opts.Outline)
	for i, v := range perim {
		x, y := r.toPixel(v)
		if i == 0 {
			img.dc.MoveTo(x, y)
		} else {
			img.dc.LineTo(x, y)
		}
	}
	img.dc.ClosePath()
	if err := img.dc.Stroke(); err != nil {
		return fmt.Errorf("snapshot: outline: %w", err)
	}
	return nil
}

func (img *Image) drawCaption(opts Options) error {
	source, err := text.NewFontSourceFromFile(opts.FontPath)
	if err != nil {
		return fmt.Errorf("snapshot: load font: %w", err)
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	img.dc.SetFont(source.Face(size))
	img.dc.SetRGB(1, 1, 1)
	margin := size / 2
	img.dc.DrawString(opts.Caption, margin, float64(opts.Height)-margin)
	return nil
}

// rasterizer maps normalized device coordinates onto the pixmap and fills
// triangles with interpolated vertex colors.
type rasterizer struct {
	pm     *gg.Pixmap
	w, h   float64
	sx, sy float64
}

func newRasterizer(pm *gg.Pixmap, width, height int) *rasterizer {
	sx, sy := ngon.AspectScale(width, height)
	return &rasterizer{
		pm: pm,
		w:  float64(width),
		h:  float64(height),
		sx: float64(sx),
		sy: float64(sy),
	}
}

// toPixel maps a vertex to pixel space. NDC +Y is up; pixel +Y is down.
func (r *rasterizer) toPixel(v ngon.Vertex) (x, y float64) {
	nx := float64(v.Position[0]) * r.sx
	ny := float64(v.Position[1]) * r.sy
	return (nx + 1) / 2 * r.w, (1 - ny) / 2 * r.h
}

// fill rasterizes one triangle by testing pixel centers against its edge
// functions. Both windings are accepted.
func (r *rasterizer) fill(v0, v1, v2 ngon.Vertex) {
	x0, y0 := r.toPixel(v0)
	x1, y1 := r.toPixel(v1)
	x2, y2 := r.toPixel(v2)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}

	minX := clampInt(int(math.Floor(min(x0, x1, x2))), 0, r.pm.Width()-1)
	maxX := clampInt(int(math.Ceil(max(x0, x1, x2))), 0, r.pm.Width()-1)
	minY := clampInt(int(math.Floor(min(y0, y1, y2))), 0, r.pm.Height()-1)
	maxY := clampInt(int(math.Ceil(max(y0, y1, y2))), 0, r.pm.Height()-1)

	for py := minY; py <= maxY; py++ {
		cy := float64(py) + 0.5
		for px := minX; px <= maxX; px++ {
			cx := float64(px) + 0.5
			w0 := edge(x1, y1, x2, y2, cx, cy) / area
			w1 := edge(x2, y2, x0, y0, cx, cy) / area
			w2 := edge(x0, y0, x1, y1, cx, cy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			r.pm.SetPixel(px, py, gg.RGBA{
				R: w0*float64(v0.Color.R) + w1*float64(v1.Color.R) + w2*float64(v2.Color.R),
				G: w0*float64(v0.Color.G) + w1*float64(v1.Color.G) + w2*float64(v2.Color.G),
				B: w0*float64(v0.Color.B) + w1*float64(v1.Color.B) + w2*float64(v2.Color.B),
				A: 1,
			})
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toRGBA(c ngon.RGB) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1}
}
