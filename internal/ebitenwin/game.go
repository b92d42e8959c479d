// Package ebitenwin hosts the N-gon in an ebiten window.
//
// It is the portable alternative to the gogpu backend: the same mesh is
// drawn with ebiten's DrawTriangles, which interpolates vertex colors the
// same way the fan shader does.
package ebitenwin

import (
	"image/color"

	"github.com/gogpu/ngon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background ngon.RGB
}

// Game implements ebiten.Game for a Controller.
type Game struct {
	ctrl       *ngon.Controller
	background color.Color

	white   *ebiten.Image
	verts   []ebiten.Vertex
	indices []uint16
	width   int
	height  int
	dirty   bool
}

// NewGame creates a game for ctrl. The controller's change callback is
// replaced so that side-count changes rebuild the vertex list.
func NewGame(ctrl *ngon.Controller, background ngon.RGB) *Game {
	if ctrl == nil {
		ctrl = ngon.NewController(nil, nil)
	}
	g := &Game{
		ctrl:       ctrl,
		background: background,
		dirty:      true,
	}
	ctrl.OnChange(func(ngon.Mesh) { g.dirty = true })
	return g
}

// Run opens the window and blocks until it is closed.
func Run(ctrl *ngon.Controller, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}
	if opts.Title == "" {
		opts.Title = "N-gon"
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ngon.Logger().Info("ebitenwin: starting", "sides", ctrl.Sides())
	return ebiten.RunGame(NewGame(ctrl, opts.Background))
}

// Sides returns the current side count.
func (g *Game) Sides() int {
	return g.ctrl.Sides()
}

// Update polls the bound keys.
func (g *Game) Update() error {
	for _, k := range boundKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctrl.Handle(ActionForKey(k))
		}
	}
	return nil
}

// Draw clears the screen and draws the fan.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	b := screen.Bounds()
	if g.dirty || b.Dx() != g.width || b.Dy() != g.height {
		g.rebuild(b.Dx(), b.Dy())
	}
	if len(g.indices) == 0 {
		return
	}
	if g.white == nil {
		g.white = ebiten.NewImage(1, 1)
		g.white.Fill(color.White)
	}
	screen.DrawTriangles(g.verts, g.indices, g.white, nil)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) rebuild(width, height int) {
	mesh := g.ctrl.Mesh()
	g.verts = ScreenVertices(mesh, width, height, g.verts[:0])
	g.indices = mesh.Indices16()
	g.width, g.height = width, height
	g.dirty = false
}

// ScreenVertices converts mesh vertices from normalized device
// coordinates to screen pixels, appending to dst. The aspect scale keeps
// the polygon regular on non-square screens.
func ScreenVertices(mesh ngon.Mesh, width, height int, dst []ebiten.Vertex) []ebiten.Vertex {
	sx, sy := ngon.AspectScale(width, height)
	w, h := float32(width), float32(height)
	for _, v := range mesh.Vertices {
		x := v.Position[0] * sx
		y := v.Position[1] * sy
		dst = append(dst, ebiten.Vertex{
			DstX:   (x + 1) / 2 * w,
			DstY:   (1 - y) / 2 * h,
			ColorR: v.Color.R,
			ColorG: v.Color.G,
			ColorB: v.Color.B,
			ColorA: 1,
		})
	}
	return dst
}
