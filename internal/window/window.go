//go:build !nogpu

// Package window hosts the N-gon in a gogpu window.
//
// The window is event-driven: nothing is rendered until the side count
// changes or the platform asks for a repaint. A key press that changes the
// side count marks the mesh dirty and wakes the loop for one frame.
package window

import (
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/ngon"
	"github.com/gogpu/ngon/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Options configures the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background ngon.RGB
}

// DefaultOptions returns an 800x600 window with a dark gray background.
func DefaultOptions() Options {
	return Options{
		Title:      "N-gon",
		Width:      800,
		Height:     600,
		Background: gpu.DefaultClearColor,
	}
}

// Window connects a Controller to a gogpu surface.
type Window struct {
	ctrl *ngon.Controller
	opts Options

	renderer *gpu.FanRenderer
	dirty    bool
	frames   uint64

	// wake asks the event loop for one more frame.
	wake func()
}

// New creates a window for ctrl. The controller's change callback is
// replaced so that side-count changes trigger a redraw.
func New(ctrl *ngon.Controller, opts Options) *Window {
	if ctrl == nil {
		ctrl = ngon.NewController(nil, nil)
	}
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	w := &Window{
		ctrl:  ctrl,
		opts:  opts,
		dirty: true,
		wake:  func() {},
	}
	ctrl.OnChange(w.meshChanged)
	return w
}

// Sides returns the current side count.
func (w *Window) Sides() int {
	return w.ctrl.Sides()
}

// HandleKey applies the action bound to key. Reports whether the side
// count changed.
func (w *Window) HandleKey(key gpucontext.Key) bool {
	action := ActionForKey(key)
	if action == ngon.ActionNone {
		return false
	}
	return w.ctrl.Handle(action)
}

func (w *Window) meshChanged(ngon.Mesh) {
	w.dirty = true
	w.wake()
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	if err := gpu.ValidateShader(); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.opts.Title).
		WithSize(w.opts.Width, w.opts.Height).
		WithContinuousRender(false))

	w.wake = app.RequestRedraw

	app.OnDraw(func(dc *gogpu.Context) {
		if w.frames == 0 {
			slogger().Info("window: backend ready", "backend", dc.Backend(), "sides", w.Sides())
		}
		sw, sh := dc.SurfaceSize()
		var view any = dc.SurfaceView()
		if err := w.frame(app.GPUContextProvider(), view, uint32(sw), uint32(sh)); err != nil { //nolint:gosec // surface sizes are small positive values
			slogger().Error("window: frame failed", "frame", w.frames, "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		w.HandleKey(key)
	})

	app.OnClose(w.Close)

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// frame draws one frame: it creates the renderer on first use, uploads
// the mesh if it changed, and renders into the surface view.
func (w *Window) frame(provider, surfaceView any, width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	if err := w.ensureRenderer(provider); err != nil {
		return err
	}
	if w.dirty {
		if err := w.renderer.Upload(w.ctrl.Mesh()); err != nil {
			return fmt.Errorf("window: upload: %w", err)
		}
		w.dirty = false
	}

	view, ok := surfaceView.(hal.TextureView)
	if !ok || view == nil {
		return fmt.Errorf("%w: surface view is %T", gpu.ErrInvalidSurface, surfaceView)
	}
	if err := w.renderer.Render(view, width, height); err != nil {
		return fmt.Errorf("window: render: %w", err)
	}
	w.frames++
	return nil
}

func (w *Window) ensureRenderer(provider any) error {
	if w.renderer != nil {
		return nil
	}
	if provider == nil {
		return gpu.ErrNoHALAccess
	}
	device, queue, err := gpu.DeviceFromProvider(provider)
	if err != nil {
		return err
	}

	opts := []gpu.FanOption{gpu.WithClearColor(w.opts.Background)}
	if fp, ok := provider.(interface {
		SurfaceFormat() gputypes.TextureFormat
	}); ok {
		opts = append(opts, gpu.WithFormat(fp.SurfaceFormat()))
	}

	r, err := gpu.NewFanRenderer(device, queue, opts...)
	if err != nil {
		return fmt.Errorf("window: create renderer: %w", err)
	}
	w.renderer = r
	w.dirty = true
	return nil
}

// Close releases GPU resources. The window cannot draw afterwards.
func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
}
