package ngon

import "math"

// Option configures polygon generation.
// Use functional options to customize the generated mesh.
//
// Example:
//
//	// Default hexagon centered at the origin
//	mesh := ngon.Generate(6)
//
//	// Pentagon with a point facing up
//	mesh := ngon.Generate(5, ngon.WithRotation(math.Pi/2))
type Option func(*options)

// options holds optional configuration for Generate.
type options struct {
	centerX, centerY float32
	radius           float32
	rotation         float64
	centerColor      RGB
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		radius:      DefaultRadius,
		centerColor: White,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithCenter places the polygon center at (x, y).
func WithCenter(x, y float32) Option {
	return func(o *options) {
		if isFinite32(x) && isFinite32(y) {
			o.centerX, o.centerY = x, y
		}
	}
}

// WithRadius sets the distance from the center to each perimeter vertex.
// Non-positive or non-finite values keep the default radius.
func WithRadius(r float32) Option {
	return func(o *options) {
		if r > 0 && isFinite32(r) {
			o.radius = r
		}
	}
}

// WithRotation offsets every perimeter angle by rad radians.
// Zero places the first vertex on the positive X axis.
func WithRotation(rad float64) Option {
	return func(o *options) {
		if !math.IsNaN(rad) && !math.IsInf(rad, 0) {
			o.rotation = rad
		}
	}
}

// WithCenterColor overrides the center vertex color.
func WithCenterColor(c RGB) Option {
	return func(o *options) {
		o.centerColor = c
	}
}

func isFinite32(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
