package ngon

import (
	"math"
)

// Side count limits.
const (
	// MinSides is the smallest polygon the generator produces.
	MinSides = 3

	// MaxSides caps the side count. Past this the fan triangles are
	// sub-pixel at ordinary window sizes, and indices still fit uint16
	// for backends that need it.
	MaxSides = 1024

	// DefaultSides is the side count a new window starts with (a hexagon).
	DefaultSides = 6

	// DefaultRadius is the perimeter radius in normalized device units.
	DefaultRadius = 0.7
)

// Vertex is a single mesh vertex: a position and its fill color.
type Vertex struct {
	Position [3]float32
	Color    RGB
}

// Triangle holds three indices into Mesh.Vertices.
type Triangle [3]uint32

// Mesh is a triangle fan around the polygon center.
//
// Vertices[0] is the center; Vertices[1..N] are the perimeter vertices in
// counter-clockwise order. Triangle i is (0, 1+i, 1+(i+1)%N).
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// Sides returns the number of perimeter vertices.
func (m Mesh) Sides() int {
	if len(m.Vertices) == 0 {
		return 0
	}
	return len(m.Vertices) - 1
}

// Center returns the center vertex. The zero Vertex is returned for an
// empty mesh.
func (m Mesh) Center() Vertex {
	if len(m.Vertices) == 0 {
		return Vertex{}
	}
	return m.Vertices[0]
}

// Perimeter returns the perimeter vertices. The slice aliases the mesh.
func (m Mesh) Perimeter() []Vertex {
	if len(m.Vertices) < 2 {
		return nil
	}
	return m.Vertices[1:]
}

// IndexCount returns the number of indices needed to draw the mesh.
func (m Mesh) IndexCount() uint32 {
	return uint32(len(m.Triangles)) * 3 //nolint:gosec // bounded by MaxSides
}

// ClampSides limits n to [MinSides, MaxSides].
func ClampSides(n int) int {
	switch {
	case n < MinSides:
		return MinSides
	case n > MaxSides:
		return MaxSides
	default:
		return n
	}
}

// Angle returns the angle in radians of perimeter vertex i of n, before
// any rotation offset.
func Angle(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}

// Generate builds the triangle fan for a regular polygon with the given
// number of sides. Side counts outside [MinSides, MaxSides] are clamped.
//
// Generate is a pure function of its arguments.
func Generate(sides int, opts ...Option) Mesh {
	n := ClampSides(sides)
	if n != sides {
		Logger().Debug("ngon: side count clamped", "requested", sides, "sides", n)
	}
	o := applyOptions(opts)

	vertices := make([]Vertex, 0, n+1)
	vertices = append(vertices, Vertex{
		Position: [3]float32{o.centerX, o.centerY, 0},
		Color:    o.centerColor,
	})

	r := float64(o.radius)
	cx, cy := float64(o.centerX), float64(o.centerY)
	for i := 0; i < n; i++ {
		a := o.rotation + Angle(i, n)
		vertices = append(vertices, Vertex{
			Position: [3]float32{
				float32(cx + r*math.Cos(a)),
				float32(cy + r*math.Sin(a)),
				0,
			},
			Color: HueColor(i, n),
		})
	}

	triangles := make([]Triangle, n)
	for i := 0; i < n; i++ {
		a := uint32(1 + i)       //nolint:gosec // bounded by MaxSides
		b := uint32(1 + (i+1)%n) //nolint:gosec // bounded by MaxSides
		triangles[i] = Triangle{0, a, b}
	}

	return Mesh{Vertices: vertices, Triangles: triangles}
}

// AspectScale returns the per-axis scale that keeps a unit circle round on
// a width x height surface. The longer axis is shrunk.
func AspectScale(width, height int) (sx, sy float32) {
	if width <= 0 || height <= 0 || width == height {
		return 1, 1
	}
	if width > height {
		return float32(height) / float32(width), 1
	}
	return 1, float32(width) / float32(height)
}
