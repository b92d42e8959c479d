package ngon

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte stride per vertex in the packed vertex buffer.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec3<f32>) = 12 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// IndexStride is the byte size of one uint32 index.
const IndexStride = 4

// VertexData packs the mesh vertices into a little-endian buffer ready for
// upload as a GPU vertex buffer.
func (m Mesh) VertexData() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	for i := range m.Vertices {
		writeVertex(buf[i*VertexStride:], &m.Vertices[i])
	}
	return buf
}

// IndexData packs the triangle indices as little-endian uint32 values,
// three per triangle.
func (m Mesh) IndexData() []byte {
	buf := make([]byte, len(m.Triangles)*3*IndexStride)
	off := 0
	for _, tri := range m.Triangles {
		for _, idx := range tri {
			binary.LittleEndian.PutUint32(buf[off:off+4], idx)
			off += IndexStride
		}
	}
	return buf
}

// Indices16 returns the triangle indices as uint16 values for APIs that
// only accept 16-bit index lists.
func (m Mesh) Indices16() []uint16 {
	out := make([]uint16, 0, len(m.Triangles)*3)
	for _, tri := range m.Triangles {
		out = append(out, uint16(tri[0]), uint16(tri[1]), uint16(tri[2])) //nolint:gosec // bounded by MaxSides
	}
	return out
}

func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color.R))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color.G))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color.B))
}
