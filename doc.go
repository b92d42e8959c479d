// Package ngon generates the geometry for an interactive regular polygon
// demo: a triangle fan around the polygon center with a rainbow fill.
//
// # Overview
//
// This package holds the geometry and input logic. Windowing, GPU
// submission and PNG snapshots live under internal/ and consume the Mesh
// produced here.
//
//   - Generate builds N+1 vertices and N triangles for an N-gon.
//   - HSVToRGB and HueColor sweep the hue evenly around the perimeter.
//   - Counter and Controller implement the side-count input handler.
//
// # Quick Start
//
//	mesh := ngon.Generate(6) // hexagon
//	vb := mesh.VertexData()  // position vec3<f32> + color vec3<f32>
//	ib := mesh.IndexData()   // uint32 triangle list
//
// # Coordinate System
//
// Positions are in normalized device coordinates: the window spans
// [-1, 1] on both axes, Y increases up, and angles are in radians
// counter-clockwise from the positive X axis.
//
// # Side Count
//
// Side counts are clamped to [MinSides, MaxSides]. Requests outside that
// range are not errors.
package ngon

// Version is the current version of the demo.
const Version = "0.1.0"
