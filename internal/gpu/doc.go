//go:build !nogpu

// Package gpu submits ngon meshes to a wgpu HAL device.
//
// The window backend owns the device, queue and surface; this package only
// receives them. FanRenderer compiles the fan shader, keeps the vertex and
// index buffers of the current mesh, and records one indexed draw per frame
// into a render pass that clears and then draws onto the surface view.
//
//	mesh (ngon.Generate) -> Upload -> vertex + index buffers
//	surface view         -> Render -> clear + DrawIndexed -> Submit
//
// Tests run against the hal noop backend, so no GPU is required.
package gpu
