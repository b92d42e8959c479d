//go:build !nogpu

package gpu

import "errors"

// Common errors returned by FanRenderer operations.
var (
	// ErrNilDevice is returned when a renderer is created without a device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrRendererClosed is returned when operations are attempted after Destroy.
	ErrRendererClosed = errors.New("gpu: renderer is closed")

	// ErrEmptyMesh is returned when a mesh without triangles is uploaded.
	ErrEmptyMesh = errors.New("gpu: mesh has no triangles")

	// ErrNoHALAccess is returned when a device provider does not expose HAL types.
	ErrNoHALAccess = errors.New("gpu: provider does not expose HAL device and queue")

	// ErrInvalidSurface is returned when the surface view is nil or has zero size.
	ErrInvalidSurface = errors.New("gpu: invalid surface view or size")
)
