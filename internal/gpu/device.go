//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by gogpu's GPU context provider.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// DeviceFromProvider extracts the HAL device and queue from a window
// backend's GPU context provider (e.g. gogpu.App.GPUContextProvider()).
// The caller does not own the returned device and must not destroy it.
func DeviceFromProvider(provider any) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is %T", ErrNoHALAccess, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is %T", ErrNoHALAccess, hp.HalQueue())
	}
	return device, queue, nil
}
