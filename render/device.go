// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
)

// DeviceHandle is the interface renderers receive. It is an alias for
// gpucontext.DeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// QueueSource is implemented by device handles that expose a command queue
// (the immediate context on Direct3D 11).
type QueueSource interface {
	Queue() gpucontext.Queue
}

// AdapterSource is implemented by device handles that expose their
// physical adapter.
type AdapterSource interface {
	PhysicalAdapter() gpucontext.Adapter
}

// AdapterTyper is implemented by device handles that know their adapter
// type.
type AdapterTyper interface {
	AdapterType() gpucontext.AdapterType
}

// Provider pairs a negotiated device with its presentation surface.
//
// Provider does not own either; the caller releases the surface before the
// device.
type Provider struct {
	dev     *device.Device
	surface *swapchain.Surface
}

// NewProvider returns a provider for dev. surface may be nil for headless
// use.
func NewProvider(dev *device.Device, surface *swapchain.Surface) *Provider {
	return &Provider{dev: dev, surface: surface}
}

// Device returns the device handle, or nil after the device is released.
func (p *Provider) Device() gpucontext.Device {
	if h := p.dev.Handle(); h != nil {
		return h
	}
	return nil
}

// Queue returns the device's queue, or nil if the handle has none.
func (p *Provider) Queue() gpucontext.Queue {
	if q, ok := p.dev.Handle().(QueueSource); ok {
		return q.Queue()
	}
	return nil
}

// Adapter returns the physical adapter, or nil if the handle has none.
func (p *Provider) Adapter() gpucontext.Adapter {
	if a, ok := p.dev.Handle().(AdapterSource); ok {
		return a.PhysicalAdapter()
	}
	return nil
}

// SurfaceFormat returns the backbuffer format, or Undefined when headless.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	if p.surface == nil {
		return gputypes.TextureFormatUndefined
	}
	return p.surface.Format()
}

// AdapterInfo describes the adapter from the negotiation report.
func (p *Provider) AdapterInfo() gpucontext.AdapterInfo {
	r := p.dev.Report()
	info := gpucontext.AdapterInfo{Name: r.Adapter.Description, Type: gpucontext.AdapterTypeUnknown}
	switch {
	case r.Software:
		info.Type = gpucontext.AdapterTypeSoftware
	default:
		if t, ok := p.dev.Handle().(AdapterTyper); ok {
			info.Type = t.AdapterType()
		}
	}
	return info
}

// NullDeviceHandle is a DeviceHandle without a device, for output that fell
// back to a non-accelerated path.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var (
	_ DeviceHandle = (*Provider)(nil)
	_ DeviceHandle = NullDeviceHandle{}
)
