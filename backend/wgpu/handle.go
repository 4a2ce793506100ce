// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/sampling"
	"github.com/gogpu/wgpu/hal"
)

// Handle is an open HAL device.
type Handle struct {
	instance hal.Instance
	adapter  hal.Adapter
	info     gputypes.AdapterInfo
	device   hal.Device
	queue    hal.Queue
	level    device.FeatureLevel
	software bool
	latency  int
}

// FeatureLevel returns the level selected at creation.
func (h *Handle) FeatureLevel() device.FeatureLevel { return h.level }

// Adapter describes the HAL adapter. HAL adapters have no LUID.
func (h *Handle) Adapter() (device.AdapterDesc, error) {
	if h.device == nil {
		return device.AdapterDesc{}, device.ErrReleased
	}
	desc := device.AdapterDesc{
		Description: h.info.Name,
		VendorID:    h.info.VendorID,
		DeviceID:    h.info.DeviceID,
	}
	if h.software || h.info.DeviceType == gputypes.DeviceTypeCPU {
		desc.Flags |= device.AdapterFlagSoftware
	}
	return desc, nil
}

// SetMaximumFrameLatency records the latency cap. HAL queues present one
// frame at a time, so the value is only reported back by FrameLatency.
func (h *Handle) SetMaximumFrameLatency(frames int) error {
	if frames <= 0 {
		return fmt.Errorf("wgpu: invalid frame latency %d", frames)
	}
	h.latency = frames
	return nil
}

// FrameLatency returns the value set by SetMaximumFrameLatency.
func (h *Handle) FrameLatency() int { return h.latency }

// Queue returns the HAL queue.
func (h *Handle) Queue() gpucontext.Queue {
	if h.queue == nil {
		return nil
	}
	return h.queue
}

// PhysicalAdapter returns the HAL adapter.
func (h *Handle) PhysicalAdapter() gpucontext.Adapter {
	if h.adapter == nil {
		return nil
	}
	return h.adapter
}

// AdapterType maps the HAL device type.
func (h *Handle) AdapterType() gpucontext.AdapterType {
	switch h.info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// HalDevice returns the HAL device, or nil after Release.
func (h *Handle) HalDevice() hal.Device { return h.device }

// CreateSamplingModule creates a shader module from a compiled sampling
// program. The caller destroys it with HalDevice().DestroyShaderModule.
func (h *Handle) CreateSamplingModule(p *sampling.Program) (hal.ShaderModule, error) {
	if h.device == nil {
		return nil, device.ErrReleased
	}
	if p == nil || len(p.SPIRV) == 0 {
		return nil, errors.New("wgpu: empty sampling program")
	}
	return h.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sampling " + p.Native.String(),
		Source: hal.ShaderSource{SPIRV: p.SPIRV},
	})
}

// Release destroys the device, then the adapter, then the instance.
// Calling Release more than once has no effect.
func (h *Handle) Release() {
	if h.device == nil {
		return
	}
	h.device.Destroy()
	h.device = nil
	h.queue = nil
	if h.adapter != nil {
		h.adapter.Destroy()
		h.adapter = nil
	}
	if h.instance != nil {
		h.instance.Destroy()
		h.instance = nil
	}
}

var _ device.Handle = (*Handle)(nil)
