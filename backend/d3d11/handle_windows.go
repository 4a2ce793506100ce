// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package d3d11

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
)

// Handle is a created ID3D11Device with its immediate context.
type Handle struct {
	dev   *d3d11Device
	ctx   *d3d11DeviceContext
	level device.FeatureLevel
}

// FeatureLevel returns the level D3D11CreateDevice selected.
func (h *Handle) FeatureLevel() device.FeatureLevel { return h.level }

// Adapter reads DXGI_ADAPTER_DESC1 of the adapter behind the device.
func (h *Handle) Adapter() (device.AdapterDesc, error) {
	if h.dev == nil {
		return device.AdapterDesc{}, device.ErrReleased
	}
	dxgiDev, err := queryInterface[dxgiDevice1](h.dev, &iidIDXGIDevice1)
	if err != nil {
		return device.AdapterDesc{}, fmt.Errorf("get DXGI device: %w", err)
	}
	defer comRelease(dxgiDev)

	adapter, err := getParent[dxgiAdapter1](dxgiDev, &iidIDXGIAdapter1)
	if err != nil {
		return device.AdapterDesc{}, fmt.Errorf("get DXGI adapter: %w", err)
	}
	defer comRelease(adapter)

	desc, err := adapter.GetDesc1()
	if err != nil {
		return device.AdapterDesc{}, fmt.Errorf("get adapter description: %w", err)
	}
	return desc.toDevice(), nil
}

// SetMaximumFrameLatency calls IDXGIDevice1::SetMaximumFrameLatency.
func (h *Handle) SetMaximumFrameLatency(frames int) error {
	if h.dev == nil {
		return device.ErrReleased
	}
	dxgiDev, err := queryInterface[dxgiDevice1](h.dev, &iidIDXGIDevice1)
	if err != nil {
		return err
	}
	defer comRelease(dxgiDev)
	return dxgiDev.SetMaximumFrameLatency(uint32(frames))
}

// Factory walks device, adapter and factory. A factory that answers for
// IDXGIFactory2 creates DXGI 1.2 swapchains.
func (h *Handle) Factory() (swapchain.Factory, error) {
	if h.dev == nil {
		return nil, device.ErrReleased
	}
	dxgiDev, err := queryInterface[dxgiDevice1](h.dev, &iidIDXGIDevice1)
	if err != nil {
		return nil, fmt.Errorf("get DXGI device: %w", err)
	}
	defer comRelease(dxgiDev)

	adapter, err := getParent[dxgiAdapter1](dxgiDev, &iidIDXGIAdapter1)
	if err != nil {
		return nil, fmt.Errorf("get DXGI adapter: %w", err)
	}
	defer comRelease(adapter)

	f1, err := getParent[dxgiFactory1](adapter, &iidIDXGIFactory1)
	if err != nil {
		return nil, fmt.Errorf("get DXGI factory: %w", err)
	}
	f2, err := queryInterface[dxgiFactory2](f1, &iidIDXGIFactory2)
	if err != nil {
		f2 = nil
	}

	comAddRef(h.dev)
	return &factory{dev: h.dev, f1: f1, f2: f2}, nil
}

// Queue returns the immediate context.
func (h *Handle) Queue() gpucontext.Queue {
	if h.ctx == nil {
		return nil
	}
	return h.ctx
}

// AdapterType is unknown for Direct3D devices; Software in the negotiation
// report covers WARP.
func (h *Handle) AdapterType() gpucontext.AdapterType {
	return gpucontext.AdapterTypeUnknown
}

// Release releases the immediate context and the device. Calling Release
// more than once has no effect.
func (h *Handle) Release() {
	if h.dev == nil {
		return
	}
	comRelease(h.ctx)
	comRelease(h.dev)
	h.ctx = nil
	h.dev = nil
}

var (
	_ device.Handle           = (*Handle)(nil)
	_ swapchain.FactorySource = (*Handle)(nil)
)
