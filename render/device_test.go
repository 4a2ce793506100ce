// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
)

type testQueue struct{}

type testHandle struct {
	desc     device.AdapterDesc
	typ      gpucontext.AdapterType
	released bool
}

func (h *testHandle) FeatureLevel() device.FeatureLevel    { return device.FeatureLevel11_0 }
func (h *testHandle) Adapter() (device.AdapterDesc, error) { return h.desc, nil }
func (h *testHandle) SetMaximumFrameLatency(int) error     { return nil }
func (h *testHandle) Release()                             { h.released = true }
func (h *testHandle) Queue() gpucontext.Queue              { return testQueue{} }
func (h *testHandle) AdapterType() gpucontext.AdapterType  { return h.typ }
func (h *testHandle) Factory() (swapchain.Factory, error)  { return testFactory{}, nil }

type testDriver struct{ h *testHandle }

func (d testDriver) Name() string { return "test" }
func (d testDriver) Load() error  { return nil }
func (d testDriver) CreateDevice(device.CreateParams) (device.Handle, error) {
	return d.h, nil
}

type testFactory struct{}

func (testFactory) Version() swapchain.DXGIVersion { return swapchain.DXGI12 }
func (testFactory) CreateSwapchain(d swapchain.Desc) (swapchain.Chain, error) {
	return testChain{d}, nil
}
func (testFactory) MakeWindowAssociation(uintptr, swapchain.WindowAssociation) error { return nil }
func (testFactory) Release()                                                         {}

type testChain struct{ d swapchain.Desc }

func (c testChain) Desc() (swapchain.Desc, error)         { return c.d, nil }
func (c testChain) Buffer(int) (swapchain.Texture, error) { return nil, nil }
func (c testChain) Context() (swapchain.Context, error)   { return nil, nil }
func (c testChain) Release()                              {}

func negotiate(t *testing.T, h *testHandle) *device.Device {
	t.Helper()
	dev, err := device.Negotiate(testDriver{h}, device.Request{})
	if err != nil {
		t.Fatalf("Negotiate() error = %v", err)
	}
	t.Cleanup(dev.Release)
	return dev
}

func TestProviderWithSurface(t *testing.T) {
	h := &testHandle{
		desc: device.AdapterDesc{Description: "Test GPU", VendorID: 0x10de},
		typ:  gpucontext.AdapterTypeDiscrete,
	}
	dev := negotiate(t, h)
	sc, err := swapchain.Create(dev, swapchain.Options{Flip: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer sc.Release()

	var p DeviceHandle = NewProvider(dev, sc)

	if p.Device() != h {
		t.Error("Device() is not the negotiated handle")
	}
	if _, ok := p.Queue().(testQueue); !ok {
		t.Errorf("Queue() = %v, want the handle's queue", p.Queue())
	}
	if p.Adapter() != nil {
		t.Error("Adapter() should be nil when the handle exposes none")
	}
	if p.SurfaceFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want BGRA8Unorm", p.SurfaceFormat())
	}
	info := p.AdapterInfo()
	if info.Name != "Test GPU" || info.Type != gpucontext.AdapterTypeDiscrete {
		t.Errorf("AdapterInfo() = %+v", info)
	}
}

func TestProviderHeadlessSoftware(t *testing.T) {
	h := &testHandle{desc: device.AdapterDesc{
		Description: "Microsoft Basic Render Driver",
		VendorID:    device.BasicRenderDriver.VendorID,
		DeviceID:    device.BasicRenderDriver.DeviceID,
	}}
	p := NewProvider(negotiate(t, h), nil)

	if p.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", p.SurfaceFormat())
	}
	if got := p.AdapterInfo().Type; got != gpucontext.AdapterTypeSoftware {
		t.Errorf("AdapterInfo().Type = %v, want Software", got)
	}
}

func TestProviderAfterRelease(t *testing.T) {
	h := &testHandle{}
	dev := negotiate(t, h)
	p := NewProvider(dev, nil)
	dev.Release()

	if p.Device() != nil {
		t.Error("Device() should be nil after release")
	}
	if p.Queue() != nil {
		t.Error("Queue() should be nil after release")
	}
	if !h.released {
		t.Error("handle not released")
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
	if handle.AdapterInfo().Type != gpucontext.AdapterTypeUnknown {
		t.Error("NullDeviceHandle.AdapterInfo() should report Unknown")
	}
}
