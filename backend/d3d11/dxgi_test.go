// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d11

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
)

func TestDecodeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want string
	}{
		{"ascii", utf16.Encode([]rune("NVIDIA GeForce RTX 3080\x00garbage")), "NVIDIA GeForce RTX 3080"},
		{"non-ascii", utf16.Encode([]rune("Radeon™ Grafik\x00")), "Radeon™ Grafik"},
		{"surrogate pair", utf16.Encode([]rune("GPU 🎮")), "GPU 🎮"},
		{"empty", make([]uint16, 128), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeDescription(tt.in); got != tt.want {
				t.Errorf("decodeDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdapterDescToDevice(t *testing.T) {
	var d adapterDesc1
	copy(d.Description[:], utf16.Encode([]rune("Microsoft Basic Render Driver")))
	d.VendorID = 0x1414
	d.DeviceID = 0x008c
	d.AdapterLuid = luid{LowPart: 0xbeef, HighPart: 1}

	got := d.toDevice()
	if got.Description != "Microsoft Basic Render Driver" {
		t.Errorf("Description = %q", got.Description)
	}
	if !got.IsSoftware() {
		t.Error("basic render driver ids not detected as software")
	}
	if got.LUID.String() != "000000010000beef" {
		t.Errorf("LUID = %s", got.LUID)
	}

	d.VendorID, d.DeviceID = 0x10de, 0x2206
	d.Flags = uint32(device.AdapterFlagSoftware)
	if !d.toDevice().IsSoftware() {
		t.Error("software flag ignored")
	}
}

func TestHRESULT(t *testing.T) {
	if err := hresult("Op", 0); err != nil {
		t.Errorf("S_OK = %v", err)
	}
	if err := hresult("Op", 1); err != nil {
		t.Errorf("S_FALSE = %v", err)
	}

	err := hresult("CreateSwapChainForHwnd", 0x887a0001)
	var he *HRESULTError
	if !errors.As(err, &he) || he.Code != 0x887a0001 {
		t.Fatalf("hresult() = %v", err)
	}
	if !strings.Contains(err.Error(), "DXGI_ERROR_INVALID_CALL") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(hresult("Op", 0x80001234).Error(), "0x80001234") {
		t.Error("unknown code not printed in hex")
	}
}

func TestDeviceParams(t *testing.T) {
	tests := []struct {
		p         device.CreateParams
		wantFlags uint32
		wantType  uint32
	}{
		{device.CreateParams{Type: device.DriverHardware, ExtendedFormats: true}, createDeviceBGRASupport, driverTypeHardware},
		{device.CreateParams{Type: device.DriverHardware, Debug: true}, createDeviceDebug, driverTypeHardware},
		{device.CreateParams{Type: device.DriverSoftware, ExtendedFormats: true, Debug: true}, createDeviceBGRASupport | createDeviceDebug, driverTypeWARP},
	}
	for _, tt := range tests {
		if got := deviceFlags(tt.p); got != tt.wantFlags {
			t.Errorf("deviceFlags(%v) = %#x, want %#x", tt.p, got, tt.wantFlags)
		}
		if got := driverType(tt.p.Type); got != tt.wantType {
			t.Errorf("driverType(%v) = %d, want %d", tt.p.Type, got, tt.wantType)
		}
	}

	levels := levelArray(device.Levels(device.FeatureLevel11_0, device.FeatureLevel10_0))
	want := []uint32{0xb000, 0xa100, 0xa000}
	if len(levels) != len(want) {
		t.Fatalf("levelArray() = %#x", levels)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("levelArray()[%d] = %#x, want %#x", i, levels[i], want[i])
		}
	}
}

func TestSwapChainDesc1(t *testing.T) {
	d := swapchain.Desc{
		Window: 0x1234, Width: 640, Height: 480,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		Usage:       swapchain.UsageRenderTargetOutput | swapchain.UsageShaderInput,
		Model:       swapchain.ModelFlip,
		BufferCount: 3,
	}
	flip, err := newSwapChainDesc1(d)
	if err != nil {
		t.Fatal(err)
	}
	if flip.SwapEffect != swapEffectFlipSequential || flip.BufferCount != 3 {
		t.Errorf("flip desc = %+v", flip)
	}
	if flip.Format != dxgiFormatB8G8R8A8Unorm || flip.BufferUsage != 0x30 || flip.SampleDesc.Count != 1 {
		t.Errorf("flip desc = %+v", flip)
	}

	d.Model = swapchain.ModelBlit
	blit, err := newSwapChainDesc1(d)
	if err != nil {
		t.Fatal(err)
	}
	if blit.SwapEffect != swapEffectDiscard || blit.BufferCount != 1 {
		t.Errorf("blit desc = %+v", blit)
	}

	d.Format = gputypes.TextureFormatRGBA16Float
	if _, err := newSwapChainDesc1(d); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestLegacySwapChainDesc(t *testing.T) {
	d := swapchain.Desc{
		Window: 0x1234, Width: 1, Height: 1,
		Format:      gputypes.TextureFormatRGBA8Unorm,
		Usage:       swapchain.UsageRenderTargetOutput,
		Model:       swapchain.ModelFlip,
		BufferCount: 2,
	}
	desc, err := newSwapChainDesc(d)
	if err != nil {
		t.Fatal(err)
	}
	if desc.SwapEffect != swapEffectDiscard || desc.BufferCount != 1 || desc.Windowed != 1 {
		t.Errorf("legacy desc = %+v", desc)
	}
	if desc.OutputWindow != 0x1234 || desc.BufferDesc.Format != dxgiFormatR8G8B8A8Unorm {
		t.Errorf("legacy desc = %+v", desc)
	}

	back := desc.toSwapchainDesc()
	if back.Model != swapchain.ModelBlit || back.Format != gputypes.TextureFormatRGBA8Unorm || back.SampleCount != 1 {
		t.Errorf("read back = %+v", back)
	}
}

func TestModelOf(t *testing.T) {
	tests := []struct {
		effect uint32
		want   swapchain.Model
	}{
		{swapEffectDiscard, swapchain.ModelBlit},
		{swapEffectSequential, swapchain.ModelBlit},
		{swapEffectFlipSequential, swapchain.ModelFlip},
		{swapEffectFlipDiscard, swapchain.ModelFlip},
	}
	for _, tt := range tests {
		if got := modelOf(tt.effect); got != tt.want {
			t.Errorf("modelOf(%d) = %v, want %v", tt.effect, got, tt.want)
		}
	}
}

func TestStagingDesc(t *testing.T) {
	sd, err := stagingDesc(swapchain.TextureDesc{Width: 64, Height: 32, Format: gputypes.TextureFormatBGRA8Unorm, SampleCount: 1})
	if err != nil {
		t.Fatal(err)
	}
	if sd.Usage != usageStaging || sd.CPUAccessFlags != cpuAccessRead || sd.BindFlags != 0 || sd.MiscFlags != 0 {
		t.Errorf("staging desc = %+v", sd)
	}
	if got := sd.toTextureDesc(); got.Width != 64 || got.Height != 32 || got.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("toTextureDesc() = %+v", got)
	}
	if _, err := stagingDesc(swapchain.TextureDesc{Format: gputypes.TextureFormatR8Unorm}); err == nil {
		t.Error("unsupported staging format accepted")
	}
}

func TestRegistered(t *testing.T) {
	e, ok := device.Get(Name)
	if !ok {
		t.Fatal("d3d11 not registered")
	}
	if e.Priority != Priority {
		t.Errorf("Priority = %d, want %d", e.Priority, Priority)
	}
}
