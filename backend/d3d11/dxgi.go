// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d11

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
	"golang.org/x/text/encoding/unicode"
)

const (
	sdkVersion = 7

	driverTypeHardware = 1
	driverTypeWARP     = 5

	createDeviceDebug       = 0x2
	createDeviceBGRASupport = 0x20

	dxgiFormatUnknown       = 0
	dxgiFormatR8G8B8A8Unorm = 28
	dxgiFormatB8G8R8A8Unorm = 87

	swapEffectDiscard        = 0
	swapEffectSequential     = 1
	swapEffectFlipSequential = 3
	swapEffectFlipDiscard    = 4

	usageStaging  = 3
	cpuAccessRead = 0x20000
	mapRead       = 1
)

// hresultNames holds the DXGI and COM failures worth naming in logs.
var hresultNames = map[uint32]string{
	0x80004001: "E_NOTIMPL",
	0x80004002: "E_NOINTERFACE",
	0x80004005: "E_FAIL",
	0x8007000e: "E_OUTOFMEMORY",
	0x80070057: "E_INVALIDARG",
	0x887a0001: "DXGI_ERROR_INVALID_CALL",
	0x887a0004: "DXGI_ERROR_UNSUPPORTED",
	0x887a0005: "DXGI_ERROR_DEVICE_REMOVED",
	0x887a0006: "DXGI_ERROR_DEVICE_HUNG",
	0x887a0007: "DXGI_ERROR_DEVICE_RESET",
	0x887a000a: "DXGI_ERROR_WAS_STILL_DRAWING",
	0x887a0022: "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE",
	0x887a002d: "DXGI_ERROR_SDK_COMPONENT_MISSING",
}

// HRESULTError is a failed COM call.
type HRESULTError struct {
	Op   string
	Code uint32
}

func (e *HRESULTError) Error() string {
	if name, ok := hresultNames[e.Code]; ok {
		return fmt.Sprintf("d3d11: %s: %s (%#x)", e.Op, name, e.Code)
	}
	return fmt.Sprintf("d3d11: %s: %#x", e.Op, e.Code)
}

func hresult(op string, r uintptr) error {
	if int32(uint32(r)) >= 0 {
		return nil
	}
	return &HRESULTError{Op: op, Code: uint32(r)}
}

type sampleDesc struct {
	Count   uint32
	Quality uint32
}

type rational struct {
	Numerator   uint32
	Denominator uint32
}

type modeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      rational
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

// swapChainDesc is DXGI_SWAP_CHAIN_DESC.
type swapChainDesc struct {
	BufferDesc   modeDesc
	SampleDesc   sampleDesc
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     int32
	SwapEffect   uint32
	Flags        uint32
}

// swapChainDesc1 is DXGI_SWAP_CHAIN_DESC1.
type swapChainDesc1 struct {
	Width       uint32
	Height      uint32
	Format      uint32
	Stereo      int32
	SampleDesc  sampleDesc
	BufferUsage uint32
	BufferCount uint32
	Scaling     uint32
	SwapEffect  uint32
	AlphaMode   uint32
	Flags       uint32
}

// texture2DDesc is D3D11_TEXTURE2D_DESC.
type texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     sampleDesc
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// mappedSubresource is D3D11_MAPPED_SUBRESOURCE.
type mappedSubresource struct {
	Data       unsafe.Pointer
	RowPitch   uint32
	DepthPitch uint32
}

type luid struct {
	LowPart  uint32
	HighPart int32
}

// adapterDesc1 is DXGI_ADAPTER_DESC1.
type adapterDesc1 struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           luid
	Flags                 uint32
}

func (d *adapterDesc1) toDevice() device.AdapterDesc {
	return device.AdapterDesc{
		Description: decodeDescription(d.Description[:]),
		VendorID:    d.VendorID,
		DeviceID:    d.DeviceID,
		LUID:        device.LUID{Low: d.AdapterLuid.LowPart, High: d.AdapterLuid.HighPart},
		Flags:       device.AdapterFlags(d.Flags),
	}
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeDescription decodes a NUL-terminated UTF-16 adapter name.
func decodeDescription(w []uint16) string {
	n := 0
	for n < len(w) && w[n] != 0 {
		n++
	}
	b := make([]byte, 2*n)
	for i, c := range w[:n] {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}

func dxgiFormat(f gputypes.TextureFormat) (uint32, bool) {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return dxgiFormatB8G8R8A8Unorm, true
	case gputypes.TextureFormatRGBA8Unorm:
		return dxgiFormatR8G8B8A8Unorm, true
	default:
		return dxgiFormatUnknown, false
	}
}

func textureFormat(f uint32) gputypes.TextureFormat {
	switch f {
	case dxgiFormatB8G8R8A8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case dxgiFormatR8G8B8A8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func modelOf(effect uint32) swapchain.Model {
	switch effect {
	case swapEffectFlipSequential, swapEffectFlipDiscard:
		return swapchain.ModelFlip
	default:
		return swapchain.ModelBlit
	}
}

// deviceFlags returns D3D11_CREATE_DEVICE flags for p.
func deviceFlags(p device.CreateParams) uint32 {
	var flags uint32
	if p.ExtendedFormats {
		flags |= createDeviceBGRASupport
	}
	if p.Debug {
		flags |= createDeviceDebug
	}
	return flags
}

func driverType(t device.DriverType) uint32 {
	if t == device.DriverSoftware {
		return driverTypeWARP
	}
	return driverTypeHardware
}

// levelArray converts levels to D3D_FEATURE_LEVEL values.
func levelArray(levels []device.FeatureLevel) []uint32 {
	out := make([]uint32, len(levels))
	for i, l := range levels {
		out[i] = uint32(l)
	}
	return out
}

// newSwapChainDesc1 builds a DXGI 1.2 description. Flip model uses the
// requested buffer count; blit model always uses one buffer.
func newSwapChainDesc1(d swapchain.Desc) (swapChainDesc1, error) {
	f, ok := dxgiFormat(d.Format)
	if !ok {
		return swapChainDesc1{}, fmt.Errorf("d3d11: unsupported swapchain format %v", d.Format)
	}
	desc := swapChainDesc1{
		Width:       uint32(d.Width),
		Height:      uint32(d.Height),
		Format:      f,
		SampleDesc:  sampleDesc{Count: 1},
		BufferUsage: uint32(d.Usage),
		BufferCount: 1,
		SwapEffect:  swapEffectDiscard,
	}
	if d.Model == swapchain.ModelFlip {
		desc.SwapEffect = swapEffectFlipSequential
		desc.BufferCount = uint32(d.BufferCount)
	}
	return desc, nil
}

// newSwapChainDesc builds a DXGI 1.1 description, which only supports the
// blit model.
func newSwapChainDesc(d swapchain.Desc) (swapChainDesc, error) {
	f, ok := dxgiFormat(d.Format)
	if !ok {
		return swapChainDesc{}, fmt.Errorf("d3d11: unsupported swapchain format %v", d.Format)
	}
	return swapChainDesc{
		BufferDesc: modeDesc{
			Width:  uint32(d.Width),
			Height: uint32(d.Height),
			Format: f,
		},
		SampleDesc:   sampleDesc{Count: 1},
		BufferUsage:  uint32(d.Usage),
		BufferCount:  1,
		OutputWindow: d.Window,
		Windowed:     1,
		SwapEffect:   swapEffectDiscard,
	}, nil
}

// toSwapchainDesc converts a description read back from the runtime.
func (d *swapChainDesc) toSwapchainDesc() swapchain.Desc {
	return swapchain.Desc{
		Window:      d.OutputWindow,
		Width:       int(d.BufferDesc.Width),
		Height:      int(d.BufferDesc.Height),
		Format:      textureFormat(d.BufferDesc.Format),
		Usage:       swapchain.Usage(d.BufferUsage),
		Model:       modelOf(d.SwapEffect),
		BufferCount: int(d.BufferCount),
		SampleCount: int(d.SampleDesc.Count),
	}
}

func (d *texture2DDesc) toTextureDesc() swapchain.TextureDesc {
	return swapchain.TextureDesc{
		Width:       int(d.Width),
		Height:      int(d.Height),
		Format:      textureFormat(d.Format),
		SampleCount: int(d.SampleDesc.Count),
	}
}

// stagingDesc describes a host-readable copy target for d.
func stagingDesc(d swapchain.TextureDesc) (texture2DDesc, error) {
	f, ok := dxgiFormat(d.Format)
	if !ok {
		return texture2DDesc{}, fmt.Errorf("d3d11: unsupported staging format %v", d.Format)
	}
	return texture2DDesc{
		Width:          uint32(d.Width),
		Height:         uint32(d.Height),
		MipLevels:      1,
		ArraySize:      1,
		Format:         f,
		SampleDesc:     sampleDesc{Count: 1},
		Usage:          usageStaging,
		CPUAccessFlags: cpuAccessRead,
	}, nil
}
