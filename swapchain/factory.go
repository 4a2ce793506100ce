// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import "github.com/gogpu/gputypes"

// Model is a presentation model.
type Model int

const (
	// ModelBlit copies the backbuffer to the window and discards it.
	ModelBlit Model = iota
	// ModelFlip presents buffers in sequence and keeps their contents.
	ModelFlip
)

func (m Model) String() string {
	switch m {
	case ModelBlit:
		return "bitblt"
	case ModelFlip:
		return "flip"
	default:
		return "unknown"
	}
}

// DXGIVersion is the generation of the presentation runtime behind a
// factory. Flip model needs DXGI12.
type DXGIVersion int

const (
	DXGI11 DXGIVersion = 11
	DXGI12 DXGIVersion = 12
)

func (v DXGIVersion) String() string {
	if v >= DXGI12 {
		return "DXGI 1.2+"
	}
	return "DXGI 1.1"
}

// Usage is a DXGI_USAGE bit set for swapchain buffers.
type Usage uint32

const (
	UsageShaderInput        Usage = 0x10
	UsageRenderTargetOutput Usage = 0x20
)

// WindowAssociation is a DXGI_MWA bit set.
type WindowAssociation uint32

const (
	NoWindowChanges WindowAssociation = 1 << 0
	NoAltEnter      WindowAssociation = 1 << 1
	NoPrintScreen   WindowAssociation = 1 << 2
)

// callerOwnsWindow stops the runtime from handling fullscreen toggles and
// print-screen on the output window.
const callerOwnsWindow = NoWindowChanges | NoAltEnter | NoPrintScreen

// Desc describes a swapchain.
type Desc struct {
	Window        uintptr
	Width, Height int
	Format        gputypes.TextureFormat
	Usage         Usage
	Model         Model
	BufferCount   int
	SampleCount   int
}

// TextureDesc describes a 2D texture.
type TextureDesc struct {
	Width, Height int
	Format        gputypes.TextureFormat
	SampleCount   int
}

// Factory creates swapchains for the device it was obtained from.
type Factory interface {
	// Version reports the presentation runtime generation.
	Version() DXGIVersion

	// CreateSwapchain makes one creation attempt.
	CreateSwapchain(d Desc) (Chain, error)

	// MakeWindowAssociation sets how the runtime treats window.
	MakeWindowAssociation(window uintptr, flags WindowAssociation) error

	Release()
}

// FactorySource is implemented by devices that can present.
type FactorySource interface {
	Factory() (Factory, error)
}

// Chain is a created swapchain.
type Chain interface {
	// Desc reads back the swapchain description from the runtime.
	Desc() (Desc, error)

	// Buffer returns backbuffer i. The caller releases it.
	Buffer(i int) (Texture, error)

	// Context returns the immediate context of the owning device. The
	// caller releases it.
	Context() (Context, error)

	Release()
}

// Texture is a 2D texture.
type Texture interface {
	Desc() TextureDesc
	Release()
}

// Mapping is a host view of a mapped texture. Rows start RowPitch bytes
// apart; RowPitch may exceed the row width.
type Mapping struct {
	Data     []byte
	RowPitch int
}

// Context issues copy and map commands on a device.
type Context interface {
	// CreateStagingTexture creates a host-readable texture.
	CreateStagingTexture(d TextureDesc) (Texture, error)

	// CopyResource copies src into dst on the GPU.
	CopyResource(dst, src Texture)

	// Map maps a staging texture for reading.
	Map(t Texture) (Mapping, error)

	Unmap(t Texture)

	Release()
}
