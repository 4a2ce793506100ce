// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package d3d11

import (
	"unsafe"

	"github.com/gogpu/hwvideo/swapchain"
)

// factory creates swapchains for one device. It holds a device reference
// until Release.
type factory struct {
	dev *d3d11Device
	f1  *dxgiFactory1
	f2  *dxgiFactory2
}

func (f *factory) Version() swapchain.DXGIVersion {
	if f.f2 != nil {
		return swapchain.DXGI12
	}
	return swapchain.DXGI11
}

func (f *factory) CreateSwapchain(d swapchain.Desc) (swapchain.Chain, error) {
	if f.f2 != nil {
		desc, err := newSwapChainDesc1(d)
		if err != nil {
			return nil, err
		}
		sc, err := f.f2.CreateSwapChainForHwnd(f.dev, d.Window, &desc)
		if err != nil {
			return nil, err
		}
		return &chain{sc: sc}, nil
	}

	desc, err := newSwapChainDesc(d)
	if err != nil {
		return nil, err
	}
	sc, err := f.f1.CreateSwapChain(f.dev, &desc)
	if err != nil {
		return nil, err
	}
	return &chain{sc: sc}, nil
}

func (f *factory) MakeWindowAssociation(window uintptr, flags swapchain.WindowAssociation) error {
	return f.f1.MakeWindowAssociation(window, uint32(flags))
}

func (f *factory) Release() {
	comRelease(f.f2)
	comRelease(f.f1)
	comRelease(f.dev)
	f.f1, f.f2, f.dev = nil, nil, nil
}

type chain struct {
	sc *dxgiSwapChain
}

func (c *chain) Desc() (swapchain.Desc, error) {
	d, err := c.sc.GetDesc()
	if err != nil {
		return swapchain.Desc{}, err
	}
	return d.toSwapchainDesc(), nil
}

func (c *chain) Buffer(i int) (swapchain.Texture, error) {
	tex, err := c.sc.GetBuffer(uint32(i))
	if err != nil {
		return nil, err
	}
	return &texture{tex: tex}, nil
}

func (c *chain) Context() (swapchain.Context, error) {
	dev, err := c.sc.GetDevice()
	if err != nil {
		return nil, err
	}
	return &context{dev: dev, ctx: dev.GetImmediateContext()}, nil
}

func (c *chain) Release() {
	comRelease(c.sc)
	c.sc = nil
}

type texture struct {
	tex *d3d11Texture2D
}

func (t *texture) Desc() swapchain.TextureDesc {
	d := t.tex.GetDesc()
	return d.toTextureDesc()
}

func (t *texture) Release() {
	comRelease(t.tex)
	t.tex = nil
}

// context is an immediate context and the device it belongs to.
type context struct {
	dev *d3d11Device
	ctx *d3d11DeviceContext
}

func (c *context) CreateStagingTexture(d swapchain.TextureDesc) (swapchain.Texture, error) {
	desc, err := stagingDesc(d)
	if err != nil {
		return nil, err
	}
	tex, err := c.dev.CreateTexture2D(&desc)
	if err != nil {
		return nil, err
	}
	return &texture{tex: tex}, nil
}

func (c *context) CopyResource(dst, src swapchain.Texture) {
	c.ctx.CopyResource(dst.(*texture).tex, src.(*texture).tex)
}

func (c *context) Map(t swapchain.Texture) (swapchain.Mapping, error) {
	tex := t.(*texture).tex
	m, err := c.ctx.Map(tex)
	if err != nil {
		return swapchain.Mapping{}, err
	}
	height := tex.GetDesc().Height
	n := int(m.RowPitch) * int(height)
	return swapchain.Mapping{
		Data:     unsafe.Slice((*byte)(m.Data), n),
		RowPitch: int(m.RowPitch),
	}, nil
}

func (c *context) Unmap(t swapchain.Texture) {
	c.ctx.Unmap(t.(*texture).tex)
}

func (c *context) Release() {
	comRelease(c.ctx)
	comRelease(c.dev)
	c.ctx, c.dev = nil, nil
}
