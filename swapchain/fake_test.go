// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"errors"

	"github.com/gogpu/gputypes"
)

var errRejected = errors.New("DXGI_ERROR_INVALID_CALL")

type fakeSource struct {
	fac *fakeFactory
	err error
}

func (s *fakeSource) Factory() (Factory, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fac, nil
}

type fakeFactory struct {
	version  DXGIVersion
	accept   func(d Desc) bool
	attempts []Desc
	assoc    []WindowAssociation
	released int
	chain    func(d Desc) *fakeChain
}

func (f *fakeFactory) Version() DXGIVersion { return f.version }

func (f *fakeFactory) CreateSwapchain(d Desc) (Chain, error) {
	f.attempts = append(f.attempts, d)
	if !f.accept(d) {
		return nil, errRejected
	}
	if f.chain != nil {
		return f.chain(d), nil
	}
	return &fakeChain{desc: d}, nil
}

func (f *fakeFactory) MakeWindowAssociation(window uintptr, flags WindowAssociation) error {
	f.assoc = append(f.assoc, flags)
	return nil
}

func (f *fakeFactory) Release() { f.released++ }

type fakeChain struct {
	desc     Desc
	descErr  error
	front    *fakeTexture
	ctx      *fakeContext
	buffers  []int
	released int
}

func (c *fakeChain) Desc() (Desc, error) { return c.desc, c.descErr }

func (c *fakeChain) Buffer(i int) (Texture, error) {
	c.buffers = append(c.buffers, i)
	if c.front == nil {
		return nil, errRejected
	}
	return c.front, nil
}

func (c *fakeChain) Context() (Context, error) {
	if c.ctx == nil {
		return nil, errRejected
	}
	return c.ctx, nil
}

func (c *fakeChain) Release() { c.released++ }

type fakeTexture struct {
	desc     TextureDesc
	released int
}

func (t *fakeTexture) Desc() TextureDesc { return t.desc }
func (t *fakeTexture) Release()          { t.released++ }

// fakeContext maps staging textures to data with the given row pitch.
type fakeContext struct {
	data       []byte
	pitch      int
	stagingErr error
	mapErr     error

	staging  *fakeTexture
	copies   int
	unmapped int
	released int
}

func (c *fakeContext) CreateStagingTexture(d TextureDesc) (Texture, error) {
	if c.stagingErr != nil {
		return nil, c.stagingErr
	}
	c.staging = &fakeTexture{desc: d}
	return c.staging, nil
}

func (c *fakeContext) CopyResource(dst, src Texture) { c.copies++ }

func (c *fakeContext) Map(t Texture) (Mapping, error) {
	if c.mapErr != nil {
		return Mapping{}, c.mapErr
	}
	return Mapping{Data: c.data, RowPitch: c.pitch}, nil
}

func (c *fakeContext) Unmap(t Texture) { c.unmapped++ }
func (c *fakeContext) Release()        { c.released++ }

func acceptAll(Desc) bool { return true }

func acceptOnly(m Model, f gputypes.TextureFormat) func(Desc) bool {
	return func(d Desc) bool { return d.Model == m && d.Format == f }
}
