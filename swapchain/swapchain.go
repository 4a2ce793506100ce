// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo"
)

// DefaultBufferCount is the flip-model buffer count used when Options
// leaves Buffers unset.
const DefaultBufferCount = 2

// Formats are the backbuffer formats tried, in order. BGRA comes first
// since it is the desktop format.
var Formats = []gputypes.TextureFormat{
	gputypes.TextureFormatBGRA8Unorm,
	gputypes.TextureFormatRGBA8Unorm,
}

// Options configures Create.
type Options struct {
	// Window is the native window handle to present to.
	Window uintptr

	// Width and Height of the backbuffers. Zero means 1.
	Width, Height int

	// Buffers is the flip-model buffer count, used as given. Zero means
	// DefaultBufferCount. Blit-model swapchains always have one buffer.
	Buffers int

	// Usage of the backbuffers. Zero means UsageRenderTargetOutput.
	Usage Usage

	// Flip requests flip-model presentation before falling back to blit.
	Flip bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1
	}
	if o.Height <= 0 {
		o.Height = 1
	}
	if o.Buffers <= 0 {
		o.Buffers = DefaultBufferCount
	}
	if o.Usage == 0 {
		o.Usage = UsageRenderTargetOutput
	}
	return o
}

func (o Options) desc(f gputypes.TextureFormat, m Model) Desc {
	d := Desc{
		Window:      o.Window,
		Width:       o.Width,
		Height:      o.Height,
		Format:      f,
		Usage:       o.Usage,
		Model:       m,
		BufferCount: 1,
		SampleCount: 1,
	}
	if m == ModelFlip {
		d.BufferCount = o.Buffers
	}
	return d
}

// Surface is a negotiated swapchain. It is owned by the caller and must be
// released with Release.
type Surface struct {
	chain   Chain
	desc    Desc
	version DXGIVersion
}

// Create negotiates a swapchain on the device behind src. The factory is
// released before Create returns; the swapchain is owned by the Surface.
func Create(src FactorySource, opts Options) (*Surface, error) {
	log := hwvideo.Logger()

	fac, err := src.Factory()
	if err != nil {
		log.Error("failed to get presentation factory", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrNoFactory, err)
	}
	defer fac.Release()

	opts = opts.withDefaults()
	version := fac.Version()
	model := ModelBlit
	if opts.Flip && version >= DXGI12 {
		model = ModelFlip
	}

	chain, accepted, attempts, err := negotiate(fac, opts, model)
	if err != nil {
		log.Error("failed to create swapchain", "attempts", attempts, "err", err)
		return nil, &NegotiationError{Attempts: attempts, Err: err}
	}

	if err := fac.MakeWindowAssociation(opts.Window, callerOwnsWindow); err != nil {
		log.Warn("failed to set window association", "err", err)
	}

	s := &Surface{chain: chain, version: version}
	s.desc, err = chain.Desc()
	if err != nil {
		// Keep the accepted description; only diagnostics depend on the
		// readback.
		s.desc = accepted
		log.Debug("failed to read back swapchain description", "err", err)
	}

	log.Info("using "+version.String(),
		"model", s.desc.Model.String(),
		"format", s.desc.Format.String(),
		"buffers", s.desc.BufferCount)
	return s, nil
}

// negotiate runs the model by format cascade. The flip model is demoted to
// blit at most once. It returns the chain with the description it was
// created from.
func negotiate(fac Factory, opts Options, model Model) (Chain, Desc, int, error) {
	log := hwvideo.Logger()
	attempts := 0
	var lastErr error
	for {
		for _, f := range Formats {
			attempts++
			d := opts.desc(f, model)
			chain, err := fac.CreateSwapchain(d)
			if err == nil {
				return chain, d, attempts, nil
			}
			log.Debug("swapchain creation failed",
				"model", model.String(), "format", f.String(), "err", err)
			lastErr = err
		}
		if model != ModelFlip {
			return nil, Desc{}, attempts, lastErr
		}
		log.Debug("failed to create flip-model swapchain, trying bitblt")
		model = ModelBlit
	}
}

// Chain returns the underlying swapchain, or nil after Release.
func (s *Surface) Chain() Chain { return s.chain }

// Desc returns the swapchain description read back after creation.
func (s *Surface) Desc() Desc { return s.desc }

// Format returns the backbuffer format.
func (s *Surface) Format() gputypes.TextureFormat { return s.desc.Format }

// Model returns the presentation model.
func (s *Surface) Model() Model { return s.desc.Model }

// BufferCount returns the number of backbuffers.
func (s *Surface) BufferCount() int { return s.desc.BufferCount }

// Window returns the target window handle.
func (s *Surface) Window() uintptr { return s.desc.Window }

// DXGIVersion returns the presentation runtime generation.
func (s *Surface) DXGIVersion() DXGIVersion { return s.version }

// Release frees the swapchain. Calling Release more than once has no effect.
func (s *Surface) Release() {
	if s.chain == nil {
		return
	}
	s.chain.Release()
	s.chain = nil
}
