// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo"
	"github.com/gogpu/hwvideo/format"
)

// Capture copies the most recently presented buffer of s into host memory.
// Only flip-model surfaces can be captured. Capture never returns a
// partially copied image.
func Capture(s *Surface) (*Image, error) {
	if s.chain == nil {
		return nil, ErrReleased
	}
	img, err := capture(s.chain)
	if err != nil {
		hwvideo.Logger().Debug("frontbuffer capture failed", "err", err)
		return nil, err
	}
	return img, nil
}

func capture(chain Chain) (*Image, error) {
	d, err := chain.Desc()
	if err != nil {
		return nil, err
	}
	if d.Model != ModelFlip {
		return nil, ErrNotFlipModel
	}

	if d.BufferCount < 1 {
		return nil, ErrNoBuffers
	}

	// In a flip chain of length n the last presented buffer is n-1.
	front, err := chain.Buffer(d.BufferCount - 1)
	if err != nil {
		return nil, err
	}
	defer front.Release()

	td := front.Desc()
	if td.SampleCount > 1 {
		return nil, ErrMultisampled
	}
	tag, err := imageFormat(td.Format)
	if err != nil {
		return nil, err
	}

	ctx, err := chain.Context()
	if err != nil {
		return nil, err
	}
	defer ctx.Release()

	staging, err := ctx.CreateStagingTexture(td)
	if err != nil {
		return nil, fmt.Errorf("swapchain: create staging texture: %w", err)
	}
	defer staging.Release()

	ctx.CopyResource(staging, front)

	m, err := ctx.Map(staging)
	if err != nil {
		return nil, fmt.Errorf("swapchain: map staging texture: %w", err)
	}
	defer ctx.Unmap(staging)

	return readRows(tag, td.Width, td.Height, m)
}

func imageFormat(f gputypes.TextureFormat) (format.ImageFormat, error) {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return format.ImageBGR0, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return format.ImageRGB0, nil
	default:
		return format.ImageNone, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// readRows packs a mapped texture into a new Image, dropping row padding.
func readRows(tag format.ImageFormat, w, h int, m Mapping) (*Image, error) {
	row := w * 4
	if m.RowPitch < row || (h > 0 && len(m.Data) < m.RowPitch*(h-1)+row) {
		return nil, fmt.Errorf("%w: %d bytes, pitch %d, %dx%d",
			ErrShortMapping, len(m.Data), m.RowPitch, w, h)
	}
	img := NewImage(tag, w, h)
	for y := range h {
		copy(img.Pix[y*img.Stride:y*img.Stride+row], m.Data[y*m.RowPitch:])
	}
	return img, nil
}
