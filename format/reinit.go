// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for a format that has no table row.
var ErrUnsupported = errors.New("format: unsupported hardware format")

// StreamParams describes a video stream as the decoder announces it.
type StreamParams struct {
	// Image is the stream's image format, ImageVideoToolbox for opaque
	// hardware frames.
	Image ImageFormat
	// SubFormat is the real layout of the hardware frames.
	SubFormat     ImageFormat
	Width, Height int
}

// Reinit resolves the image format a renderer should assume for a hardware
// stream: the sub-format, provided the table can import it. Streams that
// are not ImageVideoToolbox are rejected.
func Reinit(p StreamParams) (StreamParams, error) {
	if p.Image != ImageVideoToolbox {
		return p, fmt.Errorf("%w: %s is not a hardware stream", ErrUnsupported, p.Image)
	}
	if _, ok := LookupImage(p.SubFormat); !ok {
		return p, fmt.Errorf("%w: sub-format %s", ErrUnsupported, p.SubFormat)
	}
	p.Image = p.SubFormat
	return p, nil
}
