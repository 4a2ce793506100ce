// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package format holds the static table that describes how each hardware
// surface pixel format is imported into the GPU without copying.
//
// Each [Descriptor] names the native format id reported by the decoder's
// surface, the engine-wide [ImageFormat] the renderer treats the frame as,
// the number of planes, and for every plane the OpenGL transfer triple
// (format, type, internal format) plus the matching gputypes texture format
// for WebGPU renderers. An optional 4-character swizzle maps the texture's
// RGBA channel order to the display order.
//
// The table is closed and read-only. Lookups never fail loudly: an unknown
// format reports ok == false, and callers reject the stream or frame.
package format
