// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// MaxPlanes is the largest plane count any hardware surface can carry.
const MaxPlanes = 4

// NativeFormat is the pixel format id reported by a hardware surface.
// Values are CoreVideo OSType four-character codes.
type NativeFormat uint32

// Supported native formats.
const (
	NativeNV12     NativeFormat = 0x34323076 // '420v', biplanar 4:2:0 video range
	NativeNV12Full NativeFormat = 0x34323066 // '420f', biplanar 4:2:0 full range
	NativeP010     NativeFormat = 0x78343230 // 'x420', biplanar 4:2:0 10-bit
	NativeUYVY     NativeFormat = 0x32767579 // '2vuy', packed 4:2:2
	NativeI420     NativeFormat = 0x79343230 // 'y420', planar 4:2:0
	NativeBGRA     NativeFormat = 0x42475241 // 'BGRA', packed 32-bit
)

// String returns the four-character code, or a hex literal when the value
// is not printable.
func (f NativeFormat) String() string {
	b := [4]byte{byte(f >> 24), byte(f >> 16), byte(f >> 8), byte(f)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08X", uint32(f))
		}
	}
	return string(b[:])
}

// ImageFormat is the engine-wide image format the renderer uses for a frame.
type ImageFormat int

// Image formats known to the table.
const (
	ImageNone ImageFormat = iota
	ImageNV12
	ImageP010
	ImageUYVY
	Image420P
	ImageBGR0
	ImageRGB0
	ImageVideoToolbox // opaque hardware frame; real layout is the sub-format
)

func (f ImageFormat) String() string {
	switch f {
	case ImageNone:
		return "none"
	case ImageNV12:
		return "nv12"
	case ImageP010:
		return "p010"
	case ImageUYVY:
		return "uyvy422"
	case Image420P:
		return "yuv420p"
	case ImageBGR0:
		return "bgr0"
	case ImageRGB0:
		return "rgb0"
	case ImageVideoToolbox:
		return "videotoolbox"
	default:
		return "unknown"
	}
}

// Plane describes how one plane of a surface is bound as a texture.
type Plane struct {
	// Format, Type and InternalFormat are the OpenGL pixel transfer triple.
	Format         GLenum
	Type           GLenum
	InternalFormat GLenum

	// GPUFormat is the equivalent texture format for WebGPU renderers.
	GPUFormat gputypes.TextureFormat

	// Components is the number of channels a texel carries.
	Components int

	// ShiftX and ShiftY are log2 of the plane's subsampling relative to
	// the frame size.
	ShiftX, ShiftY int
}

func (p Plane) populated() bool {
	return p.Format != 0 && p.Type != 0 && p.InternalFormat != 0
}

// Descriptor describes one supported hardware pixel format.
type Descriptor struct {
	Native  NativeFormat
	Image   ImageFormat
	Planes  int
	Plane   [MaxPlanes]Plane
	Swizzle string // empty means identity
}

// Validate checks that Planes matches the populated plane entries and that
// Swizzle is empty or exactly four characters from "rgba".
func (d Descriptor) Validate() error {
	if d.Planes < 1 || d.Planes > MaxPlanes {
		return fmt.Errorf("format %s: plane count %d out of range", d.Native, d.Planes)
	}
	for i, p := range d.Plane {
		if want := i < d.Planes; p.populated() != want {
			return fmt.Errorf("format %s: plane %d populated=%t, plane count %d",
				d.Native, i, p.populated(), d.Planes)
		}
	}
	if d.Swizzle == "" {
		return nil
	}
	if len(d.Swizzle) != 4 || strings.Trim(d.Swizzle, "rgba") != "" {
		return fmt.Errorf("format %s: invalid swizzle %q", d.Native, d.Swizzle)
	}
	return nil
}

// PopulatedPlanes returns the number of plane entries with a complete
// transfer triple.
func (d Descriptor) PopulatedPlanes() int {
	n := 0
	for _, p := range d.Plane {
		if p.populated() {
			n++
		}
	}
	return n
}

// EffectiveSwizzle returns Swizzle, or "rgba" when the descriptor has none.
func (d Descriptor) EffectiveSwizzle() string {
	if d.Swizzle == "" {
		return "rgba"
	}
	return d.Swizzle
}
