// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import "github.com/gogpu/gputypes"

var (
	planeR8 = Plane{
		Format: GLRed, Type: GLUnsignedByte, InternalFormat: GLRed,
		GPUFormat: gputypes.TextureFormatR8Unorm, Components: 1,
	}
	planeRG8 = Plane{
		Format: GLRG, Type: GLUnsignedByte, InternalFormat: GLRG,
		GPUFormat: gputypes.TextureFormatRG8Unorm, Components: 2,
	}
	planeR16 = Plane{
		Format: GLRed, Type: GLUnsignedShort, InternalFormat: GLR16,
		GPUFormat: gputypes.TextureFormatR16Unorm, Components: 1,
	}
	planeRG16 = Plane{
		Format: GLRG, Type: GLUnsignedShort, InternalFormat: GLRG16,
		GPUFormat: gputypes.TextureFormatRG16Unorm, Components: 2,
	}
)

func chroma(p Plane, sx, sy int) Plane {
	p.ShiftX, p.ShiftY = sx, sy
	return p
}

// table is the closed set of importable formats, in lookup order.
// LookupImage returns the first row for an image format, so the video-range
// NV12 row precedes the full-range one.
var table = []Descriptor{
	{
		Native: NativeNV12,
		Image:  ImageNV12,
		Planes: 2,
		Plane:  [MaxPlanes]Plane{planeR8, chroma(planeRG8, 1, 1)},
	},
	{
		Native: NativeNV12Full,
		Image:  ImageNV12,
		Planes: 2,
		Plane:  [MaxPlanes]Plane{planeR8, chroma(planeRG8, 1, 1)},
	},
	{
		Native: NativeP010,
		Image:  ImageP010,
		Planes: 2,
		Plane:  [MaxPlanes]Plane{planeR16, chroma(planeRG16, 1, 1)},
	},
	{
		Native: NativeUYVY,
		Image:  ImageUYVY,
		Planes: 1,
		Plane: [MaxPlanes]Plane{{
			Format: GLRGB422, Type: GLUnsignedShort88Apple, InternalFormat: GLRGB,
			// One RGBA8 texel holds a Cb Y0 Cr Y1 pair.
			GPUFormat: gputypes.TextureFormatRGBA8Unorm, Components: 4, ShiftX: 1,
		}},
		Swizzle: "gbra",
	},
	{
		Native: NativeI420,
		Image:  Image420P,
		Planes: 3,
		Plane:  [MaxPlanes]Plane{planeR8, chroma(planeR8, 1, 1), chroma(planeR8, 1, 1)},
	},
	{
		Native: NativeBGRA,
		Image:  ImageBGR0,
		Planes: 1,
		Plane: [MaxPlanes]Plane{{
			Format: GLBGRA, Type: GLUnsignedInt8888Rev, InternalFormat: GLRGBA,
			GPUFormat: gputypes.TextureFormatBGRA8Unorm, Components: 4,
		}},
	},
}

var byNative map[NativeFormat]*Descriptor

func init() {
	byNative = make(map[NativeFormat]*Descriptor, len(table))
	for i := range table {
		if err := table[i].Validate(); err != nil {
			panic(err)
		}
		byNative[table[i].Native] = &table[i]
	}
}

// LookupNative returns the descriptor for a native surface format.
func LookupNative(id NativeFormat) (Descriptor, bool) {
	d, ok := byNative[id]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// LookupImage returns the first descriptor whose image format is id.
func LookupImage(id ImageFormat) (Descriptor, bool) {
	for _, d := range table {
		if d.Image == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// All returns a copy of the table in lookup order.
func All() []Descriptor {
	out := make([]Descriptor, len(table))
	copy(out, table)
	return out
}
