// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package cgl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/gogpu/hwvideo/format"
	"github.com/gogpu/hwvideo/importer"
)

const lockReadOnly = 1

// Download copies a frame into host memory. BGRA frames become
// *image.RGBA. Every YUV format in the table becomes a full-range
// *image.YCbCr; 10-bit frames are narrowed to 8 bits.
func Download(f importer.Frame) (image.Image, error) {
	b, ok := f.(*PixelBuffer)
	if !ok {
		return nil, ErrNotPixelBuffer
	}
	l := b.l

	if r := l.cvPixelBufferLockBaseAddress(b.ref, lockReadOnly); r != 0 {
		return nil, &CVReturnError{Op: "CVPixelBufferLockBaseAddress", Code: r}
	}
	defer l.cvPixelBufferUnlockBaseAddress(b.ref, lockReadOnly)

	switch nf := b.PixelFormat(); nf {
	case format.NativeBGRA:
		w := int(l.cvPixelBufferGetWidth(b.ref))
		h := int(l.cvPixelBufferGetHeight(b.ref))
		stride := int(l.cvPixelBufferGetBytesPerRow(b.ref))
		return bgraToRGBA(view(l.cvPixelBufferGetBaseAddress(b.ref), stride, h), stride, w, h)

	case format.NativeNV12, format.NativeNV12Full:
		w := int(l.cvPixelBufferGetWidthOfPlane(b.ref, 0))
		h := int(l.cvPixelBufferGetHeightOfPlane(b.ref, 0))
		ys := int(l.cvPixelBufferGetBytesPerRowOfPlane(b.ref, 0))
		cs := int(l.cvPixelBufferGetBytesPerRowOfPlane(b.ref, 1))
		ch := int(l.cvPixelBufferGetHeightOfPlane(b.ref, 1))
		luma := view(l.cvPixelBufferGetBaseAddressOfPlane(b.ref, 0), ys, h)
		chroma := view(l.cvPixelBufferGetBaseAddressOfPlane(b.ref, 1), cs, ch)
		return nv12ToYCbCr(luma, ys, chroma, cs, w, h, nf == format.NativeNV12)

	case format.NativeP010:
		w, h := b.planeSize(0)
		ys, cs := b.planeStride(0), b.planeStride(1)
		_, ch := b.planeSize(1)
		return p010ToYCbCr(b.plane(0, ys, h), ys, b.plane(1, cs, ch), cs, w, h)

	case format.NativeI420:
		w, h := b.planeSize(0)
		var planes [3][]byte
		var strides [3]int
		for i := range planes {
			_, rows := b.planeSize(i)
			strides[i] = b.planeStride(i)
			planes[i] = b.plane(i, strides[i], rows)
		}
		return i420ToYCbCr(planes, strides, w, h)

	case format.NativeUYVY:
		w := int(l.cvPixelBufferGetWidth(b.ref))
		h := int(l.cvPixelBufferGetHeight(b.ref))
		stride := int(l.cvPixelBufferGetBytesPerRow(b.ref))
		return uyvyToYCbCr(view(l.cvPixelBufferGetBaseAddress(b.ref), stride, h), stride, w, h)

	default:
		return nil, fmt.Errorf("%w: %s", ErrDownloadFormat, nf)
	}
}

func (b *PixelBuffer) planeSize(i int) (w, h int) {
	return int(b.l.cvPixelBufferGetWidthOfPlane(b.ref, uintptr(i))), int(b.l.cvPixelBufferGetHeightOfPlane(b.ref, uintptr(i)))
}

func (b *PixelBuffer) planeStride(i int) int {
	return int(b.l.cvPixelBufferGetBytesPerRowOfPlane(b.ref, uintptr(i)))
}

func (b *PixelBuffer) plane(i, stride, rows int) []byte {
	return view(b.l.cvPixelBufferGetBaseAddressOfPlane(b.ref, uintptr(i)), stride, rows)
}

// view returns rows*stride bytes at p. The view is only valid while the
// base address is locked.
func view(p unsafe.Pointer, stride, rows int) []byte {
	if p == nil || stride <= 0 || rows <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), stride*rows)
}
