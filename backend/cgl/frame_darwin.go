// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package cgl

import (
	"errors"

	"github.com/gogpu/hwvideo/format"
	"github.com/gogpu/hwvideo/importer"
)

// PixelBuffer is a CVPixelBufferRef decoded by VideoToolbox.
type PixelBuffer struct {
	l   *lib
	ref uintptr
}

// WrapPixelBuffer wraps ref without taking a reference. The caller's
// reference must outlive the wrapper unless Retain is called.
func WrapPixelBuffer(ref uintptr) (*PixelBuffer, error) {
	if ref == 0 {
		return nil, errors.New("cgl: nil pixel buffer")
	}
	l, err := load()
	if err != nil {
		return nil, err
	}
	return &PixelBuffer{l: l, ref: ref}, nil
}

// Ref returns the CVPixelBufferRef.
func (b *PixelBuffer) Ref() uintptr { return b.ref }

func (b *PixelBuffer) Retain()  { b.l.cvPixelBufferRetain(b.ref) }
func (b *PixelBuffer) Release() { b.l.cvPixelBufferRelease(b.ref) }

func (b *PixelBuffer) PixelFormat() format.NativeFormat {
	return format.NativeFormat(b.l.cvPixelBufferGetPixelFormatType(b.ref))
}

func (b *PixelBuffer) IsPlanar() bool { return b.l.cvPixelBufferIsPlanar(b.ref) }

func (b *PixelBuffer) PlaneCount() int {
	return int(b.l.cvPixelBufferGetPlaneCount(b.ref))
}

// Surface returns the IOSurface backing the buffer. Buffers allocated
// without IOSurface backing report false.
func (b *PixelBuffer) Surface() (importer.Surface, bool) {
	s := b.l.cvPixelBufferGetIOSurface(b.ref)
	if s == 0 {
		return nil, false
	}
	return &IOSurface{l: b.l, ref: s}, true
}

// IOSurface is an IOSurfaceRef owned by a pixel buffer.
type IOSurface struct {
	l   *lib
	ref uintptr
}

// PlaneWidth returns the width of plane. A non-planar surface reports its
// full width for plane 0.
func (s *IOSurface) PlaneWidth(plane int) int {
	if plane == 0 && s.l.ioSurfaceGetPlaneCount(s.ref) == 0 {
		return int(s.l.ioSurfaceGetWidth(s.ref))
	}
	return int(s.l.ioSurfaceGetWidthOfPlane(s.ref, uintptr(plane)))
}

// PlaneHeight returns the height of plane.
func (s *IOSurface) PlaneHeight(plane int) int {
	if plane == 0 && s.l.ioSurfaceGetPlaneCount(s.ref) == 0 {
		return int(s.l.ioSurfaceGetHeight(s.ref))
	}
	return int(s.l.ioSurfaceGetHeightOfPlane(s.ref, uintptr(plane)))
}

var (
	_ importer.Frame   = (*PixelBuffer)(nil)
	_ importer.Surface = (*IOSurface)(nil)
)
