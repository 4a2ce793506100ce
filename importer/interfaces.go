// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package importer

import "github.com/gogpu/hwvideo/format"

// GL is the subset of OpenGL the importer uses.
type GL interface {
	// Version returns the context version as major*100 + minor*10.
	Version() int
	GenTextures(n int) []uint32
	DeleteTextures(textures []uint32)
	BindTexture(target format.GLenum, texture uint32)
	GetError() uint32
}

// SurfaceBinder attaches surface planes to the bound texture.
type SurfaceBinder interface {
	// HasCurrentContext reports whether a context able to bind surfaces is
	// current on the calling thread.
	HasCurrentContext() bool

	// TexImageSurface binds plane of s to the texture bound at target.
	TexImageSurface(target format.GLenum, p format.Plane, width, height int, s Surface, plane int) error
}

// Frame is a reference-counted decoded hardware frame.
type Frame interface {
	Retain()
	Release()

	PixelFormat() format.NativeFormat
	IsPlanar() bool
	PlaneCount() int

	// Surface returns the shareable surface backing the frame.
	Surface() (Surface, bool)
}

// Surface is a shareable GPU surface.
type Surface interface {
	PlaneWidth(plane int) int
	PlaneHeight(plane int) int
}
