// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cgl is the macOS zero-copy import path.
//
// It binds CoreVideo pixel buffers to OpenGL rectangle textures through
// CGLTexImageIOSurface2D. The OpenGL, CoreVideo and IOSurface frameworks
// are opened with purego the first time they are needed, so the package
// builds without cgo. On other systems every entry point reports
// ErrUnavailable.
//
//	im, err := cgl.NewImporter(importer.Options{Devices: devs})
//	if err != nil {
//		return err
//	}
//	defer im.Close()
//
//	buf, err := cgl.WrapPixelBuffer(ref)
//	planes, err := im.Map(buf)
//
// Context and the importer must be used from the thread that owns the
// current CGL context.
package cgl
