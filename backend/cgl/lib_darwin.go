// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package cgl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/gogpu/hwvideo/internal/dynlib"
)

// lib holds the framework entry points. Pointers to Core Foundation
// objects are passed as uintptr.
type lib struct {
	glGenTextures          func(n int32, textures *uint32)
	glDeleteTextures       func(n int32, textures *uint32)
	glBindTexture          func(target, texture uint32)
	glGetError             func() uint32
	glGetString            func(name uint32) string
	cglGetCurrentContext   func() uintptr
	cglTexImageIOSurface2D func(ctx uintptr, target, internalFormat uint32, width, height int32, format, typ uint32, surface uintptr, plane uint32) int32

	cvPixelBufferRetain                func(buf uintptr) uintptr
	cvPixelBufferRelease               func(buf uintptr)
	cvPixelBufferGetPixelFormatType    func(buf uintptr) uint32
	cvPixelBufferIsPlanar              func(buf uintptr) bool
	cvPixelBufferGetPlaneCount         func(buf uintptr) uintptr
	cvPixelBufferGetIOSurface          func(buf uintptr) uintptr
	cvPixelBufferLockBaseAddress       func(buf uintptr, flags uint64) int32
	cvPixelBufferUnlockBaseAddress     func(buf uintptr, flags uint64) int32
	cvPixelBufferGetWidth              func(buf uintptr) uintptr
	cvPixelBufferGetHeight             func(buf uintptr) uintptr
	cvPixelBufferGetBaseAddress        func(buf uintptr) unsafe.Pointer
	cvPixelBufferGetBytesPerRow        func(buf uintptr) uintptr
	cvPixelBufferGetWidthOfPlane       func(buf, plane uintptr) uintptr
	cvPixelBufferGetHeightOfPlane      func(buf, plane uintptr) uintptr
	cvPixelBufferGetBaseAddressOfPlane func(buf, plane uintptr) unsafe.Pointer
	cvPixelBufferGetBytesPerRowOfPlane func(buf, plane uintptr) uintptr

	ioSurfaceGetWidth         func(s uintptr) uintptr
	ioSurfaceGetHeight        func(s uintptr) uintptr
	ioSurfaceGetWidthOfPlane  func(s, plane uintptr) uintptr
	ioSurfaceGetHeightOfPlane func(s, plane uintptr) uintptr
	ioSurfaceGetPlaneCount    func(s uintptr) uintptr
}

type symbol struct {
	name string
	fptr any
}

type framework struct {
	paths   []string
	symbols []symbol
}

func (l *lib) frameworks() []framework {
	return []framework{
		{
			paths: []string{
				"/System/Library/Frameworks/OpenGL.framework/OpenGL",
				"/System/Library/Frameworks/OpenGL.framework/Versions/A/OpenGL",
			},
			symbols: []symbol{
				{"glGenTextures", &l.glGenTextures},
				{"glDeleteTextures", &l.glDeleteTextures},
				{"glBindTexture", &l.glBindTexture},
				{"glGetError", &l.glGetError},
				{"glGetString", &l.glGetString},
				{"CGLGetCurrentContext", &l.cglGetCurrentContext},
				{"CGLTexImageIOSurface2D", &l.cglTexImageIOSurface2D},
			},
		},
		{
			paths: []string{
				"/System/Library/Frameworks/CoreVideo.framework/CoreVideo",
				"/System/Library/Frameworks/CoreVideo.framework/Versions/A/CoreVideo",
			},
			symbols: []symbol{
				{"CVPixelBufferRetain", &l.cvPixelBufferRetain},
				{"CVPixelBufferRelease", &l.cvPixelBufferRelease},
				{"CVPixelBufferGetPixelFormatType", &l.cvPixelBufferGetPixelFormatType},
				{"CVPixelBufferIsPlanar", &l.cvPixelBufferIsPlanar},
				{"CVPixelBufferGetPlaneCount", &l.cvPixelBufferGetPlaneCount},
				{"CVPixelBufferGetIOSurface", &l.cvPixelBufferGetIOSurface},
				{"CVPixelBufferLockBaseAddress", &l.cvPixelBufferLockBaseAddress},
				{"CVPixelBufferUnlockBaseAddress", &l.cvPixelBufferUnlockBaseAddress},
				{"CVPixelBufferGetWidth", &l.cvPixelBufferGetWidth},
				{"CVPixelBufferGetHeight", &l.cvPixelBufferGetHeight},
				{"CVPixelBufferGetBaseAddress", &l.cvPixelBufferGetBaseAddress},
				{"CVPixelBufferGetBytesPerRow", &l.cvPixelBufferGetBytesPerRow},
				{"CVPixelBufferGetWidthOfPlane", &l.cvPixelBufferGetWidthOfPlane},
				{"CVPixelBufferGetHeightOfPlane", &l.cvPixelBufferGetHeightOfPlane},
				{"CVPixelBufferGetBaseAddressOfPlane", &l.cvPixelBufferGetBaseAddressOfPlane},
				{"CVPixelBufferGetBytesPerRowOfPlane", &l.cvPixelBufferGetBytesPerRowOfPlane},
			},
		},
		{
			paths: []string{
				"/System/Library/Frameworks/IOSurface.framework/IOSurface",
				"/System/Library/Frameworks/IOSurface.framework/Versions/A/IOSurface",
			},
			symbols: []symbol{
				{"IOSurfaceGetWidth", &l.ioSurfaceGetWidth},
				{"IOSurfaceGetHeight", &l.ioSurfaceGetHeight},
				{"IOSurfaceGetWidthOfPlane", &l.ioSurfaceGetWidthOfPlane},
				{"IOSurfaceGetHeightOfPlane", &l.ioSurfaceGetHeightOfPlane},
				{"IOSurfaceGetPlaneCount", &l.ioSurfaceGetPlaneCount},
			},
		},
	}
}

var libs = dynlib.New(loadLib)

func loadLib() (*lib, error) {
	l := new(lib)
	for _, fw := range l.frameworks() {
		handle, path, err := dynlib.FirstExisting(fw.paths, func(p string) (uintptr, error) {
			return purego.Dlopen(p, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", dynlib.ErrNotFound, err)
		}
		for _, s := range fw.symbols {
			sym, err := purego.Dlsym(handle, s.name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s in %s: %w", dynlib.ErrNotFound, s.name, path, err)
			}
			purego.RegisterFunc(s.fptr, sym)
		}
	}
	return l, nil
}

func load() (*lib, error) {
	l, err := libs.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return l, nil
}

// Available reports whether the frameworks and every entry point resolved.
func Available() bool {
	return libs.Available()
}
