// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cgl

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrUnavailable is returned when the OpenGL, CoreVideo or IOSurface
	// framework cannot be opened.
	ErrUnavailable = errors.New("cgl: OpenGL or CoreVideo framework not available")

	// ErrNotPixelBuffer is returned for frames this package did not wrap.
	ErrNotPixelBuffer = errors.New("cgl: frame is not a CoreVideo pixel buffer")

	// ErrDownloadFormat is returned by Download for formats it cannot
	// convert.
	ErrDownloadFormat = errors.New("cgl: download not supported for pixel format")
)

var cglErrorNames = map[int32]string{
	10000: "kCGLBadAttribute",
	10001: "kCGLBadProperty",
	10002: "kCGLBadPixelFormat",
	10003: "kCGLBadRendererInfo",
	10004: "kCGLBadContext",
	10005: "kCGLBadDrawable",
	10006: "kCGLBadDisplay",
	10007: "kCGLBadState",
	10008: "kCGLBadValue",
	10009: "kCGLBadMatch",
	10010: "kCGLBadEnumeration",
	10011: "kCGLBadOffScreen",
	10012: "kCGLBadFullScreen",
	10013: "kCGLBadWindow",
	10014: "kCGLBadAddress",
	10015: "kCGLBadCodeModule",
	10016: "kCGLBadAlloc",
	10017: "kCGLBadConnection",
}

// CGLError is a non-zero CGLError code.
type CGLError int32

func (e CGLError) Error() string {
	if name, ok := cglErrorNames[int32(e)]; ok {
		return "cgl: " + name
	}
	return fmt.Sprintf("cgl: error %d", int32(e))
}

// CVReturnError is a failed CoreVideo call.
type CVReturnError struct {
	Op   string
	Code int32
}

func (e *CVReturnError) Error() string {
	return fmt.Sprintf("cgl: %s: CVReturn %d", e.Op, e.Code)
}
