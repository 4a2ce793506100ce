// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package importer

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrGLVersion is returned by New when the context is older than
	// OpenGL 3.0, which lacks core rectangle textures.
	ErrGLVersion = errors.New("importer: need OpenGL 3.0 or newer for rectangle textures")

	// ErrNoContext is returned by New when no surface-capable GL context
	// is current.
	ErrNoContext = errors.New("importer: no current surface-capable GL context")

	// ErrNoSurface is returned by Map for a frame without a shareable
	// surface. Zero-copy import is impossible for such frames.
	ErrNoSurface = errors.New("importer: frame has no shareable surface")

	// ErrUnsupportedFormat is returned by Map for a surface format without
	// a table entry.
	ErrUnsupportedFormat = errors.New("importer: unsupported surface format")

	// ErrClosed is returned when using a closed importer.
	ErrClosed = errors.New("importer: closed")
)

// PlaneError reports a plane whose texture could not be bound. The rest of
// the frame is still mapped.
type PlaneError struct {
	Plane int
	// GLError is the value of glGetError after the failure.
	GLError uint32
	Err     error
}

func (e *PlaneError) Error() string {
	return fmt.Sprintf("importer: plane %d: %v (gl error 0x%x)", e.Plane, e.Err, e.GLError)
}

func (e *PlaneError) Unwrap() error { return e.Err }
