// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package cgl

import (
	"fmt"

	"github.com/gogpu/hwvideo/format"
	"github.com/gogpu/hwvideo/importer"
)

// Context issues GL calls against the CGL context current on the calling
// thread.
type Context struct {
	l *lib
}

// NewContext resolves the frameworks. It does not require a current
// context; HasCurrentContext checks that.
func NewContext() (*Context, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return &Context{l: l}, nil
}

// Version parses GL_VERSION of the current context.
func (c *Context) Version() int {
	return parseGLVersion(c.l.glGetString(glVersion))
}

func (c *Context) GenTextures(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	tex := make([]uint32, n)
	c.l.glGenTextures(int32(n), &tex[0])
	return tex
}

func (c *Context) DeleteTextures(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	c.l.glDeleteTextures(int32(len(textures)), &textures[0])
}

func (c *Context) BindTexture(target format.GLenum, texture uint32) {
	c.l.glBindTexture(uint32(target), texture)
}

func (c *Context) GetError() uint32 {
	return c.l.glGetError()
}

// HasCurrentContext reports whether CGLGetCurrentContext returns a context.
func (c *Context) HasCurrentContext() bool {
	return c.l.cglGetCurrentContext() != 0
}

// TexImageSurface calls CGLTexImageIOSurface2D. s must come from a
// PixelBuffer of this package.
func (c *Context) TexImageSurface(target format.GLenum, p format.Plane, width, height int, s importer.Surface, plane int) error {
	ios, ok := s.(*IOSurface)
	if !ok {
		return fmt.Errorf("cgl: cannot bind surface of type %T", s)
	}
	ctx := c.l.cglGetCurrentContext()
	if ctx == 0 {
		return importer.ErrNoContext
	}
	r := c.l.cglTexImageIOSurface2D(ctx,
		uint32(target), uint32(p.InternalFormat),
		int32(width), int32(height),
		uint32(p.Format), uint32(p.Type),
		ios.ref, uint32(plane))
	if r != 0 {
		return CGLError(r)
	}
	return nil
}

// NewImporter creates an importer over the current CGL context. Download
// is used as the download hook unless opts sets one.
func NewImporter(opts importer.Options) (*importer.Importer, error) {
	c, err := NewContext()
	if err != nil {
		return nil, err
	}
	if opts.Download == nil {
		opts.Download = Download
	}
	return importer.New(c, c, opts)
}

var (
	_ importer.GL            = (*Context)(nil)
	_ importer.SurfaceBinder = (*Context)(nil)
)
