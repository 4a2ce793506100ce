// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package importer

import (
	"fmt"

	"github.com/gogpu/hwvideo"
	"github.com/gogpu/hwvideo/format"
)

// API is the name under which importers publish their device context.
const API = "videotoolbox"

// Target is the texture target of every imported plane. Surfaces are not
// guaranteed power-of-two sized, so planes use pixel-addressed rectangle
// textures.
const Target = format.GLTextureRectangle

// Options configures New.
type Options struct {
	// Devices receives the importer's device context. It may be nil.
	Devices *Devices
	// Download is published with the device context. It may be nil.
	Download DownloadFunc
}

// Plane is one bound plane of a mapped frame.
type Plane struct {
	Texture uint32
	Target  format.GLenum
	Width   int
	Height  int
	Format  format.Plane
}

// PlaneSet is a mapped frame. It stays valid until the next Map or Close.
type PlaneSet struct {
	Image  format.ImageFormat
	Planes []Plane
	// Swizzle is the descriptor's swizzle, copied verbatim. Empty means
	// identity.
	Swizzle string
	// Errors holds a *PlaneError for every plane that failed to bind.
	Errors []error
}

// Importer maps hardware frames to textures. It must only be used from the
// thread that owns the GL context.
type Importer struct {
	gl       GL
	binder   SurfaceBinder
	textures []uint32
	frame    Frame
	devices  *Devices
	ctx      *DeviceContext
	closed   bool
}

// New checks the GL context and allocates the texture pool.
func New(gl GL, binder SurfaceBinder, opts Options) (*Importer, error) {
	log := hwvideo.Logger()

	if v := gl.Version(); v < 300 {
		log.Error("need >= OpenGL 3.0 for core rectangle texture support", "version", v)
		return nil, ErrGLVersion
	}
	if !binder.HasCurrentContext() {
		log.Error("no current CGL context")
		return nil, ErrNoContext
	}

	im := &Importer{
		gl:       gl,
		binder:   binder,
		textures: gl.GenTextures(format.MaxPlanes),
		devices:  opts.Devices,
	}
	if len(im.textures) != format.MaxPlanes {
		n := len(im.textures)
		gl.DeleteTextures(im.textures)
		return nil, fmt.Errorf("importer: allocated %d of %d textures", n, format.MaxPlanes)
	}

	if im.devices != nil {
		im.ctx = &DeviceContext{API: API, Download: opts.Download}
		im.devices.Add(im.ctx)
	}
	return im, nil
}

// Textures returns the texture pool. The names are stable for the life of
// the importer.
func (im *Importer) Textures() []uint32 {
	return im.textures
}

// Map binds every plane of f. The previously mapped frame is released and
// f is retained until the next Map or Close.
//
// A plane that fails to bind is logged and reported in PlaneSet.Errors;
// Map still succeeds. Map panics if the frame's plane layout contradicts
// the format table.
func (im *Importer) Map(f Frame) (*PlaneSet, error) {
	if im.closed {
		return nil, ErrClosed
	}
	log := hwvideo.Logger()

	if f != im.frame {
		if im.frame != nil {
			im.frame.Release()
		}
		im.frame = f
		f.Retain()
	}

	s, ok := f.Surface()
	if !ok {
		log.Error("frame has no IOSurface")
		return nil, ErrNoSurface
	}

	d, ok := format.LookupNative(f.PixelFormat())
	if !ok {
		log.Error("frame has unsupported format type", "format", f.PixelFormat().String())
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.PixelFormat())
	}

	planar, planes := f.IsPlanar(), f.PlaneCount()
	if !((planar && planes == d.Planes) || d.Planes == 1) {
		panic(fmt.Sprintf("importer: %s frame reports planar=%t with %d planes, table has %d",
			d.Native, planar, planes, d.Planes))
	}

	out := &PlaneSet{
		Image:   d.Image,
		Planes:  make([]Plane, d.Planes),
		Swizzle: d.Swizzle,
	}
	for i := range d.Planes {
		p := d.Plane[i]
		w, h := s.PlaneWidth(i), s.PlaneHeight(i)

		im.gl.BindTexture(Target, im.textures[i])
		if err := im.binder.TexImageSurface(Target, p, w, h, s, i); err != nil {
			perr := &PlaneError{Plane: i, GLError: im.gl.GetError(), Err: err}
			log.Warn("error creating IOSurface texture", "plane", i, "err", err,
				"gl_error", fmt.Sprintf("0x%x", perr.GLError))
			out.Errors = append(out.Errors, perr)
		}
		im.gl.BindTexture(Target, 0)

		out.Planes[i] = Plane{
			Texture: im.textures[i],
			Target:  Target,
			Width:   w,
			Height:  h,
			Format:  p,
		}
	}
	return out, nil
}

// Close releases the held frame, frees the texture pool and withdraws the
// device context. Calling Close more than once has no effect.
func (im *Importer) Close() {
	if im.closed {
		return
	}
	im.closed = true

	if im.frame != nil {
		im.frame.Release()
		im.frame = nil
	}
	im.gl.DeleteTextures(im.textures)
	im.textures = nil

	if im.devices != nil {
		im.devices.Remove(im.ctx)
	}
}
