// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package importer

import (
	"errors"
	"fmt"

	"github.com/gogpu/hwvideo/format"
)

// events is a shared call log across fakes.
type events []string

func (e *events) add(format string, args ...any) {
	*e = append(*e, fmt.Sprintf(format, args...))
}

type fakeGL struct {
	log     *events
	version int
	next    uint32
	deleted []uint32
	bound   map[uint32]int
	glErr   uint32
}

func newFakeGL(log *events) *fakeGL {
	return &fakeGL{log: log, version: 410, next: 1, bound: map[uint32]int{}}
}

func (g *fakeGL) Version() int { return g.version }

func (g *fakeGL) GenTextures(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.next
		g.next++
	}
	g.log.add("gen %d", n)
	return out
}

func (g *fakeGL) DeleteTextures(textures []uint32) {
	g.deleted = append(g.deleted, textures...)
	g.log.add("delete %d", len(textures))
}

func (g *fakeGL) BindTexture(target format.GLenum, texture uint32) {
	g.bound[texture]++
	g.log.add("bind %s %d", target, texture)
}

func (g *fakeGL) GetError() uint32 { return g.glErr }

type bindCall struct {
	target format.GLenum
	plane  format.Plane
	w, h   int
	index  int
}

type fakeBinder struct {
	log      *events
	current  bool
	failures map[int]error
	calls    []bindCall
}

func (b *fakeBinder) HasCurrentContext() bool { return b.current }

func (b *fakeBinder) TexImageSurface(target format.GLenum, p format.Plane, w, h int, s Surface, plane int) error {
	b.calls = append(b.calls, bindCall{target, p, w, h, plane})
	b.log.add("teximage %d", plane)
	return b.failures[plane]
}

var errCGL = errors.New("kCGLBadValue")

type fakeSurface struct {
	w, h []int
}

func (s *fakeSurface) PlaneWidth(i int) int  { return s.w[i] }
func (s *fakeSurface) PlaneHeight(i int) int { return s.h[i] }

type fakeFrame struct {
	name    string
	log     *events
	refs    int
	freed   bool
	native  format.NativeFormat
	planar  bool
	planes  int
	surface *fakeSurface
}

func (f *fakeFrame) Retain() {
	f.refs++
	f.log.add("retain %s", f.name)
}

func (f *fakeFrame) Release() {
	f.refs--
	if f.refs == 0 {
		f.freed = true
	}
	f.log.add("release %s", f.name)
}

func (f *fakeFrame) PixelFormat() format.NativeFormat { return f.native }
func (f *fakeFrame) IsPlanar() bool                   { return f.planar }
func (f *fakeFrame) PlaneCount() int                  { return f.planes }

func (f *fakeFrame) Surface() (Surface, bool) {
	if f.surface == nil {
		return nil, false
	}
	return f.surface, true
}

// frameFor builds a 64x32 frame laid out as d describes.
func frameFor(name string, log *events, d format.Descriptor) *fakeFrame {
	s := &fakeSurface{}
	for i := range d.Planes {
		p := d.Plane[i]
		s.w = append(s.w, 64>>p.ShiftX)
		s.h = append(s.h, 32>>p.ShiftY)
	}
	return &fakeFrame{
		name:    name,
		log:     log,
		refs:    1,
		native:  d.Native,
		planar:  d.Planes > 1,
		planes:  d.Planes,
		surface: s,
	}
}

func newTestImporter(log *events) (*Importer, *fakeGL, *fakeBinder) {
	gl := newFakeGL(log)
	b := &fakeBinder{log: log, current: true}
	im, err := New(gl, b, Options{})
	if err != nil {
		panic(err)
	}
	return im, gl, b
}
