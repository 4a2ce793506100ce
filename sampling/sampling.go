// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sampling generates fragment shaders that read imported plane
// sets.
//
// Imported planes are rectangle textures addressed in pixels, so the
// generated WGSL uses textureLoad at the fragment position scaled by each
// plane's subsampling, gathers the plane components into one vector and
// applies the format's swizzle. Color conversion is left to the renderer.
package sampling

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/gogpu/hwvideo/format"
	"github.com/gogpu/naga"
)

//go:embed shaders/planes.wgsl.tmpl
var planesSource string

var planesTemplate = template.Must(template.New("planes").Parse(planesSource))

// EntryPoint is the fragment entry point of generated shaders.
const EntryPoint = "fs_main"

type planeData struct {
	Index          int
	ScaleX, ScaleY string
}

type shaderData struct {
	Native   string
	Planes   []planeData
	Channels string
	Swizzle  string
	Identity bool
}

// Generate returns WGSL that samples a plane set described by d. Plane i is
// bound at group 0, binding i.
func Generate(d format.Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	data := shaderData{
		Native:   d.Native.String(),
		Swizzle:  d.EffectiveSwizzle(),
		Identity: d.EffectiveSwizzle() == "rgba",
	}
	var channels []string
	for i := range d.Planes {
		p := d.Plane[i]
		data.Planes = append(data.Planes, planeData{
			Index:  i,
			ScaleX: scale(p.ShiftX),
			ScaleY: scale(p.ShiftY),
		})
		for c := range p.Components {
			channels = append(channels, fmt.Sprintf("t%d.%c", i, "rgba"[c]))
		}
	}
	if len(channels) > 4 {
		return "", fmt.Errorf("sampling: %s has %d components", d.Native, len(channels))
	}
	for len(channels) < 3 {
		channels = append(channels, "0.0")
	}
	if len(channels) < 4 {
		channels = append(channels, "1.0")
	}
	data.Channels = strings.Join(channels, ", ")

	var b strings.Builder
	if err := planesTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("sampling: %w", err)
	}
	return b.String(), nil
}

// scale formats 1/2^shift as a WGSL float literal.
func scale(shift int) string {
	s := strconv.FormatFloat(math.Ldexp(1, -shift), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// Program is a generated and compiled shader.
type Program struct {
	Native format.NativeFormat
	Source string
	SPIRV  []uint32
}

// Cache compiles each format's program once.
type Cache struct {
	mu       sync.Mutex
	programs map[format.NativeFormat]*Program
}

// Get returns the program for d, compiling it on first use. Failures are
// not cached.
func (c *Cache) Get(d format.Descriptor) (*Program, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.programs[d.Native]; ok {
		return p, nil
	}
	src, err := Generate(d)
	if err != nil {
		return nil, err
	}
	words, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("sampling: %s: %w", d.Native, err)
	}
	if c.programs == nil {
		c.programs = make(map[format.NativeFormat]*Program)
	}
	p := &Program{Native: d.Native, Source: src, SPIRV: words}
	c.programs[d.Native] = p
	return p, nil
}
