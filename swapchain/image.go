// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"image"
	"image/color"

	"github.com/gogpu/hwvideo/format"
)

// Image is a captured frame with tightly packed 4-byte pixels. The fourth
// byte of each pixel is padding and reads as opaque.
type Image struct {
	// Format is format.ImageBGR0 or format.ImageRGB0.
	Format format.ImageFormat
	Pix    []byte
	// Stride is Width*4.
	Stride int
	Rect   image.Rectangle
}

// NewImage allocates a zeroed image.
func NewImage(f format.ImageFormat, w, h int) *Image {
	return &Image{
		Format: f,
		Pix:    make([]byte, w*h*4),
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y) in RGBA order.
func (p *Image) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
	s := p.Pix[i : i+4 : i+4]
	if p.Format == format.ImageBGR0 {
		return color.RGBA{R: s[2], G: s[1], B: s[0], A: 0xff}
	}
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

// RGBA converts the image to an opaque *image.RGBA.
func (p *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, p.Rect.Dx(), p.Rect.Dy()))
	for i := 0; i+4 <= len(p.Pix); i += 4 {
		s, d := p.Pix[i:i+4:i+4], out.Pix[i:i+4:i+4]
		if p.Format == format.ImageBGR0 {
			d[0], d[1], d[2] = s[2], s[1], s[0]
		} else {
			d[0], d[1], d[2] = s[0], s[1], s[2]
		}
		d[3] = 0xff
	}
	return out
}
