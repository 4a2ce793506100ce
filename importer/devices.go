// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package importer

import (
	"image"
	"sync"
)

// DownloadFunc copies a hardware frame into host memory.
type DownloadFunc func(f Frame) (image.Image, error)

// DeviceContext is published by an importer so a decoder can find the
// hardware API it renders with.
type DeviceContext struct {
	// API names the hardware decoding API, e.g. "videotoolbox".
	API string
	// Download copies a frame to host memory. It may be nil.
	Download DownloadFunc
}

// Devices is a set of published device contexts shared between the
// renderer and the decoder.
type Devices struct {
	mu   sync.Mutex
	list []*DeviceContext
}

// Add publishes ctx.
func (d *Devices) Add(ctx *DeviceContext) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.list = append(d.list, ctx)
}

// Remove withdraws ctx. Removing an unknown context has no effect.
func (d *Devices) Remove(ctx *DeviceContext) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range d.list {
		if c == ctx {
			d.list = append(d.list[:i], d.list[i+1:]...)
			return
		}
	}
}

// Lookup returns the first published context for api.
func (d *Devices) Lookup(api string) (*DeviceContext, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.list {
		if c.API == api {
			return c, true
		}
	}
	return nil, false
}
