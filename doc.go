// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hwvideo provides the device acquisition and zero-copy frame import
// layer of a hardware-accelerated video output.
//
// # Overview
//
// A video output that renders hardware-decoded frames on the GPU needs two
// things before the first frame can be shown: a rendering device with a
// presentation swapchain, and a way to bind decoded surfaces as textures
// without copying pixels through the CPU. hwvideo covers both:
//
//   - device negotiates a rendering device from a ranked capability request,
//     degrading feature level, format support and driver type until one
//     succeeds.
//   - swapchain negotiates a presentation surface (flip model or blit model,
//     BGRA or RGBA) and captures the last presented frame.
//   - importer binds each plane of a hardware video surface to a reusable
//     rectangle texture, using the static table in package format.
//
// Platform bindings live under backend/: backend/d3d11 (Windows, Direct3D 11
// and DXGI), backend/cgl (macOS, CoreVideo and CGL) and backend/wgpu (any
// platform supported by gogpu/wgpu).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/hwvideo/backend/d3d11"
//	    "github.com/gogpu/hwvideo/device"
//	    "github.com/gogpu/hwvideo/swapchain"
//	)
//
//	dev, err := device.Negotiate(d3d11.NewDriver(), device.Request{AllowSoftware: true})
//	if err != nil {
//	    // fall back to a non-accelerated output
//	}
//	defer dev.Release()
//
//	sc, err := swapchain.Create(dev, swapchain.Options{Window: hwnd, Flip: true})
//
// # Logging
//
// hwvideo is silent by default. Call [SetLogger] to receive retry, fallback
// and resolved-configuration messages from every sub-package.
//
// # Threading
//
// All operations are synchronous and must run on the goroutine that owns the
// rendering context (usually locked to an OS thread with
// runtime.LockOSThread). Only [SetLogger] and [Logger] are safe for
// concurrent use.
package hwvideo
