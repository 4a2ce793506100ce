// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu is a portable device driver built on the gogpu/wgpu HAL.
//
// It lets device negotiation run on platforms without Direct3D 11. The
// hardware path opens a GPU adapter of a registered HAL backend (Vulkan,
// Metal, DX12); the software path opens the CPU adapter of the software
// backend. HAL adapters do not report Direct3D feature levels, so every
// adapter is treated as 11_0 capable.
//
// # Registration
//
// The driver registers itself as "wgpu" when this package is imported.
// The HAL backends it drives must be imported separately:
//
//	import (
//	    _ "github.com/gogpu/hwvideo/backend/wgpu"
//	    _ "github.com/gogpu/wgpu/hal/vulkan"
//	)
//
//	dev, err := device.NegotiateByName("wgpu", device.Request{AllowSoftware: true})
//
// # Presentation
//
// Handles do not expose a swapchain factory, so Device.Factory reports
// swapchain.ErrNoFactory. Handles expose the HAL device and queue for
// rendering, and compile sampling programs into shader modules.
package wgpu
