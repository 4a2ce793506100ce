// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package d3d11 is the native Windows device driver.
//
// It binds D3D11CreateDevice from d3d11.dll at first use and calls the
// DXGI and Direct3D 11 COM interfaces through their vtables, without cgo.
// Handles expose a swapchain factory, so negotiated devices can present
// with swapchain.Create and be captured with swapchain.Capture.
//
// The driver registers itself as "d3d11" with priority 100. On other
// platforms it stays registered but unavailable, and Load reports
// device.ErrNotInstalled.
package d3d11
