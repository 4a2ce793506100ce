// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device negotiates a GPU rendering device under uncertain driver
// and OS capability.
//
// A [Request] names a feature level range and the optional capabilities the
// caller would like. [Negotiate] asks the [Driver] for a device and, each time
// the driver refuses, degrades the request one step:
//
//  1. drop extended (BGRA) format support at the same feature level range;
//  2. lower a 12_0+ maximum to 11_1, re-enabling extended formats;
//  3. lower an 11_1+ maximum to 11_0, re-enabling extended formats;
//  4. switch to the software driver with the original range, when allowed.
//
// Negotiation stops at the first success or when no step applies, in which
// case the returned *NegotiationError carries the last driver error. Callers
// never see the intermediate failures; they are logged at debug level.
//
// After a device is created, its maximum frame latency is capped, its adapter
// is introspected and the device is classified as software-backed when the
// adapter says so or when it matches the built-in software renderer's ids.
//
// Drivers for specific platforms live in backend/d3d11 and backend/wgpu and
// register themselves in the package [Registry].
package device
