// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render hands a negotiated device and surface to renderers that
// consume gpucontext.DeviceProvider.
//
// The renderer receives the device; it never creates one. A typical
// output initializes like this:
//
//	dev, err := device.NegotiateBest(device.Request{AllowSoftware: true})
//	if err != nil {
//	    return render.NullDeviceHandle{}
//	}
//	sc, err := swapchain.Create(dev, swapchain.Options{Window: hwnd, Flip: true})
//	if err != nil {
//	    dev.Release()
//	    return render.NullDeviceHandle{}
//	}
//	return render.NewProvider(dev, sc)
package render
