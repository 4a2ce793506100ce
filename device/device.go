// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "github.com/gogpu/hwvideo/swapchain"

// Report is the resolved capability of a negotiated device, suitable for
// diagnostic logging.
type Report struct {
	Driver          string
	FeatureLevel    FeatureLevel
	Adapter         AdapterDesc
	Software        bool
	ExtendedFormats bool
	Debug           bool
	// Attempts is the number of creation calls, including the successful one.
	Attempts int
}

// Device is a negotiated rendering device. It is owned by the caller and
// must be released with Release.
type Device struct {
	handle Handle
	report Report
}

// Handle returns the driver's device handle, or nil after Release.
func (d *Device) Handle() Handle {
	return d.handle
}

// Report returns the resolved capability report.
func (d *Device) Report() Report {
	return d.report
}

// FeatureLevel returns the feature level the driver selected.
func (d *Device) FeatureLevel() FeatureLevel {
	return d.report.FeatureLevel
}

// Software reports whether the device is backed by a software renderer.
func (d *Device) Software() bool {
	return d.report.Software
}

// Factory returns the presentation factory of the device, which
// swapchain.Create uses to build a swapchain. Drivers without presentation
// support report swapchain.ErrNoFactory.
func (d *Device) Factory() (swapchain.Factory, error) {
	if d.handle == nil {
		return nil, ErrReleased
	}
	src, ok := d.handle.(swapchain.FactorySource)
	if !ok {
		return nil, swapchain.ErrNoFactory
	}
	return src.Factory()
}

// Release frees the device. Calling Release more than once has no effect.
func (d *Device) Release() {
	if d.handle == nil {
		return
	}
	d.handle.Release()
	d.handle = nil
}
