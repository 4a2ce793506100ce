// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "fmt"

// DriverType selects between the hardware driver and the software
// rasterizer shipped with the platform.
type DriverType int

const (
	DriverHardware DriverType = iota
	DriverSoftware
)

func (t DriverType) String() string {
	switch t {
	case DriverHardware:
		return "hardware"
	case DriverSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// CreateParams is one device creation attempt.
type CreateParams struct {
	Type            DriverType
	ExtendedFormats bool
	Debug           bool
	// Levels is ordered highest first; the driver picks the first it supports.
	Levels []FeatureLevel
}

func (p CreateParams) String() string {
	hi, lo := FeatureLevel(0), FeatureLevel(0)
	if len(p.Levels) > 0 {
		hi, lo = p.Levels[0], p.Levels[len(p.Levels)-1]
	}
	return fmt.Sprintf("%s %s..%s ext=%t debug=%t", p.Type, hi, lo, p.ExtendedFormats, p.Debug)
}

// Driver creates devices on one platform graphics API.
type Driver interface {
	// Name returns the driver name. It must not load the driver.
	Name() string

	// Load resolves the driver's device creation entry point. It is safe to
	// call repeatedly; resolution happens once per process. A missing
	// library reports an error wrapping ErrNotInstalled.
	Load() error

	// CreateDevice makes one creation attempt.
	CreateDevice(p CreateParams) (Handle, error)
}

// Handle is a created device owned by the negotiator until it is returned
// to the caller inside a Device.
type Handle interface {
	// FeatureLevel returns the level the driver selected.
	FeatureLevel() FeatureLevel

	// Adapter describes the physical adapter backing the device.
	Adapter() (AdapterDesc, error)

	// SetMaximumFrameLatency caps the number of queued frames.
	SetMaximumFrameLatency(frames int) error

	// Release frees the device.
	Release()
}

// AdapterFlags are adapter properties reported by the platform.
type AdapterFlags uint32

// AdapterFlagSoftware marks a software adapter (DXGI_ADAPTER_FLAG_SOFTWARE).
const AdapterFlagSoftware AdapterFlags = 2

// LUID is a locally unique adapter id.
type LUID struct {
	Low  uint32
	High int32
}

func (l LUID) String() string {
	return fmt.Sprintf("%08x%08x", uint32(l.High), l.Low)
}

// AdapterDesc identifies a physical adapter.
type AdapterDesc struct {
	Description string
	VendorID    uint32
	DeviceID    uint32
	LUID        LUID
	Flags       AdapterFlags
}

// BasicRenderDriver holds the vendor and device ids of the platform's
// built-in software renderer. When that renderer is the primary display
// adapter the software flag is not reported, so ids are matched instead.
// These ids belong to one vendor's driver and may drift.
var BasicRenderDriver = struct {
	VendorID uint32
	DeviceID uint32
}{VendorID: 0x1414, DeviceID: 0x008c}

// IsSoftware reports whether the adapter is a software renderer.
func (d AdapterDesc) IsSoftware() bool {
	if d.Flags&AdapterFlagSoftware != 0 {
		return true
	}
	return d.VendorID == BasicRenderDriver.VendorID && d.DeviceID == BasicRenderDriver.DeviceID
}
