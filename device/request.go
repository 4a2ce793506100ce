// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "fmt"

// DefaultMaxFrameLatency is the in-flight frame cap applied to every
// negotiated device when the request leaves MaxFrameLatency unset.
const DefaultMaxFrameLatency = 3

// Request describes the device the caller would like.
type Request struct {
	// MaxLevel and MinLevel bound the feature levels offered to the driver.
	// Unset MaxLevel means MaxFeatureLevel, unset MinLevel means
	// MinFeatureLevel.
	MaxLevel FeatureLevel
	MinLevel FeatureLevel

	// Debug requests driver-side validation instrumentation.
	Debug bool

	// ForceSoftware skips the hardware driver entirely.
	ForceSoftware bool

	// AllowSoftware permits falling back to the software driver after
	// every hardware attempt failed.
	AllowSoftware bool

	// MaxFrameLatency caps queued frames. Zero means DefaultMaxFrameLatency.
	MaxFrameLatency int
}

// Normalize applies the defaulting rule and validates the range.
func (r Request) Normalize() (Request, error) {
	if r.MaxLevel == 0 {
		r.MaxLevel = MaxFeatureLevel
	}
	if r.MinLevel == 0 {
		r.MinLevel = MinFeatureLevel
	}
	if r.MaxFrameLatency <= 0 {
		r.MaxFrameLatency = DefaultMaxFrameLatency
	}
	if r.MaxLevel < r.MinLevel || len(Levels(r.MaxLevel, r.MinLevel)) == 0 {
		return r, fmt.Errorf("%w: max %s, min %s", ErrNoFeatureLevel, r.MaxLevel, r.MinLevel)
	}
	return r, nil
}
