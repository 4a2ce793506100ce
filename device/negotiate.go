// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"

	"github.com/gogpu/hwvideo"
)

// attempt is the working copy of a request mutated across retries.
type attempt struct {
	software bool
	ext      bool
	max, min FeatureLevel
}

func (a attempt) params(req Request) CreateParams {
	p := CreateParams{
		Type:            DriverHardware,
		ExtendedFormats: a.ext,
		Debug:           req.Debug,
		Levels:          Levels(a.max, a.min),
	}
	if a.software {
		p.Type = DriverSoftware
	}
	return p
}

// fallback is one degradation step: when applies holds after a failed
// attempt, next rewrites the attempt.
type fallback struct {
	name    string
	applies func(a attempt, req Request) bool
	next    func(a *attempt, req Request)
}

// fallbacks are evaluated in order after every failure; the first that
// applies produces the next attempt.
var fallbacks = []fallback{
	{
		// Hardware at the low end of the range may lack BGRA support.
		name:    "without extended formats",
		applies: func(a attempt, _ Request) bool { return a.ext },
		next:    func(a *attempt, _ Request) { a.ext = false },
	},
	{
		// 12_0+ devices cannot be created before Windows 10.
		name: "feature level 11_1",
		applies: func(a attempt, _ Request) bool {
			return a.max >= FeatureLevel12_0 && a.min <= FeatureLevel11_1
		},
		next: func(a *attempt, _ Request) { a.max, a.ext = FeatureLevel11_1, true },
	},
	{
		// 11_1 devices need the Windows 7 platform update.
		name: "feature level 11_0",
		applies: func(a attempt, _ Request) bool {
			return a.max >= FeatureLevel11_1 && a.min <= FeatureLevel11_0
		},
		next: func(a *attempt, _ Request) { a.max, a.ext = FeatureLevel11_0, true },
	},
	{
		name: "software driver",
		applies: func(a attempt, req Request) bool {
			return !a.software && req.AllowSoftware
		},
		next: func(a *attempt, req Request) {
			*a = attempt{software: true, ext: true, max: req.MaxLevel, min: req.MinLevel}
		},
	},
}

// Negotiate creates a device from drv, degrading req until the driver
// accepts it. On success the caller owns the returned Device.
func Negotiate(drv Driver, req Request) (*Device, error) {
	log := hwvideo.Logger().With("driver", drv.Name())

	req, err := req.Normalize()
	if err != nil {
		log.Error("no suitable feature level", "err", err)
		return nil, err
	}

	if err := drv.Load(); err != nil {
		log.Error("failed to load device driver", "err", err)
		return nil, err
	}

	a := attempt{software: req.ForceSoftware, ext: true, max: req.MaxLevel, min: req.MinLevel}
	attempts := 0
	var h Handle
	for {
		p := a.params(req)
		attempts++
		h, err = drv.CreateDevice(p)
		if err == nil {
			break
		}

		step := nextFallback(a, req)
		if step == nil {
			log.Error("failed to create device", "attempts", attempts, "err", err)
			return nil, &NegotiationError{Attempts: attempts, Err: err}
		}
		log.Debug("device creation failed, retrying",
			"attempt", p.String(), "next", step.name, "err", err)
		step.next(&a, req)
	}

	dev, err := finish(h, drv.Name(), a, req, attempts)
	if err != nil {
		h.Release()
		log.Error("failed to introspect device", "err", err)
		return nil, err
	}
	return dev, nil
}

func nextFallback(a attempt, req Request) *fallback {
	for i := range fallbacks {
		if fallbacks[i].applies(a, req) {
			return &fallbacks[i]
		}
	}
	return nil
}

// finish introspects a freshly created device and builds the caller's view.
func finish(h Handle, driver string, a attempt, req Request, attempts int) (*Device, error) {
	log := hwvideo.Logger().With("driver", driver)

	desc, err := h.Adapter()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntrospection, err)
	}

	if err := h.SetMaximumFrameLatency(req.MaxFrameLatency); err != nil {
		log.Warn("failed to set maximum frame latency", "frames", req.MaxFrameLatency, "err", err)
	}

	r := Report{
		Driver:          driver,
		FeatureLevel:    h.FeatureLevel(),
		Adapter:         desc,
		Software:        a.software || desc.IsSoftware(),
		ExtendedFormats: a.ext,
		Debug:           req.Debug,
		Attempts:        attempts,
	}

	log.Info("using feature level", "feature_level", r.FeatureLevel.String())
	log.Info("using adapter",
		"device", desc.Description,
		"vendor_id", fmt.Sprintf("0x%04x", desc.VendorID),
		"device_id", fmt.Sprintf("0x%04x", desc.DeviceID),
		"luid", desc.LUID.String())
	if r.Software {
		if req.ForceSoftware {
			log.Info("using a software adapter")
		} else {
			log.Warn("using a software adapter")
		}
	}

	return &Device{handle: h, report: r}, nil
}
