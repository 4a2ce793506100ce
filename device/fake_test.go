// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"slices"
)

var errRejected = errors.New("E_INVALIDARG")

// fakeDriver simulates a platform driver. accept decides each attempt and
// returns the feature level the driver would pick.
type fakeDriver struct {
	loadErr  error
	accept   func(p CreateParams) (FeatureLevel, error)
	adapter  AdapterDesc
	descErr  error
	attempts []CreateParams
	handles  []*fakeHandle
	loads    int
}

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) Load() error {
	d.loads++
	return d.loadErr
}

func (d *fakeDriver) CreateDevice(p CreateParams) (Handle, error) {
	p.Levels = slices.Clone(p.Levels)
	d.attempts = append(d.attempts, p)
	level, err := d.accept(p)
	if err != nil {
		return nil, err
	}
	h := &fakeHandle{level: level, desc: d.adapter, descErr: d.descErr}
	d.handles = append(d.handles, h)
	return h, nil
}

type fakeHandle struct {
	level    FeatureLevel
	desc     AdapterDesc
	descErr  error
	latency  int
	released int
}

func (h *fakeHandle) FeatureLevel() FeatureLevel { return h.level }

func (h *fakeHandle) Adapter() (AdapterDesc, error) {
	if h.descErr != nil {
		return AdapterDesc{}, h.descErr
	}
	return h.desc, nil
}

func (h *fakeHandle) SetMaximumFrameLatency(frames int) error {
	h.latency = frames
	return nil
}

func (h *fakeHandle) Release() { h.released++ }

// hardwareUpTo simulates hardware supporting levels up to top, optionally
// without BGRA support, on an OS that rejects any level above osMax.
func hardwareUpTo(top, osMax FeatureLevel, bgra bool) func(CreateParams) (FeatureLevel, error) {
	return func(p CreateParams) (FeatureLevel, error) {
		if p.Type != DriverHardware || len(p.Levels) == 0 {
			return 0, errRejected
		}
		if p.Levels[0] > osMax {
			return 0, errRejected
		}
		if p.ExtendedFormats && !bgra {
			return 0, errRejected
		}
		for _, l := range p.Levels {
			if l <= top {
				return l, nil
			}
		}
		return 0, errRejected
	}
}

type attemptKey struct {
	typ DriverType
	max FeatureLevel
	ext bool
}

func keys(ps []CreateParams) []attemptKey {
	out := make([]attemptKey, len(ps))
	for i, p := range ps {
		out[i] = attemptKey{typ: p.Type, max: p.Levels[0], ext: p.ExtendedFormats}
	}
	return out
}
