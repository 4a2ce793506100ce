// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/internal/dynlib"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/software"
)

// adapterLevel is the feature level assumed for every HAL adapter.
const adapterLevel = device.FeatureLevel11_0

// Errors returned by CreateDevice.
var (
	ErrNoAdapter      = errors.New("wgpu: no suitable adapter")
	ErrLevelTooHigh   = errors.New("wgpu: requested feature levels above 11_0")
	ErrNoBGRA         = errors.New("wgpu: adapter cannot sample BGRA textures")
	errNoHardwareHAL  = errors.New("wgpu: hardware HAL backend not registered")
	errNilHALInstance = errors.New("wgpu: backend returned nil instance")
)

// Driver creates devices through the wgpu HAL.
type Driver struct {
	name     string
	hardware *dynlib.Loader[hal.Backend]
	software hal.Backend
}

// NewDriver returns a driver whose hardware path uses the HAL backend
// registered for variant. The software path uses the CPU backend.
func NewDriver(variant gputypes.Backend) *Driver {
	return newDriver("wgpu-"+variant.String(), func() (hal.Backend, error) {
		b, ok := hal.GetBackend(variant)
		if !ok {
			return nil, errNoHardwareHAL
		}
		return b, nil
	}, software.API{})
}

func newDriver(name string, hardware func() (hal.Backend, error), sw hal.Backend) *Driver {
	return &Driver{
		name:     name,
		hardware: dynlib.New(hardware),
		software: sw,
	}
}

// Name returns the driver name.
func (d *Driver) Name() string { return d.name }

// Load resolves the hardware HAL backend.
func (d *Driver) Load() error {
	if _, err := d.hardware.Get(); err != nil {
		return fmt.Errorf("%w: %s: %w", device.ErrNotInstalled, d.name, err)
	}
	return nil
}

// Available reports whether the hardware HAL backend is registered.
func (d *Driver) Available() bool {
	return d.hardware.Available()
}

// CreateDevice opens one adapter matching p.
func (d *Driver) CreateDevice(p device.CreateParams) (device.Handle, error) {
	level, ok := pickLevel(p.Levels)
	if !ok {
		return nil, ErrLevelTooHigh
	}

	backend := d.software
	if p.Type == device.DriverHardware {
		b, err := d.hardware.Get()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", device.ErrNotInstalled, err)
		}
		backend = b
	}

	flags := gputypes.InstanceFlagsNone
	if p.Debug {
		flags = gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    flags,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	if instance == nil {
		return nil, errNilHALInstance
	}

	adapters := instance.EnumerateAdapters(nil)
	selected := selectAdapter(adapters, p.Type)
	destroyAdapters(adapters, selected)
	if selected == nil {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	fail := func(err error) (device.Handle, error) {
		selected.Adapter.Destroy()
		instance.Destroy()
		return nil, err
	}

	if p.ExtendedFormats {
		caps := selected.Adapter.TextureFormatCapabilities(gputypes.TextureFormatBGRA8Unorm)
		if caps.Flags&hal.TextureFormatCapabilitySampled == 0 {
			return fail(ErrNoBGRA)
		}
	}

	open, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fail(fmt.Errorf("wgpu: open device: %w", err))
	}

	return &Handle{
		instance: instance,
		adapter:  selected.Adapter,
		info:     selected.Info,
		device:   open.Device,
		queue:    open.Queue,
		level:    level,
		software: p.Type == device.DriverSoftware,
	}, nil
}

// pickLevel returns the first offered level the adapter supports.
func pickLevel(levels []device.FeatureLevel) (device.FeatureLevel, bool) {
	for _, l := range levels {
		if l <= adapterLevel {
			return l, true
		}
	}
	return 0, false
}

// selectAdapter prefers discrete or integrated GPUs for hardware and the
// CPU adapter for software. Hardware never selects a CPU adapter.
func selectAdapter(adapters []hal.ExposedAdapter, t device.DriverType) *hal.ExposedAdapter {
	var selected *hal.ExposedAdapter
	for i := range adapters {
		a := &adapters[i]
		cpu := a.Info.DeviceType == gputypes.DeviceTypeCPU
		if t == device.DriverSoftware {
			if cpu {
				return a
			}
			if selected == nil {
				selected = a
			}
			continue
		}
		if cpu {
			continue
		}
		if a.Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			a.Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			return a
		}
		if selected == nil {
			selected = a
		}
	}
	return selected
}

// destroyAdapters destroys every enumerated adapter except keep.
func destroyAdapters(adapters []hal.ExposedAdapter, keep *hal.ExposedAdapter) {
	for i := range adapters {
		if &adapters[i] == keep || adapters[i].Adapter == nil {
			continue
		}
		adapters[i].Adapter.Destroy()
	}
}

var _ device.Driver = (*Driver)(nil)
