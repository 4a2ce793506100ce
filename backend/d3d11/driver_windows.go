// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package d3d11

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/internal/dynlib"
	"golang.org/x/sys/windows"
)

var createDeviceProc = dynlib.New(func() (*windows.LazyProc, error) {
	proc := windows.NewLazySystemDLL("d3d11.dll").NewProc("D3D11CreateDevice")
	if err := proc.Find(); err != nil {
		return nil, fmt.Errorf("%w: %w", dynlib.ErrNotFound, err)
	}
	return proc, nil
})

// Driver creates Direct3D 11 devices.
type Driver struct{}

// NewDriver returns the Direct3D 11 driver.
func NewDriver() *Driver { return &Driver{} }

// Name returns "d3d11".
func (*Driver) Name() string { return Name }

// Load resolves D3D11CreateDevice from d3d11.dll once per process.
func (*Driver) Load() error {
	if _, err := createDeviceProc.Get(); err != nil {
		return fmt.Errorf("%w: %w", device.ErrNotInstalled, err)
	}
	return nil
}

// CreateDevice calls D3D11CreateDevice once with p.
func (*Driver) CreateDevice(p device.CreateParams) (device.Handle, error) {
	proc, err := createDeviceProc.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrNotInstalled, err)
	}
	if len(p.Levels) == 0 {
		return nil, device.ErrNoFeatureLevel
	}
	levels := levelArray(p.Levels)

	var (
		dev *d3d11Device
		ctx *d3d11DeviceContext
		fl  uint32
	)
	r, _, _ := proc.Call(
		0, // pAdapter
		uintptr(driverType(p.Type)),
		0, // Software
		uintptr(deviceFlags(p)),
		uintptr(unsafe.Pointer(&levels[0])),
		uintptr(len(levels)),
		sdkVersion,
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&fl)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if err := hresult("D3D11CreateDevice", r); err != nil {
		return nil, err
	}
	return &Handle{dev: dev, ctx: ctx, level: device.FeatureLevel(fl)}, nil
}

// Available reports whether d3d11.dll exports D3D11CreateDevice.
func Available() bool {
	return createDeviceProc.Available()
}
