// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package d3d11

import (
	"fmt"

	"github.com/gogpu/hwvideo/device"
)

// Driver reports Direct3D 11 as not installed outside Windows.
type Driver struct{}

// NewDriver returns the Direct3D 11 driver.
func NewDriver() *Driver { return &Driver{} }

// Name returns "d3d11".
func (*Driver) Name() string { return Name }

// Load always fails with device.ErrNotInstalled.
func (*Driver) Load() error {
	return fmt.Errorf("%w: d3d11.dll is windows only", device.ErrNotInstalled)
}

// CreateDevice always fails with device.ErrNotInstalled.
func (d *Driver) CreateDevice(device.CreateParams) (device.Handle, error) {
	return nil, d.Load()
}

// Available returns false.
func Available() bool { return false }
