// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d11

import "github.com/gogpu/hwvideo/device"

// Registry name and priority of the driver.
const (
	Name     = "d3d11"
	Priority = 100
)

func init() {
	device.Register(Name, Priority, func() device.Driver { return NewDriver() }, Available)
}
