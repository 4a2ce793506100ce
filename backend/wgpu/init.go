// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"runtime"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/hwvideo/device"
)

// Priority is the registry priority of the driver, below native drivers.
const Priority = 50

var defaultDriver = NewDriver(defaultVariant(runtime.GOOS))

func init() {
	device.Register("wgpu", Priority, func() device.Driver { return defaultDriver }, defaultDriver.Available)
}

// defaultVariant is the HAL backend used for hardware devices on goos.
func defaultVariant(goos string) gputypes.Backend {
	switch goos {
	case "darwin", "ios":
		return gputypes.BackendMetal
	default:
		return gputypes.BackendVulkan
	}
}
