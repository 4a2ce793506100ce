// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	_ "github.com/gogpu/hwvideo/backend/d3d11"
	_ "github.com/gogpu/hwvideo/backend/wgpu"
	_ "github.com/gogpu/wgpu/hal/vulkan"
)
