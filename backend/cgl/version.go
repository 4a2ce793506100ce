// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cgl

import (
	"strconv"
	"strings"
)

const glVersion = 0x1F02

// parseGLVersion converts a GL_VERSION string such as "4.1 Metal - 88" to
// major*100 + minor*10. It returns 0 when s has no version prefix.
func parseGLVersion(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "OpenGL ES ")
	major, rest, ok := strings.Cut(s, ".")
	if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
		return 0
	}
	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return 0
	}
	return maj*100 + int(rest[0]-'0')*10
}
