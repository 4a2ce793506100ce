// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cgl

import "testing"

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4.1 Metal - 88", 410},
		{"2.1 APPLE-18.0.26", 210},
		{"3.0", 300},
		{"OpenGL ES 3.2 build 1", 320},
		{"  4.6.0 NVIDIA", 460},
		{"", 0},
		{"unknown", 0},
		{"4.x", 0},
		{"x.1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseGLVersion(tt.in); got != tt.want {
				t.Errorf("parseGLVersion(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCGLErrorString(t *testing.T) {
	if got, want := CGLError(10004).Error(), "cgl: kCGLBadContext"; got != want {
		t.Errorf("CGLError(10004) = %q, want %q", got, want)
	}
	if got, want := CGLError(42).Error(), "cgl: error 42"; got != want {
		t.Errorf("CGLError(42) = %q, want %q", got, want)
	}
}
