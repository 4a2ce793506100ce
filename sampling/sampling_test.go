// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sampling

import (
	"strings"
	"testing"

	"github.com/gogpu/hwvideo/format"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		native format.NativeFormat
		want   []string
		absent []string
	}{
		{
			native: format.NativeNV12,
			want: []string{
				"@group(0) @binding(1) var plane1: texture_2d<f32>;",
				"vec2<f32>(1.0, 1.0)",
				"vec2<f32>(0.5, 0.5)",
				"vec4<f32>(t0.r, t1.r, t1.g, 1.0)",
				"return c;",
			},
			absent: []string{"plane2"},
		},
		{
			native: format.NativeUYVY,
			want: []string{
				"vec2<f32>(0.5, 1.0)",
				"vec4<f32>(t0.r, t0.g, t0.b, t0.a)",
				"return c.gbra;",
			},
			absent: []string{"plane1"},
		},
		{
			native: format.NativeI420,
			want: []string{
				"var plane2: texture_2d<f32>;",
				"vec4<f32>(t0.r, t1.r, t2.r, 1.0)",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.native.String(), func(t *testing.T) {
			d, ok := format.LookupNative(tt.native)
			if !ok {
				t.Fatalf("%s missing from table", tt.native)
			}
			src, err := Generate(d)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(src, w) {
					t.Errorf("source missing %q:\n%s", w, src)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(src, a) {
					t.Errorf("source contains %q:\n%s", a, src)
				}
			}
			if !strings.Contains(src, "fn "+EntryPoint) {
				t.Errorf("source missing entry point %s", EntryPoint)
			}
		})
	}
}

func TestGenerateRejectsInvalidDescriptor(t *testing.T) {
	if _, err := Generate(format.Descriptor{Planes: 0}); err == nil {
		t.Error("Generate() accepted an empty descriptor")
	}
}

func TestScale(t *testing.T) {
	for shift, want := range []string{"1.0", "0.5", "0.25"} {
		if got := scale(shift); got != want {
			t.Errorf("scale(%d) = %q, want %q", shift, got, want)
		}
	}
}

func TestCompileAllFormats(t *testing.T) {
	var cache Cache
	for _, d := range format.All() {
		t.Run(d.Native.String(), func(t *testing.T) {
			p, err := cache.Get(d)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if len(p.SPIRV) < 5 || p.SPIRV[0] != 0x07230203 {
				t.Fatalf("SPIR-V header missing: %d words", len(p.SPIRV))
			}
			again, err := cache.Get(d)
			if err != nil || again != p {
				t.Errorf("second Get() = %p, %v, want cached %p", again, err, p)
			}
		})
	}
}

func TestCompileInvalidSource(t *testing.T) {
	if _, err := Compile("fn broken( {"); err == nil {
		t.Error("Compile() accepted invalid WGSL")
	}
}
