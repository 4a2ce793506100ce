// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/format"
)

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFormats(&buf, format.All()); err != nil {
		t.Fatalf("writeFormats: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"NATIVE", "420v", "BGRA", "2vuy", "gbra"} {
		if !strings.Contains(out, want) {
			t.Errorf("formats output lacks %q:\n%s", want, out)
		}
	}

	rows := 1
	for _, d := range format.All() {
		rows += d.Planes
	}
	if got := strings.Count(out, "\n"); got != rows {
		t.Errorf("formats output has %d lines, want %d", got, rows)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := writeReport(&buf, device.Report{
		Driver:       "d3d11",
		FeatureLevel: device.FeatureLevel11_0,
		Adapter: device.AdapterDesc{
			Description: "Microsoft Basic Render Driver",
			VendorID:    0x1414,
			DeviceID:    0x8c,
		},
		Software: true,
		Attempts: 4,
	})
	if err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	for _, want := range []string{"d3d11", "11_0", "Microsoft Basic Render Driver", "0x1414", "0x008c"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report lacks %q:\n%s", want, buf.String())
		}
	}
	if !regexp.MustCompile(`(?m)^attempts:\s+4$`).MatchString(buf.String()) {
		t.Errorf("report lacks attempt count:\n%s", buf.String())
	}
}

func TestEncoderFor(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"a.png", false},
		{"a.PNG", false},
		{"a.bmp", false},
		{"a.tif", false},
		{"a.tiff", false},
		{"a.jpg", true},
		{"noext", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := encoderFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("encoderFor(%q) error = %v, wantErr %t", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestWriteImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			enc, err := encoderFor(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := writeImage(path, enc, img); err != nil {
				t.Fatalf("writeImage: %v", err)
			}
			st, err := os.Stat(path)
			if err != nil || st.Size() == 0 {
				t.Fatalf("output missing or empty: %v", err)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "check.png")
	if err := writeImage(path, png.Encode, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, g, b, _ := got.At(1, 1).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel (1,1) = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
	}
}

func TestScreenshotNeedsWindow(t *testing.T) {
	if _, err := screenshot(&Config{}); err == nil || !strings.Contains(err.Error(), "--window") {
		t.Errorf("screenshot without window error = %v", err)
	}
}
