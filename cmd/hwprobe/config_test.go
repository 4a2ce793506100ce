// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/hwvideo/device"
	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwprobe.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", *cfg, *Default())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
backend: d3d11
feature_level_max: "11_0"
feature_level_min: "10_0"
debug: true
buffers: 3
`)
	t.Setenv("HWPROBE_FEATURE_LEVEL_MIN", "9_3")
	t.Setenv("HWPROBE_WARP", "true")

	cfg, err := Load(viper.New(), path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "d3d11" || cfg.FeatureLevelMax != "11_0" || !cfg.Debug || cfg.Buffers != 3 {
		t.Errorf("file values not applied: %+v", *cfg)
	}
	if cfg.FeatureLevelMin != "9_3" {
		t.Errorf("FeatureLevelMin = %q, want env override 9_3", cfg.FeatureLevelMin)
	}
	if !cfg.WARP {
		t.Error("WARP not taken from environment")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HWPROBE_BACKEND", "wgpu")

	cmd := newRootCmd()
	if err := cmd.PersistentFlags().Parse([]string{"--backend", "d3d11", "--allow-warp=false"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(viper.New(), "", cmd.PersistentFlags())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "d3d11" {
		t.Errorf("Backend = %q, want flag value d3d11", cfg.Backend)
	}
	if cfg.AllowWARP {
		t.Error("AllowWARP = true, want flag value false")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("Load with a missing explicit config file succeeded")
	}
}

func TestConfigRequest(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    device.Request
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  Config{},
			want: device.Request{
				MaxLevel:        device.MaxFeatureLevel,
				MinLevel:        device.MinFeatureLevel,
				MaxFrameLatency: device.DefaultMaxFrameLatency,
			},
		},
		{
			name: "explicit",
			cfg:  Config{FeatureLevelMax: "11_1", FeatureLevelMin: "10_0", WARP: true, AllowWARP: true, Debug: true, FrameLatency: 1},
			want: device.Request{
				MaxLevel:        device.FeatureLevel11_1,
				MinLevel:        device.FeatureLevel10_0,
				Debug:           true,
				ForceSoftware:   true,
				AllowSoftware:   true,
				MaxFrameLatency: 1,
			},
		},
		{name: "bad max", cfg: Config{FeatureLevelMax: "13_7"}, wantErr: true},
		{name: "bad min", cfg: Config{FeatureLevelMin: "x"}, wantErr: true},
		{name: "inverted", cfg: Config{FeatureLevelMax: "9_3", FeatureLevelMin: "11_0"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Request()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Request() error = %v, wantErr %t", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Request() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigSwapchainOptions(t *testing.T) {
	tests := []struct {
		window  string
		want    uintptr
		wantErr bool
	}{
		{"", 0, false},
		{"4660", 4660, false},
		{"0x1234", 0x1234, false},
		{"window", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			cfg := Config{Window: tt.window, Width: 640, Height: 480, Buffers: 3, Flip: true}
			opts, err := cfg.SwapchainOptions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SwapchainOptions() error = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if opts.Window != tt.want || opts.Width != 640 || opts.Height != 480 || opts.Buffers != 3 || !opts.Flip {
				t.Errorf("SwapchainOptions() = %+v", opts)
			}
		})
	}
}

func TestConfigLevel(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	if l, err := cfg.Level(); err != nil || l != slog.LevelDebug {
		t.Errorf("Level() = %v, %v, want debug", l, err)
	}
	cfg.LogLevel = "loud"
	if _, err := cfg.Level(); err == nil {
		t.Error("Level() accepted an unknown level")
	}
}
