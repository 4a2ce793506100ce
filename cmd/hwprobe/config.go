// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/hwvideo/device"
	"github.com/gogpu/hwvideo/swapchain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment overrides, e.g. HWPROBE_FEATURE_LEVEL_MAX.
const envPrefix = "HWPROBE"

// Config is the resolved probe configuration. Flags override environment
// variables, which override the config file.
type Config struct {
	Backend         string `mapstructure:"backend"`
	FeatureLevelMax string `mapstructure:"feature_level_max"`
	FeatureLevelMin string `mapstructure:"feature_level_min"`
	Debug           bool   `mapstructure:"debug"`
	WARP            bool   `mapstructure:"warp"`
	AllowWARP       bool   `mapstructure:"allow_warp"`
	FrameLatency    int    `mapstructure:"frame_latency"`

	Window  string `mapstructure:"window"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Buffers int    `mapstructure:"buffers"`
	Flip    bool   `mapstructure:"flip"`

	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		AllowWARP: true,
		Buffers:   swapchain.DefaultBufferCount,
		Flip:      true,
		LogLevel:  "info",
	}
}

// Load reads cfgFile, or hwprobe.yaml from the working directory when
// cfgFile is empty, and applies environment variables and flags on top.
func Load(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("hwprobe")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" {
				return
			}
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for _, key := range []string{
		"backend", "feature_level_max", "feature_level_min", "debug", "warp",
		"allow_warp", "frame_latency", "window", "width", "height", "buffers",
		"flip", "log_level",
	} {
		// Unmarshal only sees environment values for keys viper knows.
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Request converts the device settings.
func (c *Config) Request() (device.Request, error) {
	hi, err := device.ParseFeatureLevel(c.FeatureLevelMax)
	if err != nil {
		return device.Request{}, fmt.Errorf("feature-level-max: %w", err)
	}
	lo, err := device.ParseFeatureLevel(c.FeatureLevelMin)
	if err != nil {
		return device.Request{}, fmt.Errorf("feature-level-min: %w", err)
	}
	return device.Request{
		MaxLevel:        hi,
		MinLevel:        lo,
		Debug:           c.Debug,
		ForceSoftware:   c.WARP,
		AllowSoftware:   c.AllowWARP,
		MaxFrameLatency: c.FrameLatency,
	}.Normalize()
}

// SwapchainOptions converts the presentation settings. Window accepts
// decimal or 0x-prefixed hexadecimal handles.
func (c *Config) SwapchainOptions() (swapchain.Options, error) {
	var window uint64
	if c.Window != "" {
		w, err := strconv.ParseUint(c.Window, 0, 64)
		if err != nil {
			return swapchain.Options{}, fmt.Errorf("window: %w", err)
		}
		window = w
	}
	return swapchain.Options{
		Window:  uintptr(window),
		Width:   c.Width,
		Height:  c.Height,
		Buffers: c.Buffers,
		Flip:    c.Flip,
	}, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return l, nil
}
