// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command hwprobe reports what the hardware video path can do on this
// machine: the surface format table, the device the negotiator settles on,
// and a capture of a presented frame.
//
// Usage:
//
//	hwprobe formats
//	hwprobe device [--backend d3d11] [--feature-level-max 11_1] [--warp]
//	hwprobe screenshot --window 0x1a2b -o frame.png
//
// Every flag can also be set as HWPROBE_<FLAG> in the environment or in
// hwprobe.yaml.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/hwvideo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	def := Default()
	root := &cobra.Command{
		Use:           "hwprobe",
		Short:         "Probe hardware video decode and presentation support",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./hwprobe.yaml)")
	pf.String("backend", def.Backend, "device driver to use; empty picks the best available")
	pf.String("feature-level-max", def.FeatureLevelMax, "highest feature level to request, e.g. 11_1")
	pf.String("feature-level-min", def.FeatureLevelMin, "lowest feature level to accept, e.g. 9_3")
	pf.Bool("debug", def.Debug, "request a debug device")
	pf.Bool("warp", def.WARP, "use the software adapter only")
	pf.Bool("allow-warp", def.AllowWARP, "fall back to the software adapter")
	pf.Int("frame-latency", def.FrameLatency, "maximum queued frames; 0 uses the default")
	pf.String("log-level", def.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newFormatsCmd(), newDeviceCmd(), newScreenshotCmd())
	return root
}

// loadConfig resolves configuration for cmd and installs the logger.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := Load(viper.New(), cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	hwvideo.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hwprobe:", err)
		os.Exit(1)
	}
}
