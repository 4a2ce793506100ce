// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/hwvideo/device"
	"github.com/spf13/cobra"
)

func newDeviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Negotiate a device and print what was obtained",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dev, err := openDevice(cfg)
			if err != nil {
				return err
			}
			defer dev.Release()
			return writeReport(cmd.OutOrStdout(), dev.Report())
		},
	}
}

// openDevice negotiates on the configured backend, or on every available
// backend by priority.
func openDevice(cfg *Config) (*device.Device, error) {
	req, err := cfg.Request()
	if err != nil {
		return nil, err
	}
	if cfg.Backend == "" {
		if len(device.Available()) == 0 {
			return nil, fmt.Errorf("no device driver available (registered: %s)",
				strings.Join(device.List(), ", "))
		}
		return device.NegotiateBest(req)
	}
	return device.NegotiateByName(cfg.Backend, req)
}

func writeReport(w io.Writer, r device.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "driver:\t%s\n", r.Driver)
	fmt.Fprintf(tw, "feature level:\t%s\n", r.FeatureLevel)
	fmt.Fprintf(tw, "adapter:\t%s\n", r.Adapter.Description)
	fmt.Fprintf(tw, "vendor id:\t0x%04x\n", r.Adapter.VendorID)
	fmt.Fprintf(tw, "device id:\t0x%04x\n", r.Adapter.DeviceID)
	fmt.Fprintf(tw, "luid:\t%s\n", r.Adapter.LUID)
	fmt.Fprintf(tw, "software:\t%t\n", r.Software)
	fmt.Fprintf(tw, "extended formats:\t%t\n", r.ExtendedFormats)
	fmt.Fprintf(tw, "debug:\t%t\n", r.Debug)
	fmt.Fprintf(tw, "attempts:\t%d\n", r.Attempts)
	return tw.Flush()
}
