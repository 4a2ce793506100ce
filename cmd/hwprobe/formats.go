// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/hwvideo/format"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported surface formats and their plane layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeFormats(cmd.OutOrStdout(), format.All())
		},
	}
}

func writeFormats(w io.Writer, table []format.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NATIVE\tIMAGE\tPLANE\tGPU FORMAT\tCOMPONENTS\tSUBSAMPLE\tSWIZZLE")
	for _, d := range table {
		for i := range d.Planes {
			p := d.Plane[i]
			native, image, swizzle := "", "", ""
			if i == 0 {
				native, image, swizzle = d.Native.String(), d.Image.String(), d.Swizzle
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d/%d\t%s\n",
				native, image, i, p.GPUFormat, p.Components, p.ShiftX, p.ShiftY, swizzle)
		}
	}
	return tw.Flush()
}
