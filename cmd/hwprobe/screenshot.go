// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/hwvideo/swapchain"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func newScreenshotCmd() *cobra.Command {
	def := Default()
	var output string
	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Create a swapchain on a window and capture its front buffer",
		Long: `Create a swapchain on a window and capture its front buffer.

The image is encoded by the output file extension: .png, .bmp, .tif or .tiff.
Only flip-model swapchains can be captured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc, err := encoderFor(output)
			if err != nil {
				return err
			}
			img, err := screenshot(cfg)
			if err != nil {
				return err
			}
			return writeImage(output, enc, img)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "screenshot.png", "output file")
	f.String("window", def.Window, "native window handle, decimal or 0x-prefixed")
	f.Int("width", def.Width, "backbuffer width; 0 means 1")
	f.Int("height", def.Height, "backbuffer height; 0 means 1")
	f.Int("buffers", def.Buffers, "flip-model buffer count")
	f.Bool("flip", def.Flip, "request flip-model presentation")
	return cmd
}

func screenshot(cfg *Config) (image.Image, error) {
	opts, err := cfg.SwapchainOptions()
	if err != nil {
		return nil, err
	}
	if opts.Window == 0 {
		return nil, errors.New("screenshot needs --window")
	}

	dev, err := openDevice(cfg)
	if err != nil {
		return nil, err
	}
	defer dev.Release()

	surf, err := swapchain.Create(dev, opts)
	if err != nil {
		return nil, err
	}
	defer surf.Release()

	img, err := swapchain.Capture(surf)
	if err != nil {
		return nil, fmt.Errorf("capture %s swapchain: %w", surf.Model(), err)
	}
	return img, nil
}

type encoder func(io.Writer, image.Image) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported image extension %q", ext)
	}
}

func writeImage(path string, enc encoder, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f, img)
}
