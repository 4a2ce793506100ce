// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !darwin

package cgl

import (
	"image"

	"github.com/gogpu/hwvideo/importer"
)

// Available reports false outside macOS.
func Available() bool { return false }

// NewImporter returns ErrUnavailable outside macOS.
func NewImporter(importer.Options) (*importer.Importer, error) {
	return nil, ErrUnavailable
}

// Download returns ErrUnavailable outside macOS.
func Download(importer.Frame) (image.Image, error) {
	return nil, ErrUnavailable
}
