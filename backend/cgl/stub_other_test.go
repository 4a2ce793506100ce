// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !darwin

package cgl

import (
	"errors"
	"testing"

	"github.com/gogpu/hwvideo/importer"
)

func TestUnavailableOutsideDarwin(t *testing.T) {
	if Available() {
		t.Error("Available() = true")
	}
	if _, err := NewImporter(importer.Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewImporter error = %v, want ErrUnavailable", err)
	}
	if _, err := Download(nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Download error = %v, want ErrUnavailable", err)
	}
}
