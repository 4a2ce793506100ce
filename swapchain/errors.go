// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swapchain

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrNoFactory is returned when the device exposes no presentation
	// factory. No swapchain creation is attempted.
	ErrNoFactory = errors.New("swapchain: no presentation factory")

	// ErrExhausted is matched by *NegotiationError.
	ErrExhausted = errors.New("swapchain: negotiation exhausted")

	// ErrNotFlipModel is returned by Capture on a blit-model surface, whose
	// backbuffer contents are discarded on present.
	ErrNotFlipModel = errors.New("swapchain: capture requires flip-model presentation")

	// ErrNoBuffers is returned by Capture when the swapchain reports no
	// backbuffers.
	ErrNoBuffers = errors.New("swapchain: swapchain has no backbuffers")

	// ErrMultisampled is returned by Capture for a multisampled backbuffer.
	ErrMultisampled = errors.New("swapchain: multisampled backbuffer")

	// ErrUnsupportedFormat is returned by Capture for a backbuffer format
	// other than BGRA8 or RGBA8.
	ErrUnsupportedFormat = errors.New("swapchain: unsupported backbuffer format")

	// ErrShortMapping is returned when a mapped staging texture is smaller
	// than its description.
	ErrShortMapping = errors.New("swapchain: mapped data shorter than texture")

	// ErrReleased is returned when using a released surface.
	ErrReleased = errors.New("swapchain: surface released")
)

// NegotiationError reports that every presentation model and format
// combination was rejected.
type NegotiationError struct {
	// Attempts is the number of swapchain creation calls made.
	Attempts int
	// Err is the error returned by the last creation call.
	Err error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("swapchain: negotiation exhausted after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns ErrExhausted and the last driver error.
func (e *NegotiationError) Unwrap() []error {
	return []error{ErrExhausted, e.Err}
}
