// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrNotInstalled is returned when the driver library or its device
	// creation entry point is missing. No creation attempts are made.
	ErrNotInstalled = errors.New("device: driver library not installed")

	// ErrNoFeatureLevel is returned when the requested feature level range
	// is empty after defaulting.
	ErrNoFeatureLevel = errors.New("device: no suitable feature level")

	// ErrExhausted is matched by *NegotiationError: every fallback step was
	// rejected by the driver.
	ErrExhausted = errors.New("device: negotiation exhausted")

	// ErrIntrospection is returned when the device was created but its
	// adapter could not be queried. The device is released.
	ErrIntrospection = errors.New("device: adapter introspection failed")

	// ErrReleased is returned when using a released device.
	ErrReleased = errors.New("device: device released")

	// ErrNoDriverAvailable is returned when no registered driver is
	// available on this system.
	ErrNoDriverAvailable = errors.New("device: no driver available")
)

// NegotiationError reports an exhausted fallback cascade.
type NegotiationError struct {
	// Attempts is the number of device creation calls made.
	Attempts int
	// Err is the error returned by the last creation call.
	Err error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("device: negotiation exhausted after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns ErrExhausted and the last driver error.
func (e *NegotiationError) Unwrap() []error {
	return []error{ErrExhausted, e.Err}
}

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "device: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but is not available.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "device: driver unavailable: " + e.Name
}
