// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package driver defines the contract between the presentation core and a
// graphics driver: instance, adapters, surfaces and swap chains.
//
// The real implementation lives in driver/webgpu (gogpu/wgpu). Tests use
// driver/drivertest, which records every call and counts live resources.
package driver

import "errors"

var (
	// ErrUnwrap is returned when a device handed to Configure does not
	// resolve to a device object of the driver that created the surface.
	ErrUnwrap = errors.New("driver: device does not resolve to a driver device")

	// ErrNotDiscovered is returned when adapters or surfaces are requested
	// before DiscoverDefaultAdapters.
	ErrNotDiscovered = errors.New("driver: adapters not discovered")

	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("driver: object released")
)
