// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(js && wasm)

package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gpuwindow/driver"
)

// ErrAdapterMismatch is returned by RequestDevice when the backend instance
// does not yield the enumerated adapter.
var ErrAdapterMismatch = errors.New("webgpu: backend returned a different adapter")

// Adapter is an enumerated wgpu adapter.
type Adapter struct {
	inst *Instance
	info gputypes.AdapterInfo
}

// Properties returns the adapter properties.
func (a *Adapter) Properties() driver.AdapterProperties {
	return Properties(a.info)
}

// Properties converts wgpu adapter info to driver properties.
func Properties(info gputypes.AdapterInfo) driver.AdapterProperties {
	desc := info.Driver
	if info.DriverInfo != "" {
		desc += " " + info.DriverInfo
	}
	return driver.AdapterProperties{
		Name:              info.Name,
		DriverDescription: desc,
		Vendor:            info.Vendor,
		AdapterType:       info.DeviceType,
		BackendType:       info.Backend,
	}
}

// devicePreferences are the power preferences RequestDevice tries, in order,
// to reach the enumerated adapter.
var devicePreferences = []wgpu.PowerPreference{
	wgpu.PowerPreferenceHighPerformance,
	wgpu.PowerPreferenceNone,
	wgpu.PowerPreferenceLowPower,
}

// sameAdapter reports whether got names the adapter described by want.
func sameAdapter(got, want gputypes.AdapterInfo) bool {
	return got.Name == want.Name && got.DeviceType == want.DeviceType
}

// RequestDevice creates a logical device on the adapter.
//
// The device lives on the driver's instance for the adapter's backend.
// wgpu only hands out adapters by power preference, so each preference is
// tried until the backend returns this adapter. When two adapters on one
// backend answer to the same preferences, only the backend's pick is
// reachable and the other yields ErrAdapterMismatch.
func (a *Adapter) RequestDevice(label string) (*Device, error) {
	g, err := a.inst.gpu(a.info.Backend)
	if err != nil {
		return nil, err
	}
	var (
		wa   *wgpu.Adapter
		seen []string
	)
	for _, pref := range devicePreferences {
		cand, err := g.RequestAdapter(&wgpu.RequestAdapterOptions{PowerPreference: pref})
		if err != nil {
			return nil, fmt.Errorf("webgpu: request adapter: %w", err)
		}
		if sameAdapter(cand.Info(), a.info) {
			wa = cand
			break
		}
		seen = append(seen, cand.Info().Name)
		cand.Release()
	}
	if wa == nil {
		return nil, fmt.Errorf("%w: want %q, got %q", ErrAdapterMismatch, a.info.Name, seen)
	}

	dev, err := wa.RequestDevice(&wgpu.DeviceDescriptor{Label: label})
	if err != nil {
		wa.Release()
		return nil, fmt.Errorf("webgpu: request device: %w", err)
	}
	a.inst.trackDevice(dev, g)

	a.inst.log.Info("webgpu: device created",
		"adapter", a.info.Name,
		"backend", a.info.Backend.String(),
		"type", a.info.DeviceType.String())
	return &Device{inst: a.inst, adapter: wa, device: dev, info: a.info}, nil
}

// Device is a wgpu device created by this driver. It implements
// gpucontext.DeviceProvider so it can be passed to Context.Configure.
type Device struct {
	inst    *Instance
	adapter *wgpu.Adapter
	device  *wgpu.Device
	info    gputypes.AdapterInfo
}

// Device returns the *wgpu.Device.
func (d *Device) Device() gpucontext.Device { return d.device }

// Queue returns the *wgpu.Queue.
func (d *Device) Queue() gpucontext.Queue { return d.device.Queue() }

// SurfaceFormat returns BGRA8Unorm, the format every swap chain uses.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Adapter returns the *wgpu.Adapter.
func (d *Device) Adapter() gpucontext.Adapter { return d.adapter }

// AdapterInfo returns the adapter metadata.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	return Properties(d.info).Info()
}

// WGPU returns the underlying device.
func (d *Device) WGPU() *wgpu.Device { return d.device }

// Release destroys the device and its adapter.
func (d *Device) Release() {
	d.inst.forgetDevice(d.device)
	d.device.Release()
	d.adapter.Release()
}

var (
	_ driver.Adapter            = (*Adapter)(nil)
	_ gpucontext.DeviceProvider = (*Device)(nil)
)
