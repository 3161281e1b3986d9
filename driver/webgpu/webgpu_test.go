// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(js && wasm)

package webgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/driver/drivertest"
)

// These tests do not touch a GPU. Paths that need real adapters are
// covered by running cmd/gpuwindow.

func TestNewDefaultsToAllBackends(t *testing.T) {
	if got := New(gputypes.BackendsNone).backends; got != gputypes.BackendsAll {
		t.Errorf("backends = %v, want BackendsAll", got)
	}
	vk := gputypes.Backends(1 << gputypes.BackendVulkan)
	if got := New(vk).backends; got != vk {
		t.Errorf("backends = %v, want %v", got, vk)
	}
}

func TestDescriptorFlags(t *testing.T) {
	i := New(gputypes.BackendsAll)
	if got := i.descriptor(gputypes.BackendsAll).Flags; got != gputypes.InstanceFlagsNone {
		t.Errorf("default flags = %v, want none", got)
	}

	i.EnableBackendValidation(true)
	i.SetValidationLevel(driver.ValidationFull)
	desc := i.descriptor(gputypes.BackendsAll)
	if desc.Flags != driver.InstanceFlags(true, driver.ValidationFull) {
		t.Errorf("flags = %v, want full validation", desc.Flags)
	}
	if desc.Backends != gputypes.BackendsAll {
		t.Errorf("backends = %v, want all", desc.Backends)
	}
}

func TestCreateSurface(t *testing.T) {
	i := New(gputypes.BackendsAll)
	desc := driver.SurfaceDescriptor{Label: "w", Window: 0x1234}

	if _, err := i.CreateSurface(desc); !errors.Is(err, driver.ErrNotDiscovered) {
		t.Fatalf("before discovery: err = %v, want ErrNotDiscovered", err)
	}

	i.discovered = true
	if _, err := i.CreateSurface(driver.SurfaceDescriptor{Label: "w"}); !errors.Is(err, ErrNoSurfaceHandle) {
		t.Errorf("zero window: err = %v, want ErrNoSurfaceHandle", err)
	}

	s, err := i.CreateSurface(desc)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	ws := s.(*Surface)
	if ws.desc != desc {
		t.Errorf("desc = %+v, want %+v", ws.desc, desc)
	}
	if ws.wgpu != nil {
		t.Error("native surface created before Configure")
	}
	s.Release()
}

func TestProperties(t *testing.T) {
	tests := []struct {
		name string
		info gputypes.AdapterInfo
		want driver.AdapterProperties
	}{
		{
			name: "driver and info",
			info: gputypes.AdapterInfo{
				Name:       "GPU0",
				Vendor:     "ACME",
				Driver:     "acme",
				DriverInfo: "1.2",
				DeviceType: gputypes.DeviceTypeDiscreteGPU,
				Backend:    gputypes.BackendVulkan,
			},
			want: driver.AdapterProperties{
				Name:              "GPU0",
				DriverDescription: "acme 1.2",
				Vendor:            "ACME",
				AdapterType:       gputypes.DeviceTypeDiscreteGPU,
				BackendType:       gputypes.BackendVulkan,
			},
		},
		{
			name: "driver only",
			info: gputypes.AdapterInfo{
				Name:       "llvmpipe",
				Driver:     "mesa",
				DeviceType: gputypes.DeviceTypeCPU,
				Backend:    gputypes.BackendGL,
			},
			want: driver.AdapterProperties{
				Name:              "llvmpipe",
				DriverDescription: "mesa",
				AdapterType:       gputypes.DeviceTypeCPU,
				BackendType:       gputypes.BackendGL,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Adapter{inst: New(0), info: tt.info}
			if got := a.Properties(); got != tt.want {
				t.Errorf("Properties() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSameAdapter(t *testing.T) {
	want := gputypes.AdapterInfo{Name: "gpu", DeviceType: gputypes.DeviceTypeDiscreteGPU, Backend: gputypes.BackendVulkan}
	tests := []struct {
		name string
		got  gputypes.AdapterInfo
		same bool
	}{
		{"identical", want, true},
		{"driver differs", gputypes.AdapterInfo{Name: "gpu", DeviceType: gputypes.DeviceTypeDiscreteGPU, Driver: "x"}, true},
		{"other name", gputypes.AdapterInfo{Name: "gpu2", DeviceType: gputypes.DeviceTypeDiscreteGPU}, false},
		{"other type", gputypes.AdapterInfo{Name: "gpu", DeviceType: gputypes.DeviceTypeIntegratedGPU}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameAdapter(tt.got, want); got != tt.same {
				t.Errorf("sameAdapter = %v, want %v", got, tt.same)
			}
		})
	}
}

func TestDevicePreferencesStartHighPerformance(t *testing.T) {
	if len(devicePreferences) == 0 || devicePreferences[0] != wgpu.PowerPreferenceHighPerformance {
		t.Errorf("devicePreferences = %v, want high performance first", devicePreferences)
	}
}

// untracked hands out a *wgpu.Device this driver never created.
type untracked struct {
	gpucontext.DeviceProvider
	dev *wgpu.Device
}

func (u untracked) Device() gpucontext.Device { return u.dev }

func TestConfigureUnwrap(t *testing.T) {
	i := New(gputypes.BackendsAll)
	s := &Surface{inst: i, desc: driver.SurfaceDescriptor{Label: "w", Window: 1}}
	desc := &driver.SwapChainDescriptor{Width: 4, Height: 4}

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
	}{
		{"foreign device type", drivertest.NewDevice("fake")},
		{"untracked wgpu device", untracked{DeviceProvider: drivertest.NewDevice("x"), dev: &wgpu.Device{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := s.Configure(tt.provider, desc)
			if !errors.Is(err, driver.ErrUnwrap) {
				t.Errorf("err = %v, want ErrUnwrap", err)
			}
			if sc != nil {
				t.Error("swap chain returned on error")
			}
			if s.wgpu != nil {
				t.Error("native surface created for a foreign device")
			}
		})
	}
}

func TestReleasedSwapChain(t *testing.T) {
	sc := &SwapChain{label: "w"}
	if _, err := sc.CurrentTextureView(); !errors.Is(err, driver.ErrReleased) {
		t.Errorf("CurrentTextureView err = %v, want ErrReleased", err)
	}
	if err := sc.Present(); !errors.Is(err, driver.ErrReleased) {
		t.Errorf("Present err = %v, want ErrReleased", err)
	}
	sc.Release()
	(&TextureView{}).Release()
}

func TestDeviceOwner(t *testing.T) {
	i := New(gputypes.BackendsAll)
	d := &wgpu.Device{}
	g := &wgpu.Instance{}

	if _, ok := i.owner(d); ok {
		t.Fatal("owner of unknown device reported")
	}
	i.trackDevice(d, g)
	if got, ok := i.owner(d); !ok || got != g {
		t.Errorf("owner = %p, %v; want %p, true", got, ok, g)
	}
	i.forgetDevice(d)
	if _, ok := i.owner(d); ok {
		t.Error("owner still reported after forgetDevice")
	}
}
