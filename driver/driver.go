// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Instance is the process-wide driver entry point.
//
// A Manager calls EnableBackendValidation, SetValidationLevel and
// DiscoverDefaultAdapters exactly once, in that order, before any other
// method. Adapters may be called once per registry enumeration.
type Instance interface {
	// EnableBackendValidation toggles backend validation layers.
	// Takes effect at DiscoverDefaultAdapters.
	EnableBackendValidation(enabled bool)

	// SetValidationLevel selects how thorough validation is when enabled.
	SetValidationLevel(level ValidationLevel)

	// DiscoverDefaultAdapters enumerates the adapters of every enabled backend.
	DiscoverDefaultAdapters() error

	// Adapters returns the adapters found by DiscoverDefaultAdapters,
	// in enumeration order.
	Adapters() []Adapter

	// CreateSurface binds a platform window to a presentable surface.
	CreateSurface(desc SurfaceDescriptor) (Surface, error)
}

// Adapter is one physical or virtual GPU exposed by the driver.
type Adapter interface {
	Properties() AdapterProperties
}

// AdapterProperties are the read-only properties of an enumerated adapter.
type AdapterProperties struct {
	// Name is the adapter name (e.g., "NVIDIA GeForce RTX 4090").
	Name string
	// DriverDescription is the driver version or description string.
	DriverDescription string
	// Vendor is the vendor name, if known.
	Vendor string
	// AdapterType is the kind of device (discrete, integrated, CPU, ...).
	AdapterType gputypes.DeviceType
	// BackendType is the graphics API family the adapter is driven through.
	BackendType gputypes.Backend
}

// String formats the properties the way the adapter ranking prints them.
func (p AdapterProperties) String() string {
	return fmt.Sprintf("%s : %s (%s, %s)", p.Name, p.DriverDescription, p.AdapterType, p.BackendType)
}

// Info converts the properties into the gpucontext adapter metadata.
func (p AdapterProperties) Info() gpucontext.AdapterInfo {
	t := gpucontext.AdapterTypeUnknown
	switch p.AdapterType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		t = gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterInfo{Name: p.Name, Type: t}
}

// SurfaceDescriptor carries the platform handles needed to create a surface.
//
// Handle meaning is platform specific:
//   - Windows: Display=0, Window=HWND
//   - macOS: Display=0, Window=CAMetalLayer*
//   - Linux/X11: Display=Display*, Window=Window
//   - Linux/Wayland: Display=wl_display*, Window=wl_surface*
type SurfaceDescriptor struct {
	Label   string
	Display uintptr
	Window  uintptr
}

// Surface is a presentable surface bound to one native window.
type Surface interface {
	// Configure creates a swap chain for the device supplied by provider.
	// Returns ErrUnwrap if the provider's device does not belong to this driver.
	Configure(provider gpucontext.DeviceProvider, desc *SwapChainDescriptor) (SwapChain, error)

	// Release destroys the surface. The surface must not be used afterwards.
	Release()
}

// SwapChainDescriptor configures a swap chain.
type SwapChainDescriptor struct {
	Label       string
	Usage       gputypes.TextureUsage
	Format      gputypes.TextureFormat
	PresentMode gputypes.PresentMode
	Width       uint32
	Height      uint32
}

// SwapChain is the ring of presentable images bound to a surface.
type SwapChain interface {
	// CurrentTextureView returns a new view of the current back buffer.
	CurrentTextureView() (TextureView, error)

	// Present shows the most recently acquired back buffer.
	// Presenting with nothing acquired is a no-op.
	Present() error

	// Release destroys the swap chain.
	Release()
}

// TextureView is a view onto a swap chain image.
type TextureView interface {
	Release()
}

// ValidationLevel selects how much backend validation is performed.
type ValidationLevel uint8

const (
	// ValidationDisabled turns validation off even when enabled.
	ValidationDisabled ValidationLevel = iota
	// ValidationPartial enables the API validation layers only.
	ValidationPartial
	// ValidationFull additionally enables GPU-based validation.
	ValidationFull
)

// String returns the level name.
func (l ValidationLevel) String() string {
	switch l {
	case ValidationDisabled:
		return "Disabled"
	case ValidationPartial:
		return "Partial"
	case ValidationFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// InstanceFlags maps a validation setting onto gputypes instance flags.
func InstanceFlags(enabled bool, level ValidationLevel) gputypes.InstanceFlags {
	if !enabled {
		return gputypes.InstanceFlagsNone
	}
	switch level {
	case ValidationPartial:
		return gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation
	case ValidationFull:
		return gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation | gputypes.InstanceFlagsGPUBasedValidation
	default:
		return gputypes.InstanceFlagsNone
	}
}
