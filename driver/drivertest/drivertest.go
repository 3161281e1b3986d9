// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drivertest provides an in-memory driver.Instance for tests.
//
// The instance exposes a scripted adapter list and counts live surfaces,
// swap chains and texture views so tests can assert that nothing leaks.
// Every operation is also reported to the optional Trace hook, which lets a
// test interleave driver calls with window-system calls in one ordered log.
package drivertest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow/driver"
)

// Instance is a fake driver.Instance.
type Instance struct {
	mu sync.Mutex

	// Trace, if set, is called with the name of every operation.
	Trace func(op string)

	// SurfaceErr, if set, is returned by CreateSurface.
	SurfaceErr error
	// ConfigureErr, if set, is returned by Surface.Configure.
	ConfigureErr error
	// PresentErr, if set, is returned by SwapChain.Present.
	PresentErr error

	props []driver.AdapterProperties

	validation      bool
	validationLevel driver.ValidationLevel
	discovered      bool

	adapterCalls  int
	discoverCalls int

	liveSurfaces   int
	liveSwapChains int
	liveViews      int
	swapChains     int
	presents       int
	surfaceDescs   []driver.SurfaceDescriptor
	lastSwapDesc   driver.SwapChainDescriptor
}

// NewInstance returns a fake instance that will expose the given adapters.
func NewInstance(adapters ...driver.AdapterProperties) *Instance {
	return &Instance{props: adapters}
}

// Discrete is a shorthand for a discrete adapter on backend.
func Discrete(name string, backend gputypes.Backend) driver.AdapterProperties {
	return driver.AdapterProperties{Name: name, DriverDescription: "fake", AdapterType: gputypes.DeviceTypeDiscreteGPU, BackendType: backend}
}

// Integrated is a shorthand for an integrated adapter on backend.
func Integrated(name string, backend gputypes.Backend) driver.AdapterProperties {
	return driver.AdapterProperties{Name: name, DriverDescription: "fake", AdapterType: gputypes.DeviceTypeIntegratedGPU, BackendType: backend}
}

func (i *Instance) trace(op string) {
	if i.Trace != nil {
		i.Trace(op)
	}
}

// EnableBackendValidation records the validation toggle.
func (i *Instance) EnableBackendValidation(enabled bool) {
	i.mu.Lock()
	i.validation = enabled
	i.mu.Unlock()
	i.trace("enableBackendValidation")
}

// SetValidationLevel records the validation level.
func (i *Instance) SetValidationLevel(level driver.ValidationLevel) {
	i.mu.Lock()
	i.validationLevel = level
	i.mu.Unlock()
	i.trace("setValidationLevel")
}

// DiscoverDefaultAdapters marks the adapters as discovered.
func (i *Instance) DiscoverDefaultAdapters() error {
	i.mu.Lock()
	i.discovered = true
	i.discoverCalls++
	i.mu.Unlock()
	i.trace("discoverDefaultAdapters")
	return nil
}

// Adapters returns the scripted adapters. Before discovery it returns nil.
func (i *Instance) Adapters() []driver.Adapter {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.adapterCalls++
	if !i.discovered {
		return nil
	}
	out := make([]driver.Adapter, len(i.props))
	for n, p := range i.props {
		out[n] = Adapter{Index: n, Props: p}
	}
	return out
}

// CreateSurface returns a fake surface.
func (i *Instance) CreateSurface(desc driver.SurfaceDescriptor) (driver.Surface, error) {
	i.trace("createSurface")
	if i.SurfaceErr != nil {
		return nil, i.SurfaceErr
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.discovered {
		return nil, driver.ErrNotDiscovered
	}
	i.liveSurfaces++
	i.surfaceDescs = append(i.surfaceDescs, desc)
	return &Surface{inst: i, Desc: desc}, nil
}

// Validation reports the recorded validation settings.
func (i *Instance) Validation() (enabled bool, level driver.ValidationLevel) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.validation, i.validationLevel
}

// DiscoverCalls reports how often DiscoverDefaultAdapters was called.
func (i *Instance) DiscoverCalls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.discoverCalls
}

// AdapterCalls reports how often Adapters was called.
func (i *Instance) AdapterCalls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.adapterCalls
}

// LiveSurfaces is the number of surfaces not yet released.
func (i *Instance) LiveSurfaces() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.liveSurfaces
}

// LiveSwapChains is the number of swap chains not yet released.
func (i *Instance) LiveSwapChains() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.liveSwapChains
}

// LiveViews is the number of texture views not yet released.
func (i *Instance) LiveViews() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.liveViews
}

// SwapChains is the total number of swap chains ever created.
func (i *Instance) SwapChains() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.swapChains
}

// Presents is the total number of Present calls.
func (i *Instance) Presents() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.presents
}

// LastSwapChainDescriptor returns the descriptor of the newest swap chain.
func (i *Instance) LastSwapChainDescriptor() driver.SwapChainDescriptor {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastSwapDesc
}

// SurfaceDescriptors returns every descriptor passed to CreateSurface.
func (i *Instance) SurfaceDescriptors() []driver.SurfaceDescriptor {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]driver.SurfaceDescriptor(nil), i.surfaceDescs...)
}

// Adapter is a fake driver.Adapter.
type Adapter struct {
	Index int
	Props driver.AdapterProperties
}

// Properties returns the scripted properties.
func (a Adapter) Properties() driver.AdapterProperties { return a.Props }

// Device is a fake device that satisfies gpucontext.DeviceProvider.
type Device struct {
	Label string
}

// NewDevice returns a device accepted by surfaces of any fake Instance.
func NewDevice(label string) *Device { return &Device{Label: label} }

// Device returns the device itself.
func (d *Device) Device() gpucontext.Device { return d }

// Queue returns nil; the fake has no queue.
func (d *Device) Queue() gpucontext.Queue { return nil }

// SurfaceFormat returns BGRA8Unorm.
func (d *Device) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// Adapter returns nil.
func (d *Device) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns placeholder metadata.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: d.Label, Type: gpucontext.AdapterTypeUnknown}
}

// ForeignDevice is a DeviceProvider whose device belongs to no fake driver.
type ForeignDevice struct{ gpucontext.DeviceProvider }

// Device returns a value the fake surface cannot unwrap.
func (ForeignDevice) Device() gpucontext.Device { return struct{}{} }

// Surface is a fake driver.Surface.
type Surface struct {
	inst     *Instance
	Desc     driver.SurfaceDescriptor
	released bool
}

// Configure creates a fake swap chain.
func (s *Surface) Configure(provider gpucontext.DeviceProvider, desc *driver.SwapChainDescriptor) (driver.SwapChain, error) {
	s.inst.trace("configure")
	if s.released {
		return nil, driver.ErrReleased
	}
	if provider == nil {
		return nil, driver.ErrUnwrap
	}
	dev, ok := provider.Device().(*Device)
	if !ok || dev == nil {
		return nil, fmt.Errorf("%w: got %T", driver.ErrUnwrap, provider.Device())
	}
	if desc == nil {
		return nil, errors.New("drivertest: nil swap chain descriptor")
	}
	if s.inst.ConfigureErr != nil {
		return nil, s.inst.ConfigureErr
	}
	s.inst.mu.Lock()
	defer s.inst.mu.Unlock()
	s.inst.liveSwapChains++
	s.inst.swapChains++
	s.inst.lastSwapDesc = *desc
	return &SwapChain{inst: s.inst, Device: dev, Desc: *desc}, nil
}

// Release releases the surface.
func (s *Surface) Release() {
	s.inst.trace("releaseSurface")
	if s.released {
		return
	}
	s.released = true
	s.inst.mu.Lock()
	s.inst.liveSurfaces--
	s.inst.mu.Unlock()
}

// SwapChain is a fake driver.SwapChain.
type SwapChain struct {
	inst     *Instance
	Device   *Device
	Desc     driver.SwapChainDescriptor
	released bool
}

// CurrentTextureView returns a new fake view.
func (sc *SwapChain) CurrentTextureView() (driver.TextureView, error) {
	sc.inst.trace("currentTextureView")
	if sc.released {
		return nil, driver.ErrReleased
	}
	sc.inst.mu.Lock()
	sc.inst.liveViews++
	sc.inst.mu.Unlock()
	return &TextureView{inst: sc.inst}, nil
}

// Present counts a present.
func (sc *SwapChain) Present() error {
	sc.inst.trace("present")
	if sc.released {
		return driver.ErrReleased
	}
	if sc.inst.PresentErr != nil {
		return sc.inst.PresentErr
	}
	sc.inst.mu.Lock()
	sc.inst.presents++
	sc.inst.mu.Unlock()
	return nil
}

// Release releases the swap chain.
func (sc *SwapChain) Release() {
	sc.inst.trace("releaseSwapChain")
	if sc.released {
		return
	}
	sc.released = true
	sc.inst.mu.Lock()
	sc.inst.liveSwapChains--
	sc.inst.mu.Unlock()
}

// Released reports whether Release was called.
func (sc *SwapChain) Released() bool { return sc.released }

// TextureView is a fake driver.TextureView.
type TextureView struct {
	inst     *Instance
	released bool
}

// Release releases the view.
func (v *TextureView) Release() {
	if v.released {
		return
	}
	v.released = true
	v.inst.mu.Lock()
	v.inst.liveViews--
	v.inst.mu.Unlock()
}

var (
	_ driver.Instance           = (*Instance)(nil)
	_ driver.Surface            = (*Surface)(nil)
	_ driver.SwapChain          = (*SwapChain)(nil)
	_ gpucontext.DeviceProvider = (*Device)(nil)
	_ gpucontext.DeviceProvider = ForeignDevice{}
)
