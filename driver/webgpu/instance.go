// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(js && wasm)

// Package webgpu implements the driver contract on gogpu/wgpu.
//
// Adapters are enumerated once through wgpu/core with every HAL backend
// compiled in (hal/allbackends). Devices are created on a wgpu instance
// restricted to the adapter's backend, and a window's surface is created on
// that same instance when the window is configured, so surface and device
// always share one native API instance.
package webgpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/core"
	_ "github.com/gogpu/wgpu/hal/allbackends" // register HAL backends

	"github.com/gogpu/gpuwindow/driver"
)

// ErrNoSurfaceHandle is returned by CreateSurface for a descriptor without
// a window handle.
var ErrNoSurfaceHandle = errors.New("webgpu: surface descriptor has no window handle")

// Instance is a driver.Instance backed by gogpu/wgpu.
type Instance struct {
	backends gputypes.Backends

	mu         sync.Mutex
	log        *slog.Logger
	validation bool
	level      driver.ValidationLevel
	enum       *core.Instance
	adapters   []driver.Adapter
	discovered bool

	// gpus holds one wgpu instance per backend, created on first use.
	gpus map[gputypes.Backend]*wgpu.Instance
	// devices maps devices created by this driver to their instance.
	devices map[*wgpu.Device]*wgpu.Instance
}

// New returns an instance enumerating adapters of the given backends.
// BackendsNone selects every backend.
func New(backends gputypes.Backends) *Instance {
	if backends == gputypes.BackendsNone {
		backends = gputypes.BackendsAll
	}
	return &Instance{
		backends: backends,
		log:      slog.New(slog.DiscardHandler),
		gpus:     make(map[gputypes.Backend]*wgpu.Instance),
		devices:  make(map[*wgpu.Device]*wgpu.Instance),
	}
}

// SetLogger sets the driver logger and forwards it to the wgpu stack.
func (i *Instance) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	i.mu.Lock()
	i.log = l
	i.mu.Unlock()
	wgpu.SetLogger(l)
}

// EnableBackendValidation toggles validation layers.
func (i *Instance) EnableBackendValidation(enabled bool) {
	i.mu.Lock()
	i.validation = enabled
	i.mu.Unlock()
}

// SetValidationLevel sets the validation level.
func (i *Instance) SetValidationLevel(level driver.ValidationLevel) {
	i.mu.Lock()
	i.level = level
	i.mu.Unlock()
}

func (i *Instance) descriptor(backends gputypes.Backends) gputypes.InstanceDescriptor {
	desc := gputypes.DefaultInstanceDescriptor()
	desc.Backends = backends
	desc.Flags = driver.InstanceFlags(i.validation, i.level)
	return desc
}

// DiscoverDefaultAdapters enumerates the adapters of every enabled backend.
// Adapters whose info cannot be read are skipped.
func (i *Instance) DiscoverDefaultAdapters() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.discovered {
		return nil
	}
	desc := i.descriptor(i.backends)
	i.enum = core.NewInstance(&desc)
	if i.enum.IsMock() {
		i.log.Warn("webgpu: no hardware adapters, using mock adapter")
	}

	for n, id := range i.enum.EnumerateAdapters() {
		info, err := core.GetAdapterInfo(id)
		if err != nil {
			i.log.Warn("webgpu: skipping adapter", "index", n, "err", err)
			continue
		}
		i.adapters = append(i.adapters, &Adapter{inst: i, info: info})
	}
	i.discovered = true
	i.log.Debug("webgpu: adapters discovered",
		"count", len(i.adapters),
		"flags", uint32(desc.Flags))
	return nil
}

// Adapters returns the discovered adapters in enumeration order.
func (i *Instance) Adapters() []driver.Adapter {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]driver.Adapter(nil), i.adapters...)
}

// CreateSurface records the window handles. The native surface is created
// by the first Configure, on the instance that owns the device.
func (i *Instance) CreateSurface(desc driver.SurfaceDescriptor) (driver.Surface, error) {
	i.mu.Lock()
	discovered := i.discovered
	i.mu.Unlock()
	if !discovered {
		return nil, driver.ErrNotDiscovered
	}
	if desc.Window == 0 {
		return nil, ErrNoSurfaceHandle
	}
	return &Surface{inst: i, desc: desc}, nil
}

// gpu returns the wgpu instance for backend, creating it on first use.
func (i *Instance) gpu(backend gputypes.Backend) (*wgpu.Instance, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if g, ok := i.gpus[backend]; ok {
		return g, nil
	}
	desc := i.descriptor(gputypes.Backends(1 << backend))
	g, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: desc.Backends,
		Flags:    desc.Flags,
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: create %s instance: %w", backend, err)
	}
	i.gpus[backend] = g
	return g, nil
}

func (i *Instance) trackDevice(d *wgpu.Device, g *wgpu.Instance) {
	i.mu.Lock()
	i.devices[d] = g
	i.mu.Unlock()
}

func (i *Instance) forgetDevice(d *wgpu.Device) {
	i.mu.Lock()
	delete(i.devices, d)
	i.mu.Unlock()
}

// owner returns the instance that created d.
func (i *Instance) owner(d *wgpu.Device) (*wgpu.Instance, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	g, ok := i.devices[d]
	return g, ok
}

// Release destroys every wgpu instance created by the driver.
// Devices and surfaces must be released first.
func (i *Instance) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for b, g := range i.gpus {
		g.Release()
		delete(i.gpus, b)
	}
	if i.enum != nil {
		i.enum.Destroy()
		i.enum = nil
	}
}

var _ driver.Instance = (*Instance)(nil)
