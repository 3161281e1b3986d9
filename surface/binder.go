// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/platform"
)

// Errors.
var (
	// ErrAlreadyBound is returned when a window already has a surface.
	ErrAlreadyBound = errors.New("surface: window already bound")

	// ErrDescriptor is returned when the window system cannot describe the
	// native window.
	ErrDescriptor = errors.New("surface: could not describe native window")

	// ErrCreate is returned when the driver fails to create the surface.
	ErrCreate = errors.New("surface: could not create surface")
)

// NotBoundError indicates Unbind or Surface was called for a window
// without a surface.
type NotBoundError struct {
	Window platform.Handle
}

func (e *NotBoundError) Error() string {
	return fmt.Sprintf("surface: window %d not bound", uintptr(e.Window))
}

// Binder creates driver surfaces for platform windows.
type Binder struct {
	inst driver.Instance
	sys  platform.System
	log  *slog.Logger

	mu       sync.Mutex
	surfaces map[platform.Handle]driver.Surface
}

// NewBinder returns a binder creating surfaces on inst for windows of sys.
// A nil logger discards output.
func NewBinder(inst driver.Instance, sys platform.System, logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Binder{
		inst:     inst,
		sys:      sys,
		log:      logger,
		surfaces: make(map[platform.Handle]driver.Surface),
	}
}

// Bind creates the surface for window.
func (b *Binder) Bind(window platform.Handle) (driver.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.surfaces[window]; ok {
		return nil, ErrAlreadyBound
	}

	desc, err := b.sys.SurfaceDescriptor(window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescriptor, err)
	}
	s, err := b.inst.CreateSurface(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}

	b.surfaces[window] = s
	b.log.Debug("surface: bound", "window", uintptr(window), "label", desc.Label)
	return s, nil
}

// Surface returns the surface bound to window.
func (b *Binder) Surface(window platform.Handle) (driver.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.surfaces[window]
	if !ok {
		return nil, &NotBoundError{Window: window}
	}
	return s, nil
}

// Unbind releases the surface of window.
func (b *Binder) Unbind(window platform.Handle) error {
	b.mu.Lock()
	s, ok := b.surfaces[window]
	delete(b.surfaces, window)
	b.mu.Unlock()

	if !ok {
		return &NotBoundError{Window: window}
	}
	s.Release()
	b.log.Debug("surface: unbound", "window", uintptr(window))
	return nil
}

// Len returns the number of bound windows.
func (b *Binder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.surfaces)
}
