// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(js && wasm)

package webgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gpuwindow/driver"
)

// Surface is a window bound to a wgpu surface.
//
// The wgpu surface is created by Configure on the instance that owns the
// configuring device. Configuring with a device from another backend
// recreates it.
type Surface struct {
	inst  *Instance
	desc  driver.SurfaceDescriptor
	owner *wgpu.Instance
	wgpu  *wgpu.Surface
}

// Configure creates a swap chain on the surface for provider's device.
func (s *Surface) Configure(provider gpucontext.DeviceProvider, desc *driver.SwapChainDescriptor) (driver.SwapChain, error) {
	dev, ok := provider.Device().(*wgpu.Device)
	if !ok || dev == nil {
		return nil, fmt.Errorf("%w: %T is not a *wgpu.Device", driver.ErrUnwrap, provider.Device())
	}
	g, ok := s.inst.owner(dev)
	if !ok {
		return nil, fmt.Errorf("%w: device was not created by this driver", driver.ErrUnwrap)
	}

	if s.wgpu != nil && s.owner != g {
		s.wgpu.Release()
		s.wgpu = nil
	}
	if s.wgpu == nil {
		ws, err := g.CreateSurface(s.desc.Display, s.desc.Window)
		if err != nil {
			return nil, fmt.Errorf("webgpu: create surface %q: %w", s.desc.Label, err)
		}
		s.wgpu = ws
		s.owner = g
	}

	err := s.wgpu.Configure(dev, &wgpu.SurfaceConfiguration{
		Width:       desc.Width,
		Height:      desc.Height,
		Format:      desc.Format,
		Usage:       desc.Usage,
		PresentMode: desc.PresentMode,
		AlphaMode:   gputypes.CompositeAlphaModeOpaque,
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: configure surface %q: %w", s.desc.Label, err)
	}
	return &SwapChain{surface: s.wgpu, label: desc.Label}, nil
}

// Release destroys the wgpu surface, if one was created.
func (s *Surface) Release() {
	if s.wgpu != nil {
		s.wgpu.Release()
		s.wgpu = nil
		s.owner = nil
	}
}

// SwapChain is a configured wgpu surface.
type SwapChain struct {
	surface *wgpu.Surface
	label   string
	current *wgpu.SurfaceTexture
}

// CurrentTextureView acquires the next back buffer if none is held and
// returns a new view of it.
func (sc *SwapChain) CurrentTextureView() (driver.TextureView, error) {
	if sc.surface == nil {
		return nil, driver.ErrReleased
	}
	if sc.current == nil {
		// A suboptimal texture is still presentable; the window size is
		// fixed, so there is nothing to reconfigure.
		tex, _, err := sc.surface.GetCurrentTexture()
		if err != nil {
			return nil, fmt.Errorf("webgpu: acquire %q: %w", sc.label, err)
		}
		sc.current = tex
	}
	v, err := sc.current.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("webgpu: create view %q: %w", sc.label, err)
	}
	return &TextureView{view: v}, nil
}

// Present presents the held back buffer. Without one it does nothing.
func (sc *SwapChain) Present() error {
	if sc.surface == nil {
		return driver.ErrReleased
	}
	if sc.current == nil {
		return nil
	}
	tex := sc.current
	sc.current = nil
	return sc.surface.Present(tex)
}

// Release drops any held back buffer and unconfigures the surface.
func (sc *SwapChain) Release() {
	if sc.surface == nil {
		return
	}
	if sc.current != nil {
		sc.surface.DiscardTexture()
		sc.current = nil
	}
	sc.surface.Unconfigure()
	sc.surface = nil
}

// TextureView is a view of a swap chain back buffer.
type TextureView struct {
	view *wgpu.TextureView
}

// View returns the underlying texture view for use as a render attachment.
func (v *TextureView) View() *wgpu.TextureView { return v.view }

// Release releases the view.
func (v *TextureView) Release() {
	if v.view != nil {
		v.view.Release()
		v.view = nil
	}
}

var (
	_ driver.Surface     = (*Surface)(nil)
	_ driver.SwapChain   = (*SwapChain)(nil)
	_ driver.TextureView = (*TextureView)(nil)
)
