// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfw implements platform.System on GLFW 3.3 (go-gl/glfw).
//
// GLFW must be driven from the main thread. Programs using this package
// should call runtime.LockOSThread from an init function in package main and
// make every System call from main.
//
// Windows are created without a client API, so no OpenGL context is made,
// and without a Retina framebuffer, so the framebuffer size equals the
// window size on every platform.
package glfw

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/platform"
)

// System is a platform.System backed by GLFW.
type System struct {
	mu      sync.Mutex
	log     *slog.Logger
	onError platform.ErrorCallback

	next    platform.Handle
	windows map[platform.Handle]*glfw3.Window
	handles map[*glfw3.Window]platform.Handle
	native  map[platform.Handle]driver.SurfaceDescriptor
}

// New returns an uninitialized GLFW system.
func New() *System {
	return &System{
		log:     slog.New(slog.DiscardHandler),
		windows: make(map[platform.Handle]*glfw3.Window),
		handles: make(map[*glfw3.Window]platform.Handle),
		native:  make(map[platform.Handle]driver.SurfaceDescriptor),
	}
}

// SetLogger sets the logger. Nil disables logging.
func (s *System) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.mu.Lock()
	s.log = l
	s.mu.Unlock()
}

// SetErrorCallback installs the error hook. go-gl/glfw turns GLFW errors
// into returned values; System forwards those to fn before returning them.
func (s *System) SetErrorCallback(fn platform.ErrorCallback) {
	s.mu.Lock()
	s.onError = fn
	s.mu.Unlock()
}

// report forwards err to the error hook.
func (s *System) report(err error) {
	s.mu.Lock()
	fn := s.onError
	s.mu.Unlock()
	if fn == nil {
		return
	}
	var gerr *glfw3.Error
	if errors.As(err, &gerr) {
		fn(int(gerr.Code), gerr.Desc)
		return
	}
	fn(0, err.Error())
}

// Init initializes GLFW.
func (s *System) Init() error {
	if err := glfw3.Init(); err != nil {
		s.report(err)
		return fmt.Errorf("%w: %w", platform.ErrInit, err)
	}
	s.log.Debug("glfw: initialized", "version", glfw3.GetVersionString())
	return nil
}

// Terminate destroys every remaining window and shuts GLFW down.
func (s *System) Terminate() {
	glfw3.Terminate()
	s.mu.Lock()
	clear(s.windows)
	clear(s.handles)
	clear(s.native)
	s.mu.Unlock()
	s.log.Debug("glfw: terminated")
}

// CreateWindow opens a window with no client API.
func (s *System) CreateWindow(width, height int, title string) (platform.Handle, error) {
	glfw3.WindowHint(glfw3.ClientAPI, glfw3.NoAPI)
	glfw3.WindowHint(glfw3.CocoaRetinaFramebuffer, glfw3.False)

	w, err := glfw3.CreateWindow(width, height, title, nil, nil)
	if w == nil && err == nil {
		// Platform errors are logged by go-gl/glfw and not returned.
		err = errors.New("glfw: window creation failed")
	}
	if err != nil {
		s.report(err)
		return 0, fmt.Errorf("%w: %w", platform.ErrCreateWindow, err)
	}

	s.mu.Lock()
	s.next++
	h := s.next
	s.windows[h] = w
	s.handles[w] = h
	s.mu.Unlock()
	return h, nil
}

// DestroyWindow destroys the window. Unknown handles are ignored.
func (s *System) DestroyWindow(h platform.Handle) {
	s.mu.Lock()
	w, ok := s.windows[h]
	delete(s.windows, h)
	delete(s.handles, w)
	delete(s.native, h)
	s.mu.Unlock()
	if ok {
		w.Destroy()
	}
}

func (s *System) window(h platform.Handle) *glfw3.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows[h]
}

func (s *System) handle(w *glfw3.Window) platform.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handles[w]
}

// SetCursorPosCallback sets or clears the cursor position hook.
func (s *System) SetCursorPosCallback(h platform.Handle, fn platform.CursorPosCallback) {
	w := s.window(h)
	if w == nil {
		return
	}
	if fn == nil {
		w.SetCursorPosCallback(nil)
		return
	}
	w.SetCursorPosCallback(func(w *glfw3.Window, x, y float64) {
		fn(s.handle(w), x, y)
	})
}

// SetMouseButtonCallback sets or clears the mouse button hook.
func (s *System) SetMouseButtonCallback(h platform.Handle, fn platform.MouseButtonCallback) {
	w := s.window(h)
	if w == nil {
		return
	}
	if fn == nil {
		w.SetMouseButtonCallback(nil)
		return
	}
	w.SetMouseButtonCallback(func(w *glfw3.Window, b glfw3.MouseButton, a glfw3.Action, m glfw3.ModifierKey) {
		fn(s.handle(w), int(b), int(a), int(m))
	})
}

// SetScrollCallback sets or clears the scroll hook.
func (s *System) SetScrollCallback(h platform.Handle, fn platform.ScrollCallback) {
	w := s.window(h)
	if w == nil {
		return
	}
	if fn == nil {
		w.SetScrollCallback(nil)
		return
	}
	w.SetScrollCallback(func(w *glfw3.Window, xoff, yoff float64) {
		fn(s.handle(w), xoff, yoff)
	})
}

// SetKeyCallback sets or clears the key hook.
func (s *System) SetKeyCallback(h platform.Handle, fn platform.KeyCallback) {
	w := s.window(h)
	if w == nil {
		return
	}
	if fn == nil {
		w.SetKeyCallback(nil)
		return
	}
	w.SetKeyCallback(func(w *glfw3.Window, k glfw3.Key, scancode int, a glfw3.Action, m glfw3.ModifierKey) {
		fn(s.handle(w), int(k), scancode, int(a), int(m))
	})
}

// SetCursorEnterCallback sets or clears the cursor enter/leave hook.
func (s *System) SetCursorEnterCallback(h platform.Handle, fn platform.CursorEnterCallback) {
	w := s.window(h)
	if w == nil {
		return
	}
	if fn == nil {
		w.SetCursorEnterCallback(nil)
		return
	}
	w.SetCursorEnterCallback(func(w *glfw3.Window, entered bool) {
		fn(s.handle(w), entered)
	})
}

// PollEvents processes pending events.
func (s *System) PollEvents() { glfw3.PollEvents() }

// WindowShouldClose reports the window's close flag. Unknown handles
// report true.
func (s *System) WindowShouldClose(h platform.Handle) bool {
	w := s.window(h)
	if w == nil {
		return true
	}
	return w.ShouldClose()
}

// SurfaceDescriptor returns the native handles of the window. They are
// resolved once per window.
func (s *System) SurfaceDescriptor(h platform.Handle) (driver.SurfaceDescriptor, error) {
	s.mu.Lock()
	desc, ok := s.native[h]
	w := s.windows[h]
	s.mu.Unlock()
	if ok {
		return desc, nil
	}
	if w == nil {
		return driver.SurfaceDescriptor{}, fmt.Errorf("%w: %d", platform.ErrUnknownWindow, h)
	}

	display, window, err := nativeHandles(w)
	if err != nil {
		return driver.SurfaceDescriptor{}, err
	}
	desc = driver.SurfaceDescriptor{
		Label:   fmt.Sprintf("glfw-%d", h),
		Display: display,
		Window:  window,
	}
	s.mu.Lock()
	s.native[h] = desc
	s.mu.Unlock()
	s.log.Debug("glfw: native handles", "window", uint64(h), "platform", nativePlatform)
	return desc, nil
}

var _ platform.System = (*System)(nil)
