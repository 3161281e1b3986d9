// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platformtest provides a scripted platform.System for tests.
//
// Events are queued with the Queue* methods and delivered by PollEvents in
// FIFO order. Fire* methods invoke a hook immediately, outside of the pump,
// which lets a test simulate a native callback arriving at an awkward time
// (for example while a window is being destroyed, via OnDestroy).
package platformtest

import (
	"fmt"

	"github.com/gogpu/gpuwindow/driver"
	"github.com/gogpu/gpuwindow/platform"
)

// System is a fake platform.System. It is not safe for concurrent use,
// matching the single-threaded contract of real window systems.
type System struct {
	// Trace, if set, is called with the name of every operation.
	Trace func(op string)

	// OnDestroy, if set, runs at the start of DestroyWindow while the
	// window is still valid.
	OnDestroy func(h platform.Handle)

	// InitErr, if set, is returned by Init.
	InitErr error
	// CreateErr, if set, makes CreateWindow fail after reporting the error
	// through the error callback.
	CreateErr error
	// DescriptorErr, if set, is returned by SurfaceDescriptor.
	DescriptorErr error

	initialized bool
	inits       int
	terminates  int
	polls       int
	next        platform.Handle
	windows     map[platform.Handle]*Window
	queue       []func()
	onError     platform.ErrorCallback
}

// Window is the fake state of one window.
type Window struct {
	Width, Height int
	Title         string
	ShouldClose   bool
	Destroyed     bool

	cursorPos   platform.CursorPosCallback
	mouseButton platform.MouseButtonCallback
	scroll      platform.ScrollCallback
	key         platform.KeyCallback
	cursorEnter platform.CursorEnterCallback
}

// Hooks returns the number of input hooks currently registered.
func (w *Window) Hooks() int {
	n := 0
	if w.cursorPos != nil {
		n++
	}
	if w.mouseButton != nil {
		n++
	}
	if w.scroll != nil {
		n++
	}
	if w.key != nil {
		n++
	}
	if w.cursorEnter != nil {
		n++
	}
	return n
}

// New returns an uninitialized fake window system.
func New() *System {
	return &System{windows: make(map[platform.Handle]*Window)}
}

func (s *System) trace(op string) {
	if s.Trace != nil {
		s.Trace(op)
	}
}

// Init marks the system initialized.
func (s *System) Init() error {
	s.trace("init")
	if s.InitErr != nil {
		return s.InitErr
	}
	s.initialized = true
	s.inits++
	return nil
}

// Terminate destroys all windows.
func (s *System) Terminate() {
	s.trace("terminate")
	for _, w := range s.windows {
		w.Destroyed = true
	}
	s.windows = make(map[platform.Handle]*Window)
	s.queue = nil
	s.initialized = false
	s.terminates++
}

// SetErrorCallback stores fn.
func (s *System) SetErrorCallback(fn platform.ErrorCallback) {
	s.onError = fn
}

// CreateWindow creates a fake window.
func (s *System) CreateWindow(width, height int, title string) (platform.Handle, error) {
	s.trace("createWindow")
	if !s.initialized {
		s.reportError(0x00010001, "The GLFW library is not initialized")
		return 0, platform.ErrInit
	}
	if s.CreateErr != nil {
		s.reportError(0x00010008, s.CreateErr.Error())
		return 0, fmt.Errorf("%w: %w", platform.ErrCreateWindow, s.CreateErr)
	}
	s.next++
	s.windows[s.next] = &Window{Width: width, Height: height, Title: title}
	return s.next, nil
}

func (s *System) reportError(code int, desc string) {
	if s.onError != nil {
		s.onError(code, desc)
	}
}

// DestroyWindow destroys the window.
func (s *System) DestroyWindow(h platform.Handle) {
	s.trace("destroyWindow")
	w, ok := s.windows[h]
	if !ok {
		return
	}
	if s.OnDestroy != nil {
		s.OnDestroy(h)
	}
	w.Destroyed = true
	delete(s.windows, h)
}

// SetCursorPosCallback registers fn.
func (s *System) SetCursorPosCallback(h platform.Handle, fn platform.CursorPosCallback) {
	s.trace(hookOp("cursorPos", fn == nil))
	if w, ok := s.windows[h]; ok {
		w.cursorPos = fn
	}
}

// SetMouseButtonCallback registers fn.
func (s *System) SetMouseButtonCallback(h platform.Handle, fn platform.MouseButtonCallback) {
	s.trace(hookOp("mouseButton", fn == nil))
	if w, ok := s.windows[h]; ok {
		w.mouseButton = fn
	}
}

// SetScrollCallback registers fn.
func (s *System) SetScrollCallback(h platform.Handle, fn platform.ScrollCallback) {
	s.trace(hookOp("scroll", fn == nil))
	if w, ok := s.windows[h]; ok {
		w.scroll = fn
	}
}

// SetKeyCallback registers fn.
func (s *System) SetKeyCallback(h platform.Handle, fn platform.KeyCallback) {
	s.trace(hookOp("key", fn == nil))
	if w, ok := s.windows[h]; ok {
		w.key = fn
	}
}

// SetCursorEnterCallback registers fn.
func (s *System) SetCursorEnterCallback(h platform.Handle, fn platform.CursorEnterCallback) {
	s.trace(hookOp("cursorEnter", fn == nil))
	if w, ok := s.windows[h]; ok {
		w.cursorEnter = fn
	}
}

func hookOp(name string, clear bool) string {
	if clear {
		return "clear:" + name
	}
	return "set:" + name
}

// PollEvents runs every queued event in order.
func (s *System) PollEvents() {
	s.trace("pollEvents")
	s.polls++
	pending := s.queue
	s.queue = nil
	for _, fn := range pending {
		fn()
	}
}

// WindowShouldClose reports the close flag.
func (s *System) WindowShouldClose(h platform.Handle) bool {
	if w, ok := s.windows[h]; ok {
		return w.ShouldClose
	}
	return false
}

// SurfaceDescriptor returns a descriptor whose Window field is the handle.
func (s *System) SurfaceDescriptor(h platform.Handle) (driver.SurfaceDescriptor, error) {
	if s.DescriptorErr != nil {
		return driver.SurfaceDescriptor{}, s.DescriptorErr
	}
	if _, ok := s.windows[h]; !ok {
		return driver.SurfaceDescriptor{}, platform.ErrUnknownWindow
	}
	return driver.SurfaceDescriptor{Label: "platformtest", Window: uintptr(h)}, nil
}

// Window returns the fake state of h, or nil.
func (s *System) Window(h platform.Handle) *Window {
	return s.windows[h]
}

// Inits reports how many times Init succeeded.
func (s *System) Inits() int { return s.inits }

// Terminates reports how many times Terminate was called.
func (s *System) Terminates() int { return s.terminates }

// Polls reports how many times PollEvents was called.
func (s *System) Polls() int { return s.polls }

// Windows reports the number of live windows.
func (s *System) Windows() int { return len(s.windows) }

// QueueCursorPos queues a cursor-position event for the next poll.
func (s *System) QueueCursorPos(h platform.Handle, x, y float64) {
	s.queue = append(s.queue, func() { s.FireCursorPos(h, x, y) })
}

// QueueMouseButton queues a mouse-button event for the next poll.
func (s *System) QueueMouseButton(h platform.Handle, button, action, mods int) {
	s.queue = append(s.queue, func() { s.FireMouseButton(h, button, action, mods) })
}

// QueueScroll queues a scroll event for the next poll.
func (s *System) QueueScroll(h platform.Handle, xoff, yoff float64) {
	s.queue = append(s.queue, func() { s.FireScroll(h, xoff, yoff) })
}

// QueueKey queues a key event for the next poll.
func (s *System) QueueKey(h platform.Handle, key, scancode, action, mods int) {
	s.queue = append(s.queue, func() { s.FireKey(h, key, scancode, action, mods) })
}

// QueueCursorEnter queues a cursor-enter event for the next poll.
func (s *System) QueueCursorEnter(h platform.Handle, entered bool) {
	s.queue = append(s.queue, func() { s.FireCursorEnter(h, entered) })
}

// QueueClose sets the window's close flag during the next poll.
func (s *System) QueueClose(h platform.Handle) {
	s.queue = append(s.queue, func() {
		s.trace("closeRequest")
		if w, ok := s.windows[h]; ok {
			w.ShouldClose = true
		}
	})
}

// FireCursorPos invokes the cursor-position hook now, if registered.
func (s *System) FireCursorPos(h platform.Handle, x, y float64) {
	if w, ok := s.windows[h]; ok && w.cursorPos != nil {
		w.cursorPos(h, x, y)
	}
}

// FireMouseButton invokes the mouse-button hook now, if registered.
func (s *System) FireMouseButton(h platform.Handle, button, action, mods int) {
	if w, ok := s.windows[h]; ok && w.mouseButton != nil {
		w.mouseButton(h, button, action, mods)
	}
}

// FireScroll invokes the scroll hook now, if registered.
func (s *System) FireScroll(h platform.Handle, xoff, yoff float64) {
	if w, ok := s.windows[h]; ok && w.scroll != nil {
		w.scroll(h, xoff, yoff)
	}
}

// FireKey invokes the key hook now, if registered.
func (s *System) FireKey(h platform.Handle, key, scancode, action, mods int) {
	if w, ok := s.windows[h]; ok && w.key != nil {
		w.key(h, key, scancode, action, mods)
	}
}

// FireCursorEnter invokes the cursor-enter hook now, if registered.
func (s *System) FireCursorEnter(h platform.Handle, entered bool) {
	if w, ok := s.windows[h]; ok && w.cursorEnter != nil {
		w.cursorEnter(h, entered)
	}
}

var _ platform.System = (*System)(nil)
