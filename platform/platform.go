// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform defines the windowing-library contract used by the
// presentation core.
//
// The contract mirrors a handle-based C windowing API: windows are opaque
// Handles, input hooks are registered per handle, and events are delivered
// synchronously from PollEvents. Callbacks receive the handle of the window
// they fired for, so the receiver can route them through its own side table
// instead of a user-data pointer stored on the native window.
//
// The real implementation lives in platform/glfw. Tests use
// platform/platformtest.
package platform

import (
	"errors"

	"github.com/gogpu/gpuwindow/driver"
)

// Handle identifies a native window. The zero Handle is never valid.
type Handle uintptr

// Callback signatures for the five input hooks. Each carries the handle of
// the window it fired for.
type (
	CursorPosCallback   func(h Handle, x, y float64)
	MouseButtonCallback func(h Handle, button, action, mods int)
	ScrollCallback      func(h Handle, xoff, yoff float64)
	KeyCallback         func(h Handle, key, scancode, action, mods int)
	CursorEnterCallback func(h Handle, entered bool)
)

// ErrorCallback receives window-system errors.
type ErrorCallback func(code int, description string)

// System is a windowing library. All methods must be called from the thread
// that called Init.
type System interface {
	// Init initializes the library. Calling Init again after Terminate is allowed.
	Init() error

	// Terminate destroys remaining windows and releases library resources.
	Terminate()

	// SetErrorCallback installs the error hook. Pass nil to remove it.
	SetErrorCallback(fn ErrorCallback)

	// CreateWindow opens a window without a client graphics API.
	CreateWindow(width, height int, title string) (Handle, error)

	// DestroyWindow closes the window. The handle becomes invalid.
	DestroyWindow(h Handle)

	// Hook registration. Passing nil removes the hook.
	SetCursorPosCallback(h Handle, fn CursorPosCallback)
	SetMouseButtonCallback(h Handle, fn MouseButtonCallback)
	SetScrollCallback(h Handle, fn ScrollCallback)
	SetKeyCallback(h Handle, fn KeyCallback)
	SetCursorEnterCallback(h Handle, fn CursorEnterCallback)

	// PollEvents processes pending events once and returns. Registered
	// hooks run on the caller's stack.
	PollEvents()

	// WindowShouldClose reports whether the user asked to close the window.
	WindowShouldClose(h Handle) bool

	// SurfaceDescriptor returns the platform handles a driver needs to bind
	// a presentable surface to the window.
	SurfaceDescriptor(h Handle) (driver.SurfaceDescriptor, error)
}

var (
	// ErrInit is returned when the windowing library fails to initialize.
	ErrInit = errors.New("platform: could not initialize window system")

	// ErrCreateWindow is returned when a window cannot be created.
	ErrCreateWindow = errors.New("platform: could not create window")

	// ErrUnknownWindow is returned for handles the system does not own.
	ErrUnknownWindow = errors.New("platform: unknown window handle")
)
