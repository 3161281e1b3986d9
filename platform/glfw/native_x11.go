// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || freebsd || netbsd || openbsd) && !wayland

package glfw

import (
	"unsafe"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"
)

const nativePlatform = "x11"

// nativeHandles returns the X11 Display* and Window.
func nativeHandles(w *glfw3.Window) (display, window uintptr, err error) {
	return uintptr(unsafe.Pointer(glfw3.GetX11Display())), uintptr(w.GetX11Window()), nil
}
