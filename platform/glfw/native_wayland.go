// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || freebsd || netbsd || openbsd) && wayland

package glfw

import (
	"unsafe"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"
)

const nativePlatform = "wayland"

// nativeHandles returns the wl_display* and wl_surface*.
func nativeHandles(w *glfw3.Window) (display, window uintptr, err error) {
	return uintptr(unsafe.Pointer(glfw3.GetWaylandDisplay())), uintptr(unsafe.Pointer(w.GetWaylandWindow())), nil
}
