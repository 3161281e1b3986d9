// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfw

import (
	"unsafe"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"
)

const nativePlatform = "win32"

// nativeHandles returns the HWND. The module handle is left zero; the
// driver resolves it.
func nativeHandles(w *glfw3.Window) (display, window uintptr, err error) {
	return 0, uintptr(unsafe.Pointer(w.GetWin32Window())), nil
}
