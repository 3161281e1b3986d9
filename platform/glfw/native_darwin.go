// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfw

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework QuartzCore -framework Metal

#import <Cocoa/Cocoa.h>
#import <QuartzCore/CAMetalLayer.h>
#import <Metal/Metal.h>

static void* attachMetalLayer(void* nsWindow) {
	if (nsWindow == NULL) {
		return NULL;
	}
	NSWindow* window = (__bridge NSWindow*)nsWindow;
	NSView* view = [window contentView];
	if (view == nil) {
		return NULL;
	}
	[view setWantsLayer:YES];

	CAMetalLayer* layer = [CAMetalLayer layer];
	layer.pixelFormat = MTLPixelFormatBGRA8Unorm;
	layer.framebufferOnly = YES;
	layer.frame = view.bounds;
	layer.contentsScale = 1.0;
	[view setLayer:layer];
	return (__bridge void*)layer;
}
*/
import "C"

import (
	"errors"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"
)

const nativePlatform = "cocoa"

var errNoMetalLayer = errors.New("glfw: could not attach a CAMetalLayer to the window")

// nativeHandles attaches a CAMetalLayer to the window's content view and
// returns it. Callers cache the result; attaching twice replaces the layer.
func nativeHandles(w *glfw3.Window) (display, window uintptr, err error) {
	layer := C.attachMetalLayer(w.GetCocoaWindow())
	if layer == nil {
		return 0, 0, errNoMetalLayer
	}
	return 0, uintptr(layer), nil
}
