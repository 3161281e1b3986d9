// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface binds native windows to presentable driver surfaces.
//
// A Binder asks the window system for the platform handles of a window,
// then asks the driver to create a surface from them. Each window can be
// bound once; Unbind releases the surface and allows the window to be bound
// again.
//
// # Usage
//
//	b := surface.NewBinder(inst, sys, logger)
//	s, err := b.Bind(window)
//	if err != nil {
//	    return err
//	}
//	defer b.Unbind(window)
package surface
