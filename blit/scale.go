// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale returns src resized to width x height as tightly packed RGBA.
// An *image.RGBA that already has that size and stride is returned as is.
func Scale(src image.Image, width, height int) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok &&
		rgba.Rect.Min == (image.Point{}) &&
		rgba.Rect.Dx() == width && rgba.Rect.Dy() == height &&
		rgba.Stride == width*4 {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Size() == dst.Rect.Size() {
		draw.Copy(dst, image.Point{}, src, src.Bounds(), draw.Src, nil)
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
