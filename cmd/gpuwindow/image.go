package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/webp" // register WebP
)

// loadImage decodes path, or returns a test pattern of the given size when
// path is empty.
func loadImage(path string, width, height int) (image.Image, error) {
	if path == "" {
		return testPattern(width, height), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// testPattern is a horizontal red ramp over a vertical blue ramp.
func testPattern(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / max(width-1, 1)),
				G: 64,
				B: uint8(255 * y / max(height-1, 1)),
				A: 255,
			})
		}
	}
	return img
}
