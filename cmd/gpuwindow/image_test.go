package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImagePattern(t *testing.T) {
	img, err := loadImage("", 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 16, 8) {
		t.Fatalf("Bounds() = %v, want 16x8", got)
	}
	rgba := img.(*image.RGBA)
	if c := rgba.RGBAAt(0, 0); c.R != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("top-left = %v, want black ramp origin", c)
	}
	if c := rgba.RGBAAt(15, 7); c.R != 255 || c.B != 255 {
		t.Errorf("bottom-right = %v, want full red and blue", c)
	}
}

func TestTestPatternSinglePixel(t *testing.T) {
	if c := testPattern(1, 1).RGBAAt(0, 0); c.A != 255 {
		t.Errorf("pixel = %v, want opaque", c)
	}
}

func TestLoadImagePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.NRGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := loadImage(path, 100, 100)
	if err != nil {
		t.Fatalf("loadImage: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{3, 2}) {
		t.Errorf("size = %v, want 3x2", got)
	}
	if _, g, _, _ := img.At(1, 1).RGBA(); g != 0xffff {
		t.Errorf("green at (1,1) = %#x, want 0xffff", g)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadImage(filepath.Join(dir, "missing.png"), 1, 1); err == nil {
		t.Error("missing file: want error")
	}
	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadImage(junk, 1, 1); err == nil {
		t.Error("junk file: want error")
	}
}
