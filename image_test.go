package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestResampleSolid(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 200, B: 90, A: 255})
		}
	}

	buf := resample(src, 320, 256)
	if buf.Width() != 320 || buf.Height() != 256 {
		t.Fatalf("resampled to %dx%d, want 320x256", buf.Width(), buf.Height())
	}
	for _, pt := range [][2]int{{0, 0}, {319, 255}, {160, 128}} {
		r, g, b := buf.RGB(pt[0], pt[1])
		if r != 10 || g != 200 || b != 90 {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d), want (10,200,90)", pt[0], pt[1], r, g, b)
		}
	}
}

func TestResampleGradientMonotone(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 256, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 256; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(x)})
		}
	}

	buf := resample(src, 320, 16)
	prev := -1
	for x := 0; x < 320; x++ {
		r, _, _ := buf.RGB(x, 8)
		if int(r) < prev {
			t.Fatalf("gradient not monotone at column %d: %d < %d", x, r, prev)
		}
		prev = int(r)
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	buf, err := loadImage(path, 320, 240)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := buf.RGB(100, 100)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("pixel (100,100) = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := loadImage(filepath.Join(t.TempDir(), "absent.png"), 320, 256); err == nil {
		t.Error("expected an error for a missing file")
	}
}
