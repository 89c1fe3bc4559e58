package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cwsl/sstvtx/sstv"
)

// pixelBuffer is a normalized RGB raster implementing sstv.PixelSource.
// The engine only ever reads it.
type pixelBuffer struct {
	width  int
	height int
	pix    []uint8 // packed RGB triplets, row major
}

func (p *pixelBuffer) Width() int  { return p.width }
func (p *pixelBuffer) Height() int { return p.height }

func (p *pixelBuffer) RGB(x, y int) (r, g, b uint8) {
	i := (y*p.width + x) * 3
	return p.pix[i], p.pix[i+1], p.pix[i+2]
}

// loadImage decodes an image file and resamples it to exactly
// width x height, the dimensions the selected SSTV mode transmits. The
// engine itself refuses mismatched dimensions, so normalization happens
// here, on the collaborator side.
func loadImage(path string, width, height int) (*pixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return resample(img, width, height), nil
}

// resample stretches img to the target size with bilinear interpolation.
func resample(img image.Image, width, height int) *pixelBuffer {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	buf := &pixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}

	for y := 0; y < height; y++ {
		// Map output pixel centers into the source grid.
		fy := (float64(y)+0.5)*float64(srcH)/float64(height) - 0.5
		y0, wy := floorSplit(fy, srcH)
		for x := 0; x < width; x++ {
			fx := (float64(x)+0.5)*float64(srcW)/float64(width) - 0.5
			x0, wx := floorSplit(fx, srcW)

			r00, g00, b00 := rgbAt(img, bounds, x0, y0)
			r10, g10, b10 := rgbAt(img, bounds, x0+1, y0)
			r01, g01, b01 := rgbAt(img, bounds, x0, y0+1)
			r11, g11, b11 := rgbAt(img, bounds, x0+1, y0+1)

			i := (y*width + x) * 3
			buf.pix[i] = lerp2(r00, r10, r01, r11, wx, wy)
			buf.pix[i+1] = lerp2(g00, g10, g01, g11, wx, wy)
			buf.pix[i+2] = lerp2(b00, b10, b01, b11, wx, wy)
		}
	}
	return buf
}

// floorSplit splits a source coordinate into an integer cell clamped to
// [0, size-1] and the fractional weight toward the next cell.
func floorSplit(f float64, size int) (int, float64) {
	i := int(f)
	if f < 0 {
		return 0, 0
	}
	if i >= size-1 {
		return size - 1, 0
	}
	return i, f - float64(i)
}

func rgbAt(img image.Image, bounds image.Rectangle, x, y int) (r, g, b float64) {
	if x > bounds.Dx()-1 {
		x = bounds.Dx() - 1
	}
	if y > bounds.Dy()-1 {
		y = bounds.Dy() - 1
	}
	r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return float64(r16 >> 8), float64(g16 >> 8), float64(b16 >> 8)
}

func lerp2(v00, v10, v01, v11, wx, wy float64) uint8 {
	top := v00 + (v10-v00)*wx
	bot := v01 + (v11-v01)*wx
	v := top + (bot-top)*wy
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

// interface check
var _ sstv.PixelSource = (*pixelBuffer)(nil)
