// Package rastertest builds small outline and region-id fixtures for tests.
package rastertest

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/example/colorbook/internal/raster"
)

var (
	// Ink is an opaque black outline pixel.
	Ink = color.NRGBA{A: 0xFF}
	// RegionGrey is the id color of the interior of Box.
	RegionGrey = color.NRGBA{R: 100, G: 100, B: 100, A: 0xFF}
)

// Box returns a 10×10 outline with a one pixel black border from (2,2) to
// (7,7) and the matching region-id map with the interior (3,3)-(6,6) set to
// RegionGrey. Everything else is transparent.
func Box() (outline, ids *raster.Buffer) {
	outline = raster.New(10, 10)
	StrokeRect(outline, image.Rect(2, 2, 8, 8), Ink)
	ids = raster.New(10, 10)
	FillRect(ids, image.Rect(3, 3, 7, 7), RegionGrey)
	return outline, ids
}

// StrokeRect draws a one pixel border on the inside edge of r.
func StrokeRect(b *raster.Buffer, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		b.Set(x, r.Min.Y, c)
		b.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		b.Set(r.Min.X, y, c)
		b.Set(r.Max.X-1, y, c)
	}
}

// FillRect sets every pixel of r to c.
func FillRect(b *raster.Buffer, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Set(x, y, c)
		}
	}
}

// VLine draws a vertical line at x from y0 to y1 inclusive.
func VLine(b *raster.Buffer, x, y0, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		b.Set(x, y, c)
	}
}

// Noise scatters ink over a w×h outline with the given density in [0,1].
func Noise(w, h int, density float64, seed int64) *raster.Buffer {
	rng := rand.New(rand.NewSource(seed))
	b := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				b.Set(x, y, Ink)
			}
		}
	}
	return b
}
