// Package floodfill computes the region enclosed by outline ink around a
// seed pixel.
package floodfill

import (
	"errors"
	"image"
	"image/color"

	"github.com/example/colorbook/internal/raster"
)

var (
	// ErrSeedOnWall is returned when the seed pixel is itself ink.
	ErrSeedOnWall = errors.New("floodfill: seed is on an outline")
	// ErrEmptyRegion is returned when nothing could be visited.
	ErrEmptyRegion = errors.New("floodfill: empty region")
)

// Result is the filled region of one flood.
type Result struct {
	// Mask covers Bounds only and has a zero origin. Visited pixels are
	// opaque, the rest transparent.
	Mask *image.Alpha
	// Bounds is the tight half-open bounding box in image coordinates.
	Bounds image.Rectangle
	// Area counts visited pixels.
	Area int
}

// Contains reports whether the image pixel (x, y) is part of the region.
func (r *Result) Contains(x, y int) bool {
	p := image.Pt(x, y)
	if !p.In(r.Bounds) {
		return false
	}
	p = p.Sub(r.Bounds.Min)
	return r.Mask.AlphaAt(p.X, p.Y).A != 0
}

// Fill runs a breadth-first search over 4-connected non-wall pixels of
// outline starting at seed.
func Fill(outline *raster.Buffer, seed image.Point, rule raster.WallRule) (*Result, error) {
	w, h := outline.Width(), outline.Height()
	if !outline.In(seed.X, seed.Y) {
		return nil, raster.ErrOutOfBounds
	}
	pix := outline.Image().Pix
	stride := outline.Image().Stride
	wall := func(i int) bool {
		x, y := i%w, i/w
		o := y*stride + x*4
		p := pix[o : o+4 : o+4]
		return rule.IsWall(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
	}

	start := seed.Y*w + seed.X
	if wall(start) {
		return nil, ErrSeedOnWall
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 256)
	push := func(i int) {
		if !visited[i] && !wall(i) {
			visited[i] = true
			queue = append(queue, i)
		}
	}
	push(start)

	minX, minY := seed.X, seed.Y
	maxX, maxY := seed.X, seed.Y
	area := 0
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x, y := i%w, i/w
		area++
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		if x > 0 {
			push(i - 1)
		}
		if x+1 < w {
			push(i + 1)
		}
		if y > 0 {
			push(i - w)
		}
		if y+1 < h {
			push(i + w)
		}
	}
	if area == 0 {
		return nil, ErrEmptyRegion
	}

	bounds := image.Rect(minX, minY, maxX+1, maxY+1)
	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := visited[y*w+bounds.Min.X : y*w+bounds.Max.X]
		off := (y - bounds.Min.Y) * mask.Stride
		for x, v := range row {
			if v {
				mask.Pix[off+x] = 0xFF
			}
		}
	}
	return &Result{Mask: mask, Bounds: bounds, Area: area}, nil
}
