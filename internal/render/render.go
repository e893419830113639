// Package render draws a coloring page onto a surface. It never mutates the
// buffers it is given.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/view"
)

// Draw paints the color layer and then the outline onto dst through t. Either
// buffer may be nil. A transform that cannot be inverted draws nothing.
func Draw(dst draw.Image, t view.Transform, layer, outline *raster.Buffer) {
	if _, err := t.Invert(); err != nil {
		return
	}
	m := t.Aff3()
	for _, b := range []*raster.Buffer{layer, outline} {
		if b == nil {
			continue
		}
		xdraw.NearestNeighbor.Transform(dst, m, b.Image(), b.Bounds(), draw.Over, nil)
	}
}

// Flatten returns the untransformed picture: background, then the color
// layer, then the outline. A nil background leaves uncovered pixels
// transparent.
func Flatten(layer, outline *raster.Buffer, background color.Color) *image.NRGBA {
	var r image.Rectangle
	switch {
	case outline != nil:
		r = outline.Bounds()
	case layer != nil:
		r = layer.Bounds()
	}
	out := image.NewNRGBA(r)
	if background != nil {
		draw.Draw(out, r, image.NewUniform(background), image.Point{}, draw.Src)
	}
	for _, b := range []*raster.Buffer{layer, outline} {
		if b == nil {
			continue
		}
		draw.Draw(out, r, b.Image(), image.Point{}, draw.Over)
	}
	return out
}
