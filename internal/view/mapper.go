package view

import (
	"image"
	"math"

	"github.com/example/colorbook/internal/raster"
)

// MapToImage converts a view position into the pixel of a w×h image under t.
// Coordinates are truncated toward zero, so positions just left of or above
// the image still land on column or row 0.
func MapToImage(t Transform, x, y float64, w, h int) (image.Point, error) {
	inv, err := t.Invert()
	if err != nil {
		return image.Point{}, err
	}
	px, py := inv.Apply(x, y)
	if math.IsNaN(px) || math.IsNaN(py) {
		return image.Point{}, raster.ErrOutOfBounds
	}
	if px <= -1 || py <= -1 || px >= float64(w) || py >= float64(h) {
		return image.Point{}, raster.ErrOutOfBounds
	}
	return image.Pt(int(px), int(py)), nil
}
