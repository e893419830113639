// Package compose turns fill masks into colored patches and lays them onto
// the persistent color layer.
package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/colorbook/internal/raster"
)

// MakePatch returns a raster the size of mask holding c at full opacity
// wherever mask is opaque and transparent elsewhere.
func MakePatch(mask *image.Alpha, c color.NRGBA) *image.NRGBA {
	size := mask.Bounds().Size()
	patch := image.NewNRGBA(image.Rectangle{Max: size})
	c.A = 0xFF
	draw.DrawMask(patch, patch.Bounds(), image.NewUniform(c), image.Point{}, mask, mask.Bounds().Min, draw.Src)
	return patch
}

// Commit draws patch over layer with its top-left corner at at. Pixels the
// patch leaves transparent keep their previous color.
func Commit(layer *raster.Buffer, patch *image.NRGBA, at image.Point) {
	r := image.Rectangle{Min: at, Max: at.Add(patch.Bounds().Size())}
	draw.Draw(layer.Image(), r, patch, patch.Bounds().Min, draw.Over)
}
