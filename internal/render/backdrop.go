package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Backdrop paints the checkerboard shown behind transparent parts of the
// picture. The pattern is cached per surface size.
type Backdrop struct {
	Size  int
	Light color.Color
	Dark  color.Color

	cache *image.RGBA
}

// NewBackdrop returns a backdrop with 8 pixel squares.
func NewBackdrop(light, dark color.Color) *Backdrop {
	return &Backdrop{Size: 8, Light: light, Dark: dark}
}

// SetColors changes the palette and drops the cached pattern.
func (b *Backdrop) SetColors(light, dark color.Color) {
	b.Light, b.Dark = light, dark
	b.cache = nil
}

// Draw fills dst with the pattern.
func (b *Backdrop) Draw(dst *image.RGBA) {
	r := dst.Bounds()
	if b.cache == nil || b.cache.Bounds() != r {
		b.cache = image.NewRGBA(r)
		Checkerboard(b.cache, r, b.Size, b.Light, b.Dark)
	}
	draw.Draw(dst, r, b.cache, r.Min, draw.Src)
}

// Checkerboard fills rect of dst with alternating squares of the given size.
func Checkerboard(dst draw.Image, rect image.Rectangle, size int, light, dark color.Color) {
	if size <= 0 {
		size = 1
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}
