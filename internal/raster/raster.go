// Package raster holds the pixel buffers shared by the fill pipeline.
//
// A Buffer always has a zero origin and stores non-premultiplied RGBA, so
// the alpha channel of a pixel can be read independently of its color. The
// outline, region-id and color layers of a session are all Buffers of the
// same size.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

var (
	// ErrEmpty is returned when a buffer would have no pixels.
	ErrEmpty = errors.New("raster: empty image")
	// ErrOutOfBounds is returned when a coordinate does not address a pixel.
	ErrOutOfBounds = errors.New("raster: point out of bounds")
)

// Buffer is a pixel-addressable RGBA raster with a zero origin.
type Buffer struct {
	img *image.NRGBA
}

// New allocates a fully transparent buffer of the given size.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// FromImage copies src into a new buffer. The result is rebased so that the
// top-left pixel of src lands at (0, 0).
func FromImage(src image.Image) (*Buffer, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmpty
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		// Copy rows so straight alpha channels stay exact.
		for y := 0; y < b.Dy(); y++ {
			si := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], n.Pix[si:si+b.Dx()*4])
		}
		return &Buffer{img: dst}, nil
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Buffer{img: dst}, nil
}

// Wrap uses img directly as the backing store. img must have a zero origin.
func Wrap(img *image.NRGBA) *Buffer {
	if img.Rect.Min != (image.Point{}) {
		buf, err := FromImage(img)
		if err != nil {
			return New(0, 0)
		}
		return buf
	}
	return &Buffer{img: img}
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Size returns the buffer dimensions as a point.
func (b *Buffer) Size() image.Point { return b.img.Rect.Size() }

// Bounds returns the zero-origin rectangle covered by the buffer.
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// In reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.img.Rect.Max.X && y < b.img.Rect.Max.Y
}

// At returns the pixel at (x, y). Out of range reads return transparent.
func (b *Buffer) At(x, y int) color.NRGBA {
	if !b.In(x, y) {
		return color.NRGBA{}
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at (x, y). Out of range writes are ignored.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.In(x, y) {
		return
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i+3 < len(b.img.Pix); i += 4 {
		b.img.Pix[i], b.img.Pix[i+1], b.img.Pix[i+2], b.img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Image exposes the backing image without copying.
func (b *Buffer) Image() *image.NRGBA { return b.img }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := image.NewNRGBA(b.img.Rect)
	copy(out.Pix, b.img.Pix)
	return &Buffer{img: out}
}

// SameSize reports whether both buffers have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	if b == nil || o == nil {
		return false
	}
	return b.Size() == o.Size()
}

// Equal reports whether both buffers hold identical pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.SameSize(o) {
		return false
	}
	w := b.Width() * 4
	for y := 0; y < b.Height(); y++ {
		ra := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w]
		rb := o.img.Pix[y*o.img.Stride : y*o.img.Stride+w]
		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
	}
	return true
}
