// Package view maps between source-image pixels and the drawing surface.
//
// A Transform is an immutable affine matrix from image space to view space.
// Gestures produce new transforms through Reduce; nothing in this package
// touches a window or triggers a repaint.
package view

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrNonInvertible is returned when a transform collapses the plane.
var ErrNonInvertible = errors.New("view: transform is not invertible")

// minDet is the smallest determinant still treated as invertible.
const minDet = 1e-12

// Transform maps image coordinates to view coordinates:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Transform struct {
	m f64.Aff3
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// FromAff3 wraps an existing matrix.
func FromAff3(m f64.Aff3) Transform { return Transform{m: m} }

// Aff3 returns the underlying matrix, suitable for x/image/draw.
func (t Transform) Aff3() f64.Aff3 { return t.m }

// Reset returns the identity transform.
func (t Transform) Reset() Transform { return Identity() }

// then returns the transform that applies t first and o second.
func (t Transform) then(o f64.Aff3) Transform {
	a := o
	b := t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// ScaleAbout scales the current view by factor around the view-space focus
// point, which stays fixed on screen.
func (t Transform) ScaleAbout(factor, fx, fy float64) Transform {
	return t.then(f64.Aff3{
		factor, 0, fx - factor*fx,
		0, factor, fy - factor*fy,
	})
}

// Translate shifts the current view by (dx, dy) view pixels.
func (t Transform) Translate(dx, dy float64) Transform {
	return t.then(f64.Aff3{1, 0, dx, 0, 1, dy})
}

// Scale returns the horizontal and vertical scale factors.
func (t Transform) Scale() (sx, sy float64) {
	return math.Hypot(t.m[0], t.m[3]), math.Hypot(t.m[1], t.m[4])
}

// Offset returns the view position of the image origin.
func (t Transform) Offset() (x, y float64) { return t.m[2], t.m[5] }

// Apply maps an image-space point to view space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.m[0]*x + t.m[1]*y + t.m[2], t.m[3]*x + t.m[4]*y + t.m[5]
}

// Invert returns the view-to-image transform.
func (t Transform) Invert() (Transform, error) {
	for _, v := range t.m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Transform{}, ErrNonInvertible
		}
	}
	det := t.m[0]*t.m[4] - t.m[1]*t.m[3]
	if math.Abs(det) < minDet {
		return Transform{}, ErrNonInvertible
	}
	inv := 1 / det
	a, b, c := t.m[0], t.m[1], t.m[2]
	d, e, f := t.m[3], t.m[4], t.m[5]
	return Transform{m: f64.Aff3{
		e * inv, -b * inv, (b*f - c*e) * inv,
		-d * inv, a * inv, (c*d - a*f) * inv,
	}}, nil
}

// FitCenter returns the uniform scale that fits an image of imageW×imageH
// inside a surfaceW×surfaceH surface, centered on both axes. Degenerate sizes
// yield the identity.
func FitCenter(surfaceW, surfaceH, imageW, imageH int) Transform {
	if surfaceW <= 0 || surfaceH <= 0 || imageW <= 0 || imageH <= 0 {
		return Identity()
	}
	sw, sh := float64(surfaceW), float64(surfaceH)
	iw, ih := float64(imageW), float64(imageH)
	s := math.Min(sw/iw, sh/ih)
	return Transform{m: f64.Aff3{
		s, 0, (sw - iw*s) / 2,
		0, s, (sh - ih*s) / 2,
	}}
}
