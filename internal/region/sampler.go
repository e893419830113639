// Package region resolves which painted region of a region-id map a tap
// landed on.
package region

import (
	"errors"
	"image/color"

	"github.com/example/colorbook/internal/raster"
)

// ErrNoRegion is returned when the tap hits background or no opaque pixel of
// the same region is close enough.
var ErrNoRegion = errors.New("region: no region at point")

const (
	// DefaultMinAlpha is the lowest alpha treated as region interior.
	DefaultMinAlpha = 200
	// DefaultTolerance is the per-channel RGB slack for edge pixels.
	DefaultTolerance = 6
	// DefaultRadius bounds the neighborhood searched around edge pixels.
	DefaultRadius = 2
)

// Sampler picks a representative opaque id color for a region-id pixel.
type Sampler struct {
	MinAlpha  uint8
	Tolerance int
	Radius    int
}

// DefaultSampler returns a Sampler with the standard edge heuristics.
func DefaultSampler() Sampler {
	return Sampler{MinAlpha: DefaultMinAlpha, Tolerance: DefaultTolerance, Radius: DefaultRadius}
}

// ResolveSeed returns the id color of the region under (x, y). Anti-aliased
// edge pixels borrow the color of the first sufficiently opaque neighbor, in
// raster order, whose RGB matches within Tolerance.
func (s Sampler) ResolveSeed(ids *raster.Buffer, x, y int) (color.NRGBA, error) {
	if !ids.In(x, y) {
		return color.NRGBA{}, raster.ErrOutOfBounds
	}
	c := ids.At(x, y)
	if c.A < s.MinAlpha {
		alt, ok := s.opaqueNeighbor(ids, x, y, c)
		if !ok {
			return color.NRGBA{}, ErrNoRegion
		}
		c = alt
	}
	if c.A == 0 {
		return color.NRGBA{}, ErrNoRegion
	}
	return c, nil
}

func (s Sampler) opaqueNeighbor(ids *raster.Buffer, x, y int, base color.NRGBA) (color.NRGBA, bool) {
	r := s.Radius
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			nx, ny := x+dx, y+dy
			if !ids.In(nx, ny) {
				continue
			}
			c := ids.At(nx, ny)
			if c.A >= s.MinAlpha && s.sameRGB(c, base) {
				c.A = 0xFF
				return c, true
			}
		}
	}
	return color.NRGBA{}, false
}

func (s Sampler) sameRGB(a, b color.NRGBA) bool {
	return absDiff(a.R, b.R) <= s.Tolerance &&
		absDiff(a.G, b.G) <= s.Tolerance &&
		absDiff(a.B, b.B) <= s.Tolerance
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
