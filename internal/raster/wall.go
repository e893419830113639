package raster

import "image/color"

const (
	// DefaultWallAlphaMin is the lowest alpha an ink pixel may have.
	DefaultWallAlphaMin = 8
	// DefaultWallLumaMax is the brightest luma still treated as ink.
	DefaultWallLumaMax = 24
)

// WallRule classifies outline pixels as drawn ink.
type WallRule struct {
	AlphaMin uint8
	LumaMax  int
}

// DefaultWallRule returns the thresholds used for black line art on a
// transparent background.
func DefaultWallRule() WallRule {
	return WallRule{AlphaMin: DefaultWallAlphaMin, LumaMax: DefaultWallLumaMax}
}

// IsWall reports whether c is dark and opaque enough to block a fill.
func (r WallRule) IsWall(c color.NRGBA) bool {
	if c.A < r.AlphaMin {
		return false
	}
	return Luma(c) <= r.LumaMax
}

// Luma approximates perceived brightness with integer Rec. 601 weights.
func Luma(c color.NRGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
