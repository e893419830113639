package theme

import (
	"image/color"
)

// Theme defines the colors of the coloring window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area around the picture when no checkerboard is drawn
	Foreground color.RGBA // Status text color

	// Palette strip
	PaletteBackground color.RGBA
	SwatchBorder      color.RGBA
	SwatchSelected    color.RGBA // Ring around the selected swatch
	SwatchHover       color.RGBA

	// Message overlay
	MessageBackground color.RGBA
	MessageText       color.RGBA

	// Canvas
	Paper        color.RGBA // Drawn under the picture and used for exports
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{220, 220, 220, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		PaletteBackground: color.RGBA{235, 235, 235, 255},
		SwatchBorder:      color.RGBA{64, 64, 64, 255},
		SwatchSelected:    color.RGBA{0, 0, 0, 255},
		SwatchHover:       color.RGBA{128, 128, 128, 255},
		MessageBackground: color.RGBA{255, 255, 255, 230},
		MessageText:       color.RGBA{0, 0, 0, 255},
		Paper:             color.RGBA{255, 255, 255, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
	}
}
