package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/region"
	"github.com/example/colorbook/internal/theme"
)

// Fill holds the tuning of region sampling and outline detection.
type Fill struct {
	MinAlpha     int
	Tolerance    int
	Radius       int
	WallAlphaMin int
	WallLumaMax  int
}

// DefaultFill returns the built-in fill tuning.
func DefaultFill() Fill {
	return Fill{
		MinAlpha:     region.DefaultMinAlpha,
		Tolerance:    region.DefaultTolerance,
		Radius:       region.DefaultRadius,
		WallAlphaMin: raster.DefaultWallAlphaMin,
		WallLumaMax:  raster.DefaultWallLumaMax,
	}
}

// Sampler returns the region sampler described by f.
func (f Fill) Sampler() region.Sampler {
	return region.Sampler{MinAlpha: clampByte(f.MinAlpha), Tolerance: f.Tolerance, Radius: f.Radius}
}

// WallRule returns the outline classification described by f.
func (f Fill) WallRule() raster.WallRule {
	return raster.WallRule{AlphaMin: clampByte(f.WallAlphaMin), LumaMax: f.WallLumaMax}
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Swatch is a named palette color.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// DefaultPalette returns the six swatches offered when no palette is
// configured. The first one is selected at start.
func DefaultPalette() []Swatch {
	return []Swatch{
		{"red", color.RGBA{0xF9, 0x41, 0x44, 0xFF}},
		{"orange", color.RGBA{0xF3, 0x72, 0x2C, 0xFF}},
		{"yellow", color.RGBA{0xF9, 0xC7, 0x4F, 0xFF}},
		{"green", color.RGBA{0x90, 0xBE, 0x6D, 0xFF}},
		{"blue", color.RGBA{0x57, 0x75, 0x90, 0xFF}},
		{"purple", color.RGBA{0x9B, 0x5D, 0xE5, 0xFF}},
	}
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Fill    Fill
	Palette []Swatch
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:   "", // Default to empty to allow fallback to Env/Default
		Fill:    DefaultFill(),
		Palette: DefaultPalette(),
		Themes:  make(map[string]*theme.Theme),
	}
}

// Swatch looks up a palette entry by name, ignoring case.
func (c *Config) Swatch(name string) (Swatch, bool) {
	for _, s := range c.Palette {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Swatch{}, false
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[fill]\n")
	fmt.Fprintf(&sb, "min_alpha = %d\n", c.Fill.MinAlpha)
	fmt.Fprintf(&sb, "tolerance = %d\n", c.Fill.Tolerance)
	fmt.Fprintf(&sb, "radius = %d\n", c.Fill.Radius)
	fmt.Fprintf(&sb, "wall_alpha_min = %d\n", c.Fill.WallAlphaMin)
	fmt.Fprintf(&sb, "wall_luma_max = %d\n", c.Fill.WallLumaMax)
	sb.WriteString("\n")

	sb.WriteString("[palette]\n")
	for _, s := range c.Palette {
		fmt.Fprintf(&sb, "%s = %s\n", s.Name, theme.Hex(s.Color))
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Key, f.Value)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
