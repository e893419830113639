package session

import (
	"image"
	"image/color"

	"github.com/example/colorbook/internal/compose"
	"github.com/example/colorbook/internal/floodfill"
	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/region"
)

// Job is one tap resolved to an image pixel. It only reads the outline and
// region-id rasters, which never change after Bind.
type Job struct {
	Outline    *raster.Buffer
	Regions    *raster.Buffer
	Seed       image.Point
	Color      color.NRGBA
	Sampler    region.Sampler
	Rule       raster.WallRule
	Generation uint64
}

// Pending is a computed fill waiting to be committed.
type Pending struct {
	Seed       image.Point
	Color      color.NRGBA
	Bounds     image.Rectangle
	Area       int
	Patch      *image.NRGBA
	Generation uint64
}

// Run resolves the region under the seed, floods it and builds the colored
// patch.
func (j Job) Run() (*Pending, error) {
	if _, err := j.Sampler.ResolveSeed(j.Regions, j.Seed.X, j.Seed.Y); err != nil {
		return nil, err
	}
	res, err := floodfill.Fill(j.Outline, j.Seed, j.Rule)
	if err != nil {
		return nil, err
	}
	return &Pending{
		Seed:       j.Seed,
		Color:      j.Color,
		Bounds:     res.Bounds,
		Area:       res.Area,
		Patch:      compose.MakePatch(res.Mask, j.Color),
		Generation: j.Generation,
	}, nil
}
