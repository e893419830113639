package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageRebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 7, 9, 10))
	src.Set(5, 7, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	buf, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 4, buf.Width())
	assert.Equal(t, 3, buf.Height())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, buf.At(0, 0))
}

func TestFromImageRejectsEmpty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = FromImage(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFromImageKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 150})
	buf, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 150}, buf.At(0, 0))
}

func TestOutOfRangeAccess(t *testing.T) {
	buf := New(2, 2)
	buf.Set(-1, 0, color.NRGBA{A: 255})
	buf.Set(2, 0, color.NRGBA{A: 255})
	assert.Equal(t, color.NRGBA{}, buf.At(-1, 0))
	assert.Equal(t, color.NRGBA{}, buf.At(0, 2))
	assert.True(t, buf.Equal(New(2, 2)))
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(3, 3)
	a.Set(1, 1, color.NRGBA{R: 1, A: 255})
	b := a.Clone()
	b.Set(1, 1, color.NRGBA{G: 1, A: 255})
	assert.Equal(t, color.NRGBA{R: 1, A: 255}, a.At(1, 1))
	assert.False(t, a.Equal(b))
}

func TestWrapRebases(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 2, 4, 4))
	img.SetNRGBA(2, 2, color.NRGBA{B: 9, A: 255})
	buf := Wrap(img)
	assert.Equal(t, image.Rect(0, 0, 2, 2), buf.Bounds())
	assert.Equal(t, color.NRGBA{B: 9, A: 255}, buf.At(0, 0))
}

func TestWallRule(t *testing.T) {
	rule := DefaultWallRule()
	tests := []struct {
		name string
		c    color.NRGBA
		want bool
	}{
		{"black opaque", color.NRGBA{A: 255}, true},
		{"transparent black", color.NRGBA{}, false},
		{"alpha at threshold", color.NRGBA{A: 8}, true},
		{"alpha below threshold", color.NRGBA{A: 7}, false},
		{"dark grey at luma limit", color.NRGBA{R: 24, G: 24, B: 24, A: 255}, true},
		{"grey above luma limit", color.NRGBA{R: 25, G: 25, B: 25, A: 255}, false},
		{"saturated blue is dark", color.NRGBA{B: 200, A: 255}, true},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.IsWall(tt.c))
		})
	}
}

func TestLuma(t *testing.T) {
	assert.Equal(t, 0, Luma(color.NRGBA{}))
	assert.Equal(t, 255, Luma(color.NRGBA{R: 255, G: 255, B: 255}))
	assert.Equal(t, 76, Luma(color.NRGBA{R: 255}))
}
