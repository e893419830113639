package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/raster/rastertest"
	"github.com/example/colorbook/internal/view"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func paintedBox() (layer, outline *raster.Buffer) {
	outline, _ = rastertest.Box()
	layer = raster.New(10, 10)
	rastertest.FillRect(layer, image.Rect(3, 3, 7, 7), red)
	// A fill bleeding under the border must stay hidden by the ink.
	layer.Set(2, 4, red)
	return layer, outline
}

func whiteSurface(w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return dst
}

func TestDrawIdentityOrder(t *testing.T) {
	layer, outline := paintedBox()
	dst := whiteSurface(10, 10)
	Draw(dst, view.Identity(), layer, outline)

	cases := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(4, 4), red},
		{image.Pt(6, 6), red},
		{image.Pt(2, 2), rastertest.Ink},
		{image.Pt(2, 4), rastertest.Ink},
		{image.Pt(0, 0), white},
		{image.Pt(9, 9), white},
	}
	for _, c := range cases {
		if got := dst.NRGBAAt(c.p.X, c.p.Y); got != c.want {
			t.Errorf("pixel %v: got %+v want %+v", c.p, got, c.want)
		}
	}
}

func TestDrawScaled(t *testing.T) {
	layer, outline := paintedBox()
	dst := whiteSurface(20, 20)
	Draw(dst, view.Identity().ScaleAbout(2, 0, 0), layer, outline)

	cases := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(9, 9), red},
		{image.Pt(13, 13), red},
		{image.Pt(4, 4), rastertest.Ink},
		{image.Pt(5, 10), rastertest.Ink},
		{image.Pt(1, 1), white},
		{image.Pt(19, 19), white},
	}
	for _, c := range cases {
		if got := dst.NRGBAAt(c.p.X, c.p.Y); got != c.want {
			t.Errorf("pixel %v: got %+v want %+v", c.p, got, c.want)
		}
	}
}

func TestDrawTranslated(t *testing.T) {
	layer, outline := paintedBox()
	dst := whiteSurface(20, 20)
	Draw(dst, view.Identity().Translate(5, 3), layer, outline)
	if got := dst.NRGBAAt(9, 7); got != red {
		t.Fatalf("got %+v want red", got)
	}
	if got := dst.NRGBAAt(7, 5); got != rastertest.Ink {
		t.Fatalf("got %+v want ink", got)
	}
}

func TestDrawDegenerateTransform(t *testing.T) {
	layer, outline := paintedBox()
	dst := whiteSurface(10, 10)
	Draw(dst, view.Identity().ScaleAbout(0, 0, 0), layer, outline)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := dst.NRGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) changed to %+v", x, y, got)
			}
		}
	}
}

func TestDrawDoesNotMutateInputs(t *testing.T) {
	layer, outline := paintedBox()
	l0, o0 := layer.Clone(), outline.Clone()
	Draw(whiteSurface(30, 30), view.FitCenter(30, 30, 10, 10), layer, outline)
	if !layer.Equal(l0) || !outline.Equal(o0) {
		t.Fatal("inputs were modified")
	}
}

func TestFlatten(t *testing.T) {
	layer, outline := paintedBox()
	out := Flatten(layer, outline, white)
	if out.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("bounds %v", out.Bounds())
	}
	if got := out.NRGBAAt(4, 4); got != red {
		t.Errorf("interior %+v", got)
	}
	if got := out.NRGBAAt(2, 4); got != rastertest.Ink {
		t.Errorf("border %+v", got)
	}
	if got := out.NRGBAAt(0, 0); got != white {
		t.Errorf("background %+v", got)
	}

	clear := Flatten(layer, outline, nil)
	if got := clear.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("expected transparent background, got %+v", got)
	}
}

func TestBackdrop(t *testing.T) {
	light := color.RGBA{220, 220, 220, 255}
	dark := color.RGBA{192, 192, 192, 255}
	b := NewBackdrop(light, dark)
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	b.Draw(dst)
	if got := dst.RGBAAt(0, 0); got != light {
		t.Errorf("(0,0) = %+v", got)
	}
	if got := dst.RGBAAt(8, 0); got != dark {
		t.Errorf("(8,0) = %+v", got)
	}
	if got := dst.RGBAAt(8, 8); got != light {
		t.Errorf("(8,8) = %+v", got)
	}

	b.SetColors(dark, light)
	b.Draw(dst)
	if got := dst.RGBAAt(0, 0); got != dark {
		t.Errorf("after SetColors (0,0) = %+v", got)
	}
}
