package ui

import (
	"context"
	"image"
	"image/color"
	"testing"

	"golang.org/x/mobile/event/key"

	"github.com/example/colorbook/internal/config"
	"github.com/example/colorbook/internal/raster/rastertest"
	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/theme"
	"github.com/example/colorbook/internal/view"
)

func TestLayout(t *testing.T) {
	if got := canvasRect(400, 300); got != image.Rect(0, 0, 400, 300-stripHeight) {
		t.Fatalf("canvas %v", got)
	}
	if got := stripRect(400, 300); got != image.Rect(0, 300-stripHeight, 400, 300) {
		t.Fatalf("strip %v", got)
	}
	if got := canvasRect(100, 10); !got.Empty() {
		t.Fatalf("canvas in a tiny window should be empty, got %v", got)
	}
}

func TestSwatchHitTest(t *testing.T) {
	rects := swatchRects(400, 300, 3)
	strip := stripRect(400, 300)
	for i, r := range rects {
		if !r.In(strip) {
			t.Fatalf("swatch %d at %v outside strip %v", i, r, strip)
		}
		if i > 0 && r.Min.X < rects[i-1].Max.X {
			t.Fatalf("swatch %d overlaps its neighbour", i)
		}
		center := r.Min.Add(r.Size().Div(2))
		if got := swatchAt(rects, center); got != i {
			t.Errorf("center of swatch %d hit %d", i, got)
		}
	}
	gap := image.Pt(rects[0].Max.X+swatchGap/2, rects[0].Min.Y+1)
	if got := swatchAt(rects, gap); got != -1 {
		t.Errorf("gap hit swatch %d", got)
	}
	if got := swatchAt(rects, image.Pt(5, 5)); got != -1 {
		t.Errorf("canvas point hit swatch %d", got)
	}
}

func TestInitialSize(t *testing.T) {
	cases := []struct {
		page image.Point
		want image.Point
	}{
		{image.Pt(600, 400), image.Pt(600, 400+stripHeight)},
		{image.Pt(10, 10), image.Pt(minWindow, minWindow+stripHeight)},
		{image.Pt(2048, 1024), image.Pt(1024, 512+stripHeight)},
		{image.Point{}, image.Pt(640, 480+stripHeight)},
	}
	for _, c := range cases {
		if got := initialSize(c.page); got != c.want {
			t.Errorf("initialSize(%v) = %v want %v", c.page, got, c.want)
		}
	}
}

func TestPointerTap(t *testing.T) {
	var p pointer
	p.press(10, 10)
	if g := p.move(11, 12); g != nil {
		t.Fatalf("small move produced %v", g)
	}
	g := p.release(12, 11)
	if g != (view.Tap{X: 10, Y: 10}) {
		t.Fatalf("release produced %v", g)
	}
	if p.down {
		t.Fatal("pointer still down after release")
	}
}

func TestPointerDrag(t *testing.T) {
	var p pointer
	p.press(10, 10)
	g := p.move(20, 10)
	if g != (view.Pan{DX: 10}) {
		t.Fatalf("first drag step %v", g)
	}
	g = p.move(25, 13)
	if g != (view.Pan{DX: 5, DY: 3}) {
		t.Fatalf("second drag step %v", g)
	}
	g = p.release(25, 15)
	if g != (view.Pan{DY: 2}) {
		t.Fatalf("release after drag %v", g)
	}
	if g := p.move(40, 40); g != nil {
		t.Fatalf("move without press produced %v", g)
	}
	if g := p.release(40, 40); g != nil {
		t.Fatalf("release without press produced %v", g)
	}
}

func TestPointerCancel(t *testing.T) {
	var p pointer
	p.press(1, 1)
	p.cancel()
	if g := p.release(1, 1); g != nil {
		t.Fatalf("cancelled press produced %v", g)
	}
}

func TestLookupShortcut(t *testing.T) {
	m := map[KeyShortcut]string{
		{Rune: 's', Modifiers: key.ModControl}: "save",
		{Rune: '+'}:                            "zoomin",
		{Code: key.CodeLeftArrow}:              "left",
	}
	cases := []struct {
		e    key.Event
		want string
	}{
		{key.Event{Rune: 'S', Modifiers: key.ModControl}, "save"},
		{key.Event{Rune: '+', Modifiers: key.ModShift}, "zoomin"},
		{key.Event{Rune: -1, Code: key.CodeLeftArrow}, "left"},
		{key.Event{Rune: 's'}, ""},
	}
	for _, c := range cases {
		got, _ := lookupShortcut(m, c.e)
		if got != c.want {
			t.Errorf("%v: got %q want %q", c.e, got, c.want)
		}
	}
}

func TestSelectedIndex(t *testing.T) {
	p := config.DefaultPalette()
	if got := selectedIndex(p, session.DefaultColor); got != 0 {
		t.Fatalf("default color at %d", got)
	}
	if got := selectedIndex(p, opaque(p[3].Color)); got != 3 {
		t.Fatalf("got %d", got)
	}
	if got := selectedIndex(p, color.NRGBA{1, 2, 3, 255}); got != -1 {
		t.Fatalf("unknown color at %d", got)
	}
}

func TestPaintInto(t *testing.T) {
	outline, ids := rastertest.Box()
	sess := session.New(session.WithSurface(100, 100))
	if err := sess.Bind(outline, ids); err != nil {
		t.Fatal(err)
	}
	th := theme.Default()
	st := paintState{
		width:    100,
		height:   100 + stripHeight,
		frame:    sess.Frame(),
		palette:  config.DefaultPalette(),
		selected: 1,
		hover:    -1,
		theme:    th,
	}
	dst := image.NewRGBA(image.Rect(0, 0, st.width, st.height))
	if !paintInto(context.Background(), dst, st) {
		t.Fatal("paint reported cancellation")
	}
	// The page fills the canvas at 10x; (5,5) is outside the box's border.
	if got := dst.RGBAAt(5, 5); got != th.Paper {
		t.Errorf("paper pixel %+v", got)
	}
	if got := dst.RGBAAt(25, 25); got != color.RGBA(rastertest.Ink) {
		t.Errorf("outline pixel %+v", got)
	}
	rects := swatchRects(st.width, st.height, len(st.palette))
	c := rects[0].Min.Add(image.Pt(swatchSize/2, swatchSize/2))
	if got := dst.RGBAAt(c.X, c.Y); got != st.palette[0].Color {
		t.Errorf("swatch pixel %+v", got)
	}
	ring := rects[1].Inset(-3).Min
	if got := dst.RGBAAt(ring.X, ring.Y); got != th.SwatchSelected {
		t.Errorf("selection ring pixel %+v", got)
	}
}

func TestPaintIntoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := paintState{width: 50, height: 50 + stripHeight, frame: session.New().Frame(), selected: -1, hover: -1}
	if paintInto(ctx, image.NewRGBA(image.Rect(0, 0, 50, 50+stripHeight)), st) {
		t.Fatal("cancelled paint reported success")
	}
}
