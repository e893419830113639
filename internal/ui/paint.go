package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/colorbook/internal/config"
	"github.com/example/colorbook/internal/render"
	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/theme"
)

// frameDropThreshold bounds how many frames in a row may be cancelled in
// favour of a newer one before a frame is allowed to finish.
const frameDropThreshold = 10

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

type paintState struct {
	width, height int
	frame         session.Frame
	palette       []config.Swatch
	selected      int
	hover         int
	message       string
	messageUntil  time.Time
	theme         *theme.Theme
	backdrop      *render.Backdrop
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	if !paintInto(ctx, b.RGBA(), st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// paintInto renders a whole frame onto dst. It returns false when ctx was
// cancelled part way through.
func paintInto(ctx context.Context, dst *image.RGBA, st paintState) bool {
	th := st.theme
	if th == nil {
		th = theme.Default()
	}
	canvas := dst.SubImage(canvasRect(st.width, st.height)).(*image.RGBA)
	if st.backdrop != nil {
		st.backdrop.Draw(canvas)
	} else {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)
	}
	if ctx.Err() != nil {
		return false
	}

	if page := st.frame.Rect().Intersect(canvas.Bounds()); !page.Empty() {
		draw.Draw(canvas, page, image.NewUniform(th.Paper), image.Point{}, draw.Src)
	}
	st.frame.Draw(canvas)
	if ctx.Err() != nil {
		return false
	}

	drawStrip(dst, st, th)
	if ctx.Err() != nil {
		return false
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, st.message, th)
	}
	return ctx.Err() == nil
}

func drawStrip(dst *image.RGBA, st paintState, th *theme.Theme) {
	strip := stripRect(st.width, st.height)
	if strip.Empty() {
		return
	}
	draw.Draw(dst, strip, image.NewUniform(th.PaletteBackground), image.Point{}, draw.Src)
	drawHLine(dst, strip.Min.X, strip.Max.X, strip.Min.Y, th.SwatchBorder)

	rects := swatchRects(st.width, st.height, len(st.palette))
	for i, r := range rects {
		draw.Draw(dst, r, image.NewUniform(st.palette[i].Color), image.Point{}, draw.Src)
		border := th.SwatchBorder
		if i == st.hover {
			border = th.SwatchHover
		}
		strokeRect(dst, r, border, 1)
		if i == st.selected {
			strokeRect(dst, r.Inset(-3), th.SwatchSelected, 2)
		}
	}

	label := fmt.Sprintf("%d%%", zoomPercent(st.frame))
	if st.selected >= 0 && st.selected < len(st.palette) {
		label = st.palette[st.selected].Name + "  " + label
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
	x := strip.Max.X - d.MeasureString(label).Ceil() - stripMargin
	if len(rects) > 0 && x < rects[len(rects)-1].Max.X+stripMargin {
		return
	}
	d.Dot = fixed.P(x, strip.Min.Y+(strip.Dy()+basicfont.Face7x13.Ascent)/2)
	d.DrawString(label)
}

func zoomPercent(f session.Frame) int {
	sx, _ := f.Transform.Scale()
	return int(sx*100 + 0.5)
}

func drawMessage(dst *image.RGBA, msg string, th *theme.Theme) {
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.MessageText), Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := b.Min.X + (b.Dx()-wmsg)/2
	py := b.Min.Y + (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(th.MessageBackground), image.Point{}, draw.Over)
	strokeRect(dst, rect, th.MessageText, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color, thick int) {
	u := image.NewUniform(c)
	for i := 0; i < thick; i++ {
		rr := r.Inset(i)
		if rr.Empty() {
			return
		}
		draw.Draw(dst, image.Rect(rr.Min.X, rr.Min.Y, rr.Max.X, rr.Min.Y+1), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(rr.Min.X, rr.Max.Y-1, rr.Max.X, rr.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(rr.Min.X, rr.Min.Y, rr.Min.X+1, rr.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(rr.Max.X-1, rr.Min.Y, rr.Max.X, rr.Max.Y), u, image.Point{}, draw.Src)
	}
}

func drawHLine(dst draw.Image, x0, x1, y int, c color.Color) {
	draw.Draw(dst, image.Rect(x0, y, x1, y+1), image.NewUniform(c), image.Point{}, draw.Src)
}
