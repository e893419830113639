package ui

import (
	"image"
	"math"

	"github.com/example/colorbook/internal/view"
)

const (
	stripHeight = 48
	swatchSize  = 30
	swatchGap   = 10
	stripMargin = 12

	// dragSlop is how far the pointer may wander before a press becomes a
	// pan instead of a tap.
	dragSlop = 4

	wheelFactor = 1.1
	keyPanStep  = 32

	minWindow = 320
	maxWindow = 1024
)

// canvasRect is the part of a width×height window the picture is drawn in.
// View coordinates and window coordinates coincide inside it.
func canvasRect(width, height int) image.Rectangle {
	h := height - stripHeight
	if h < 0 {
		h = 0
	}
	return image.Rect(0, 0, width, h)
}

// stripRect is the palette strip along the bottom of the window.
func stripRect(width, height int) image.Rectangle {
	return image.Rect(0, canvasRect(width, height).Max.Y, width, height)
}

// swatchRects lays n swatches out left to right in the strip, vertically
// centered.
func swatchRects(width, height, n int) []image.Rectangle {
	strip := stripRect(width, height)
	y0 := strip.Min.Y + (strip.Dy()-swatchSize)/2
	rects := make([]image.Rectangle, n)
	for i := range rects {
		x0 := stripMargin + i*(swatchSize+swatchGap)
		rects[i] = image.Rect(x0, y0, x0+swatchSize, y0+swatchSize)
	}
	return rects
}

// swatchAt returns the index of the rectangle containing p, or -1.
func swatchAt(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// initialSize picks a window size that shows a page of the given size at
// a comfortable scale.
func initialSize(page image.Point) image.Point {
	w, h := page.X, page.Y
	if w <= 0 || h <= 0 {
		return image.Pt(640, 480+stripHeight)
	}
	if w > maxWindow || h > maxWindow {
		s := math.Min(float64(maxWindow)/float64(w), float64(maxWindow)/float64(h))
		w = int(float64(w) * s)
		h = int(float64(h) * s)
	}
	if w < minWindow {
		w = minWindow
	}
	if h < minWindow {
		h = minWindow
	}
	return image.Pt(w, h+stripHeight)
}

// pointer turns press, move and release events into taps and pans.
type pointer struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

func (p *pointer) press(x, y float64) {
	*p = pointer{down: true, startX: x, startY: y, lastX: x, lastY: y}
}

// move returns a Pan once the pointer has left the slop radius, or nil.
func (p *pointer) move(x, y float64) view.Gesture {
	if !p.down {
		return nil
	}
	if !p.dragging {
		if math.Hypot(x-p.startX, y-p.startY) < dragSlop {
			return nil
		}
		p.dragging = true
	}
	g := view.Pan{DX: x - p.lastX, DY: y - p.lastY}
	p.lastX, p.lastY = x, y
	if g.DX == 0 && g.DY == 0 {
		return nil
	}
	return g
}

// release ends the press. It returns a Tap at the press position when the
// pointer never left the slop radius, the remaining Pan of a drag, or nil.
func (p *pointer) release(x, y float64) view.Gesture {
	if !p.down {
		return nil
	}
	g := p.move(x, y)
	tap := !p.dragging
	start := view.Tap{X: p.startX, Y: p.startY}
	*p = pointer{}
	if tap {
		return start
	}
	return g
}

func (p *pointer) cancel() { *p = pointer{} }
