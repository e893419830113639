package view

import (
	"fmt"
	"math"
)

// Gesture is one of Scale, Pan or Tap.
type Gesture interface {
	gesture()
	fmt.Stringer
}

// Scale zooms by Factor around a focus point in view coordinates.
type Scale struct {
	Factor         float64
	FocusX, FocusY float64
}

// Pan moves the picture by (DX, DY) view pixels. A positive DX moves the
// content to the right.
type Pan struct {
	DX, DY float64
}

// Tap is a single tap at a view position.
type Tap struct {
	X, Y float64
}

func (Scale) gesture() {}
func (Pan) gesture()   {}
func (Tap) gesture()   {}

func (g Scale) String() string {
	return fmt.Sprintf("scale %.3f at (%.1f,%.1f)", g.Factor, g.FocusX, g.FocusY)
}

func (g Pan) String() string { return fmt.Sprintf("pan (%.1f,%.1f)", g.DX, g.DY) }

func (g Tap) String() string { return fmt.Sprintf("tap (%.1f,%.1f)", g.X, g.Y) }

// Reduce returns the transform produced by applying g on top of t. Taps do
// not move the view. Scale factors that are not finite and positive, and
// non-finite pans, are ignored.
func Reduce(t Transform, g Gesture) Transform {
	switch g := g.(type) {
	case Scale:
		if !finite(g.Factor, g.FocusX, g.FocusY) || g.Factor <= 0 {
			return t
		}
		return t.ScaleAbout(g.Factor, g.FocusX, g.FocusY)
	case Pan:
		if !finite(g.DX, g.DY) {
			return t
		}
		return t.Translate(g.DX, g.DY)
	default:
		return t
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
