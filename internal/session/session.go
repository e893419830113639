// Package session owns the rasters and view state of one coloring page and
// routes gestures to the fill pipeline.
//
// A Session is not safe for concurrent use. It belongs to the goroutine that
// handles input; fills computed elsewhere come back as Pending values and are
// applied with Commit on that goroutine.
package session

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/example/colorbook/internal/compose"
	"github.com/example/colorbook/internal/floodfill"
	"github.com/example/colorbook/internal/raster"
	"github.com/example/colorbook/internal/region"
	"github.com/example/colorbook/internal/render"
	"github.com/example/colorbook/internal/view"
)

var (
	// ErrSizeMismatch is returned by Bind when the outline and region-id
	// images differ in size.
	ErrSizeMismatch = errors.New("session: outline and region-id sizes differ")
	// ErrUnbound is returned when a tap arrives before any images are bound.
	ErrUnbound = errors.New("session: no images bound")
	// ErrUnknownGesture is returned by Handle for a nil gesture.
	ErrUnknownGesture = errors.New("session: unknown gesture")
)

// DefaultColor is the color selected when a session starts.
var DefaultColor = color.NRGBA{R: 0xF9, G: 0x41, B: 0x44, A: 0xFF}

// IsMiss reports whether err is an ordinary missed tap that should produce
// no visible change.
func IsMiss(err error) bool {
	for _, target := range []error{
		raster.ErrOutOfBounds,
		view.ErrNonInvertible,
		region.ErrNoRegion,
		floodfill.ErrSeedOnWall,
		floodfill.ErrEmptyRegion,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Session holds the outline, region-id and color layers of one page together
// with the current view transform and selected color.
type Session struct {
	outline *raster.Buffer
	regions *raster.Buffer
	layer   *raster.Buffer

	transform  view.Transform
	surface    image.Point
	color      color.NRGBA
	background color.Color
	sampler    region.Sampler
	rule       raster.WallRule
	verbose    bool

	generation uint64
	redrawCh   chan struct{}
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithSampler replaces the region sampler tuning.
func WithSampler(s region.Sampler) Option { return func(se *Session) { se.sampler = s } }

// WithWallRule replaces the outline wall classification.
func WithWallRule(r raster.WallRule) Option { return func(se *Session) { se.rule = r } }

// WithColor sets the initially selected color.
func WithColor(c color.NRGBA) Option { return func(se *Session) { se.color = c } }

// WithSurface sets the initial drawing surface size.
func WithSurface(w, h int) Option { return func(se *Session) { se.surface = image.Pt(w, h) } }

// WithBackground sets the color behind the picture in snapshots. Nil keeps
// unpainted pixels transparent.
func WithBackground(c color.Color) Option { return func(se *Session) { se.background = c } }

// WithVerbose logs missed taps and discarded fills.
func WithVerbose(v bool) Option { return func(se *Session) { se.verbose = v } }

// New creates an unbound session with the provided options.
func New(opts ...Option) *Session {
	s := &Session{
		transform:  view.Identity(),
		color:      DefaultColor,
		background: color.White,
		sampler:    region.DefaultSampler(),
		rule:       raster.DefaultWallRule(),
		redrawCh:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(s)
	}
	s.color.A = 0xFF
	return s
}

// Bind installs a new outline and region-id pair. On success the color layer
// is replaced by a transparent one, pending fills become stale and the view
// is fitted to the surface. On failure the session is left as it was.
func (s *Session) Bind(outline, regions *raster.Buffer) error {
	if outline == nil || regions == nil || outline.Width() == 0 || outline.Height() == 0 {
		return raster.ErrEmpty
	}
	if !outline.SameSize(regions) {
		return fmt.Errorf("%w: outline %v, regions %v", ErrSizeMismatch, outline.Size(), regions.Size())
	}
	s.outline = outline
	s.regions = regions
	s.layer = raster.New(outline.Width(), outline.Height())
	s.generation++
	s.fit()
	return nil
}

// Bound reports whether images have been bound.
func (s *Session) Bound() bool { return s.outline != nil }

// Size returns the page size, or the zero point when unbound.
func (s *Session) Size() image.Point {
	if s.outline == nil {
		return image.Point{}
	}
	return s.outline.Size()
}

// SetSelectedColor changes the color used by the next fill. The alpha
// channel is ignored.
func (s *Session) SetSelectedColor(c color.NRGBA) {
	c.A = 0xFF
	s.color = c
}

// SelectedColor returns the color used by the next fill.
func (s *Session) SelectedColor() color.NRGBA { return s.color }

// Transform returns the current image-to-view transform.
func (s *Session) Transform() view.Transform { return s.transform }

// Generation changes every time pending fills become invalid.
func (s *Session) Generation() uint64 { return s.generation }

// Resize records a new surface size, refits the view and invalidates
// pending fills.
func (s *Session) Resize(w, h int) {
	s.surface = image.Pt(w, h)
	s.generation++
	s.fit()
}

// Surface returns the last surface size passed to Resize.
func (s *Session) Surface() image.Point { return s.surface }

// Refit restores the fit-center view without invalidating pending fills.
func (s *Session) Refit() { s.fit() }

func (s *Session) fit() {
	size := s.Size()
	s.transform = view.FitCenter(s.surface.X, s.surface.Y, size.X, size.Y)
	s.requestRedraw()
}

// Handle applies a gesture. Pan and scale update the view; a tap runs the
// fill pipeline synchronously and commits the result. Missed taps return an
// error for which IsMiss is true.
func (s *Session) Handle(g view.Gesture) (*Pending, error) {
	switch g := g.(type) {
	case view.Tap:
		job, err := s.Prepare(g.X, g.Y)
		if err != nil {
			s.logMiss(g, err)
			return nil, err
		}
		p, err := job.Run()
		if err != nil {
			s.logMiss(g, err)
			return nil, err
		}
		s.Commit(p)
		return p, nil
	case view.Pan, view.Scale:
		if t := view.Reduce(s.transform, g); t != s.transform {
			s.transform = t
			s.requestRedraw()
		}
		return nil, nil
	default:
		return nil, ErrUnknownGesture
	}
}

func (s *Session) logMiss(g view.Gesture, err error) {
	if s.verbose && IsMiss(err) {
		log.Printf("%v missed: %v", g, err)
	}
}

// Prepare maps a view-space tap to the image using the transform current
// now and captures everything a fill needs. The returned Job can run on any
// goroutine.
func (s *Session) Prepare(x, y float64) (Job, error) {
	if s.outline == nil {
		return Job{}, ErrUnbound
	}
	p, err := view.MapToImage(s.transform, x, y, s.outline.Width(), s.outline.Height())
	if err != nil {
		return Job{}, err
	}
	return s.jobAt(p), nil
}

// PrepareAt is Prepare for a point already in image coordinates.
func (s *Session) PrepareAt(p image.Point) (Job, error) {
	if s.outline == nil {
		return Job{}, ErrUnbound
	}
	if !s.outline.In(p.X, p.Y) {
		return Job{}, raster.ErrOutOfBounds
	}
	return s.jobAt(p), nil
}

func (s *Session) jobAt(p image.Point) Job {
	return Job{
		Outline:    s.outline,
		Regions:    s.regions,
		Seed:       p,
		Color:      s.color,
		Sampler:    s.sampler,
		Rule:       s.rule,
		Generation: s.generation,
	}
}

// Commit lays a finished fill onto the color layer. Fills prepared before
// the last Bind or Resize are discarded and Commit returns false.
func (s *Session) Commit(p *Pending) bool {
	if p == nil || s.layer == nil {
		return false
	}
	if p.Generation != s.generation {
		if s.verbose {
			log.Printf("discarding stale fill at %v (generation %d, now %d)", p.Seed, p.Generation, s.generation)
		}
		return false
	}
	compose.Commit(s.layer, p.Patch, p.Bounds.Min)
	s.requestRedraw()
	return true
}

// Redraw returns the channel signalled whenever the picture or view changes.
// Signals coalesce: many changes before a read produce one value.
func (s *Session) Redraw() <-chan struct{} { return s.redrawCh }

func (s *Session) requestRedraw() {
	select {
	case s.redrawCh <- struct{}{}:
	default:
	}
}

// Draw renders the page onto dst through the current transform.
func (s *Session) Draw(dst draw.Image) {
	if s.outline == nil {
		return
	}
	render.Draw(dst, s.transform, s.layer, s.outline)
}

// Frame is a copy of everything Draw reads, safe to render on another
// goroutine while the session keeps changing.
type Frame struct {
	Transform view.Transform
	Size      image.Point
	Layer     *raster.Buffer
	Outline   *raster.Buffer
}

// Frame captures the current view. The outline is shared since it never
// changes after Bind; the color layer is copied.
func (s *Session) Frame() Frame {
	f := Frame{Transform: s.transform, Size: s.Size()}
	if s.outline != nil {
		f.Outline = s.outline
		f.Layer = s.layer.Clone()
	}
	return f
}

// Draw renders the captured page onto dst.
func (f Frame) Draw(dst draw.Image) {
	if f.Outline == nil {
		return
	}
	render.Draw(dst, f.Transform, f.Layer, f.Outline)
}

// Rect returns the view-space rectangle covered by the page, rounded out to
// whole pixels.
func (f Frame) Rect() image.Rectangle {
	if f.Size.X == 0 || f.Size.Y == 0 {
		return image.Rectangle{}
	}
	x0, y0 := f.Transform.Apply(0, 0)
	x1, y1 := f.Transform.Apply(float64(f.Size.X), float64(f.Size.Y))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// Snapshot returns the untransformed painted picture, or nil when unbound.
func (s *Session) Snapshot() *image.NRGBA {
	if s.outline == nil {
		return nil
	}
	return render.Flatten(s.layer, s.outline, s.background)
}

// Layer returns a copy of the color layer, or nil when unbound.
func (s *Session) Layer() *raster.Buffer {
	if s.layer == nil {
		return nil
	}
	return s.layer.Clone()
}
