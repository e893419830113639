// Package ui runs the coloring window: a shiny event loop that turns mouse,
// key and size events into session gestures and paints the result.
package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/colorbook/internal/clipboard"
	"github.com/example/colorbook/internal/config"
	"github.com/example/colorbook/internal/notify"
	"github.com/example/colorbook/internal/render"
	"github.com/example/colorbook/internal/session"
	"github.com/example/colorbook/internal/theme"
	"github.com/example/colorbook/internal/view"
)

const messageDuration = 2 * time.Second

// Window holds what the coloring window needs to run.
type Window struct {
	Session  *session.Session
	Palette  []config.Swatch
	Theme    *theme.Theme
	Output   string
	Title    string
	Notifier *notify.Notifier
	Verbose  bool

	onClose   func()
	closeOnce sync.Once
}

// Option modifies a Window during creation.
type Option func(*Window)

// WithSession sets the session painted by the window.
func WithSession(s *session.Session) Option { return func(w *Window) { w.Session = s } }

// WithPalette sets the swatches offered in the palette strip.
func WithPalette(p []config.Swatch) Option { return func(w *Window) { w.Palette = p } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(w *Window) { w.Theme = t } }

// WithOutput sets the file written by the save shortcut.
func WithOutput(path string) Option { return func(w *Window) { w.Output = path } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(w *Window) { w.Title = title } }

// WithNotifier sets the notifier used after saving and copying.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.Notifier = n } }

// WithVerbose logs missed and dropped taps.
func WithVerbose(v bool) Option { return func(w *Window) { w.Verbose = v } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(w *Window) { w.onClose = fn } }

// New creates a Window with the provided options.
func New(opts ...Option) *Window {
	w := &Window{
		Palette: config.DefaultPalette(),
		Theme:   theme.Default(),
		Output:  "colorbook.png",
		Title:   "Colorbook",
	}
	for _, o := range opts {
		o(w)
	}
	if w.Session == nil {
		w.Session = session.New()
	}
	return w
}

// Run executes the UI loop using shiny's driver.
func (a *Window) Run() { driver.Main(a.Main) }

func (a *Window) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// fillEvent carries a finished fill from the worker back to the event loop.
type fillEvent struct {
	p   *session.Pending
	err error
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// lookupShortcut matches a key press by rune first, ignoring shift so that
// '+' works on layouts where it needs it, then by key code.
func lookupShortcut(m map[KeyShortcut]string, e key.Event) (string, bool) {
	if e.Rune > 0 {
		mods := e.Modifiers &^ key.ModShift
		if action, ok := m[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return action, true
		}
	}
	action, ok := m[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
	return action, ok
}

// selectedIndex finds the swatch matching c, or -1.
func selectedIndex(palette []config.Swatch, c color.NRGBA) int {
	for i, s := range palette {
		if s.Color.R == c.R && s.Color.G == c.G && s.Color.B == c.B {
			return i
		}
	}
	return -1
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Main runs the window on screen s until it is closed.
func (a *Window) Main(s screen.Screen) {
	sess := a.Session
	th := a.Theme
	if th == nil {
		th = theme.Default()
	}
	win := initialSize(sess.Size())
	width, height := win.X, win.Y

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := session.NewWorker(func(p *session.Pending, err error) {
		w.Send(fillEvent{p: p, err: err})
	})
	worker.Verbose = a.Verbose
	go worker.Run(ctx)

	go func() {
		for {
			select {
			case <-sess.Redraw():
				w.Send(paint.Event{})
			case <-ctx.Done():
				return
			}
		}
	}()

	canvas := canvasRect(width, height)
	sess.Resize(canvas.Dx(), canvas.Dy())

	selected := selectedIndex(a.Palette, sess.SelectedColor())
	hover := -1
	var ptr pointer
	var message string
	var messageUntil time.Time

	backdrop := render.NewBackdrop(th.CheckerLight, th.CheckerDark)
	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			pctx, pcancel := context.WithCancel(ctx)
			paintMu.Lock()
			paintCancel = pcancel
			paintMu.Unlock()
			drawFrame(pctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if pctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			pcancel()
		}
	}()

	say := func(msg string) {
		message = msg
		log.Print(message)
		messageUntil = time.Now().Add(messageDuration)
		time.AfterFunc(messageDuration, func() { w.Send(paint.Event{}) })
	}

	apply := func(g view.Gesture) {
		if _, err := sess.Handle(g); err != nil {
			log.Printf("%v: %v", g, err)
		}
	}

	tap := func(g view.Tap) {
		job, err := sess.Prepare(g.X, g.Y)
		if err != nil {
			if a.Verbose || !session.IsMiss(err) {
				log.Printf("%v: %v", g, err)
			}
			return
		}
		worker.Submit(job)
	}

	selectSwatch := func(i int) {
		if i < 0 || i >= len(a.Palette) {
			return
		}
		selected = i
		sess.SetSelectedColor(opaque(a.Palette[i].Color))
		w.Send(paint.Event{})
	}

	center := func() (float64, float64) {
		c := canvasRect(width, height)
		return float64(c.Dx()) / 2, float64(c.Dy()) / 2
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys []KeyShortcut, fn func()) {
		actions[name] = fn
		for _, sc := range keys {
			keyboardAction[sc] = name
		}
	}

	quit := false
	register("save", []KeyShortcut{{Rune: 's', Modifiers: key.ModControl}}, func() {
		snap := sess.Snapshot()
		if snap == nil {
			return
		}
		if err := imaging.Save(snap, a.Output); err != nil {
			log.Printf("save: %v", err)
			return
		}
		say(fmt.Sprintf("saved %s", a.Output))
		a.Notifier.Save(a.Output)
	})
	register("copy", []KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		snap := sess.Snapshot()
		if snap == nil {
			return
		}
		if err := clipboard.WriteImage(snap); err != nil {
			if errors.Is(err, clipboard.ErrUnsupported) || errors.Is(err, clipboard.ErrNoDisplay) {
				say("clipboard unavailable")
			}
			log.Printf("copy: %v", err)
			return
		}
		say("picture copied to clipboard")
		a.Notifier.Copy("picture", snap)
	})
	register("zoomin", []KeyShortcut{{Rune: '+'}, {Rune: '='}, {Code: key.CodeKeypadPlusSign}}, func() {
		x, y := center()
		apply(view.Scale{Factor: wheelFactor, FocusX: x, FocusY: y})
	})
	register("zoomout", []KeyShortcut{{Rune: '-'}, {Code: key.CodeKeypadHyphenMinus}}, func() {
		x, y := center()
		apply(view.Scale{Factor: 1 / wheelFactor, FocusX: x, FocusY: y})
	})
	register("left", []KeyShortcut{{Code: key.CodeLeftArrow}}, func() { apply(view.Pan{DX: -keyPanStep}) })
	register("right", []KeyShortcut{{Code: key.CodeRightArrow}}, func() { apply(view.Pan{DX: keyPanStep}) })
	register("up", []KeyShortcut{{Code: key.CodeUpArrow}}, func() { apply(view.Pan{DY: -keyPanStep}) })
	register("down", []KeyShortcut{{Code: key.CodeDownArrow}}, func() { apply(view.Pan{DY: keyPanStep}) })
	register("fit", []KeyShortcut{{Rune: '0'}}, func() { sess.Refit() })
	register("quit", []KeyShortcut{{Rune: 'q'}, {Code: key.CodeEscape}}, func() { quit = true })
	for i := range a.Palette {
		if i >= 9 {
			break
		}
		idx := i
		register(fmt.Sprintf("swatch%d", i+1), []KeyShortcut{{Rune: rune('1' + i)}}, func() { selectSwatch(idx) })
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case fillEvent:
			if e.err != nil {
				if a.Verbose || !session.IsMiss(e.err) {
					log.Printf("fill: %v", e.err)
				}
				continue
			}
			sess.Commit(e.p)
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			c := canvasRect(width, height)
			if c.Size() != sess.Surface() {
				sess.Resize(c.Dx(), c.Dy())
			}
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := paintState{
				width:        width,
				height:       height,
				frame:        sess.Frame(),
				palette:      a.Palette,
				selected:     selected,
				hover:        hover,
				message:      message,
				messageUntil: messageUntil,
				theme:        th,
				backdrop:     backdrop,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			action, ok := lookupShortcut(keyboardAction, e)
			if !ok {
				continue
			}
			actions[action]()
			if quit {
				return
			}
			w.Send(paint.Event{})
		case mouse.Event:
			p := image.Point{int(e.X), int(e.Y)}
			x, y := float64(e.X), float64(e.Y)
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}
			if e.Button.IsWheel() {
				if e.Direction == mouse.DirRelease || !p.In(canvasRect(width, height)) {
					continue
				}
				switch e.Button {
				case mouse.ButtonWheelUp:
					apply(view.Scale{Factor: wheelFactor, FocusX: x, FocusY: y})
				case mouse.ButtonWheelDown:
					apply(view.Scale{Factor: 1 / wheelFactor, FocusX: x, FocusY: y})
				}
				continue
			}
			if !ptr.down && p.In(stripRect(width, height)) {
				rects := swatchRects(width, height, len(a.Palette))
				i := swatchAt(rects, p)
				if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
					selectSwatch(i)
					continue
				}
				if i != hover {
					hover = i
					w.Send(paint.Event{})
				}
				continue
			}
			if hover != -1 {
				hover = -1
				w.Send(paint.Event{})
			}
			switch {
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				ptr.press(x, y)
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				switch g := ptr.release(x, y).(type) {
				case view.Tap:
					tap(g)
				case view.Pan:
					apply(g)
				}
			case e.Direction == mouse.DirNone:
				if g := ptr.move(x, y); g != nil {
					apply(g)
				}
			case e.Direction == mouse.DirPress:
				ptr.cancel()
			}
		}
	}
}
