//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Without cgo the clipboard is served directly over the X11 protocol: a
// hidden window owns the CLIPBOARD selection and answers conversion
// requests for image/png until another client takes ownership.

var (
	initOnce sync.Once
	initErr  error
	backend  *x11Owner
)

func ensureInit() error {
	initOnce.Do(func() {
		if initErr = checkDisplay(); initErr != nil {
			return
		}
		owner := &x11Owner{}
		if err := owner.connect(); err != nil {
			initErr = err
			return
		}
		backend = owner
	})
	return initErr
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	return backend.own(data)
}

type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet

	mu  sync.RWMutex
	png []byte
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom
}

func (o *x11Owner) connect() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	o.conn = conn
	o.window = window
	o.atoms = atoms
	go o.serve()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	var set atomSet
	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"CLIPBOARD", &set.clipboard},
		{"TARGETS", &set.targets},
		{"image/png", &set.png},
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(a.name)), a.name).Reply()
		if err != nil {
			return atomSet{}, err
		}
		*a.dst = reply.Atom
	}
	return set, nil
}

func (o *x11Owner) own(data []byte) error {
	o.mu.Lock()
	o.png = append([]byte(nil), data...)
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.png = nil
			o.mu.Unlock()
		}
	}
}

func (o *x11Owner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	o.mu.RLock()
	data := o.png
	o.mu.RUnlock()

	switch {
	case len(data) == 0:
		property = xproto.AtomNone
	case e.Target == o.atoms.targets:
		targets := atomsToBytes([]xproto.Atom{o.atoms.targets, o.atoms.png})
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property,
			xproto.AtomAtom, 32, uint32(len(targets)/4), targets)
	case e.Target == o.atoms.png:
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property,
			o.atoms.png, 8, uint32(len(data)), data)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}
