//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var backend *x11Clipboard

func initBackend() error {
	clip := &x11Clipboard{}
	if err := clip.initialize(); err != nil {
		return err
	}
	backend = clip
	return nil
}

func writePNG(data []byte) error {
	return backend.writeImage(data)
}

// x11Clipboard owns the CLIPBOARD selection through a hidden window and
// serves image/png to requestors until another client takes ownership.
type x11Clipboard struct {
	conn      *xgb.Conn
	window    xproto.Window
	atoms     atomSet
	mu        sync.RWMutex
	imageData []byte
}

func (c *x11Clipboard) initialize() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	c.conn = conn
	c.window = window
	c.atoms = atoms
	go c.eventLoop()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	get := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, err
		}
		return reply.Atom, nil
	}
	var (
		set atomSet
		err error
	)
	if set.clipboard, err = get("CLIPBOARD"); err != nil {
		return atomSet{}, err
	}
	if set.targets, err = get("TARGETS"); err != nil {
		return atomSet{}, err
	}
	if set.png, err = get("image/png"); err != nil {
		return atomSet{}, err
	}
	return set, nil
}

func (c *x11Clipboard) writeImage(data []byte) error {
	c.mu.Lock()
	c.imageData = append([]byte(nil), data...)
	c.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(c.conn, c.window, c.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (c *x11Clipboard) eventLoop() {
	for {
		ev, err := c.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			c.handleSelectionRequest(e)
		case xproto.SelectionClearEvent:
			c.mu.Lock()
			c.imageData = nil
			c.mu.Unlock()
		}
	}
}

func (c *x11Clipboard) handleSelectionRequest(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	c.mu.RLock()
	data := c.imageData
	c.mu.RUnlock()

	typ, format, payload, ok := c.atoms.selectionReply(e.Target, data)
	if ok {
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, typ, format, propertyLength(format, payload), payload)
	} else {
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(c.conn, false, e.Requestor, 0, string(notify.Bytes()))
}
