// Package sketch ties a canvas to pointer input and to the save, copy and
// notification side effects shared by every front-end.
package sketch

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/clipboard"
)

// Button is a pointer button as seen by the session.
type Button int

const (
	// ButtonNone means no button is held.
	ButtonNone Button = iota
	// ButtonDraw paints with the foreground ink (primary button).
	ButtonDraw
	// ButtonErase paints with the background ink (secondary button).
	ButtonErase
)

// DefaultFileName is used when no path has been chosen yet.
const DefaultFileName = "sketch.png"

// ErrCancelled is returned by Save when the chosen path is empty.
var ErrCancelled = errors.New("save cancelled")

// Notifier receives successful save and copy events.
type Notifier interface {
	Save(path string)
	Copy(detail string, img image.Image)
}

// SaveResult reports the outcome of SaveAsync.
type SaveResult struct {
	Path string
	Err  error
}

// Session owns the active button and routes input to the canvas. Like the
// canvas it is confined to the front-end's event loop.
type Session struct {
	canvas    *canvas.Canvas
	active    Button
	saveDir   string
	lastPath  string
	notifier  Notifier
	logger    *log.Logger
	clipboard func(image.Image) error
}

// Option configures a Session.
type Option func(*Session)

// WithSaveDir sets the directory DefaultSavePath points into.
func WithSaveDir(dir string) Option { return func(s *Session) { s.saveDir = dir } }

// WithNotifier installs the notifier fired after a successful save or copy.
func WithNotifier(n Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithLogger directs diagnostics to l.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// WithClipboard replaces the function used by Copy.
func WithClipboard(write func(image.Image) error) Option {
	return func(s *Session) { s.clipboard = write }
}

// New wraps c in a session.
func New(c *canvas.Canvas, opts ...Option) *Session {
	s := &Session{
		canvas:    c,
		logger:    log.New(os.Stderr, "", log.LstdFlags),
		clipboard: clipboard.WriteImage,
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Canvas returns the canvas being edited.
func (s *Session) Canvas() *canvas.Canvas { return s.canvas }

// Active returns the button currently held.
func (s *Session) Active() Button { return s.active }

// Press records b as held and applies one dab at (x, y).
func (s *Session) Press(b Button, x, y int) image.Rectangle {
	if b == ButtonNone {
		return image.Rectangle{}
	}
	s.active = b
	return s.dab(x, y)
}

// Drag applies a dab for the held button. Without a held button it does
// nothing.
func (s *Session) Drag(x, y int) image.Rectangle {
	return s.dab(x, y)
}

// Release forgets b if it is the held button. ButtonNone releases whatever is
// held.
func (s *Session) Release(b Button) {
	if b == ButtonNone || b == s.active {
		s.active = ButtonNone
	}
}

func (s *Session) dab(x, y int) image.Rectangle {
	switch s.active {
	case ButtonDraw:
		return s.canvas.Draw(x, y)
	case ButtonErase:
		return s.canvas.Erase(x, y)
	}
	return image.Rectangle{}
}

// Resize resizes the canvas keeping its content and reports whether the
// front-end must repaint everything. Invalid sizes are logged and ignored.
func (s *Session) Resize(width, height int) bool {
	if width == s.canvas.Width() && height == s.canvas.Height() {
		return false
	}
	if err := s.canvas.Resize(width, height); err != nil {
		s.logger.Printf("resize to %dx%d ignored: %v", width, height, err)
		return false
	}
	return true
}

// New clears the canvas.
func (s *Session) New() image.Rectangle {
	return s.canvas.Clear()
}

// DefaultSavePath suggests where to save: the last saved path, otherwise
// DefaultFileName inside the save directory.
func (s *Session) DefaultSavePath() string {
	if s.lastPath != "" {
		return s.lastPath
	}
	if s.saveDir != "" {
		return filepath.Join(s.saveDir, DefaultFileName)
	}
	return DefaultFileName
}

// Save exports the canvas to path and returns the written path.
// A blank path cancels; any other path is used exactly as given.
func (s *Session) Save(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrCancelled
	}
	written, err := s.canvas.ExportPNG(path)
	s.finishSave(written, err)
	return written, err
}

// SaveAsync snapshots the canvas and writes the snapshot on a new goroutine.
// done runs on that goroutine; front-ends forward it to their event loop.
// Drawing may continue while the write is in flight. The event loop passes
// the result to SaveDone.
func (s *Session) SaveAsync(path string, done func(SaveResult)) {
	if strings.TrimSpace(path) == "" {
		if done != nil {
			done(SaveResult{Err: ErrCancelled})
		}
		return
	}
	snap := s.canvas.Snapshot()
	go func() {
		written, err := canvas.SavePNG(path, snap)
		s.report(written, err)
		if done != nil {
			done(SaveResult{Path: written, Err: err})
		}
	}()
}

// SaveDone records a SaveAsync result on the event loop. Only a successful
// save becomes the next default path.
func (s *Session) SaveDone(r SaveResult) {
	if r.Err == nil && r.Path != "" {
		s.lastPath = r.Path
	}
}

func (s *Session) finishSave(written string, err error) {
	if err == nil {
		s.lastPath = written
	}
	s.report(written, err)
}

// report only touches the logger and notifier so it is safe off the event loop.
func (s *Session) report(written string, err error) {
	if err != nil {
		s.logger.Printf("save failed: %v", err)
		return
	}
	s.logger.Printf("saved %s", written)
	if s.notifier != nil {
		s.notifier.Save(written)
	}
}

// Copy places the canvas on the clipboard as PNG.
func (s *Session) Copy() error {
	snap := s.canvas.Snapshot()
	if err := s.clipboard(snap); err != nil {
		s.logger.Printf("copy failed: %v", err)
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if s.notifier != nil {
		s.notifier.Copy(fmt.Sprintf("%dx%d sketch", snap.Bounds().Dx(), snap.Bounds().Dy()), snap)
	}
	return nil
}
