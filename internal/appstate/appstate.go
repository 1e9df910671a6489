// Package appstate runs the desktop sketching window on top of shiny.
package appstate

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

const messageDuration = 2 * time.Second

// AppState holds application configuration for the UI.
type AppState struct {
	Session *sketch.Session
	Theme   *theme.Theme
	Title   string

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the session the window edits.
func WithSession(s *sketch.Session) Option { return func(a *AppState) { a.Session = s } }

// WithTheme sets the colors of the window chrome.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{Title: "Sketchpad"}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// saveDoneEvent carries a SaveAsync result back onto the event loop.
type saveDoneEvent struct {
	result sketch.SaveResult
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// window bundles the per-run UI state driven by Main.
type window struct {
	app     *AppState
	screen  screen.Screen
	w       screen.Window
	session *sketch.Session
	theme   *theme.Theme

	width, height int
	frame         screen.Buffer

	buttons []Button
	labels  []string
	hover   int
	pressed int

	prompt       textInput
	message      string
	messageErr   bool
	messageUntil time.Time

	quit bool
}

func (a *AppState) Main(s screen.Screen) {
	if a.Session == nil {
		log.Printf("appstate: no session configured")
		return
	}
	win := &window{
		app:     a,
		screen:  s,
		session: a.Session,
		theme:   a.Theme,
		hover:   -1,
		pressed: -1,
	}
	win.initButtons()

	c := a.Session.Canvas()
	win.width, win.height = windowSize(c.Width(), c.Height(), win.labels)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: win.width, Height: win.height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	win.w = w
	defer w.Release()
	defer a.notifyClose()
	defer win.releaseFrame()

	for !win.quit {
		win.handle(w.NextEvent())
	}
}

func (win *window) initButtons() {
	win.labels = []string{"Save", "New", "Copy", "Quit"}
	actions := []func(){win.startSave, win.newSketch, win.copySketch, win.requestQuit}
	win.buttons = make([]Button, len(win.labels))
	for i, l := range win.labels {
		win.buttons[i] = &CacheButton{Button: &barButton{label: l, action: actions[i], theme: win.theme}}
	}
}

func (win *window) handle(e interface{}) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			win.quit = true
		}
	case size.Event:
		win.resize(e.WidthPx, e.HeightPx)
	case paint.Event:
		win.paint()
	case saveDoneEvent:
		win.saveDone(e.result)
	case mouse.Event:
		win.mouse(e)
	case key.Event:
		win.key(e)
	case error:
		log.Printf("window: %v", e)
	}
}

func (win *window) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	win.width, win.height = width, height
	cw, ch := canvasSize(width, height)
	win.session.Resize(cw, ch)
	layoutBar(barRect(width, height), win.buttons, win.labels)
	win.releaseFrame()
	win.w.Send(paint.Event{})
}

func (win *window) releaseFrame() {
	if win.frame != nil {
		win.frame.Release()
		win.frame = nil
	}
}

func (win *window) ensureFrame() bool {
	want := image.Pt(win.width, win.height)
	if win.frame != nil && win.frame.Size() == want {
		return true
	}
	win.releaseFrame()
	b, err := win.screen.NewBuffer(want)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return false
	}
	win.frame = b
	return true
}

// paint redraws and uploads the whole window.
func (win *window) paint() {
	if win.width <= 0 || win.height <= 0 || !win.ensureFrame() {
		return
	}
	dst := win.frame.RGBA()
	draw.Draw(dst, dst.Bounds(), &image.Uniform{win.theme.Background}, image.Point{}, draw.Src)

	img := win.session.Canvas().Image()
	draw.Draw(dst, img.Bounds().Intersect(dst.Bounds()), img, image.Point{}, draw.Src)

	bar := barRect(win.width, win.height)
	render.DrawBar(dst, bar, win.theme)
	if win.prompt.active {
		render.DrawPrompt(dst, promptRect(bar), promptLabel, win.prompt.text, win.theme)
	} else {
		for i, b := range win.buttons {
			state := render.StateDefault
			switch i {
			case win.pressed:
				state = render.StatePressed
			case win.hover:
				state = render.StateHover
			}
			b.Draw(dst, state)
		}
	}

	if win.message != "" && time.Now().Before(win.messageUntil) {
		area := image.Rect(0, 0, win.width, bar.Min.Y)
		render.DrawMessage(dst, area, win.message, win.messageErr, win.theme)
	}

	win.w.Upload(image.Point{}, win.frame, win.frame.Bounds())
	win.w.Publish()
}

// uploadDab copies r from the canvas into the frame and uploads only r.
func (win *window) uploadDab(r image.Rectangle) {
	if r.Empty() || win.frame == nil {
		return
	}
	r = r.Intersect(win.frame.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(win.frame.RGBA(), r, win.session.Canvas().Image(), r.Min, draw.Src)
	win.w.Upload(r.Min, win.frame, r)
	win.w.Publish()
}

func (win *window) mouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	bar := barRect(win.width, win.height)

	if win.session.Active() != sketch.ButtonNone {
		switch e.Direction {
		case mouse.DirNone:
			win.uploadDab(win.session.Drag(p.X, p.Y))
			return
		case mouse.DirRelease:
			win.session.Release(sessionButton(e.Button))
			return
		}
	}

	if p.In(bar) {
		win.barMouse(e, p)
		return
	}
	if win.hover != -1 || win.pressed != -1 {
		win.hover, win.pressed = -1, -1
		win.w.Send(paint.Event{})
	}

	if e.Direction == mouse.DirPress && !win.prompt.active {
		if win.dismissMessage() {
			return
		}
		win.uploadDab(win.session.Press(sessionButton(e.Button), p.X, p.Y))
	}
}

func (win *window) barMouse(e mouse.Event, p image.Point) {
	if win.prompt.active {
		return
	}
	idx := buttonAt(win.buttons, p)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button == mouse.ButtonLeft {
			win.pressed = idx
		}
	case mouse.DirRelease:
		if e.Button == mouse.ButtonLeft && idx != -1 && idx == win.pressed {
			win.pressed = -1
			win.buttons[idx].Activate()
		}
		win.pressed = -1
	}
	if idx != win.hover || e.Direction != mouse.DirNone {
		win.hover = idx
		win.w.Send(paint.Event{})
	}
}

// dismissMessage hides a visible message and reports whether one was shown.
func (win *window) dismissMessage() bool {
	if win.message == "" || !time.Now().Before(win.messageUntil) {
		return false
	}
	win.messageUntil = time.Time{}
	win.w.Send(paint.Event{})
	return true
}

func (win *window) key(e key.Event) {
	if win.prompt.active {
		switch win.prompt.handle(e) {
		case promptSubmit:
			path := win.prompt.text
			win.prompt.close()
			win.session.SaveAsync(path, func(r sketch.SaveResult) {
				win.w.Send(saveDoneEvent{result: r})
			})
		case promptCancel:
			win.prompt.close()
		}
		win.w.Send(paint.Event{})
		return
	}
	switch shortcutFor(e) {
	case actionSave:
		win.startSave()
	case actionNew:
		win.newSketch()
	case actionCopy:
		win.copySketch()
	case actionQuit:
		win.requestQuit()
	}
}

func (win *window) startSave() {
	win.prompt.open(win.session.DefaultSavePath())
	win.hover, win.pressed = -1, -1
	win.w.Send(paint.Event{})
}

func (win *window) saveDone(r sketch.SaveResult) {
	win.session.SaveDone(r)
	switch {
	case errors.Is(r.Err, sketch.ErrCancelled):
		return
	case r.Err != nil:
		win.showMessage(fmt.Sprintf("save failed: %v", r.Err), true)
	default:
		win.showMessage("saved "+r.Path, false)
	}
}

func (win *window) newSketch() {
	win.session.New()
	win.w.Send(paint.Event{})
}

func (win *window) copySketch() {
	if err := win.session.Copy(); err != nil {
		win.showMessage(err.Error(), true)
		return
	}
	win.showMessage("sketch copied to clipboard", false)
}

func (win *window) requestQuit() {
	win.quit = true
}

func (win *window) showMessage(msg string, isErr bool) {
	win.message = msg
	win.messageErr = isErr
	win.messageUntil = time.Now().Add(messageDuration)
	log.Print(msg)
	w := win.w
	time.AfterFunc(messageDuration, func() { w.Send(paint.Event{}) })
	w.Send(paint.Event{})
}
