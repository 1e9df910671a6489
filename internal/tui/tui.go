// Package tui runs the sketchpad inside a terminal. Every cell shows two
// vertically stacked pixels using the upper half block glyph.
package tui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

const (
	halfBlock   = '▀'
	promptLabel = "Save as: "
	helpText    = "^S save  ^N new  ^Y copy  q quit  left draw  right erase"
)

// App is the terminal front-end.
type App struct {
	screen  tcell.Screen
	session *sketch.Session
	theme   *theme.Theme

	cols, rows int

	prompting bool
	input     string
	status    string
	statusErr bool

	quit bool
}

// Option configures an App.
type Option func(*App)

// WithTheme sets the status line colors.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

// New wraps an uninitialised screen. Pass nil to use the terminal.
func New(s tcell.Screen, session *sketch.Session, opts ...Option) *App {
	a := &App{screen: s, session: session, theme: theme.Default()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// CanvasSize returns the pixel size available in a cols x rows terminal.
func CanvasSize(cols, rows int) (int, int) {
	return cols, 2 * (rows - 1)
}

// Run takes over the terminal until the user quits.
func (a *App) Run() error {
	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		a.screen = s
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer a.screen.Fini()
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.HideCursor()

	a.resize()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.handle(ev)
	}
	return nil
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
	case *tcell.EventKey:
		a.key(ev)
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventInterrupt:
		if r, ok := ev.Data().(sketch.SaveResult); ok {
			a.saveDone(r)
		}
	}
}

func (a *App) resize() {
	a.cols, a.rows = a.screen.Size()
	w, h := CanvasSize(a.cols, a.rows)
	a.session.Resize(w, h)
	a.drawAll()
}

func (a *App) key(ev *tcell.EventKey) {
	if a.prompting {
		a.promptKey(ev)
		return
	}
	switch ev.Key() {
	case tcell.KeyCtrlS:
		a.prompting = true
		a.input = a.session.DefaultSavePath()
		a.drawStatus()
	case tcell.KeyCtrlN:
		a.session.New()
		a.setStatus("", false)
		a.drawAll()
	case tcell.KeyCtrlY:
		if err := a.session.Copy(); err != nil {
			a.setStatus(err.Error(), true)
		} else {
			a.setStatus("sketch copied to clipboard", false)
		}
		a.drawStatus()
	case tcell.KeyCtrlC, tcell.KeyEscape:
		a.quit = true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			a.quit = true
		}
	}
}

func (a *App) promptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		path := a.input
		a.prompting = false
		a.input = ""
		screen := a.screen
		a.session.SaveAsync(path, func(r sketch.SaveResult) {
			if err := screen.PostEvent(tcell.NewEventInterrupt(r)); err != nil {
				log.Printf("post save result: %v", err)
			}
		})
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.prompting = false
		a.input = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			_, size := utf8.DecodeLastRuneInString(a.input)
			a.input = a.input[:len(a.input)-size]
		}
	case tcell.KeyRune:
		a.input += string(ev.Rune())
	}
	a.drawStatus()
}

// buttonFor maps tcell's button mask to a drawing button.
func buttonFor(m tcell.ButtonMask) sketch.Button {
	switch {
	case m&tcell.Button1 != 0:
		return sketch.ButtonDraw
	case m&tcell.Button2 != 0:
		return sketch.ButtonErase
	}
	return sketch.ButtonNone
}

// cellToPixel maps a cell to the upper of its two pixels.
func cellToPixel(x, y int) image.Point {
	return image.Pt(x, 2*y)
}

func (a *App) mouse(ev *tcell.EventMouse) {
	if a.prompting {
		return
	}
	b := buttonFor(ev.Buttons())
	p := cellToPixel(ev.Position())
	var r image.Rectangle
	switch {
	case b == sketch.ButtonNone:
		a.session.Release(sketch.ButtonNone)
		return
	case b == a.session.Active():
		r = a.session.Drag(p.X, p.Y)
	default:
		if a.status != "" {
			a.setStatus("", false)
			a.drawStatus()
		}
		r = a.session.Press(b, p.X, p.Y)
	}
	a.drawPixels(r)
	a.screen.Show()
}

func (a *App) saveDone(r sketch.SaveResult) {
	a.session.SaveDone(r)
	switch {
	case errors.Is(r.Err, sketch.ErrCancelled):
	case r.Err != nil:
		a.setStatus(fmt.Sprintf("save failed: %v", r.Err), true)
	default:
		a.setStatus("saved "+r.Path, false)
	}
	a.drawStatus()
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellStyle colors a half block cell: foreground is the upper pixel and
// background the lower one.
func cellStyle(upper, lower color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(upper)).Background(rgb(lower))
}

func (a *App) drawAll() {
	a.screen.Clear()
	w, h := CanvasSize(a.cols, a.rows)
	a.drawPixels(image.Rect(0, 0, w, h))
	a.drawStatus()
}

// drawPixels repaints the cells covering pixel rectangle r.
func (a *App) drawPixels(r image.Rectangle) {
	c := a.session.Canvas()
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	bg := c.Ink().Background
	for cy := r.Min.Y / 2; cy < (r.Max.Y+1)/2 && cy < a.rows-1; cy++ {
		for x := r.Min.X; x < r.Max.X && x < a.cols; x++ {
			upper := c.At(x, 2*cy)
			lower := bg
			if 2*cy+1 < c.Height() {
				lower = c.At(x, 2*cy+1)
			}
			a.screen.SetContent(x, cy, halfBlock, nil, cellStyle(upper, lower))
		}
	}
}

func (a *App) statusText() string {
	switch {
	case a.prompting:
		return promptLabel + a.input + "_"
	case a.status != "":
		return a.status
	}
	return helpText
}

func (a *App) drawStatus() {
	if a.rows <= 0 {
		return
	}
	y := a.rows - 1
	fg := a.theme.Foreground
	switch {
	case a.prompting:
		fg = a.theme.PromptText
	case a.statusErr:
		fg = a.theme.ErrorText
	}
	style := tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(a.theme.Background))
	text := []rune(a.statusText())
	// keep the end of long prompts visible
	if a.prompting && len(text) > a.cols {
		text = text[len(text)-a.cols:]
	}
	for x := 0; x < a.cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		a.screen.SetContent(x, y, ch, nil, style)
	}
	a.screen.Show()
}
