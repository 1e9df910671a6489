package tui

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/sketch"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func newApp(t *testing.T, cols, rows int, opts ...sketch.Option) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)

	c, err := canvas.New(4, 4, canvas.WithPenSize(2))
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	opts = append([]sketch.Option{discardLog()}, opts...)
	a := New(s, sketch.New(c, opts...))
	a.resize()
	return a, s
}

func discardLog() sketch.Option {
	return sketch.WithLogger(log.New(&bytes.Buffer{}, "", 0))
}

func statusLine(s tcell.SimulationScreen) string {
	cells, w, h := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[(h-1)*w+x].Runes {
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

func TestCanvasSize(t *testing.T) {
	if w, h := CanvasSize(80, 25); w != 80 || h != 48 {
		t.Fatalf("CanvasSize = %dx%d", w, h)
	}
}

func TestResizeFollowsTerminal(t *testing.T) {
	a, _ := newApp(t, 20, 6)
	c := a.session.Canvas()
	if c.Width() != 20 || c.Height() != 10 {
		t.Fatalf("canvas %dx%d, want 20x10", c.Width(), c.Height())
	}
}

func TestButtonMapping(t *testing.T) {
	if buttonFor(tcell.Button1) != sketch.ButtonDraw {
		t.Error("Button1 should draw")
	}
	if buttonFor(tcell.Button2) != sketch.ButtonErase {
		t.Error("Button2 should erase")
	}
	if buttonFor(tcell.ButtonNone) != sketch.ButtonNone {
		t.Error("no button should release")
	}
	if p := cellToPixel(3, 4); p != image.Pt(3, 8) {
		t.Errorf("cellToPixel = %v", p)
	}
}

func TestMouseDrawsHalfBlocks(t *testing.T) {
	a, s := newApp(t, 20, 6)
	a.handle(tcell.NewEventMouse(5, 2, tcell.Button1, 0))
	if a.session.Canvas().At(5, 4) != black {
		t.Fatal("press did not draw")
	}
	mainc, _, style, _ := s.GetContent(5, 2)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q", mainc)
	}
	// pen 2 at pixel row 4 covers rows 3 and 4, so only the upper half is inked
	fg, bg, _ := style.Decompose()
	if fg != rgb(black) || bg != rgb(white) {
		t.Fatalf("cell colors fg=%v bg=%v", fg, bg)
	}
	_, _, style, _ = s.GetContent(0, 0)
	if fg, _, _ := style.Decompose(); fg != rgb(white) {
		t.Fatalf("untouched cell fg=%v", fg)
	}

	a.handle(tcell.NewEventMouse(9, 2, tcell.Button1, 0))
	if a.session.Canvas().At(9, 4) != black {
		t.Fatal("drag did not draw")
	}
	a.handle(tcell.NewEventMouse(9, 2, tcell.ButtonNone, 0))
	if a.session.Active() != sketch.ButtonNone {
		t.Fatal("buttonless event should release")
	}

	a.handle(tcell.NewEventMouse(5, 2, tcell.Button2, 0))
	if a.session.Canvas().At(5, 4) != white {
		t.Fatal("secondary button did not erase")
	}
}

func TestKeys(t *testing.T) {
	a, s := newApp(t, 60, 6)
	a.handle(tcell.NewEventMouse(5, 2, tcell.Button1, 0))
	a.handle(tcell.NewEventMouse(5, 2, tcell.ButtonNone, 0))

	a.handle(tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl))
	if a.session.Canvas().At(5, 4) != white {
		t.Fatal("Ctrl+N did not clear")
	}

	a.handle(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !a.prompting || !strings.HasPrefix(statusLine(s), promptLabel+sketch.DefaultFileName) {
		t.Fatalf("expected prompt, status %q", statusLine(s))
	}
	a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if a.prompting || a.quit {
		t.Fatal("escape should only cancel the prompt")
	}
	if statusLine(s) != helpText {
		t.Fatalf("status after cancel = %q", statusLine(s))
	}

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if !a.quit {
		t.Fatal("q should quit")
	}
}

func TestSavePromptWritesFile(t *testing.T) {
	dir := t.TempDir()
	a, s := newApp(t, 60, 6, sketch.WithSaveDir(dir))
	a.handle(tcell.NewEventMouse(1, 1, tcell.Button1, 0))

	a.handle(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	for range "sketch.png" {
		a.handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	}
	for _, r := range "out" {
		a.handle(tcell.NewEventKey(tcell.KeyRune, r, 0))
	}
	a.handle(tcell.NewEventKey(tcell.KeyEnter, 0, 0))

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	timeout := time.After(5 * time.Second)
	for posted := false; !posted; {
		select {
		case ev := <-events:
			_, posted = ev.(*tcell.EventInterrupt)
			a.handle(ev)
		case <-timeout:
			t.Fatal("save result was not posted")
		}
	}

	want := filepath.Join(dir, "out.png")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected %s: %v", want, err)
	}
	if got := statusLine(s); !strings.HasPrefix(got, "saved ") {
		t.Fatalf("status = %q", got)
	}
}
