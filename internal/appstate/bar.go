package appstate

import (
	"image"
	"image/draw"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/theme"
)

const (
	barHeight   = 28
	buttonPad   = 4
	buttonSpace = 6
	promptLabel = "Save as: "
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state render.ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state render.ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// barButton is a labelled button in the bottom bar.
type barButton struct {
	label  string
	action func()
	rect   image.Rectangle
	theme  *theme.Theme
}

func (b *barButton) Draw(dst *image.RGBA, state render.ButtonState) {
	render.DrawButton(dst, b.rect, b.label, state, b.theme)
}

func (b *barButton) Rect() image.Rectangle { return b.rect }

func (b *barButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *barButton) Activate() {
	if b.action != nil {
		b.action()
	}
}

// buttonWidth is the width a button needs for label.
func buttonWidth(label string) int {
	return render.TextWidth(label) + 4*buttonPad
}

// barRect is the strip at the bottom of a width x height window.
func barRect(width, height int) image.Rectangle {
	top := height - barHeight
	if top < 0 {
		top = 0
	}
	return image.Rect(0, top, width, height)
}

// canvasSize is the drawable area above the bar.
func canvasSize(width, height int) (int, int) {
	return width, height - barHeight
}

// windowSize is the window needed to show a w x h canvas and the bar.
func windowSize(w, h int, labels []string) (int, int) {
	if min := barWidth(labels); w < min {
		w = min
	}
	return w, h + barHeight
}

func barWidth(labels []string) int {
	total := buttonSpace
	for _, l := range labels {
		total += buttonWidth(l) + buttonSpace
	}
	return total
}

// layoutBar positions buttons left to right inside bar.
func layoutBar(bar image.Rectangle, buttons []Button, labels []string) {
	x := bar.Min.X + buttonSpace
	for i, b := range buttons {
		w := buttonWidth(labels[i])
		b.SetRect(image.Rect(x, bar.Min.Y+buttonPad, x+w, bar.Max.Y-buttonPad))
		x += w + buttonSpace
	}
}

// promptRect is the text field drawn over the bar while saving.
func promptRect(bar image.Rectangle) image.Rectangle {
	return bar.Inset(buttonPad)
}

// buttonAt returns the index of the button under p or -1.
func buttonAt(buttons []Button, p image.Point) int {
	for i, b := range buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}
