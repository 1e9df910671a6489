// Package render draws the window chrome shared by the desktop front-end:
// the button bar, the save prompt and transient messages.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/theme"
)

// Face is the font used for all chrome text.
var Face font.Face = basicfont.Face7x13

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// TextWidth returns the advance of s in Face, in pixels.
func TextWidth(s string) int {
	d := &font.Drawer{Face: Face}
	return d.MeasureString(s).Ceil()
}

// LineHeight is the height of one line of Face text.
func LineHeight() int {
	m := Face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// DrawBorder outlines r with col, thick pixels wide, inside r.
func DrawBorder(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	if thick <= 0 || r.Empty() {
		return
	}
	src := &image.Uniform{col}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
		image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
		image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Over)
	}
}

// DrawText writes s with its left edge at x, vertically centred in r.
func DrawText(dst *image.RGBA, r image.Rectangle, x int, s string, col color.Color) {
	m := Face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	y := r.Min.Y + (r.Dy()-ascent-descent)/2 + ascent
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: Face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// DrawBar fills the button bar background.
func DrawBar(dst *image.RGBA, r image.Rectangle, th *theme.Theme) {
	draw.Draw(dst, r, &image.Uniform{th.Background}, image.Point{}, draw.Src)
	DrawBorder(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), th.ButtonBorder, 1)
}

// DrawButton paints a labelled button filling r.
func DrawButton(dst *image.RGBA, r image.Rectangle, label string, state ButtonState, th *theme.Theme) {
	bg := th.ButtonBackground
	switch state {
	case StateHover:
		bg = th.ButtonBackgroundHover
	case StatePressed:
		bg = th.ButtonBackgroundPress
	}
	draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
	DrawBorder(dst, r, th.ButtonBorder, 1)
	x := r.Min.X + (r.Dx()-TextWidth(label))/2
	DrawText(dst, r, x, label, th.ButtonText)
}

// DrawPrompt paints a single line text field showing label followed by input
// and a cursor. When the text does not fit, the start of input is dropped so
// the cursor stays visible.
func DrawPrompt(dst *image.RGBA, r image.Rectangle, label, input string, th *theme.Theme) {
	draw.Draw(dst, r, &image.Uniform{th.PromptBackground}, image.Point{}, draw.Src)
	DrawBorder(dst, r, th.ButtonBorder, 1)
	const pad = 4
	DrawText(dst, r, r.Min.X+pad, label, th.PromptText)
	x := r.Min.X + pad + TextWidth(label)
	DrawText(dst, r, x, FitTail(input+"|", r.Max.X-pad-x), th.PromptText)
}

// FitTail returns the longest suffix of s no wider than width pixels.
func FitTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for i := range runes {
		if tail := string(runes[i:]); TextWidth(tail) <= width {
			return tail
		}
	}
	return ""
}

// MessageRect returns the box DrawMessage uses for msg centred in area.
func MessageRect(area image.Rectangle, msg string) image.Rectangle {
	const pad = 8
	w := TextWidth(msg) + 2*pad
	h := LineHeight() + 2*pad
	c := image.Pt((area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2)
	return image.Rect(c.X-w/2, c.Y-h/2, c.X-w/2+w, c.Y-h/2+h).Intersect(area)
}

// DrawMessage paints msg in a bordered box centred in area and returns the
// rectangle it covered. Errors use the theme's error color.
func DrawMessage(dst *image.RGBA, area image.Rectangle, msg string, isErr bool, th *theme.Theme) image.Rectangle {
	r := MessageRect(area, msg)
	if r.Empty() {
		return r
	}
	draw.Draw(dst, r, &image.Uniform{th.MessageBackground}, image.Point{}, draw.Over)
	fg := th.MessageText
	if isErr {
		fg = th.ErrorText
	}
	DrawBorder(dst, r, fg, 2)
	DrawText(dst, r, r.Min.X+8, msg, fg)
	return r
}
