package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/sketchpad/internal/theme"
)

func TestDrawBorderStaysInside(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := image.Rect(5, 5, 15, 15)
	red := color.RGBA{255, 0, 0, 255}
	DrawBorder(dst, r, red, 2)

	for _, p := range []image.Point{{5, 5}, {14, 14}, {6, 10}, {13, 10}} {
		if got := dst.RGBAAt(p.X, p.Y); got != red {
			t.Errorf("edge pixel %v = %+v", p, got)
		}
	}
	for _, p := range []image.Point{{4, 4}, {15, 15}, {10, 10}} {
		if got := dst.RGBAAt(p.X, p.Y); got == red {
			t.Errorf("pixel %v should be untouched", p)
		}
	}
}

func TestDrawButtonStates(t *testing.T) {
	th := theme.Default()
	r := image.Rect(0, 0, 60, 20)
	for state, want := range map[ButtonState]color.RGBA{
		StateDefault: th.ButtonBackground,
		StateHover:   th.ButtonBackgroundHover,
		StatePressed: th.ButtonBackgroundPress,
	} {
		dst := image.NewRGBA(r)
		DrawButton(dst, r, "Save", state, th)
		if got := dst.RGBAAt(2, 2); got != want {
			t.Errorf("state %d background = %+v, want %+v", state, got, want)
		}
		if got := dst.RGBAAt(0, 0); got != th.ButtonBorder {
			t.Errorf("state %d border = %+v", state, got)
		}
	}
}

func TestFitTail(t *testing.T) {
	w := TextWidth("a")
	if got := FitTail("abcdef", 3*w); got != "def" {
		t.Fatalf("FitTail = %q", got)
	}
	if got := FitTail("ab", 10*w); got != "ab" {
		t.Fatalf("FitTail = %q", got)
	}
	if got := FitTail("ab", 0); got != "" {
		t.Fatalf("FitTail = %q", got)
	}
}

func TestMessageRectCentred(t *testing.T) {
	area := image.Rect(0, 0, 200, 100)
	r := MessageRect(area, "saved")
	if !r.In(area) || r.Empty() {
		t.Fatalf("message rect %v outside %v", r, area)
	}
	left := r.Min.X - area.Min.X
	right := area.Max.X - r.Max.X
	if d := left - right; d < -1 || d > 1 {
		t.Fatalf("message rect %v not centred horizontally", r)
	}
}

func TestDrawMessageUsesErrorColor(t *testing.T) {
	th := theme.Default()
	area := image.Rect(0, 0, 200, 60)
	dst := image.NewRGBA(area)
	r := DrawMessage(dst, area, "failed", true, th)
	if got := dst.RGBAAt(r.Min.X, r.Min.Y); got != th.ErrorText {
		t.Fatalf("error border = %+v, want %+v", got, th.ErrorText)
	}
}
