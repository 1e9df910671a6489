package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
)

var (
	// ErrInvalidSize is returned when a canvas is created or resized with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("canvas dimensions must be positive")
	// ErrInvalidPenSize is returned when the pen size is not positive.
	ErrInvalidPenSize = errors.New("pen size must be positive")
)

// DefaultPenSize is the pen size used when WithPenSize is not supplied.
const DefaultPenSize = 4

// Ink holds the drawing and paper colors of a canvas.
type Ink struct {
	Foreground color.RGBA
	Background color.RGBA
}

// InkFor returns black ink on white paper when blackPen is true and white ink
// on black paper otherwise.
func InkFor(blackPen bool) Ink {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	if blackPen {
		return Ink{Foreground: black, Background: white}
	}
	return Ink{Foreground: white, Background: black}
}

// Canvas is an in-memory raster that can be drawn on, erased, resized while
// keeping its content, and exported as PNG. It is not safe for concurrent
// mutation; callers own it from a single event loop.
type Canvas struct {
	img     *image.RGBA
	ink     Ink
	penSize int
}

// Option modifies a Canvas during creation.
type Option func(*Canvas)

// WithInk sets the foreground and background colors.
func WithInk(ink Ink) Option { return func(c *Canvas) { c.ink = ink } }

// WithPenSize sets the side length of a draw dab.
func WithPenSize(size int) Option { return func(c *Canvas) { c.penSize = size } }

// New allocates a width x height canvas filled with the background color.
func New(width, height int, opts ...Option) (*Canvas, error) {
	c := &Canvas{
		ink:     InkFor(true),
		penSize: DefaultPenSize,
	}
	for _, o := range opts {
		o(c)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if c.penSize <= 0 {
		return nil, ErrInvalidPenSize
	}
	c.img = c.blank(width, height)
	return c, nil
}

func (c *Canvas) blank(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c.ink.Background}, image.Point{}, draw.Src)
	return img
}

// Width returns the current width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the current height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Bounds returns the canvas rectangle, always anchored at (0,0).
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Ink returns the colors selected at construction.
func (c *Canvas) Ink() Ink { return c.ink }

// PenSize returns the side length of a draw dab.
func (c *Canvas) PenSize() int { return c.penSize }

// Image exposes the pixel buffer for blitting. Callers must not modify it and
// must not retain it across a Resize.
func (c *Canvas) Image() image.Image { return c.img }

// At returns the pixel at (x, y), or the zero color outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Resize replaces the buffer with one of the requested size. The overlapping
// top-left region keeps its content and any new area is filled with the
// background color. Resizing to the current size leaves the buffer untouched.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	old := c.img
	if old.Bounds().Dx() == width && old.Bounds().Dy() == height {
		return nil
	}
	img := c.blank(width, height)
	overlap := old.Bounds().Intersect(img.Bounds())
	draw.Draw(img, overlap, old, overlap.Min, draw.Src)
	c.img = img
	return nil
}

// Fill paints r clipped to the canvas with col and returns the rectangle that
// was actually touched. The result is empty when r misses the canvas.
func (c *Canvas) Fill(r image.Rectangle, col color.Color) image.Rectangle {
	r = r.Canon().Intersect(c.img.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}
	draw.Draw(c.img, r, &image.Uniform{col}, image.Point{}, draw.Src)
	return r
}

// Draw paints a foreground dab centred on (x, y).
func (c *Canvas) Draw(x, y int) image.Rectangle {
	return c.Fill(DrawRect(x, y, c.penSize), c.ink.Foreground)
}

// Erase paints a background dab centred on (x, y). Erase dabs are twice the
// side of draw dabs.
func (c *Canvas) Erase(x, y int) image.Rectangle {
	return c.Fill(EraseRect(x, y, c.penSize), c.ink.Background)
}

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() image.Rectangle {
	return c.Fill(c.img.Bounds(), c.ink.Background)
}

// Snapshot returns an independent copy of the pixel buffer.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// DrawRect returns the square covered by a draw dab of side pen at (x, y).
// Edges saturate at the int range, so dabs far off the canvas never wrap.
func DrawRect(x, y, pen int) image.Rectangle {
	x0 := addSat(x, -(pen / 2))
	y0 := addSat(y, -(pen / 2))
	return image.Rect(x0, y0, addSat(x0, pen), addSat(y0, pen))
}

// EraseRect returns the square covered by an erase dab for pen at (x, y).
func EraseRect(x, y, pen int) image.Rectangle {
	return image.Rect(addSat(x, -pen), addSat(y, -pen), addSat(x, pen), addSat(y, pen))
}

func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
