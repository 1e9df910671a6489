package main

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/sketch"
)

func testSession(t *testing.T, w, h int) *sketch.Session {
	t.Helper()
	c, err := canvas.New(w, h, canvas.WithPenSize(4))
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	return sketch.New(c, sketch.WithLogger(log.New(&bytes.Buffer{}, "", 0)))
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "my sketch")
	script := strings.Join([]string{
		"# a dab and an erased dab",
		"size 100 100",
		"draw 50 50",
		"draw 10 10",
		"erase 10 10",
		"",
		"save " + out,
	}, "\n")

	s := testSession(t, 20, 20)
	written, err := runScript(strings.NewReader(script), s)
	if err != nil {
		t.Fatalf("runScript: %v", err)
	}
	if len(written) != 1 || written[0] != out+".png" {
		t.Fatalf("written = %v", written)
	}

	f, err := os.Open(written[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(50, 50)).(color.RGBA); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("(50,50) = %+v", got)
	}
	if got := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("(10,10) = %+v", got)
	}
}

func TestRunScriptClear(t *testing.T) {
	s := testSession(t, 20, 20)
	if _, err := runScript(strings.NewReader("draw 5 5\nclear\n"), s); err != nil {
		t.Fatalf("runScript: %v", err)
	}
	if s.Canvas().At(5, 5) != (color.RGBA{255, 255, 255, 255}) {
		t.Fatal("clear did not clear")
	}
}

func TestRunScriptErrorsCarryLine(t *testing.T) {
	cases := []struct {
		name   string
		script string
		line   string
		target error
	}{
		{"unknown", "draw 1 1\nsmudge 1 1\n", "line 2", errScriptSyntax},
		{"bad int", "# c\n\ndraw x 1\n", "line 3", errScriptSyntax},
		{"missing arg", "erase 1\n", "line 1", errScriptSyntax},
		{"bad size", "size 0 10\n", "line 1", canvas.ErrInvalidSize},
		{"save without path", "save\n", "line 1", errScriptSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runScript(strings.NewReader(tc.script), testSession(t, 10, 10))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("expected %q in %v", tc.line, err)
			}
			if !errors.Is(err, tc.target) {
				t.Errorf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestRunScriptReportsEarlierSaves(t *testing.T) {
	dir := t.TempDir()
	script := "save " + filepath.Join(dir, "first.png") + "\nsave " + filepath.Join(dir, "missing", "second") + "\n"
	written, err := runScript(strings.NewReader(script), testSession(t, 4, 4))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v", written)
	}
}
