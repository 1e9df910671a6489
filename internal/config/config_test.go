package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/sketches

[canvas]
width = 800
height = 600
pen_size = 6
black_pen = false

[notify]
save = true
copy = false

[theme.my_custom_theme]
Background = #111111
ButtonText = white
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/sketches" {
		t.Errorf("Expected save_dir '/tmp/sketches', got '%s'", cfg.SaveDir)
	}
	want := Canvas{Width: 800, Height: 600, PenSize: 6, BlackPen: false}
	if cfg.Canvas != want {
		t.Errorf("Canvas = %+v, want %+v", cfg.Canvas, want)
	}
	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if th.ButtonText.R != 0xFF || th.ButtonText.A != 0xFF {
		t.Errorf("Unexpected ButtonText color: %+v", th.ButtonText)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# nothing here\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Canvas.Width != DefaultWidth || cfg.Canvas.Height != DefaultHeight || cfg.Canvas.PenSize != DefaultPenSize {
		t.Errorf("unexpected defaults: %+v", cfg.Canvas)
	}
	if !cfg.Canvas.BlackPen {
		t.Error("expected black pen by default")
	}
}

func TestParseErrorsCarryLine(t *testing.T) {
	input := "[canvas]\nwidth = wide\n"
	_, err := Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"line 2", "[canvas]", "width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cfg.Canvas.Height = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero height")
	}
	cfg = New()
	cfg.Canvas.PenSize = -2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative pen size")
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/sketches

[canvas]
width = 320
height = 200
pen_size = 2
black_pen = true

[notify]
save = true
copy = true

[theme.custom]
Name = custom
Background = #000000
ButtonBorder = #FFFFFF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := NewLoader("1.0.0", "")
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("expected no config path, got %q", got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Canvas.Width != DefaultWidth {
		t.Fatalf("expected defaults when no file exists")
	}

	dir := filepath.Join(home, ".config", "sketchpad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	fallback := filepath.Join(dir, "sketchpad.rc")
	if err := os.WriteFile(fallback, []byte("[canvas]\nwidth = 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != fallback {
		t.Fatalf("expected %q, got %q", fallback, got)
	}

	override := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(override, []byte("[canvas]\nwidth = 77\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l = NewLoader("1.0.0", override)
	cfg, err = l.Load()
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}
	if cfg.Canvas.Width != 77 {
		t.Fatalf("expected override file to win, width = %d", cfg.Canvas.Width)
	}
}
