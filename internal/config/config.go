package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultPenSize = 4
)

// Canvas holds the startup parameters of the drawing surface.
type Canvas struct {
	Width   int
	Height  int
	PenSize int
	// BlackPen selects black ink on white paper; false swaps the two.
	BlackPen bool
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Canvas  Canvas
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // empty lets the environment or the built-in default decide
		Canvas: Canvas{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			PenSize:  DefaultPenSize,
			BlackPen: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Validate reports configuration values the application cannot start with.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d: dimensions must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.PenSize <= 0 {
		return fmt.Errorf("invalid pen size %d: must be positive", c.Canvas.PenSize)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "pen_size = %d\n", c.Canvas.PenSize)
	fmt.Fprintf(&sb, "black_pen = %v\n", c.Canvas.BlackPen)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Colors() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, toHex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
