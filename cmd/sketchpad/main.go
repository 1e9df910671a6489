package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	width       int
	height      int
	penSize     int
	whitePen    bool
	saveDir     string
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("sketchpad", flag.ContinueOnError),
		program:  "sketchpad",
		notifier: notify.New(notify.LoadPreferences()),
		config:   cfg,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	r.fs.IntVar(&r.width, "width", cfg.Canvas.Width, "initial canvas width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Canvas.Height, "initial canvas height in pixels")
	r.fs.IntVar(&r.penSize, "pen", cfg.Canvas.PenSize, "pen size in pixels; erasing uses twice this size")
	r.fs.BoolVar(&r.whitePen, "white-pen", !cfg.Canvas.BlackPen, "draw white on black instead of black on white")
	r.fs.StringVar(&r.saveDir, "save-dir", cfg.SaveDir, "directory suggested when saving")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a sketch")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Builtin(), ", ")+")")
	r.fs.SetOutput(io.Discard)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r}
		}
		return fmt.Errorf("%w\n%s", err, (&UsageError{of: r}).Error())
	}

	r.applyFlags()
	if err := r.config.Validate(); err != nil {
		return err
	}
	r.notifier.Enable(notify.EventSave, r.config.Notify.Save)
	r.notifier.Enable(notify.EventCopy, r.config.Notify.Copy)
	r.activeTheme = r.resolveTheme()

	cmdName := "window"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "window":
		cmd, err = parseWindowCmd(subArgs, r)
	case "term":
		cmd, err = parseTermCmd(subArgs, r)
	case "script":
		cmd, err = parseScriptCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if errors.Is(err, flag.ErrHelp) {
		// the flag set already printed its usage
		return nil
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// applyFlags folds the parsed flags into the effective configuration so
// "config print" and "config save" reflect them.
func (r *root) applyFlags() {
	r.config.Canvas.Width = r.width
	r.config.Canvas.Height = r.height
	r.config.Canvas.PenSize = r.penSize
	r.config.Canvas.BlackPen = !r.whitePen
	r.config.SaveDir = r.saveDir
	r.config.Notify.Save = r.saveAlerts
	r.config.Notify.Copy = r.copyAlerts
	if r.themeName != "" {
		r.config.Theme = r.themeName
	}
}

func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("SKETCHPAD_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	loader := theme.NewLoader()
	loader.Inline = r.config.Themes
	t, err := loader.Load(themeName)
	if err != nil {
		if themeName != "default" {
			fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		t = theme.Default()
	}
	return t
}

// newSession builds the canvas and session described by the configuration.
// Session logs go to logOut.
func (r *root) newSession(logOut io.Writer) (*sketch.Session, error) {
	cv := r.config.Canvas
	c, err := canvas.New(cv.Width, cv.Height,
		canvas.WithPenSize(cv.PenSize),
		canvas.WithInk(canvas.InkFor(cv.BlackPen)),
	)
	if err != nil {
		return nil, fmt.Errorf("create canvas %dx%d: %w", cv.Width, cv.Height, err)
	}
	return sketch.New(c,
		sketch.WithSaveDir(r.config.SaveDir),
		sketch.WithNotifier(r.notifier),
		sketch.WithLogger(log.New(logOut, "", log.LstdFlags)),
	), nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
