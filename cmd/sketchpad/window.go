package main

import (
	"flag"

	"github.com/example/sketchpad/internal/appstate"
)

type windowCmd struct {
	*root
	fs    *flag.FlagSet
	title string
}

func (w *windowCmd) FlagSet() *flag.FlagSet { return w.fs }

func (w *windowCmd) Program() string { return w.root.program + " window" }

func parseWindowCmd(args []string, r *root) (*windowCmd, error) {
	fs := flag.NewFlagSet("window", flag.ContinueOnError)
	w := &windowCmd{root: r, fs: fs}
	fs.Usage = usageFunc(w)
	fs.StringVar(&w.title, "title", "", "window title")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: w}
	}
	return w, nil
}

func (w *windowCmd) Run() error {
	session, err := w.root.newSession(w.root.stderr)
	if err != nil {
		return err
	}
	title := w.title
	if title == "" {
		title = windowTitle(titleOptions{
			Width:    w.root.config.Canvas.Width,
			Height:   w.root.config.Canvas.Height,
			PenSize:  w.root.config.Canvas.PenSize,
			WhitePen: !w.root.config.Canvas.BlackPen,
			Theme:    w.root.activeTheme.Name,
		})
	}
	st := appstate.New(
		appstate.WithSession(session),
		appstate.WithTheme(w.root.activeTheme),
		appstate.WithTitle(title),
	)
	st.Run()
	return nil
}
