package main

import (
	"flag"
	"io"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/tui"
)

type termCmd struct {
	*root
	fs *flag.FlagSet
}

func (t *termCmd) FlagSet() *flag.FlagSet { return t.fs }

func (t *termCmd) Program() string { return t.root.program + " term" }

func parseTermCmd(args []string, r *root) (*termCmd, error) {
	fs := flag.NewFlagSet("term", flag.ContinueOnError)
	t := &termCmd{root: r, fs: fs}
	fs.Usage = usageFunc(t)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: t}
	}
	return t, nil
}

// session logs nowhere: tcell owns the terminal while the app runs.
func (t *termCmd) session() (*sketch.Session, error) {
	return t.root.newSession(io.Discard)
}

func (t *termCmd) Run() error {
	session, err := t.session()
	if err != nil {
		return err
	}
	return tui.New(nil, session, tui.WithTheme(t.root.activeTheme)).Run()
}
