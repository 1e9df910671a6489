package main

import (
	"fmt"
	"strings"
)

const programTitle = "Sketchpad"

type titleOptions struct {
	Width    int
	Height   int
	PenSize  int
	WhitePen bool
	Theme    string
}

func windowTitle(opts titleOptions) string {
	parts := []string{programTitle}

	if opts.Width > 0 && opts.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	}
	if opts.PenSize > 0 {
		pen := fmt.Sprintf("pen %d", opts.PenSize)
		if opts.WhitePen {
			pen += " white"
		}
		parts = append(parts, pen)
	}
	if t := strings.TrimSpace(opts.Theme); t != "" && !strings.EqualFold(t, "default") {
		parts = append(parts, t)
	}
	return strings.Join(parts, " - ")
}
