package theme

import (
	"image/color"
)

// Theme defines the colors of the application chrome. The sketch itself is
// always drawn in the ink colors chosen by the pen polarity.
type Theme struct {
	Name string

	// Button bar and status line
	Background color.RGBA
	Foreground color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Save prompt
	PromptBackground color.RGBA
	PromptText       color.RGBA

	// Transient status messages
	MessageBackground color.RGBA
	MessageText       color.RGBA
	ErrorText         color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		PromptBackground:      color.RGBA{255, 255, 255, 255},
		PromptText:            color.RGBA{0, 0, 0, 255},
		MessageBackground:     color.RGBA{255, 255, 255, 230},
		MessageText:           color.RGBA{0, 0, 0, 255},
		ErrorText:             color.RGBA{192, 0, 0, 255},
	}
}
