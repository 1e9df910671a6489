package appstate

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/sketch"
)

// KeyShortcut is a key combination bound to an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

const (
	actionSave = "save"
	actionNew  = "new"
	actionCopy = "copy"
	actionQuit = "quit"
)

var keyboardAction = map[KeyShortcut]string{
	{Rune: 's', Modifiers: key.ModControl}: actionSave,
	{Rune: 'n', Modifiers: key.ModControl}: actionNew,
	{Rune: 'c', Modifiers: key.ModControl}: actionCopy,
	{Rune: 'q'}:                            actionQuit,
	{Rune: -1, Code: key.CodeEscape}:       actionQuit,
}

// shortcutFor maps a key press to an action name, or "" when unbound.
func shortcutFor(e key.Event) string {
	if e.Direction != key.DirPress {
		return ""
	}
	if e.Code == key.CodeEscape {
		return keyboardAction[KeyShortcut{Rune: -1, Code: key.CodeEscape}]
	}
	mods := e.Modifiers &^ key.ModShift
	r := unicode.ToLower(e.Rune)
	// some drivers deliver Ctrl+letter as the control character
	if mods&key.ModControl != 0 && r > 0 && r < 27 {
		r = 'a' + r - 1
	}
	return keyboardAction[KeyShortcut{Rune: r, Modifiers: mods}]
}

// sessionButton maps shiny mouse buttons to drawing buttons.
func sessionButton(b mouse.Button) sketch.Button {
	switch b {
	case mouse.ButtonLeft:
		return sketch.ButtonDraw
	case mouse.ButtonRight:
		return sketch.ButtonErase
	}
	return sketch.ButtonNone
}

type promptOutcome int

const (
	promptEditing promptOutcome = iota
	promptSubmit
	promptCancel
)

// textInput is a single line editor for the save prompt.
type textInput struct {
	active bool
	text   string
}

func (t *textInput) open(initial string) {
	t.active = true
	t.text = initial
}

func (t *textInput) close() {
	t.active = false
	t.text = ""
}

// handle applies a key press and reports whether the prompt finished.
func (t *textInput) handle(e key.Event) promptOutcome {
	if e.Direction != key.DirPress {
		return promptEditing
	}
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		return promptSubmit
	case key.CodeEscape:
		return promptCancel
	case key.CodeDeleteBackspace:
		if len(t.text) > 0 {
			_, size := utf8.DecodeLastRuneInString(t.text)
			t.text = t.text[:len(t.text)-size]
		}
		return promptEditing
	}
	if e.Modifiers&key.ModControl == 0 && e.Rune > 0 && unicode.IsPrint(e.Rune) {
		t.text += string(e.Rune)
	}
	return promptEditing
}
