package ui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// tokenKeys receives the keystrokes that can change the token structure.
// Each method reports whether the keystroke was consumed.
type tokenKeys interface {
	space(id uuid.UUID, text string, cursor int) bool
	backspace(id uuid.UUID, text string, cursor int) bool
	arrowLeft(id uuid.UUID, cursor int) bool
	arrowRight(id uuid.UUID, text string, cursor int) bool
	edited(id uuid.UUID, text string)
}

// TokenEntry is a single-line entry bound to one argv field
type TokenEntry struct {
	widget.Entry

	id       uuid.UUID
	keys     tokenKeys
	readOnly bool
}

// NewTokenEntry creates an entry for the token with the given identity
func NewTokenEntry(id uuid.UUID, text string, keys tokenKeys) *TokenEntry {
	e := &TokenEntry{id: id, keys: keys}
	e.ExtendBaseWidget(e)
	e.Text = text
	e.OnChanged = func(s string) {
		if !e.readOnly {
			e.keys.edited(e.id, s)
		}
	}
	return e
}

// newProgramEntry creates the read-only program field
func newProgramEntry(program string, keys tokenKeys) *TokenEntry {
	e := NewTokenEntry(uuid.Nil, program, keys)
	e.readOnly = true
	e.TextStyle = fyne.TextStyle{Monospace: true}
	return e
}

// ID returns the token identity
func (e *TokenEntry) ID() uuid.UUID {
	return e.id
}

// TypedRune applies the split rule after a space is inserted
func (e *TokenEntry) TypedRune(r rune) {
	if e.readOnly {
		if r == ' ' && e.atEnd() {
			e.keys.space(e.id, e.Text+" ", utf8.RuneCountInString(e.Text)+1)
		}
		return
	}

	e.Entry.TypedRune(r)
	if r == ' ' {
		e.keys.space(e.id, e.Text, e.CursorColumn)
	}
}

// TypedKey applies the merge and focus rules before the default handling
func (e *TokenEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace:
		if e.readOnly || e.keys.backspace(e.id, e.Text, e.CursorColumn) {
			return
		}
	case fyne.KeyDelete:
		if e.readOnly {
			return
		}
	case fyne.KeyLeft:
		if e.keys.arrowLeft(e.id, e.CursorColumn) {
			return
		}
	case fyne.KeyRight:
		if e.keys.arrowRight(e.id, e.Text, e.CursorColumn) {
			return
		}
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut blocks clipboard edits on the program field
func (e *TokenEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if e.readOnly {
		switch shortcut.(type) {
		case *fyne.ShortcutPaste, *fyne.ShortcutCut:
			return
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// setCursor moves the caret to column col
func (e *TokenEntry) setCursor(col int) {
	e.CursorRow = 0
	e.CursorColumn = col
	e.Refresh()
}

func (e *TokenEntry) atEnd() bool {
	return e.CursorColumn == utf8.RuneCountInString(e.Text)
}
