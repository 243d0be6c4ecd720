package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/google/uuid"

	"github.com/ytget/dlshell/internal/argv"
)

// ArgumentRow renders the program field followed by one entry per token.
// Entries are keyed by token ID so an edit never rebuilds the entry being
// typed into.
type ArgumentRow struct {
	editor  *argv.Editor
	program *TokenEntry
	entries map[uuid.UUID]*TokenEntry
	box     *fyne.Container

	// onChange is called after the token list changed
	onChange func()
}

// NewArgumentRow creates a row over editor
func NewArgumentRow(editor *argv.Editor) *ArgumentRow {
	r := &ArgumentRow{
		editor:  editor,
		entries: make(map[uuid.UUID]*TokenEntry),
		box:     container.New(layout.NewGridWrapLayout(fyne.NewSize(TokenWidth, tokenHeight()))),
	}
	r.program = newProgramEntry(editor.Program(), r)
	r.Refresh()
	return r
}

// SetOnChange registers the structural change callback
func (r *ArgumentRow) SetOnChange(callback func()) {
	r.onChange = callback
}

// Container returns the row's canvas object
func (r *ArgumentRow) Container() *fyne.Container {
	return r.box
}

// Entry returns the entry rendering the field with id
func (r *ArgumentRow) Entry(id uuid.UUID) (*TokenEntry, bool) {
	if id == argv.ProgramID {
		return r.program, true
	}
	e, ok := r.entries[id]
	return e, ok
}

// Refresh syncs entries with the editor, reusing entries whose token survived
func (r *ArgumentRow) Refresh() {
	tokens := r.editor.Tokens()
	locked := r.editor.Locked()

	objects := make([]fyne.CanvasObject, 0, len(tokens)+1)
	objects = append(objects, r.program)

	seen := make(map[uuid.UUID]bool, len(tokens))
	for _, token := range tokens {
		seen[token.ID] = true
		entry, ok := r.entries[token.ID]
		if !ok {
			entry = NewTokenEntry(token.ID, token.Text, r)
			r.entries[token.ID] = entry
		} else if entry.Text != token.Text {
			entry.SetText(token.Text)
		}
		if locked {
			entry.Disable()
		} else {
			entry.Enable()
		}
		objects = append(objects, entry)
	}
	for id := range r.entries {
		if !seen[id] {
			delete(r.entries, id)
		}
	}

	r.box.Objects = objects
	r.box.Refresh()
}

func (r *ArgumentRow) space(id uuid.UUID, text string, cursor int) bool {
	return r.apply(r.editor.Space(r.editor.PositionOf(id), text, cursor))
}

func (r *ArgumentRow) backspace(id uuid.UUID, text string, cursor int) bool {
	return r.apply(r.editor.Backspace(r.editor.PositionOf(id), text, cursor))
}

func (r *ArgumentRow) arrowLeft(id uuid.UUID, cursor int) bool {
	return r.apply(r.editor.ArrowLeft(r.editor.PositionOf(id), cursor))
}

func (r *ArgumentRow) arrowRight(id uuid.UUID, text string, cursor int) bool {
	return r.apply(r.editor.ArrowRight(r.editor.PositionOf(id), text, cursor))
}

func (r *ArgumentRow) edited(id uuid.UUID, text string) {
	pos := r.editor.PositionOf(id)
	if pos < 1 || r.editor.TextAt(pos) == text {
		return
	}
	r.editor.Edit(pos, text)
}

// apply rebuilds the row and moves focus as the key result asks
func (r *ArgumentRow) apply(res argv.KeyResult) bool {
	if !res.Handled {
		return false
	}
	r.Refresh()
	if r.onChange != nil {
		r.onChange()
	}
	if !res.Refocus {
		return true
	}

	entry, ok := r.Entry(res.Focus)
	if !ok {
		return true
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(r.box); c != nil {
		c.Focus(entry)
	}
	entry.setCursor(res.Cursor)
	return true
}

// tokenHeight is the height of a single-line entry
func tokenHeight() float32 {
	return NewTokenEntry(uuid.Nil, "", nil).MinSize().Height
}
