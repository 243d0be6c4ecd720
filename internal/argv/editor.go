package argv

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// EscapedSpace is the sequence that turns a space into a literal space
// inside the current token instead of starting a new one.
const EscapedSpace = `\ `

// ProgramID identifies the program field in focus results.
var ProgramID = uuid.Nil

// ErrLocked is returned when the list is edited while a session holds it
var ErrLocked = errors.New("arguments are locked while the program is running")

// Token is a single editable argv entry
type Token struct {
	ID   uuid.UUID
	Text string
}

// KeyResult describes how a keystroke was consumed.
// Handled means the widget must not apply its default behavior.
// When Refocus is set the view moves focus to the field identified by
// Focus and places the caret at Cursor (in runes).
type KeyResult struct {
	Handled bool
	Refocus bool
	Focus   uuid.UUID
	Cursor  int
}

// Editor holds the program identity and the mutable argument tokens.
// Positions in the keystroke API are argv positions: 0 is the program
// field, 1..n are tokens.
type Editor struct {
	program string
	tokens  []Token
	locked  bool
	newID   func() uuid.UUID
}

// NewEditor creates an editor with no arguments
func NewEditor(program string) *Editor {
	return &Editor{
		program: program,
		newID:   uuid.New,
	}
}

// Program returns the immutable program name
func (e *Editor) Program() string {
	return e.program
}

// Tokens returns a copy of the editable tokens
func (e *Editor) Tokens() []Token {
	out := make([]Token, len(e.tokens))
	copy(out, e.tokens)
	return out
}

// Args returns the argument vector without the program name
func (e *Editor) Args() []string {
	args := make([]string, len(e.tokens))
	for i, t := range e.tokens {
		args[i] = t.Text
	}
	return args
}

// Argv returns the program name followed by the arguments
func (e *Editor) Argv() []string {
	return append([]string{e.program}, e.Args()...)
}

// Len returns the argv length including the program field
func (e *Editor) Len() int {
	return len(e.tokens) + 1
}

// Lock freezes the token list
func (e *Editor) Lock() {
	e.locked = true
}

// Unlock makes the token list editable again
func (e *Editor) Unlock() {
	e.locked = false
}

// Locked reports whether edits are currently rejected
func (e *Editor) Locked() bool {
	return e.locked
}

// IDAt returns the identity of the field at argv position pos
func (e *Editor) IDAt(pos int) (uuid.UUID, bool) {
	if pos == 0 {
		return ProgramID, true
	}
	if pos < 1 || pos > len(e.tokens) {
		return uuid.Nil, false
	}
	return e.tokens[pos-1].ID, true
}

// TextAt returns the text of the field at argv position pos
func (e *Editor) TextAt(pos int) string {
	if pos == 0 {
		return e.program
	}
	if pos < 1 || pos > len(e.tokens) {
		return ""
	}
	return e.tokens[pos-1].Text
}

// PositionOf returns the argv position of the field with the given ID, or -1
func (e *Editor) PositionOf(id uuid.UUID) int {
	if id == ProgramID {
		return 0
	}
	for i, t := range e.tokens {
		if t.ID == id {
			return i + 1
		}
	}
	return -1
}

// Add appends one literal argument
func (e *Editor) Add(text string) error {
	return e.AddMany(text)
}

// AddMany appends several literal arguments in order
func (e *Editor) AddMany(texts ...string) error {
	if e.locked {
		return ErrLocked
	}
	if len(texts) == 0 {
		return nil
	}
	e.splice(len(e.tokens), 0, texts...)
	return nil
}

// Edit replaces the token at pos with new literal text.
// The program field is immutable and edits to it are ignored.
func (e *Editor) Edit(pos int, text string) bool {
	if e.locked || pos < 1 || pos > len(e.tokens) {
		return false
	}
	e.splice(pos-1, 1, text)
	return true
}

// Space applies the space rule after a space was typed into the field at
// pos. text is the field value including the typed space and cursor the
// caret column after typing.
func (e *Editor) Space(pos int, text string, cursor int) KeyResult {
	if e.locked || pos < 0 || pos > len(e.tokens) {
		return KeyResult{}
	}
	if cursor != utf8.RuneCountInString(text) || !strings.HasSuffix(text, " ") {
		return KeyResult{}
	}

	if pos == 0 {
		e.splice(0, 0, "")
		return KeyResult{Handled: true, Refocus: true, Focus: e.tokens[0].ID}
	}

	if strings.HasSuffix(text, EscapedSpace) {
		collapsed := strings.TrimSuffix(text, EscapedSpace) + " "
		e.splice(pos-1, 1, collapsed)
		return KeyResult{
			Handled: true,
			Refocus: true,
			Focus:   e.tokens[pos-1].ID,
			Cursor:  utf8.RuneCountInString(collapsed),
		}
	}

	e.splice(pos-1, 1, strings.TrimSuffix(text, " "), "")
	return KeyResult{Handled: true, Refocus: true, Focus: e.tokens[pos].ID}
}

// Backspace applies the backspace rules before the widget deletes anything.
// text is the current field value and cursor the caret column.
func (e *Editor) Backspace(pos int, text string, cursor int) KeyResult {
	if e.locked || pos < 1 || pos > len(e.tokens) {
		return KeyResult{}
	}

	if text == "" {
		e.splice(pos-1, 1)
		focus, _ := e.IDAt(pos - 1)
		return KeyResult{
			Handled: true,
			Refocus: true,
			Focus:   focus,
			Cursor:  utf8.RuneCountInString(e.TextAt(pos - 1)),
		}
	}

	if cursor == 0 && pos > 1 {
		prev := e.tokens[pos-2].Text
		e.splice(pos-2, 2, prev+text)
		return KeyResult{
			Handled: true,
			Refocus: true,
			Focus:   e.tokens[pos-2].ID,
			Cursor:  utf8.RuneCountInString(prev),
		}
	}

	return KeyResult{}
}

// ArrowLeft moves focus to the previous field when the caret is at the start
func (e *Editor) ArrowLeft(pos int, cursor int) KeyResult {
	if cursor != 0 || pos < 1 || pos > len(e.tokens) {
		return KeyResult{}
	}
	focus, _ := e.IDAt(pos - 1)
	return KeyResult{
		Handled: true,
		Refocus: true,
		Focus:   focus,
		Cursor:  utf8.RuneCountInString(e.TextAt(pos - 1)),
	}
}

// ArrowRight moves focus to the next field when the caret is at the end
func (e *Editor) ArrowRight(pos int, text string, cursor int) KeyResult {
	if cursor != utf8.RuneCountInString(text) || pos < 0 || pos >= len(e.tokens) {
		return KeyResult{}
	}
	focus, _ := e.IDAt(pos + 1)
	return KeyResult{Handled: true, Refocus: true, Focus: focus}
}

// splice removes d tokens at index p and inserts add in their place.
// Inserted tokens inherit the IDs of removed ones positionally; any extra
// insertions get fresh IDs. It is the only mutator of the token list.
func (e *Editor) splice(p, d int, add ...string) {
	if p < 0 {
		p = 0
	}
	if p > len(e.tokens) {
		p = len(e.tokens)
	}
	if d < 0 {
		d = 0
	}
	if p+d > len(e.tokens) {
		d = len(e.tokens) - p
	}

	removed := e.tokens[p : p+d]
	replacement := make([]Token, len(add))
	for i, text := range add {
		id := e.newID()
		if i < len(removed) {
			id = removed[i].ID
		}
		replacement[i] = Token{ID: id, Text: text}
	}

	next := make([]Token, 0, len(e.tokens)-d+len(add))
	next = append(next, e.tokens[:p]...)
	next = append(next, replacement...)
	next = append(next, e.tokens[p+d:]...)
	e.tokens = next
}
