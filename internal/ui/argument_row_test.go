package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/dlshell/internal/argv"
)

func newTestRow(t *testing.T, program string, args ...string) (*ArgumentRow, *argv.Editor, fyne.Window) {
	t.Helper()
	newTestApp()
	editor := argv.NewEditor(program)
	if err := editor.AddMany(args...); err != nil {
		t.Fatal(err)
	}
	row := NewArgumentRow(editor)
	w := test.NewWindow(row.Container())
	t.Cleanup(w.Close)
	return row, editor, w
}

func entryAt(t *testing.T, row *ArgumentRow, editor *argv.Editor, pos int) *TokenEntry {
	t.Helper()
	id, ok := editor.IDAt(pos)
	if !ok {
		t.Fatalf("no token at %d", pos)
	}
	entry, ok := row.Entry(id)
	if !ok {
		t.Fatalf("no entry for token at %d", pos)
	}
	return entry
}

func focusedEntry(t *testing.T, w fyne.Window) *TokenEntry {
	t.Helper()
	entry, ok := w.Canvas().Focused().(*TokenEntry)
	if !ok {
		t.Fatalf("expected a token entry in focus, got %T", w.Canvas().Focused())
	}
	return entry
}

func joined(editor *argv.Editor) string {
	return strings.Join(editor.Argv(), "|")
}

func TestArgumentRow_KeystrokeScenario(t *testing.T) {
	row, editor, w := newTestRow(t, "prog", "hello")

	hello := entryAt(t, row, editor, 1)
	w.Canvas().Focus(hello)
	hello.setCursor(5)

	test.Type(hello, " ")
	if joined(editor) != "prog|hello|" {
		t.Fatalf("expected split, got %v", editor.Argv())
	}
	if hello.Text != "hello" {
		t.Errorf("left half should drop the space, got %q", hello.Text)
	}

	world := focusedEntry(t, w)
	if world.ID() != editor.Tokens()[1].ID {
		t.Fatal("focus should move to the new token")
	}
	test.Type(world, "world")
	if joined(editor) != "prog|hello|world" {
		t.Fatalf("expected typed token, got %v", editor.Argv())
	}

	world.setCursor(0)
	world.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if joined(editor) != "prog|helloworld" {
		t.Fatalf("expected merge, got %v", editor.Argv())
	}

	merged := focusedEntry(t, w)
	if merged != hello {
		t.Error("merge should keep the previous entry")
	}
	if merged.Text != "helloworld" || merged.CursorColumn != 5 {
		t.Errorf("unexpected merged entry %q at %d", merged.Text, merged.CursorColumn)
	}
	if len(row.Container().Objects) != 2 {
		t.Errorf("expected program and one token, got %d objects", len(row.Container().Objects))
	}
}

func TestArgumentRow_EscapedSpace(t *testing.T) {
	row, editor, w := newTestRow(t, "prog", `my\`)

	entry := entryAt(t, row, editor, 1)
	w.Canvas().Focus(entry)
	entry.setCursor(3)
	test.Type(entry, " ")

	if joined(editor) != "prog|my " {
		t.Errorf("expected literal space in one token, got %q", editor.Argv())
	}
	if focusedEntry(t, w) != entry || entry.CursorColumn != 3 {
		t.Errorf("caret should stay after the literal space, got %d", entry.CursorColumn)
	}
}

func TestArgumentRow_BackspaceEmpty(t *testing.T) {
	row, editor, w := newTestRow(t, "prog", "a", "")

	empty := entryAt(t, row, editor, 2)
	w.Canvas().Focus(empty)
	empty.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	if joined(editor) != "prog|a" {
		t.Fatalf("expected empty token removed, got %v", editor.Argv())
	}
	prev := focusedEntry(t, w)
	if prev.Text != "a" || prev.CursorColumn != 1 {
		t.Errorf("expected caret at end of previous token, got %q at %d", prev.Text, prev.CursorColumn)
	}
}

func TestArgumentRow_ProgramField(t *testing.T) {
	row, editor, w := newTestRow(t, "prog")

	program := row.program
	w.Canvas().Focus(program)
	program.setCursor(4)

	test.Type(program, "x")
	program.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if program.Text != "prog" || editor.Len() != 1 {
		t.Fatalf("program field must not be editable, got %q / %v", program.Text, editor.Argv())
	}

	test.Type(program, " ")
	if joined(editor) != "prog|" {
		t.Fatalf("space at end of program should open a token, got %v", editor.Argv())
	}
	if focusedEntry(t, w).ID() != editor.Tokens()[0].ID {
		t.Error("focus should move to the first token")
	}
}

func TestArgumentRow_Arrows(t *testing.T) {
	row, editor, w := newTestRow(t, "prog", "one", "two")

	two := entryAt(t, row, editor, 2)
	w.Canvas().Focus(two)
	two.setCursor(0)
	two.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})

	one := focusedEntry(t, w)
	if one.Text != "one" || one.CursorColumn != 3 {
		t.Fatalf("expected caret at end of previous token, got %q at %d", one.Text, one.CursorColumn)
	}

	one.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if focusedEntry(t, w) != two {
		t.Error("arrow right at end should focus the next token")
	}
	if joined(editor) != "prog|one|two" {
		t.Errorf("arrows must not change data, got %v", editor.Argv())
	}
}

func TestArgumentRow_Locked(t *testing.T) {
	row, editor, _ := newTestRow(t, "prog", "a", "b")

	editor.Lock()
	row.Refresh()
	for _, token := range editor.Tokens() {
		entry, _ := row.Entry(token.ID)
		if !entry.Disabled() {
			t.Errorf("entry %q should be disabled while locked", token.Text)
		}
	}

	editor.Unlock()
	row.Refresh()
	for _, token := range editor.Tokens() {
		entry, _ := row.Entry(token.ID)
		if entry.Disabled() {
			t.Errorf("entry %q should be enabled again", token.Text)
		}
	}
}

func TestArgumentRow_ReusesEntries(t *testing.T) {
	row, editor, _ := newTestRow(t, "prog", "a")

	before := entryAt(t, row, editor, 1)
	if err := editor.Add("b"); err != nil {
		t.Fatal(err)
	}
	row.Refresh()

	if entryAt(t, row, editor, 1) != before {
		t.Error("surviving token should keep its entry")
	}
	if len(row.Container().Objects) != 3 {
		t.Errorf("expected 3 objects, got %d", len(row.Container().Objects))
	}
}

func TestArgumentRow_DefaultTheme(t *testing.T) {
	test.NewApp()
	editor := argv.NewEditor("youtube-dl")
	if err := editor.Add("-f"); err != nil {
		t.Fatal(err)
	}
	row := NewArgumentRow(editor)
	w := test.NewWindow(row.Container())
	defer w.Close()

	entry := entryAt(t, row, editor, 0)
	if entry.Text != "youtube-dl" {
		t.Errorf("expected program field, got %q", entry.Text)
	}
	if entry.TextStyle.Italic {
		t.Error("program field style should not depend on an italic monospace font")
	}
}
