package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dlshell/internal/session"
)

// keySequences maps named keys to the bytes a terminal sends for them
var keySequences = map[fyne.KeyName]string{
	fyne.KeyReturn:    "\r",
	fyne.KeyEnter:     "\r",
	fyne.KeyBackspace: "\x7f",
	fyne.KeyTab:       "\t",
	fyne.KeyEscape:    "\x1b",
	fyne.KeyUp:        "\x1b[A",
	fyne.KeyDown:      "\x1b[B",
	fyne.KeyRight:     "\x1b[C",
	fyne.KeyLeft:      "\x1b[D",
	fyne.KeyHome:      "\x1b[H",
	fyne.KeyEnd:       "\x1b[F",
	fyne.KeyDelete:    "\x1b[3~",
	fyne.KeyPageUp:    "\x1b[5~",
	fyne.KeyPageDown:  "\x1b[6~",
}

// Terminal renders child output and turns keyboard events into input bytes
type Terminal struct {
	widget.BaseWidget

	grid   *widget.TextGrid
	scroll *container.Scroll

	mu       sync.Mutex
	buffer   *screenBuffer
	input    func([]byte)
	rows     int
	cols     int
	onResize func(rows, cols int)
}

var (
	_ session.Terminal = (*Terminal)(nil)
	_ fyne.Widget      = (*Terminal)(nil)
)

// NewTerminal creates an empty terminal widget
func NewTerminal() *Terminal {
	t := &Terminal{
		grid:   widget.NewTextGrid(),
		buffer: newScreenBuffer(TerminalMaxLines),
	}
	t.scroll = container.NewVScroll(t.grid)
	t.ExtendBaseWidget(t)
	return t
}

// SetOnResize registers a callback for geometry changes
func (t *Terminal) SetOnResize(callback func(rows, cols int)) {
	t.mu.Lock()
	t.onResize = callback
	t.mu.Unlock()
}

// Write renders child output. It is safe to call from any goroutine.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	t.buffer.Write(p)
	text := t.buffer.Text()
	t.mu.Unlock()

	fyne.Do(func() {
		t.grid.SetText(text)
		t.scroll.ScrollToBottom()
	})
	return len(p), nil
}

// Geometry reports the size in character cells
func (t *Terminal) Geometry() (rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows, t.cols
}

// OnInput registers the handler receiving typed bytes
func (t *Terminal) OnInput(handler func(data []byte)) {
	t.mu.Lock()
	t.input = handler
	t.mu.Unlock()
}

// Reset clears output and detaches the input handler
func (t *Terminal) Reset() {
	t.mu.Lock()
	t.buffer.Reset()
	t.input = nil
	t.mu.Unlock()
	t.grid.SetText("")
}

// Text returns the rendered output
func (t *Terminal) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer.Text()
}

// Resize recomputes the cell geometry
func (t *Terminal) Resize(size fyne.Size) {
	t.BaseWidget.Resize(size)

	cell := cellSize()
	rows, cols := int(size.Height/cell.Height), int(size.Width/cell.Width)
	if rows <= 0 || cols <= 0 {
		return
	}

	t.mu.Lock()
	changed := rows != t.rows || cols != t.cols
	t.rows, t.cols = rows, cols
	callback := t.onResize
	t.mu.Unlock()

	if changed && callback != nil {
		callback(rows, cols)
	}
}

// MinSize keeps room for a usable number of cells
func (t *Terminal) MinSize() fyne.Size {
	cell := cellSize()
	return fyne.NewSize(cell.Width*TerminalMinCols, cell.Height*TerminalMinRows)
}

// CreateRenderer creates the widget renderer
func (t *Terminal) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(ColorNameTerminalBackground))
	return widget.NewSimpleRenderer(container.NewStack(background, t.scroll))
}

// Tapped focuses the terminal
func (t *Terminal) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(t); c != nil {
		c.Focus(t)
	}
}

// FocusGained implements fyne.Focusable
func (t *Terminal) FocusGained() {}

// FocusLost implements fyne.Focusable
func (t *Terminal) FocusLost() {}

// TypedRune sends a printable character
func (t *Terminal) TypedRune(r rune) {
	t.send(string(r))
}

// TypedKey sends the sequence for a named key
func (t *Terminal) TypedKey(event *fyne.KeyEvent) {
	if seq, ok := keySequences[event.Name]; ok {
		t.send(seq)
	}
}

// TypedShortcut maps copy to an interrupt, paste to clipboard text and
// control combinations to control characters
func (t *Terminal) TypedShortcut(shortcut fyne.Shortcut) {
	switch s := shortcut.(type) {
	case *fyne.ShortcutCopy:
		t.send("\x03")
	case *fyne.ShortcutPaste:
		if s.Clipboard != nil {
			t.send(s.Clipboard.Content())
		}
	case *desktop.CustomShortcut:
		if seq := controlSequence(s); seq != "" {
			t.send(seq)
		}
	}
}

func (t *Terminal) send(s string) {
	t.mu.Lock()
	handler := t.input
	t.mu.Unlock()
	if handler != nil && s != "" {
		handler([]byte(s))
	}
}

// controlSequence returns the control character for Ctrl+letter
func controlSequence(s *desktop.CustomShortcut) string {
	if s.Modifier != fyne.KeyModifierControl || len(s.KeyName) != 1 {
		return ""
	}
	c := s.KeyName[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return ""
	}
	return string(rune(c - 'A' + 1))
}

// cellSize measures one monospace character cell
func cellSize() fyne.Size {
	return fyne.MeasureText(TerminalCellText, theme.TextSize(), fyne.TextStyle{Monospace: true})
}
