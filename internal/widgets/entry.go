package widgets

import (
	"github.com/atomicstack/hintnav/internal/widget"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// DefaultEntryWidth is the input width used when none is set.
const DefaultEntryWidth = 24

// TextEntry is a single-line text field backed by a bubbles textinput.
type TextEntry struct {
	base
	Text  string
	input textinput.Model
}

// NewTextEntry returns an entry labelled text. The placeholder is shown while
// the value is empty.
func NewTextEntry(id, text, placeholder string) *TextEntry {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = DefaultEntryWidth
	ti.Prompt = ""
	ti.TextStyle = styles.Entry.Copy()
	ti.PlaceholderStyle = styles.Placeholder.Copy()
	ti.Cursor.Style = styles.Cursor.Copy()
	return &TextEntry{base: newBase(id, widget.TextEntry), Text: text, input: ti}
}

func (e *TextEntry) Caption() string { return e.Text }

// Value returns the entered text.
func (e *TextEntry) Value() string { return e.input.Value() }

// SetValue replaces the entered text and moves the cursor to the end.
func (e *TextEntry) SetValue(v string) {
	e.input.SetValue(v)
	e.input.CursorEnd()
}

// Focused reports whether the entry currently owns the text cursor.
func (e *TextEntry) Focused() bool { return e.input.Focused() }

// SetBlink switches the text cursor between blinking and steady.
func (e *TextEntry) SetBlink(on bool) tea.Cmd {
	if on {
		return e.input.Cursor.SetMode(cursor.CursorBlink)
	}
	return e.input.Cursor.SetMode(cursor.CursorStatic)
}

func (e *TextEntry) Focus() tea.Cmd {
	return e.input.Focus()
}

func (e *TextEntry) Blur() {
	e.input.Blur()
}

// HandleKey feeds typing to the input. Tab and Escape are left to the window.
func (e *TextEntry) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyEsc, tea.KeyEnter, tea.KeyUp, tea.KeyDown:
		return false, nil
	}
	if e.usable() != nil {
		return false, nil
	}
	updated, cmd := e.input.Update(msg)
	e.input = updated
	return true, cmd
}

// Update forwards non-key messages such as cursor blinks.
func (e *TextEntry) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := e.input.Update(msg)
	e.input = updated
	return cmd
}

func (e *TextEntry) labelWidth() int {
	if e.Text == "" {
		return 0
	}
	return runewidth.StringWidth(e.Text) + 2
}

func (e *TextEntry) Measure(maxWidth int) (int, int) {
	w := e.labelWidth() + e.input.Width + 1
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w, 1
}

func (e *TextEntry) Render(focused widget.Widget) string {
	label := ""
	if e.Text != "" {
		label = styles.EntryPrompt.Render(e.Text+":") + " "
	}
	return label + e.input.View()
}
