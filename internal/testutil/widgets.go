// Package testutil provides an in-memory widget tree and host for exercising
// the navigation core without a terminal.
package testutil

import (
	"fmt"
	"time"

	"github.com/atomicstack/hintnav/internal/widget"
)

// Fake is a configurable widget. Every behaviour interface is implemented;
// the capability tags decide which ones the core uses.
type Fake struct {
	Name      string
	Caps      widget.Capability
	Hidden    bool
	Disabled  bool
	Destroyed bool
	Rect      widget.Rect
	Text      string
	Kids      []*Fake

	Value   bool
	Clicks  int
	Changes int
	Selects int

	Rows        []int
	RowHeight   int
	SelectedRow int
	Activated   []int
	StaleRows   map[int]bool
	RowText     map[int]string
}

var (
	_ widget.Widget        = (*Fake)(nil)
	_ widget.Clicker       = (*Fake)(nil)
	_ widget.Toggler       = (*Fake)(nil)
	_ widget.RadioSelector = (*Fake)(nil)
	_ widget.Rows          = (*Fake)(nil)
	_ widget.Captioned     = (*Fake)(nil)
	_ widget.RowCaptioned  = (*Fake)(nil)
)

func (f *Fake) ID() string                      { return f.Name }
func (f *Fake) Capabilities() widget.Capability { return f.Caps }
func (f *Fake) Shown() bool                     { return !f.Hidden && !f.Destroyed }
func (f *Fake) Enabled() bool                   { return !f.Disabled }
func (f *Fake) Caption() string                 { return f.Text }

func (f *Fake) Children() []widget.Widget {
	out := make([]widget.Widget, len(f.Kids))
	for i, k := range f.Kids {
		out[i] = k
	}
	return out
}

func (f *Fake) ScreenRect() (widget.Rect, error) {
	if f.Destroyed {
		return widget.Rect{}, widget.ErrStale
	}
	return f.Rect, nil
}

func (f *Fake) Click() error {
	if f.Destroyed {
		return widget.ErrStale
	}
	f.Clicks++
	return nil
}

func (f *Fake) Checked() bool { return f.Value }

func (f *Fake) SetChecked(v bool) error {
	if f.Destroyed {
		return widget.ErrStale
	}
	f.Value = v
	return nil
}

func (f *Fake) NotifyChange() error {
	f.Changes++
	return nil
}

func (f *Fake) SetSelected() error {
	if f.Destroyed {
		return widget.ErrStale
	}
	f.Value = true
	return nil
}

func (f *Fake) NotifySelect() error {
	f.Selects++
	return nil
}

func (f *Fake) VisibleRows() []int {
	return append([]int(nil), f.Rows...)
}

func (f *Fake) RowRect(row int) (widget.Rect, error) {
	if f.Destroyed || f.StaleRows[row] {
		return widget.Rect{}, widget.ErrStale
	}
	h := f.RowHeight
	if h <= 0 {
		h = 1
	}
	for i, r := range f.Rows {
		if r == row {
			return widget.Rect{X: 0, Y: i * h, W: f.Rect.W, H: h}, nil
		}
	}
	return widget.Rect{}, fmt.Errorf("row %d: %w", row, widget.ErrStale)
}

func (f *Fake) RowCaption(row int) string {
	return f.RowText[row]
}

func (f *Fake) SelectRow(row int) error {
	if f.Destroyed {
		return widget.ErrStale
	}
	f.SelectedRow = row
	return nil
}

func (f *Fake) ActivateRow(row int) error {
	if f.Destroyed {
		return widget.ErrStale
	}
	f.Activated = append(f.Activated, row)
	return nil
}

// Panel returns a plain container.
func Panel(name string, kids ...*Fake) *Fake {
	return &Fake{Name: name, Kids: kids}
}

func Button(name string) *Fake {
	return &Fake{Name: name, Text: name, Caps: widget.Clickable}
}

func Checkbox(name string) *Fake {
	return &Fake{Name: name, Text: name, Caps: widget.Toggle}
}

func Radio(name string) *Fake {
	return &Fake{Name: name, Text: name, Caps: widget.Selectable}
}

func TextBox(name string) *Fake {
	return &Fake{Name: name, Caps: widget.TextEntry}
}

func Choice(name string) *Fake {
	return &Fake{Name: name, Text: name, Caps: widget.Focusable}
}

// List returns a row container with the given materialized rows.
func List(name string, rows ...int) *Fake {
	return &Fake{Name: name, Caps: widget.RowContainer | widget.Focusable, Rows: rows, SelectedRow: -1}
}

// Stack lays widgets out one per line starting at y, recursing into
// children, so every fake has a distinct rectangle.
func Stack(root *Fake, x, y int) int {
	root.Rect = widget.Rect{X: x, Y: y, W: 20, H: 1}
	if len(root.Rows) > 0 {
		h := root.RowHeight
		if h <= 0 {
			h = 1
		}
		root.Rect.H = len(root.Rows) * h
	}
	next := y + root.Rect.H
	for _, k := range root.Kids {
		next = Stack(k, x+1, next)
	}
	return next
}

// Marker records overlay state for assertions.
type Marker struct {
	Text      string
	At        widget.Rect
	visible   bool
	Destroyed bool
}

func (m *Marker) Show()         { m.visible = true }
func (m *Marker) Hide()         { m.visible = false }
func (m *Marker) Visible() bool { return m.visible && !m.Destroyed }
func (m *Marker) Destroy()      { m.Destroyed = true }

type task struct {
	delay time.Duration
	fn    func()
}

// Delay is the delay the task was scheduled with.
func (t task) Delay() time.Duration { return t.delay }

// Host is an in-memory widget.Host.
type Host struct {
	Window   *Fake
	Focus    widget.Widget
	Markers  []*Marker
	Status   [2]string
	Pending  []task
	FailMark map[string]bool
}

// NewHost wraps root as the window. The window origin is root's rectangle.
func NewHost(root *Fake) *Host {
	return &Host{Window: root}
}

func (h *Host) Root() widget.Widget {
	return h.Window
}

func (h *Host) Focused() widget.Widget {
	return h.Focus
}

func (h *Host) SetFocus(w widget.Widget) error {
	if f, ok := w.(*Fake); ok && f.Destroyed {
		return widget.ErrStale
	}
	h.Focus = w
	return nil
}

func (h *Host) NewMarker(text string, at widget.Rect) (widget.Marker, error) {
	if h.FailMark[text] {
		return nil, fmt.Errorf("marker %s: %w", text, widget.ErrStale)
	}
	m := &Marker{Text: text, At: at, visible: true}
	h.Markers = append(h.Markers, m)
	return m, nil
}

func (h *Host) SetStatus(field int, text string) {
	if field >= 0 && field < len(h.Status) {
		h.Status[field] = text
	}
}

func (h *Host) After(delay time.Duration, fn func()) {
	h.Pending = append(h.Pending, task{delay: delay, fn: fn})
}

// RunPending executes scheduled tasks in order and reports how many ran.
func (h *Host) RunPending() int {
	tasks := h.Pending
	h.Pending = nil
	for _, t := range tasks {
		t.fn()
	}
	return len(tasks)
}

// LiveMarkers returns markers that have not been destroyed.
func (h *Host) LiveMarkers() []*Marker {
	out := make([]*Marker, 0, len(h.Markers))
	for _, m := range h.Markers {
		if !m.Destroyed {
			out = append(out, m)
		}
	}
	return out
}

// VisibleTexts returns the labels of visible markers in creation order.
func (h *Host) VisibleTexts() []string {
	out := make([]string, 0, len(h.Markers))
	for _, m := range h.Markers {
		if m.Visible() {
			out = append(out, m.Text)
		}
	}
	return out
}
