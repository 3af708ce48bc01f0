package widgets

import (
	"fmt"
	"strings"

	"github.com/atomicstack/hintnav/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// StatusFields is the number of status bar fields.
const StatusFields = 2

// Marker is an overlay panel drawn on top of the window. Its rectangle is
// relative to the window's top-left corner.
type Marker struct {
	Text      string
	At        widget.Rect
	visible   bool
	destroyed bool
}

func (m *Marker) Show()         { m.visible = true }
func (m *Marker) Hide()         { m.visible = false }
func (m *Marker) Visible() bool { return m.visible && !m.destroyed }
func (m *Marker) Destroy()      { m.destroyed = true }

// Screen hosts one window: it owns focus, the marker layer and the status
// bar, and renders them into a single frame.
type Screen struct {
	window  *Window
	focus   Element
	markers []*Marker
	status  [StatusFields]string
	width   int
	height  int
	top     int
	pending []tea.Cmd
}

// NewScreen hosts window. top is the number of rows reserved above it.
func NewScreen(window *Window, top int) *Screen {
	return &Screen{window: window, top: top}
}

// Window returns the hosted window.
func (s *Screen) Window() *Window { return s.window }

func (s *Screen) Root() widget.Widget {
	if s.window == nil {
		return nil
	}
	return s.window
}

// Resize lays the window out in a width by height frame, leaving the
// reserved top rows and bottom rows free.
func (s *Screen) Resize(width, height, bottom int) {
	s.width, s.height = width, height
	if s.window == nil {
		return
	}
	h := height - s.top - bottom
	if h < 2 {
		h = 2
	}
	s.window.Layout(widget.Rect{X: 0, Y: s.top, W: width, H: h})
}

// Relayout repeats the last layout, picking up tree changes.
func (s *Screen) Relayout(bottom int) {
	s.Resize(s.width, s.height, bottom)
}

func (s *Screen) Focused() widget.Widget {
	if s.focus == nil {
		return nil
	}
	return s.focus
}

// FocusedElement returns the focus owner as a toolkit element.
func (s *Screen) FocusedElement() Element {
	return s.focus
}

// SetFocus moves focus to w, which must be a live element of the window.
func (s *Screen) SetFocus(w widget.Widget) error {
	target := s.find(w)
	if target == nil {
		return fmt.Errorf("focus: %w", widget.ErrStale)
	}
	if !target.Shown() || !target.Enabled() {
		return fmt.Errorf("focus %s: %w", target.ID(), widget.ErrStale)
	}
	if target == s.focus {
		return nil
	}
	if f, ok := s.focus.(Focuser); ok {
		f.Blur()
	}
	s.focus = target
	if f, ok := target.(Focuser); ok {
		if cmd := f.Focus(); cmd != nil {
			s.pending = append(s.pending, cmd)
		}
	}
	return nil
}

// ClearFocus leaves no element focused.
func (s *Screen) ClearFocus() {
	if f, ok := s.focus.(Focuser); ok {
		f.Blur()
	}
	s.focus = nil
}

// TakeCmds returns and clears commands produced by focus changes.
func (s *Screen) TakeCmds() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}

func (s *Screen) find(w widget.Widget) Element {
	if w == nil {
		return nil
	}
	var found Element
	s.Walk(func(e Element) bool {
		if widget.Widget(e) == w {
			found = e
			return false
		}
		return true
	})
	return found
}

// Walk visits shown elements in pre-order until visit returns false.
func (s *Screen) Walk(visit func(Element) bool) {
	if s.window == nil {
		return
	}
	var rec func(e Element) bool
	rec = func(e Element) bool {
		if !e.Shown() {
			return true
		}
		if !visit(e) {
			return false
		}
		for _, child := range e.Children() {
			if ce, ok := child.(Element); ok {
				if !rec(ce) {
					return false
				}
			}
		}
		return true
	}
	rec(s.window)
}

const tabStops = widget.TextEntry | widget.Clickable | widget.Toggle | widget.Selectable | widget.Focusable | widget.RowContainer

// FocusNext moves focus delta steps through the interactive elements in
// traversal order, wrapping around.
func (s *Screen) FocusNext(delta int) bool {
	stops := make([]Element, 0, 16)
	s.Walk(func(e Element) bool {
		if e.Enabled() && e.Capabilities().Any(tabStops) {
			stops = append(stops, e)
		}
		return true
	})
	if len(stops) == 0 {
		return false
	}
	current := -1
	for i, e := range stops {
		if e == s.focus {
			current = i
			break
		}
	}
	next := 0
	switch {
	case current >= 0:
		next = ((current+delta)%len(stops) + len(stops)) % len(stops)
	case delta < 0:
		next = len(stops) - 1
	}
	return s.SetFocus(stops[next]) == nil
}

// HandleKey delivers msg to the focused element.
func (s *Screen) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if s.focus == nil || !s.focus.Shown() || !s.focus.Enabled() {
		return false, nil
	}
	h, ok := s.focus.(KeyHandler)
	if !ok {
		return false, nil
	}
	return h.HandleKey(msg)
}

// NewMarker places a marker relative to the window. Markers that would fall
// outside the window are refused.
func (s *Screen) NewMarker(text string, at widget.Rect) (widget.Marker, error) {
	if s.window == nil {
		return nil, fmt.Errorf("marker %s: %w", text, widget.ErrStale)
	}
	win, err := s.window.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("marker %s: %w", text, err)
	}
	if at.X < 0 || at.Y < 0 || at.X >= win.W || at.Y >= win.H {
		return nil, fmt.Errorf("marker %s at %d,%d outside window: %w", text, at.X, at.Y, widget.ErrStale)
	}
	s.prune()
	m := &Marker{Text: text, At: at}
	s.markers = append(s.markers, m)
	return m, nil
}

func (s *Screen) prune() {
	live := s.markers[:0]
	for _, m := range s.markers {
		if !m.destroyed {
			live = append(live, m)
		}
	}
	s.markers = live
}

// Markers returns the live markers in creation order.
func (s *Screen) Markers() []*Marker {
	s.prune()
	return append([]*Marker(nil), s.markers...)
}

func (s *Screen) SetStatus(field int, text string) {
	if field >= 0 && field < StatusFields {
		s.status[field] = text
	}
}

// Status returns the text of a status field.
func (s *Screen) Status(field int) string {
	if field < 0 || field >= StatusFields {
		return ""
	}
	return s.status[field]
}

// Render draws header rows, the window with its markers and the status bar,
// followed by any footer lines.
func (s *Screen) Render(header []string, footer []string) string {
	lines := make([]string, 0, s.height)
	for i := 0; i < s.top; i++ {
		text := ""
		if i < len(header) {
			text = header[i]
		}
		lines = append(lines, padLine(text, s.width))
	}
	if s.window != nil {
		if r, err := s.window.ScreenRect(); err == nil {
			block := strings.Split(fit(s.window.Render(s.Focused()), r.W, r.H), "\n")
			lines = append(lines, Composite(block, s.Markers(), r.X)...)
		}
	}
	lines = append(lines, footer...)
	lines = append(lines, s.statusLine())
	return strings.Join(lines, "\n")
}

func (s *Screen) statusLine() string {
	right := s.status[1]
	rw := ansi.StringWidth(right)
	space := s.width - rw - 1
	left := s.status[0]
	if space < 0 {
		space = 0
	}
	if ansi.StringWidth(left) > space {
		left = truncate.StringWithTail(left, uint(space), ellipsis)
	}
	gap := s.width - ansi.StringWidth(left) - rw
	if gap < 0 {
		gap = 0
	}
	out := styles.Status.Render(left) + strings.Repeat(" ", gap)
	if right != "" {
		out += styles.StatusMode.Render(right)
	}
	return out
}

// Composite draws visible markers over the lines of a window block. Marker
// positions are window-relative; originX is the window's screen column.
func Composite(lines []string, markers []*Marker, originX int) []string {
	out := append([]string(nil), lines...)
	for _, m := range markers {
		if !m.Visible() || m.At.Y < 0 || m.At.Y >= len(out) {
			continue
		}
		label := " " + strings.ToUpper(m.Text) + " "
		if m.At.W > 0 && ansi.StringWidth(label) > m.At.W {
			label = ansi.Truncate(label, m.At.W, "")
		}
		col := originX + m.At.X
		line := out[m.At.Y]
		if w := ansi.StringWidth(line); w < col {
			line += strings.Repeat(" ", col-w)
		}
		lw := ansi.StringWidth(label)
		out[m.At.Y] = ansi.Truncate(line, col, "") + styles.HintLabel.Render(label) + ansi.TruncateLeft(line, col+lw, "")
	}
	return out
}
