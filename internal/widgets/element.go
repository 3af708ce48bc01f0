// Package widgets is a small retained-mode terminal toolkit: a window of
// nested panels and controls that lays itself out in cells, renders through
// Lip Gloss, and exposes every node through the navigation adapter in
// internal/widget.
package widgets

import (
	"strings"

	"github.com/atomicstack/hintnav/internal/theme"
	"github.com/atomicstack/hintnav/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var styles = theme.Default()

// Element is a node of the toolkit tree.
type Element interface {
	widget.Widget
	// Measure returns the preferred size when at most maxWidth cells are
	// available.
	Measure(maxWidth int) (w, h int)
	// Layout records the screen rectangle assigned to the element.
	Layout(r widget.Rect)
	// Render draws the element; focused is the window's focus owner.
	Render(focused widget.Widget) string
}

// KeyHandler is implemented by elements that react to keys while focused.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
}

// Focuser is implemented by elements that track focus themselves.
type Focuser interface {
	Focus() tea.Cmd
	Blur()
}

type base struct {
	id        string
	caps      widget.Capability
	hidden    bool
	disabled  bool
	destroyed bool
	placed    bool
	rect      widget.Rect
}

func newBase(id string, caps widget.Capability) base {
	return base{id: id, caps: caps}
}

func (b *base) ID() string                      { return b.id }
func (b *base) Capabilities() widget.Capability { return b.caps }
func (b *base) Shown() bool                     { return !b.hidden && !b.destroyed }
func (b *base) Enabled() bool                   { return !b.disabled }
func (b *base) Children() []widget.Widget       { return nil }

func (b *base) ScreenRect() (widget.Rect, error) {
	if b.destroyed || !b.placed {
		return widget.Rect{}, widget.ErrStale
	}
	return b.rect, nil
}

func (b *base) Layout(r widget.Rect) {
	b.rect = r
	b.placed = true
}

// SetHidden hides or shows the element. Hidden elements take no space.
func (b *base) SetHidden(hidden bool) { b.hidden = hidden }

// SetEnabled enables or disables the element.
func (b *base) SetEnabled(enabled bool) { b.disabled = !enabled }

// Destroy detaches the element for good; every later query reports stale.
func (b *base) Destroy() {
	b.destroyed = true
	b.placed = false
}

func (b *base) usable() error {
	if b.destroyed || b.hidden || b.disabled {
		return widget.ErrStale
	}
	return nil
}

// controlStyle picks the style for an interactive element.
func controlStyle(b *base, self, focused widget.Widget) func(strs ...string) string {
	switch {
	case b.disabled:
		return styles.Disabled.Render
	case focused == self:
		return styles.FocusedControl.Render
	default:
		return styles.Control.Render
	}
}

// fit clips or pads s to exactly w cells by h lines.
func fit(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, h)
	for i := 0; i < h; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padLine(line, w)
	}
	return strings.Join(out, "\n")
}

func padLine(line string, w int) string {
	if ansi.StringWidth(line) > w {
		line = ansi.Truncate(line, w, "")
	}
	if gap := w - ansi.StringWidth(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}
