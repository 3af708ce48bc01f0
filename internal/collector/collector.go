// Package collector walks a widget tree and lists the targets a hint session
// can label.
package collector

import (
	"errors"

	"github.com/atomicstack/hintnav/internal/widget"
)

// Kind selects which widgets are eligible.
type Kind int

const (
	// Input limits targets to text entry widgets.
	Input Kind = iota
	// All includes every activatable widget, text entry included.
	All
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// allCaps are the capabilities that make a widget a target of its own under
// All. Row containers are handled per row.
const allCaps = widget.TextEntry | widget.Clickable | widget.Toggle | widget.Selectable | widget.Focusable

// Target is one activatable unit: a widget, or one row of a row container.
type Target struct {
	Widget widget.Widget
	Row    int
}

// IsRow reports whether the target addresses a single row.
func (t Target) IsRow() bool {
	return t.Row >= 0
}

// WidgetTarget addresses a whole widget.
func WidgetTarget(w widget.Widget) Target {
	return Target{Widget: w, Row: -1}
}

// RowTarget addresses row of a row container.
func RowTarget(w widget.Widget, row int) Target {
	return Target{Widget: w, Row: row}
}

// Rect returns the target's rectangle relative to origin, the window's
// top-left corner in screen cells. Rows resolve through the container: row
// rectangle, plus the container's screen position, minus origin.
func (t Target) Rect(origin widget.Rect) (widget.Rect, error) {
	if t.Widget == nil {
		return widget.Rect{}, widget.ErrStale
	}
	screen, err := t.Widget.ScreenRect()
	if err != nil {
		return widget.Rect{}, err
	}
	if !t.IsRow() {
		return screen.Offset(-origin.X, -origin.Y), nil
	}
	rows, ok := t.Widget.(widget.Rows)
	if !ok {
		return widget.Rect{}, widget.ErrStale
	}
	local, err := rows.RowRect(t.Row)
	if err != nil {
		return widget.Rect{}, err
	}
	return local.Offset(screen.X-origin.X, screen.Y-origin.Y), nil
}

// Collect returns the eligible targets under root in depth-first pre-order.
// A hidden or disabled node prunes its whole subtree. Nodes that turn out to
// be stale are left out.
func Collect(root widget.Widget, kind Kind) []Target {
	var targets []Target
	walk(root, func(w widget.Widget) {
		caps := w.Capabilities()
		switch kind {
		case Input:
			if caps.Has(widget.TextEntry) {
				targets = append(targets, WidgetTarget(w))
			}
		default:
			if caps.Has(widget.RowContainer) {
				targets = append(targets, rowTargets(w)...)
				return
			}
			if caps.Any(allCaps) {
				targets = append(targets, WidgetTarget(w))
			}
		}
	})
	return targets
}

func rowTargets(w widget.Widget) []Target {
	rows, ok := w.(widget.Rows)
	if !ok {
		return nil
	}
	visible := rows.VisibleRows()
	out := make([]Target, 0, len(visible))
	for _, row := range visible {
		out = append(out, RowTarget(w, row))
	}
	return out
}

// FirstFocusable returns the first widget below root, in the same traversal
// order as Collect, that can take focus and is not a text entry. It returns
// nil when there is none.
func FirstFocusable(root widget.Widget) widget.Widget {
	var found widget.Widget
	walk(root, func(w widget.Widget) {
		if found != nil || w == root {
			return
		}
		caps := w.Capabilities()
		if caps.Has(widget.TextEntry) {
			return
		}
		if caps.Any(widget.Focusable | widget.RowContainer | widget.Clickable | widget.Toggle | widget.Selectable) {
			found = w
		}
	})
	return found
}

// walk visits shown, enabled, non-stale nodes in pre-order.
func walk(w widget.Widget, visit func(widget.Widget)) {
	if w == nil || !live(w) {
		return
	}
	visit(w)
	for _, child := range w.Children() {
		walk(child, visit)
	}
}

func live(w widget.Widget) bool {
	if !w.Shown() || !w.Enabled() {
		return false
	}
	if _, err := w.ScreenRect(); errors.Is(err, widget.ErrStale) {
		return false
	}
	return true
}
