// Package widget is the adapter surface between the navigation core and a
// host widget toolkit.
//
// The core never asks what concrete class a widget is. Each widget reports a
// set of capability tags; collection and activation dispatch on those tags and
// on the optional behaviour interfaces below, so a new widget kind plugs in by
// implementing Widget plus whichever behaviours apply.
//
// Widgets are references into a tree the host owns and may change at any
// time. Every query may fail with ErrStale; callers skip the affected widget
// rather than aborting.
package widget

import (
	"errors"
	"strings"
	"time"
)

// ErrStale reports that a widget was destroyed or detached since it was found.
var ErrStale = errors.New("widget is stale")

// Capability is a bit set of interaction tags.
type Capability uint8

const (
	// TextEntry marks single-line or combo text entry.
	TextEntry Capability = 1 << iota
	// Clickable widgets are activated with a synthesized click.
	Clickable
	// Toggle widgets hold a boolean that activation flips.
	Toggle
	// Selectable widgets are set to selected on activation (radio buttons).
	Selectable
	// RowContainer widgets expose individually addressable rows.
	RowContainer
	// Focusable widgets are activated by moving keyboard focus to them.
	Focusable
)

// Has reports whether every bit in flag is set.
func (c Capability) Has(flag Capability) bool {
	return flag != 0 && c&flag == flag
}

// Any reports whether at least one bit in flags is set.
func (c Capability) Any(flags Capability) bool {
	return c&flags != 0
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	names := []struct {
		flag Capability
		name string
	}{
		{TextEntry, "text-entry"},
		{Clickable, "clickable"},
		{Toggle, "toggle"},
		{Selectable, "selectable"},
		{RowContainer, "rows"},
		{Focusable, "focusable"},
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Rect is a rectangle in cells. X and Y are the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Widget is a node of the host tree.
type Widget interface {
	// ID is stable for the lifetime of the widget and unique in its window.
	ID() string
	Capabilities() Capability
	Shown() bool
	Enabled() bool
	Children() []Widget
	// ScreenRect is the widget's last laid-out rectangle in screen cells.
	ScreenRect() (Rect, error)
}

// Clicker synthesizes the event a pointer click would dispatch.
type Clicker interface {
	Click() error
}

// Toggler holds a boolean state and notifies listeners when it changes.
type Toggler interface {
	Checked() bool
	SetChecked(bool) error
	NotifyChange() error
}

// RadioSelector is selected by activation, deselecting its group peers.
type RadioSelector interface {
	SetSelected() error
	NotifySelect() error
}

// Rows is implemented by row-virtualized collections. VisibleRows lists the
// indices of currently materialized rows; RowRect is relative to the
// collection's own top-left corner.
type Rows interface {
	VisibleRows() []int
	RowRect(row int) (Rect, error)
	SelectRow(row int) error
	ActivateRow(row int) error
}

// Captioned widgets expose user-visible text, used by search.
type Captioned interface {
	Caption() string
}

// RowCaptioned collections expose the text of a materialized row.
type RowCaptioned interface {
	RowCaption(row int) string
}

// Tree gives access to the window being navigated.
type Tree interface {
	Root() Widget
}

// Focus reads and moves keyboard focus.
type Focus interface {
	Focused() Widget
	SetFocus(Widget) error
}

// Marker is a small overlay panel showing one hint label.
type Marker interface {
	Show()
	Hide()
	Visible() bool
	Destroy()
}

// Panels creates markers at window-relative positions.
type Panels interface {
	NewMarker(text string, at Rect) (Marker, error)
}

// StatusSink is a two-field status display; field 1 shows the mode.
type StatusSink interface {
	SetStatus(field int, text string)
}

// Scheduler runs fn once after delay, after the current event has finished.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Host bundles what the navigation core needs from a window.
type Host interface {
	Tree
	Focus
	Panels
	StatusSink
	Scheduler
}
