package widgets

import (
	"fmt"
	"strings"

	"github.com/atomicstack/hintnav/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// List is a virtualized collection: only Height rows are materialized at a
// time, and navigation addresses those rows individually.
type List struct {
	base
	Text       string
	Height     int
	OnActivate func(row int, item string)
	items      []string
	view       viewport
	activated  []int
}

// NewList returns a list showing height rows of items.
func NewList(id, text string, height int, items []string) *List {
	l := &List{base: newBase(id, widget.RowContainer|widget.Focusable), Text: text, Height: height}
	l.SetItems(items)
	return l
}

func (l *List) Caption() string { return l.Text }

// SetItems replaces the rows, keeping the cursor in range.
func (l *List) SetItems(items []string) {
	l.items = append([]string(nil), items...)
	l.view.Total = len(l.items)
	l.view.Follow(l.Height)
}

// Len returns the number of rows.
func (l *List) Len() int { return len(l.items) }

// Item returns the text of row, or "" when out of range.
func (l *List) Item(row int) string {
	if row < 0 || row >= len(l.items) {
		return ""
	}
	return l.items[row]
}

// Cursor returns the selected row.
func (l *List) Cursor() int { return l.view.Cursor }

// Offset returns the first materialized row.
func (l *List) Offset() int { return l.view.Offset }

// Activated returns the rows opened so far, in order.
func (l *List) Activated() []int { return append([]int(nil), l.activated...) }

// Move shifts the cursor by delta rows and scrolls to follow it.
func (l *List) Move(delta int) bool {
	moved := l.view.MoveBy(delta)
	l.view.Follow(l.Height)
	return moved
}

func (l *List) VisibleRows() []int {
	if l.destroyed {
		return nil
	}
	start, end := l.view.Window(l.Height)
	rows := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, i)
	}
	return rows
}

func (l *List) RowRect(row int) (widget.Rect, error) {
	if l.destroyed || !l.placed {
		return widget.Rect{}, widget.ErrStale
	}
	start, end := l.view.Window(l.Height)
	if row < start || row >= end {
		return widget.Rect{}, fmt.Errorf("%s row %d not materialized: %w", l.id, row, widget.ErrStale)
	}
	return widget.Rect{X: 0, Y: row - start, W: l.rect.W, H: 1}, nil
}

func (l *List) RowCaption(row int) string { return l.Item(row) }

func (l *List) SelectRow(row int) error {
	if err := l.usable(); err != nil {
		return err
	}
	if row < 0 || row >= len(l.items) {
		return fmt.Errorf("%s row %d: %w", l.id, row, widget.ErrStale)
	}
	l.view.Cursor = row
	l.view.Follow(l.Height)
	return nil
}

func (l *List) ActivateRow(row int) error {
	if err := l.usable(); err != nil {
		return err
	}
	if row < 0 || row >= len(l.items) {
		return fmt.Errorf("%s row %d: %w", l.id, row, widget.ErrStale)
	}
	l.activated = append(l.activated, row)
	if l.OnActivate != nil {
		l.OnActivate(row, l.items[row])
	}
	return nil
}

func (l *List) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		l.Move(-1)
	case tea.KeyDown:
		l.Move(1)
	case tea.KeyPgUp:
		l.view.PageUp(l.Height)
		l.view.Follow(l.Height)
	case tea.KeyPgDown:
		l.view.PageDown(l.Height)
		l.view.Follow(l.Height)
	case tea.KeyHome:
		l.view.Home()
		l.view.Follow(l.Height)
	case tea.KeyEnd:
		l.view.End()
		l.view.Follow(l.Height)
	case tea.KeyEnter:
		if len(l.items) == 0 {
			return false, nil
		}
		return l.ActivateRow(l.view.Cursor) == nil, nil
	default:
		return false, nil
	}
	return true, nil
}

func (l *List) Measure(maxWidth int) (int, int) {
	w := 0
	for _, it := range l.items {
		if iw, _ := measureText(it, 2, maxWidth); iw > w {
			w = iw
		}
	}
	return w, l.Height
}

func (l *List) Render(focused widget.Widget) string {
	start, end := l.view.Window(l.Height)
	lines := make([]string, 0, l.Height)
	for i := start; i < end; i++ {
		text := "  " + caption(l.items[i], l.rect.W-2)
		switch {
		case i == l.view.Cursor && focused == widget.Widget(l):
			lines = append(lines, styles.FocusedItem.Render(padLine(text, l.rect.W)))
		case i == l.view.Cursor:
			lines = append(lines, styles.SelectedItem.Render(padLine(text, l.rect.W)))
		default:
			lines = append(lines, styles.Item.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}
