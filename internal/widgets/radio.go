package widgets

import (
	"fmt"

	"github.com/atomicstack/hintnav/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// RadioGroup is a panel whose radio buttons are mutually exclusive.
type RadioGroup struct {
	*Panel
	selected *Radio
	OnSelect func(value string)
}

// NewRadioGroup builds a vertical group with one radio per option. The first
// option starts selected.
func NewRadioGroup(id, title string, options []string, onSelect func(string)) *RadioGroup {
	g := &RadioGroup{Panel: NewPanel(id, Vertical), OnSelect: onSelect}
	g.Title = title
	for i, opt := range options {
		r := &Radio{base: newBase(fmt.Sprintf("%s/%d", id, i), widget.Selectable), Text: opt, group: g}
		if i == 0 {
			g.selected = r
		}
		g.Add(r)
	}
	return g
}

// Value returns the text of the selected radio.
func (g *RadioGroup) Value() string {
	if g.selected == nil {
		return ""
	}
	return g.selected.Text
}

// Radio is one option of a RadioGroup.
type Radio struct {
	base
	Text    string
	group   *RadioGroup
	selects int
}

func (r *Radio) Caption() string { return r.Text }

// Selected reports whether r is the group's selection.
func (r *Radio) Selected() bool { return r.group != nil && r.group.selected == r }

// Selects counts selection notifications.
func (r *Radio) Selects() int { return r.selects }

func (r *Radio) SetSelected() error {
	if err := r.usable(); err != nil {
		return fmt.Errorf("select %s: %w", r.id, err)
	}
	if r.group != nil {
		r.group.selected = r
	}
	return nil
}

func (r *Radio) NotifySelect() error {
	if r.destroyed {
		return widget.ErrStale
	}
	r.selects++
	if r.group != nil && r.group.OnSelect != nil {
		r.group.OnSelect(r.Text)
	}
	return nil
}

func (r *Radio) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !activationKey(msg) {
		return false, nil
	}
	if err := r.SetSelected(); err != nil {
		return false, nil
	}
	return r.NotifySelect() == nil, nil
}

func (r *Radio) Measure(maxWidth int) (int, int) {
	return measureText(r.Text, 4, maxWidth)
}

func (r *Radio) Render(focused widget.Widget) string {
	mark := "( ) "
	if r.Selected() {
		mark = "(•) "
	}
	return controlStyle(&r.base, r, focused)(mark + caption(r.Text, r.rect.W-4))
}
