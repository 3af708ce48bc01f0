package widgets

import (
	"fmt"

	"github.com/atomicstack/hintnav/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

func caption(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}

func measureText(text string, extra, maxWidth int) (int, int) {
	w := runewidth.StringWidth(text) + extra
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w, 1
}

// activationKey reports whether msg is the keyboard equivalent of a click.
func activationKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace
}

// Label is static text.
type Label struct {
	base
	Text string
}

func NewLabel(id, text string) *Label {
	return &Label{base: newBase(id, 0), Text: text}
}

func (l *Label) Caption() string { return l.Text }

func (l *Label) Measure(maxWidth int) (int, int) {
	return measureText(l.Text, 0, maxWidth)
}

func (l *Label) Render(widget.Widget) string {
	return styles.Label.Render(caption(l.Text, l.rect.W))
}

// Button runs OnClick when clicked or activated from the keyboard.
type Button struct {
	base
	Text    string
	OnClick func()
	clicks  int
}

func NewButton(id, text string, onClick func()) *Button {
	return &Button{base: newBase(id, widget.Clickable), Text: text, OnClick: onClick}
}

func (b *Button) Caption() string { return b.Text }

// Clicks counts delivered clicks.
func (b *Button) Clicks() int { return b.clicks }

func (b *Button) Click() error {
	if err := b.usable(); err != nil {
		return fmt.Errorf("click %s: %w", b.id, err)
	}
	b.clicks++
	if b.OnClick != nil {
		b.OnClick()
	}
	return nil
}

func (b *Button) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !activationKey(msg) {
		return false, nil
	}
	return b.Click() == nil, nil
}

func (b *Button) Measure(maxWidth int) (int, int) {
	return measureText(b.Text, 4, maxWidth)
}

func (b *Button) Render(focused widget.Widget) string {
	render := controlStyle(&b.base, b, focused)
	return render("[ " + caption(b.Text, b.rect.W-4) + " ]")
}

// ToggleButton is a push button that latches on and off. It is activated by
// clicking, so navigation treats it like any other button.
type ToggleButton struct {
	base
	Text     string
	On       bool
	OnChange func(on bool)
}

func NewToggleButton(id, text string, onChange func(bool)) *ToggleButton {
	return &ToggleButton{base: newBase(id, widget.Clickable), Text: text, OnChange: onChange}
}

func (t *ToggleButton) Caption() string { return t.Text }

func (t *ToggleButton) Click() error {
	if err := t.usable(); err != nil {
		return fmt.Errorf("click %s: %w", t.id, err)
	}
	t.On = !t.On
	if t.OnChange != nil {
		t.OnChange(t.On)
	}
	return nil
}

func (t *ToggleButton) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !activationKey(msg) {
		return false, nil
	}
	return t.Click() == nil, nil
}

func (t *ToggleButton) Measure(maxWidth int) (int, int) {
	return measureText(t.Text, 4, maxWidth)
}

func (t *ToggleButton) Render(focused widget.Widget) string {
	render := controlStyle(&t.base, t, focused)
	left, right := "[ ", " ]"
	if t.On {
		left, right = "[*", "*]"
	}
	return render(left + caption(t.Text, t.rect.W-4) + right)
}

// Checkbox holds a boolean. Changes are reported through OnChange.
type Checkbox struct {
	base
	Text     string
	Value    bool
	OnChange func(checked bool)
	changes  int
}

func NewCheckbox(id, text string, onChange func(bool)) *Checkbox {
	return &Checkbox{base: newBase(id, widget.Toggle), Text: text, OnChange: onChange}
}

func (c *Checkbox) Caption() string { return c.Text }
func (c *Checkbox) Checked() bool   { return c.Value }

// Changes counts change notifications.
func (c *Checkbox) Changes() int { return c.changes }

func (c *Checkbox) SetChecked(v bool) error {
	if err := c.usable(); err != nil {
		return fmt.Errorf("check %s: %w", c.id, err)
	}
	c.Value = v
	return nil
}

func (c *Checkbox) NotifyChange() error {
	if c.destroyed {
		return widget.ErrStale
	}
	c.changes++
	if c.OnChange != nil {
		c.OnChange(c.Value)
	}
	return nil
}

func (c *Checkbox) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type != tea.KeySpace {
		return false, nil
	}
	if err := c.SetChecked(!c.Value); err != nil {
		return false, nil
	}
	return c.NotifyChange() == nil, nil
}

func (c *Checkbox) Measure(maxWidth int) (int, int) {
	return measureText(c.Text, 4, maxWidth)
}

func (c *Checkbox) Render(focused widget.Widget) string {
	box := "[ ] "
	if c.Value {
		box = "[x] "
	}
	return controlStyle(&c.base, c, focused)(box + caption(c.Text, c.rect.W-4))
}

// Choice cycles through a fixed set of options with the arrow keys.
type Choice struct {
	base
	Text     string
	Options  []string
	Index    int
	OnChange func(value string)
}

func NewChoice(id, text string, options []string, onChange func(string)) *Choice {
	return &Choice{base: newBase(id, widget.Focusable), Text: text, Options: options, OnChange: onChange}
}

func (c *Choice) Caption() string { return c.Text }

// Value returns the selected option.
func (c *Choice) Value() string {
	if c.Index < 0 || c.Index >= len(c.Options) {
		return ""
	}
	return c.Options[c.Index]
}

// Step moves the selection by delta, wrapping around.
func (c *Choice) Step(delta int) {
	n := len(c.Options)
	if n == 0 {
		return
	}
	c.Index = ((c.Index+delta)%n + n) % n
	if c.OnChange != nil {
		c.OnChange(c.Value())
	}
}

func (c *Choice) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft:
		c.Step(-1)
		return true, nil
	case tea.KeyRight, tea.KeySpace:
		c.Step(1)
		return true, nil
	}
	return false, nil
}

func (c *Choice) Measure(maxWidth int) (int, int) {
	widest := 0
	for _, o := range c.Options {
		if w := runewidth.StringWidth(o); w > widest {
			widest = w
		}
	}
	return measureText(c.Text, widest+6, maxWidth)
}

func (c *Choice) Render(focused widget.Widget) string {
	text := fmt.Sprintf("%s: < %s >", c.Text, c.Value())
	return controlStyle(&c.base, c, focused)(caption(text, c.rect.W))
}
