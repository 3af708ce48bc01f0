// Package modal owns a window's navigation mode and decides, key by key,
// whether the navigation layer consumes a key or lets the toolkit deliver it.
package modal

import (
	"fmt"
	"time"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/logging/events"
	"github.com/atomicstack/hintnav/internal/overlay"
	"github.com/atomicstack/hintnav/internal/widget"
)

// DefaultDefocusDelay is used when Options.DefocusDelay is not positive.
const DefaultDefocusDelay = 10 * time.Millisecond

// StatusField is the status bar field that shows the mode indicator.
const StatusField = 1

// Mode is the navigation mode of a window.
type Mode int

const (
	Default Mode = iota
	Hint
	Search
)

func (m Mode) String() string {
	switch m {
	case Default:
		return "DEFAULT"
	case Hint:
		return "HINT"
	case Search:
		return "SEARCH"
	default:
		return fmt.Sprintf("MODE(%d)", int(m))
	}
}

// Indicator is the status text shown while m is active.
func (m Mode) Indicator() string {
	switch m {
	case Hint:
		return "-- HINTS --"
	case Search:
		return "-- SEARCH --"
	default:
		return ""
	}
}

// SearchMode is the collaborator that runs search mode. HandleKey reports
// whether it consumed the key and whether search is finished.
type SearchMode interface {
	Show()
	Hide()
	HandleKey(code keys.Code) (consumed, done bool)
}

// Options configures a Dispatcher. Zero values select defaults.
type Options struct {
	Alphabet     label.Alphabet
	DefocusDelay time.Duration
	Search       SearchMode
	Bindings     *keymap.Table
	// OnChange is called after every SetMode, including no-op transitions.
	OnChange func(from, to Mode)
}

// Dispatcher routes raw keys for one window.
type Dispatcher struct {
	host     widget.Host
	overlay  *overlay.Overlay
	search   SearchMode
	bindings *keymap.Table
	delay    time.Duration
	onChange func(from, to Mode)
	mode     Mode
}

// New returns a Dispatcher in Default mode.
func New(host widget.Host, opts Options) *Dispatcher {
	delay := opts.DefocusDelay
	if delay <= 0 {
		delay = DefaultDefocusDelay
	}
	bindings := opts.Bindings
	if bindings == nil {
		bindings = &keymap.Table{}
	}
	d := &Dispatcher{
		host:     host,
		overlay:  overlay.New(host, opts.Alphabet),
		search:   opts.Search,
		bindings: bindings,
		delay:    delay,
		onChange: opts.OnChange,
	}
	host.SetStatus(StatusField, Default.Indicator())
	return d
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// Overlay exposes the hint overlay, mainly for rendering and tests.
func (d *Dispatcher) Overlay() *overlay.Overlay {
	return d.overlay
}

// Bindings returns the keybinding table consulted in Default mode.
func (d *Dispatcher) Bindings() *keymap.Table {
	return d.bindings
}

// RegisterBinding binds a command string; it is only consulted in Default
// mode without text-entry focus.
func (d *Dispatcher) RegisterBinding(key string, h keymap.Handler) {
	d.bindings.Register(key, h)
}

// SetMode is the only way the mode changes. It refreshes the indicator and
// tears down the transient state of every mode other than m.
func (d *Dispatcher) SetMode(m Mode) {
	from := d.mode
	if m != Hint {
		d.overlay.Hide()
	}
	if m != Search && from == Search && d.search != nil {
		d.search.Hide()
	}
	d.mode = m
	d.host.SetStatus(StatusField, m.Indicator())
	if from != m {
		events.Mode.Transition(from.String(), m.String())
	}
	if d.onChange != nil {
		d.onChange(from, m)
	}
}

// EnterHints starts a hint session over kind. When nothing can be labelled
// the dispatcher returns to Default.
func (d *Dispatcher) EnterHints(kind collector.Kind) overlay.Outcome {
	if d.mode == Search {
		d.SetMode(Default)
	}
	outcome := d.overlay.Show(kind)
	if outcome != overlay.Pending {
		d.SetMode(Default)
		return outcome
	}
	d.SetMode(Hint)
	return outcome
}

// EnterSearch switches to search mode. Without a search collaborator it is a
// no-op.
func (d *Dispatcher) EnterSearch() {
	if d.search == nil {
		return
	}
	d.SetMode(Search)
	d.search.Show()
}

// OnKey handles one raw key and reports whether it was consumed. A false
// result means the toolkit should deliver the key as usual.
func (d *Dispatcher) OnKey(code keys.Code) bool {
	textFocus := d.textFocus()

	if code == keys.Escape {
		switch {
		case d.mode != Default:
			d.SetMode(Default)
			return true
		case textFocus:
			d.scheduleDefocus()
			return true
		}
		events.Key.PassThrough(d.mode.String(), code.String(), false)
		return false
	}

	if d.mode == Default && textFocus {
		events.Key.PassThrough(d.mode.String(), code.String(), true)
		return false
	}

	switch d.mode {
	case Hint:
		if d.overlay.HandleKey(code).Done() {
			d.SetMode(Default)
		}
		return true
	case Search:
		if d.search == nil {
			d.SetMode(Default)
			return true
		}
		consumed, done := d.search.HandleKey(code)
		if done {
			d.SetMode(Default)
		}
		return consumed
	}

	cmd := code.String()
	switch cmd {
	case "i":
		d.EnterHints(collector.Input)
		return true
	case "f":
		d.EnterHints(collector.All)
		return true
	case "/":
		if d.search != nil {
			d.EnterSearch()
			return true
		}
	}
	if d.bindings.Handle(cmd) {
		events.Key.Binding(cmd)
		return true
	}
	events.Key.PassThrough(d.mode.String(), cmd, false)
	return false
}

func (d *Dispatcher) textFocus() bool {
	f := d.host.Focused()
	if f == nil || !f.Shown() {
		return false
	}
	return f.Capabilities().Has(widget.TextEntry)
}

// scheduleDefocus moves focus off the text entry once the current key event
// is finished. The task reads the tree when it runs and does nothing when no
// candidate exists.
func (d *Dispatcher) scheduleDefocus() {
	from := ""
	if f := d.host.Focused(); f != nil {
		from = f.ID()
	}
	events.Focus.DefocusScheduled(from)
	d.host.After(d.delay, func() {
		target := collector.FirstFocusable(d.host.Root())
		if target == nil {
			events.Focus.Defocus("", nil)
			return
		}
		err := d.host.SetFocus(target)
		events.Focus.Defocus(target.ID(), err)
	})
}
