// Package overlay runs a hint session: it labels the collected targets, keeps
// one marker per label on screen, narrows the markers as keys arrive, and
// activates the target whose label is typed in full.
package overlay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/logging/events"
	"github.com/atomicstack/hintnav/internal/widget"
	"github.com/mattn/go-runewidth"
)

// Outcome tells the caller what a call did to the session. Every value other
// than Pending means the session is gone and the caller must leave hint mode.
type Outcome int

const (
	// Pending means the session is alive and waiting for more input.
	Pending Outcome = iota
	// Activated means a label was typed in full and its target activated.
	Activated
	// Cancelled means the session was dismissed with Escape.
	Cancelled
	// NoMatch means the input can no longer match any label, or the key was
	// outside the alphabet.
	NoMatch
	// NoTargets means there was nothing to label.
	NoTargets
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Activated:
		return "activated"
	case Cancelled:
		return "cancelled"
	case NoMatch:
		return "no-match"
	case NoTargets:
		return "no-targets"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Done reports whether the session ended.
func (o Outcome) Done() bool {
	return o != Pending
}

// Hint binds one target to its label and marker.
type Hint struct {
	Target collector.Target
	Label  string
	marker widget.Marker
}

// Host is the part of the window the overlay needs.
type Host interface {
	widget.Tree
	widget.Focus
	widget.Panels
}

// Overlay owns at most one session at a time.
type Overlay struct {
	host     Host
	alphabet label.Alphabet
	kind     collector.Kind
	hints    []Hint
	input    string
	active   bool
}

// New returns an idle overlay. An empty alphabet selects the default.
func New(host Host, alphabet label.Alphabet) *Overlay {
	if len(alphabet) == 0 {
		alphabet = label.Default()
	}
	return &Overlay{host: host, alphabet: alphabet}
}

// Active reports whether a session is alive.
func (o *Overlay) Active() bool {
	return o.active
}

// Kind returns the target kind of the current or last session.
func (o *Overlay) Kind() collector.Kind {
	return o.kind
}

// Input returns the characters typed so far in this session.
func (o *Overlay) Input() string {
	return o.input
}

// Hints returns a copy of the session's hints in label order.
func (o *Overlay) Hints() []Hint {
	return append([]Hint(nil), o.hints...)
}

// Visible returns the labels whose markers are currently shown.
func (o *Overlay) Visible() []string {
	out := make([]string, 0, len(o.hints))
	for _, h := range o.hints {
		if h.marker != nil && h.marker.Visible() {
			out = append(out, h.Label)
		}
	}
	return out
}

// Show starts a new session over the targets of kind. It returns NoTargets
// when nothing could be labelled, leaving the overlay idle.
func (o *Overlay) Show(kind collector.Kind) Outcome {
	o.Hide()
	root := o.host.Root()
	if root == nil {
		events.Hint.NoTargets(kind.String())
		return NoTargets
	}
	origin, err := root.ScreenRect()
	if err != nil {
		events.Hint.NoTargets(kind.String())
		return NoTargets
	}

	type placed struct {
		target collector.Target
		rect   widget.Rect
	}
	targets := collector.Collect(root, kind)
	positioned := make([]placed, 0, len(targets))
	for _, t := range targets {
		rect, err := t.Rect(origin)
		if err != nil {
			events.Hint.Stale(t.Widget.ID(), t.Row, err)
			continue
		}
		positioned = append(positioned, placed{target: t, rect: rect})
	}
	if len(positioned) == 0 {
		events.Hint.NoTargets(kind.String())
		return NoTargets
	}

	labels := label.Generate(len(positioned), o.alphabet)
	hints := make([]Hint, 0, len(positioned))
	for i, p := range positioned {
		marker, err := o.host.NewMarker(labels[i], markerRect(p.rect, labels[i]))
		if err != nil {
			events.Hint.Stale(p.target.Widget.ID(), p.target.Row, err)
			continue
		}
		marker.Show()
		hints = append(hints, Hint{Target: p.target, Label: labels[i], marker: marker})
	}
	if len(hints) == 0 {
		events.Hint.NoTargets(kind.String())
		return NoTargets
	}
	o.hints = hints
	o.kind = kind
	o.input = ""
	o.active = true
	events.Hint.Show(kind.String(), len(hints))
	return Pending
}

// markerRect anchors the marker at the target's top-left corner, sized to
// the label with one cell of padding on each side.
func markerRect(target widget.Rect, text string) widget.Rect {
	return widget.Rect{X: target.X, Y: target.Y, W: runewidth.StringWidth(text) + 2, H: 1}
}

// HandleKey feeds one key into the session.
func (o *Overlay) HandleKey(code keys.Code) Outcome {
	if !o.active {
		return NoMatch
	}
	if code == keys.Escape {
		input := o.input
		o.Hide()
		events.Hint.Cancel(input)
		return Cancelled
	}
	r, ok := code.Letter()
	if !ok || !o.alphabet.Contains(r) {
		input := o.input
		o.Hide()
		events.Hint.NoMatch(input, code.String())
		return NoMatch
	}
	o.input += string(r)

	matching := 0
	for _, h := range o.hints {
		if h.Label == o.input {
			o.activate(h)
			o.Hide()
			return Activated
		}
		if strings.HasPrefix(h.Label, o.input) {
			matching++
		}
	}
	if matching == 0 {
		input := o.input
		o.Hide()
		events.Hint.NoMatch(input, "")
		return NoMatch
	}
	for _, h := range o.hints {
		if strings.HasPrefix(h.Label, o.input) {
			h.marker.Show()
		} else {
			h.marker.Hide()
		}
	}
	events.Hint.Narrow(o.input, matching)
	return Pending
}

// Hide ends the session, destroying every marker. It is safe to call when
// idle.
func (o *Overlay) Hide() {
	for _, h := range o.hints {
		if h.marker != nil {
			h.marker.Destroy()
		}
	}
	o.hints = nil
	o.input = ""
	o.active = false
}

func (o *Overlay) activate(h Hint) {
	err := Activate(o.host, h.Target)
	if errors.Is(err, widget.ErrStale) {
		events.Hint.Stale(h.Target.Widget.ID(), h.Target.Row, err)
	}
	events.Hint.Activate(h.Label, h.Target.Widget.ID(), h.Target.Row, err)
}

// Activate performs the activation policy for a target, dispatching on
// capability: rows are selected, focused and opened; clickables get a click;
// toggles flip and notify; radios select and notify; everything else takes
// focus.
func Activate(focus widget.Focus, t collector.Target) error {
	w := t.Widget
	if w == nil {
		return widget.ErrStale
	}
	if !w.Shown() || !w.Enabled() {
		return fmt.Errorf("activate %s: %w", w.ID(), widget.ErrStale)
	}
	caps := w.Capabilities()
	switch {
	case t.IsRow():
		rows, ok := w.(widget.Rows)
		if !ok {
			return fmt.Errorf("activate %s row %d: %w", w.ID(), t.Row, widget.ErrStale)
		}
		if err := rows.SelectRow(t.Row); err != nil {
			return err
		}
		if err := focus.SetFocus(w); err != nil {
			return err
		}
		return rows.ActivateRow(t.Row)
	case caps.Has(widget.Clickable):
		if c, ok := w.(widget.Clicker); ok {
			return c.Click()
		}
	case caps.Has(widget.Toggle):
		if tg, ok := w.(widget.Toggler); ok {
			if err := tg.SetChecked(!tg.Checked()); err != nil {
				return err
			}
			return tg.NotifyChange()
		}
	case caps.Has(widget.Selectable):
		if rs, ok := w.(widget.RadioSelector); ok {
			if err := rs.SetSelected(); err != nil {
				return err
			}
			return rs.NotifySelect()
		}
	}
	if err := focus.SetFocus(w); err != nil {
		if errors.Is(err, widget.ErrStale) {
			return err
		}
		return fmt.Errorf("focus %s: %w", w.ID(), err)
	}
	return nil
}
