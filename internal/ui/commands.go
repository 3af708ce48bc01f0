package ui

import (
	"fmt"
	"sort"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/logging/events"
	"github.com/atomicstack/hintnav/internal/ui/command"
	"github.com/atomicstack/hintnav/internal/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

// Actions a binding file may name.
const (
	ActionQuit       = "quit"
	ActionHelp       = "help"
	ActionFocusNext  = "focus-next"
	ActionFocusPrev  = "focus-prev"
	ActionListDown   = "list-down"
	ActionListUp     = "list-up"
	ActionHints      = "hints"
	ActionInputHints = "input-hints"
	ActionSearch     = "search"
)

var actionLabels = map[string]string{
	ActionQuit:       "quit",
	ActionHelp:       "toggle help",
	ActionFocusNext:  "next widget",
	ActionFocusPrev:  "previous widget",
	ActionListDown:   "list down",
	ActionListUp:     "list up",
	ActionHints:      "hint any widget",
	ActionInputHints: "hint text entries",
	ActionSearch:     "search captions",
}

// Actions returns the action names a binding may use, sorted.
func Actions() []string {
	out := make([]string, 0, len(actionLabels))
	for name := range actionLabels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultBindings is used when no binding file is configured.
func DefaultBindings() []keymap.Binding {
	return []keymap.Binding{
		{Key: "?", Action: ActionHelp},
		{Key: "j", Action: ActionListDown},
		{Key: "k", Action: ActionListUp},
		{Key: "q", Action: ActionQuit},
	}
}

// ActionResult reports a finished binding action. Actions that change the
// window are applied when the result arrives, inside Update.
type ActionResult struct {
	Action string
	Info   string
	Err    error
}

func (m *Model) registerActions() {
	m.actions = make(map[string]keymap.Handler, len(actionLabels))
	for name := range actionLabels {
		name := name
		m.actions[name] = func() bool {
			m.queue(m.bus.Execute(command.Request{
				ID:      name,
				Label:   actionLabels[name],
				Handler: actionHandler(name),
			}))
			return true
		}
	}
}

func actionHandler(name string) func() tea.Cmd {
	if name == ActionQuit {
		return func() tea.Cmd {
			events.App.Quit("binding")
			return tea.Quit
		}
	}
	return func() tea.Cmd {
		return func() tea.Msg { return ActionResult{Action: name} }
	}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.setError(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	if err := m.apply(result.Action); err != nil {
		m.setError(err)
		events.Action.Error(err)
		return nil
	}
	if result.Info != "" && m.verbose {
		m.SetInfo(result.Info)
	}
	events.Action.Success(result.Action)
	return nil
}

func (m *Model) apply(action string) error {
	switch action {
	case ActionHelp:
		m.showHelp = !m.showHelp
	case ActionFocusNext:
		m.screen.FocusNext(1)
	case ActionFocusPrev:
		m.screen.FocusNext(-1)
	case ActionListDown, ActionListUp:
		list := m.targetList()
		if list == nil {
			return fmt.Errorf("%s: no list in window", action)
		}
		delta := 1
		if action == ActionListUp {
			delta = -1
		}
		list.Move(delta)
	case ActionHints:
		m.nav.EnterHints(collector.All)
	case ActionInputHints:
		m.nav.EnterHints(collector.Input)
	case ActionSearch:
		m.nav.EnterSearch()
	default:
		return fmt.Errorf("action %s: %w", action, keymap.ErrUnknownAction)
	}
	return nil
}

// targetList is the focused list, or else the first list in the window.
func (m *Model) targetList() *widgets.List {
	if list, ok := m.screen.FocusedElement().(*widgets.List); ok {
		return list
	}
	var found *widgets.List
	m.screen.Walk(func(e widgets.Element) bool {
		if list, ok := e.(*widgets.List); ok && list.Enabled() {
			found = list
			return false
		}
		return true
	})
	return found
}
