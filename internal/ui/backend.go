package ui

import (
	"fmt"

	"github.com/atomicstack/hintnav/internal/backend"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/logging"
	"github.com/atomicstack/hintnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in reloaded bindings. A file that fails to load or
// names an unknown action leaves the current bindings in place.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		events.Binding.ReloadError(evt.Path, evt.Err)
		logging.Error(evt.Err)
		m.setError(evt.Err)
		return
	}
	if err := keymap.Validate(evt.Bindings, m.actions); err != nil {
		err = fmt.Errorf("reload %s: %w", evt.Path, err)
		events.Binding.ReloadError(evt.Path, err)
		m.setError(err)
		return
	}
	m.bindings.Reset()
	if err := m.bindings.Apply(evt.Bindings, m.actions); err != nil {
		events.Binding.ReloadError(evt.Path, err)
		m.setError(err)
		return
	}
	events.Binding.Reload(evt.Path, len(evt.Bindings))
	m.errMsg = ""
	if m.verbose {
		m.SetInfo(fmt.Sprintf("reloaded %d bindings", len(evt.Bindings)))
	}
}
