package ui

import (
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/logging/events"
	"github.com/atomicstack/hintnav/internal/modal"
	tea "github.com/charmbracelet/bubbletea"
)

// codeFor converts a terminal key into the raw code the navigation core
// reads. Keys the core has no code for map to keys.None and bypass it.
func codeFor(msg tea.KeyMsg) keys.Code {
	switch msg.Type {
	case tea.KeyEsc:
		return keys.Escape
	case tea.KeyEnter:
		return keys.Return
	case tea.KeyTab:
		return keys.Tab
	case tea.KeyBackspace:
		return keys.Backspace
	case tea.KeyDelete:
		return keys.Delete
	case tea.KeySpace:
		return keys.Space
	case tea.KeyUp:
		return keys.Up
	case tea.KeyDown:
		return keys.Down
	case tea.KeyLeft:
		return keys.Left
	case tea.KeyRight:
		return keys.Right
	case tea.KeyHome:
		return keys.Home
	case tea.KeyEnd:
		return keys.End
	case tea.KeyPgUp:
		return keys.PageUp
	case tea.KeyPgDown:
		return keys.PageDown
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt && !msg.Paste {
			return keys.Rune(msg.Runes[0])
		}
	}
	return keys.None
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		events.App.Quit("interrupt")
		return tea.Quit
	}
	if keyMsg.Type == tea.KeyCtrlW && m.nav.Mode() == modal.Search {
		m.search.DeleteWordBackward()
		return nil
	}
	// outside Default every key belongs to the active mode, even ones with no
	// code; an unconsumed key is dropped rather than reaching the window
	mode := m.nav.Mode()
	if code := codeFor(keyMsg); code != keys.None || mode != modal.Default {
		if m.nav.OnKey(code) || mode != modal.Default {
			return nil
		}
	}
	if handled, cmd := m.screen.HandleKey(keyMsg); handled {
		return cmd
	}
	switch keyMsg.Type {
	case tea.KeyTab:
		m.screen.FocusNext(1)
	case tea.KeyShiftTab:
		m.screen.FocusNext(-1)
	}
	return nil
}
