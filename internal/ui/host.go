package ui

import (
	"time"

	"github.com/atomicstack/hintnav/internal/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

// host adapts the screen to the navigation core. Deferred tasks become
// tea.Tick commands whose message runs the task in a later Update.
type host struct {
	*widgets.Screen
	nextID  int
	pending map[int]func()
	cmds    []tea.Cmd
}

type deferredMsg struct {
	id int
}

func newHost(screen *widgets.Screen) *host {
	return &host{Screen: screen, pending: make(map[int]func())}
}

func (h *host) After(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	h.nextID++
	id := h.nextID
	h.pending[id] = fn
	h.cmds = append(h.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return deferredMsg{id: id}
	}))
}

// run executes a deferred task once. Unknown ids are ignored.
func (h *host) run(id int) bool {
	fn, ok := h.pending[id]
	if !ok {
		return false
	}
	delete(h.pending, id)
	fn()
	return true
}

// takeCmds drains commands queued by the scheduler and by focus changes.
func (h *host) takeCmds() []tea.Cmd {
	cmds := append(h.cmds, h.TakeCmds()...)
	h.cmds = nil
	return cmds
}
