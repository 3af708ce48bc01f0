package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/hintnav/internal/backend"
	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/logging"
	"github.com/atomicstack/hintnav/internal/modal"
	"github.com/atomicstack/hintnav/internal/search"
	"github.com/atomicstack/hintnav/internal/theme"
	"github.com/atomicstack/hintnav/internal/ui/command"
	"github.com/atomicstack/hintnav/internal/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle  = "hintnav"
	defaultWidth  = 80
	defaultHeight = 24
	headerRows    = 1
	statusRows    = 1
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the program model.
type Options struct {
	Window       *widgets.Window
	Title        string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Alphabet     label.Alphabet
	DefocusDelay time.Duration
	// Bindings replaces the default key bindings when non-nil.
	Bindings []keymap.Binding
	Watcher  *backend.Watcher
	// SteadyCursor stops text entries from blinking.
	SteadyCursor bool
}

// Model implements the Bubble Tea model hosting one navigable window.
type Model struct {
	screen   *widgets.Screen
	host     *host
	nav      *modal.Dispatcher
	search   *search.Search
	bus      *command.Bus
	bindings *keymap.Table
	actions  map[string]keymap.Handler

	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showHelp    bool
	verbose     bool
	infoMsg     string
	errMsg      string
	backend     *backend.Watcher
	queued      []tea.Cmd

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model around opts.Window.
func NewModel(opts Options) *Model {
	window := opts.Window
	if window == nil {
		window = widgets.NewWindow("window", "", widgets.NewPanel("body", widgets.Vertical))
	}
	screen := widgets.NewScreen(window, headerRows)
	h := newHost(screen)
	m := &Model{
		screen:   screen,
		host:     h,
		search:   search.New(h),
		bus:      command.New(),
		bindings: &keymap.Table{},
		title:    opts.Title,
		width:    defaultWidth,
		height:   defaultHeight,
		showHelp: opts.ShowFooter,
		verbose:  opts.Verbose,
		backend:  opts.Watcher,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.nav = modal.New(h, modal.Options{
		Alphabet:     opts.Alphabet,
		DefocusDelay: opts.DefocusDelay,
		Search:       m.search,
		Bindings:     m.bindings,
	})
	m.registerActions()
	bindings := opts.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	if err := m.bindings.Apply(bindings, m.actions); err != nil {
		m.setError(err)
	}
	if opts.SteadyCursor {
		screen.Walk(func(e widgets.Element) bool {
			if entry, ok := e.(*widgets.TextEntry); ok {
				entry.SetBlink(false)
			}
			return true
		})
	}
	m.relayout()
	if first := collector.FirstFocusable(screen.Root()); first != nil {
		if err := screen.SetFocus(first); err != nil {
			logging.Error(err)
		}
	}
	m.registerHandlers()
	return m
}

// Screen exposes the hosted window and its status bar.
func (m *Model) Screen() *widgets.Screen {
	return m.screen
}

// Navigator exposes the modal dispatcher.
func (m *Model) Navigator() *modal.Dispatcher {
	return m.nav
}

// Bindings exposes the key binding table.
func (m *Model) Bindings() *keymap.Table {
	return m.bindings
}

// SetInfo shows text in the status bar until the next message replaces it.
func (m *Model) SetInfo(text string) {
	m.infoMsg = text
	m.errMsg = ""
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	m.infoMsg = ""
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := m.host.takeCmds()
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.forwardToEntry(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(deferredMsg{}):       m.handleDeferredMsg,
		reflect.TypeOf(ActionResult{}):      m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// forwardToEntry hands unrouted messages, such as cursor blinks, to the
// focused text entry.
func (m *Model) forwardToEntry(msg tea.Msg) tea.Cmd {
	entry, ok := m.screen.FocusedElement().(*widgets.TextEntry)
	if !ok {
		return nil
	}
	return entry.Update(msg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleDeferredMsg(msg tea.Msg) tea.Cmd {
	d, ok := msg.(deferredMsg)
	if !ok {
		return nil
	}
	m.host.run(d.id)
	return nil
}

// queue schedules a command produced outside a message handler, for example
// by a binding running inside the dispatcher.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.queued...)
	m.queued = nil
	m.relayout()
	cmds = append(cmds, m.host.takeCmds()...)
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// relayout lays the window out again and refreshes the message field of the
// status bar. Search owns that field while it is active.
func (m *Model) relayout() {
	m.screen.Resize(m.width, m.height, len(m.footerLines())+statusRows)
	if m.nav != nil && m.nav.Mode() == modal.Search {
		return
	}
	m.screen.SetStatus(search.PromptField, m.statusText())
}
