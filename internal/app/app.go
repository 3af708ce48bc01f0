package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/hintnav/internal/backend"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/logging"
	"github.com/atomicstack/hintnav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	Alphabet     string
	BindingsPath string
	DefocusDelay time.Duration
	ShowFooter   bool
	Verbose      bool
}

// Options turns cfg into UI options with the demo window. The caller owns
// the returned watcher, which is nil when no binding file is configured.
func Options(cfg Config) (ui.Options, *Demo, *backend.Watcher, error) {
	opts := ui.Options{
		Title:        "hintnav demo",
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		DefocusDelay: cfg.DefocusDelay,
	}
	if cfg.Alphabet != "" {
		alphabet, err := label.ParseAlphabet(cfg.Alphabet)
		if err != nil {
			return ui.Options{}, nil, nil, fmt.Errorf("alphabet: %w", err)
		}
		opts.Alphabet = alphabet
	}
	var watcher *backend.Watcher
	if cfg.BindingsPath != "" {
		bindings, err := keymap.LoadFile(cfg.BindingsPath)
		if err != nil {
			return ui.Options{}, nil, nil, err
		}
		opts.Bindings = bindings
		watcher, err = backend.NewWatcher(cfg.BindingsPath, backend.DefaultSettle)
		if err != nil {
			// reloads are a convenience; start without them
			logging.Error(err)
			watcher = nil
		}
		opts.Watcher = watcher
	}
	demo := NewDemo()
	opts.Window = demo.Window
	return opts, demo, watcher, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, demo, watcher, err := Options(cfg)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Stop()
	}
	model := ui.NewModel(opts)
	demo.Bind(model)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
