// Package keymap holds application key bindings consulted in default mode,
// and loads them from a YAML binding file.
package keymap

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownAction is returned when a binding file names an action the
// application does not provide.
var ErrUnknownAction = errors.New("unknown action")

// Handler runs a binding. It reports whether the key was consumed.
type Handler func() bool

// Table maps command strings to handlers. The zero value is ready to use.
type Table struct {
	handlers map[string]Handler
	actions  map[string]string
}

// Register binds key to h, replacing any previous binding. A nil handler
// removes the binding.
func (t *Table) Register(key string, h Handler) {
	t.register(key, "", h)
}

func (t *Table) register(key, action string, h Handler) {
	if key == "" {
		return
	}
	if t.handlers == nil {
		t.handlers = make(map[string]Handler)
		t.actions = make(map[string]string)
	}
	if h == nil {
		delete(t.handlers, key)
		delete(t.actions, key)
		return
	}
	t.handlers[key] = h
	if action != "" {
		t.actions[key] = action
	} else {
		delete(t.actions, key)
	}
}

// Handle runs the handler bound to key. Unbound keys report false.
func (t *Table) Handle(key string) bool {
	if t == nil || key == "" {
		return false
	}
	h, ok := t.handlers[key]
	if !ok {
		return false
	}
	return h()
}

// Bound reports whether key has a handler.
func (t *Table) Bound(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.handlers[key]
	return ok
}

// Keys returns the bound keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.handlers))
	for k := range t.handlers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Action returns the action name a key was bound to by Apply, or "".
func (t *Table) Action(key string) string {
	if t == nil {
		return ""
	}
	return t.actions[key]
}

// Binding is one entry of a binding file.
type Binding struct {
	Key    string
	Action string
}

type file struct {
	Bindings map[string]string `yaml:"bindings"`
}

// Parse decodes binding file contents. Entries are returned sorted by key.
func Parse(data []byte) ([]Binding, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	out := make([]Binding, 0, len(f.Bindings))
	for key, action := range f.Bindings {
		key = strings.TrimSpace(key)
		action = strings.TrimSpace(action)
		if key == "" || action == "" {
			return nil, fmt.Errorf("parse bindings: empty key or action in %q: %q", key, action)
		}
		out = append(out, Binding{Key: key, Action: action})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// LoadFile reads and parses a binding file.
func LoadFile(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}
	return Parse(data)
}

// Apply binds every entry to the named action. Nothing is registered when
// an entry names an unknown action.
func (t *Table) Apply(bindings []Binding, actions map[string]Handler) error {
	if err := Validate(bindings, actions); err != nil {
		return err
	}
	for _, b := range bindings {
		t.register(b.Key, b.Action, actions[b.Action])
	}
	return nil
}

// Validate reports the first binding whose action is not in actions.
func Validate(bindings []Binding, actions map[string]Handler) error {
	for _, b := range bindings {
		if _, ok := actions[b.Action]; !ok {
			return fmt.Errorf("binding %q: %w: %s", b.Key, ErrUnknownAction, b.Action)
		}
	}
	return nil
}

// Reset drops every binding that came from a binding file, leaving handlers
// registered directly with Register in place.
func (t *Table) Reset() {
	if t == nil {
		return
	}
	for key := range t.actions {
		delete(t.handlers, key)
		delete(t.actions, key)
	}
}
