package ui

import (
	"fmt"

	"github.com/atomicstack/hintnav/internal/format/table"
	"github.com/atomicstack/hintnav/internal/modal"
	"github.com/charmbracelet/x/ansi"
)

// View renders the header, the window with any hint markers, the help footer
// and the status bar.
func (m *Model) View() string {
	header := []string{styles.Header.Render(ansi.Truncate(m.title, m.width, "…"))}
	return m.screen.Render(header, m.footerLines())
}

func (m *Model) statusText() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	if m.nav != nil && m.nav.Mode() == modal.Hint {
		o := m.nav.Overlay()
		if input := o.Input(); input != "" {
			return fmt.Sprintf("hints %s: %s", o.Kind(), input)
		}
		return "hints " + o.Kind().String()
	}
	return m.infoMsg
}

type helpEntry struct {
	key, text string
}

// helpEntries lists the built-in mode keys followed by the bound keys.
func (m *Model) helpEntries() []helpEntry {
	entries := []helpEntry{
		{"f", actionLabels[ActionHints]},
		{"i", actionLabels[ActionInputHints]},
		{"/", actionLabels[ActionSearch]},
		{"esc", "leave mode"},
		{"tab", actionLabels[ActionFocusNext]},
	}
	for _, key := range m.bindings.Keys() {
		text := actionLabels[m.bindings.Action(key)]
		if text == "" {
			text = "custom"
		}
		entries = append(entries, helpEntry{key, text})
	}
	return entries
}

// footerLines lays the help entries out two to a row.
func (m *Model) footerLines() []string {
	if !m.showHelp {
		return nil
	}
	entries := m.helpEntries()
	rows := make([][]string, 0, (len(entries)+1)/2)
	for i := 0; i < len(entries); i += 2 {
		row := []string{entries[i].key, entries[i].text}
		if i+1 < len(entries) {
			row = append(row, entries[i+1].key, entries[i+1].text)
		}
		rows = append(rows, row)
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight})
	for i, line := range lines {
		lines[i] = styles.Footer.Render(ansi.Truncate(line, m.width, ""))
	}
	return lines
}
