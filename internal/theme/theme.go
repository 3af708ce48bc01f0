package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the toolkit and UI.
type Styles struct {
	Header         *lipgloss.Style
	WindowBorder   *lipgloss.Style
	WindowTitle    *lipgloss.Style
	PanelTitle     *lipgloss.Style
	Label          *lipgloss.Style
	Disabled       *lipgloss.Style
	Control        *lipgloss.Style
	FocusedControl *lipgloss.Style
	Entry          *lipgloss.Style
	EntryPrompt    *lipgloss.Style
	Placeholder    *lipgloss.Style
	Item           *lipgloss.Style
	SelectedItem   *lipgloss.Style
	FocusedItem    *lipgloss.Style
	HintLabel      *lipgloss.Style
	SearchMatch    *lipgloss.Style
	Status         *lipgloss.Style
	StatusMode     *lipgloss.Style
	Footer         *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Cursor         *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	WindowBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	WindowTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Disabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Control: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	FocusedControl: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Entry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	EntryPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	HintLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4a400e")).Background(lipgloss.Color("#feda31")).Bold(true),
	),
	SearchMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusMode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
