package app

import (
	"fmt"
	"strings"

	"github.com/atomicstack/hintnav/internal/widgets"
)

// Informer shows a one-line message to the user.
type Informer interface {
	SetInfo(text string)
}

// Demo is the sample window the program navigates: a small profile form,
// a few toggles and a long file list.
type Demo struct {
	Window   *widgets.Window
	Name     *widgets.TextEntry
	Email    *widgets.TextEntry
	Remember *widgets.Checkbox
	Size     *widgets.RadioGroup
	Bold     *widgets.ToggleButton
	Theme    *widgets.Choice
	Files    *widgets.List
	Save     *widgets.Button
	Cancel   *widgets.Button
}

const demoFiles = 30

// NewDemo builds the demo window.
func NewDemo() *Demo {
	d := &Demo{
		Name:     widgets.NewTextEntry("name", "Name", "your name"),
		Email:    widgets.NewTextEntry("email", "Email", "you@example.com"),
		Remember: widgets.NewCheckbox("remember", "Remember me", nil),
		Size:     widgets.NewRadioGroup("size", "Size", []string{"Small", "Medium", "Large"}, nil),
		Bold:     widgets.NewToggleButton("bold", "Bold", nil),
		Theme:    widgets.NewChoice("theme", "Theme", []string{"dark", "light", "auto"}, nil),
		Save:     widgets.NewButton("save", "Save", nil),
		Cancel:   widgets.NewButton("cancel", "Cancel", nil),
	}
	items := make([]string, demoFiles)
	for i := range items {
		items[i] = fmt.Sprintf("notes-%02d.md", i+1)
	}
	d.Files = widgets.NewList("files", "Files", 6, items)

	profile := widgets.NewPanel("profile", widgets.Vertical).Add(d.Name, d.Email, d.Remember)
	profile.Title = "Profile"
	style := widgets.NewPanel("style", widgets.Horizontal).Add(d.Bold, d.Theme)
	style.Gap = 2
	buttons := widgets.NewPanel("buttons", widgets.Horizontal).Add(d.Save, d.Cancel)
	buttons.Gap = 2
	body := widgets.NewPanel("body", widgets.Vertical).Add(profile, d.Size, style, d.Files, buttons)
	d.Window = widgets.NewWindow("demo", "Preferences", body)
	return d
}

// Bind routes the demo's callbacks to out.
func (d *Demo) Bind(out Informer) {
	d.Save.OnClick = func() { out.SetInfo(d.Summary()) }
	d.Cancel.OnClick = func() {
		d.Name.SetValue("")
		d.Email.SetValue("")
		out.SetInfo("cleared")
	}
	d.Remember.OnChange = func(checked bool) {
		if checked {
			out.SetInfo("will remember you")
			return
		}
		out.SetInfo("will forget you")
	}
	d.Size.OnSelect = func(v string) { out.SetInfo("size " + strings.ToLower(v)) }
	d.Bold.OnChange = func(on bool) { out.SetInfo(fmt.Sprintf("bold %t", on)) }
	d.Theme.OnChange = func(v string) { out.SetInfo("theme " + v) }
	d.Files.OnActivate = func(_ int, item string) { out.SetInfo("opened " + item) }
}

// Summary describes the current form values.
func (d *Demo) Summary() string {
	name := d.Name.Value()
	if name == "" {
		name = "anonymous"
	}
	parts := []string{"saved " + name}
	if email := d.Email.Value(); email != "" {
		parts = append(parts, "<"+email+">")
	}
	parts = append(parts, "size "+strings.ToLower(d.Size.Value()), "theme "+d.Theme.Value())
	if d.Remember.Checked() {
		parts = append(parts, "remembered")
	}
	return strings.Join(parts, ", ")
}
