// Package ui contains the Bubble Tea program that hosts one navigable window.
// Model owns the screen, the modal dispatcher and the search, and keeps
// Update small by routing each tea.Msg through a typed handler registry.
//
// Message flow:
//   - Key presses are converted to raw key codes and offered to the
//     dispatcher first. Keys it does not consume are delivered to the focused
//     widget, and Tab or Shift+Tab then move focus when nothing handled them.
//   - Bindings run through the command bus (internal/ui/command). Their
//     results come back as ActionResult messages and are applied inside
//     Update, so widget state is only touched from the program goroutine.
//   - Deferred tasks scheduled by the dispatcher are tea.Tick commands; the
//     resulting message runs the task in a later Update.
//
// Backend interactions:
//   - A backend.Watcher reports edits to the binding file. Update waits for
//     its events and swaps the reloaded bindings in, keeping the previous set
//     when the file does not load.
package ui
