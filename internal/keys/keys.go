// Package keys defines the raw key codes the navigation core consumes. A code
// is the character value for printable keys and a small fixed value for the
// handful of special keys the core cares about.
package keys

import "unicode"

// Code is a raw key code as delivered by the host.
type Code int

const (
	None      Code = 0
	Backspace Code = 8
	Tab       Code = 9
	Return    Code = 13
	Escape    Code = 27
	Space     Code = 32
	Delete    Code = 127

	// Codes at and above this value are non-printable navigation keys.
	specialBase Code = 0x110000
	Up               = specialBase + iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
)

// Rune builds a code for a printable character.
func Rune(r rune) Code {
	return Code(r)
}

// Letter maps a code to a lower-case ASCII letter. A-Z are folded; anything
// else reports false.
func (c Code) Letter() (rune, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return rune(c), true
	case c >= 'A' && c <= 'Z':
		return rune(c + 32), true
	}
	return 0, false
}

// Printable reports whether the code is a printable character.
func (c Code) Printable() bool {
	if c < Space || c >= specialBase || c == Delete {
		return false
	}
	return unicode.IsPrint(rune(c))
}

// String returns the command string used for binding lookup: named special
// keys, lower-cased printable ASCII, or "" for anything else.
func (c Code) String() string {
	switch c {
	case Escape:
		return "Escape"
	case Return:
		return "Return"
	case Tab:
		return "Tab"
	case Space:
		return "Space"
	case '/':
		return "/"
	}
	if c > Space && c <= '~' {
		return string(unicode.ToLower(rune(c)))
	}
	return ""
}
