package keys

import "testing"

func TestLetterFoldsUpperCase(t *testing.T) {
	if r, ok := Rune('A').Letter(); !ok || r != 'a' {
		t.Fatalf("expected A to fold to a, got %q/%v", r, ok)
	}
	if r, ok := Rune('z').Letter(); !ok || r != 'z' {
		t.Fatalf("expected z, got %q/%v", r, ok)
	}
	if _, ok := Rune('1').Letter(); ok {
		t.Fatalf("expected digits to be rejected")
	}
	if _, ok := Escape.Letter(); ok {
		t.Fatalf("expected escape to be rejected")
	}
}

func TestStringCommandNames(t *testing.T) {
	cases := map[Code]string{
		Escape:    "Escape",
		Return:    "Return",
		Tab:       "Tab",
		Space:     "Space",
		Rune('/'): "/",
		Rune('F'): "f",
		Rune('?'): "?",
		Up:        "",
		Rune('é'): "",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("expected %q for code %d, got %q", want, code, got)
		}
	}
}

func TestPrintable(t *testing.T) {
	if !Rune('x').Printable() {
		t.Fatalf("expected x to be printable")
	}
	if !Rune('é').Printable() {
		t.Fatalf("expected é to be printable")
	}
	if Escape.Printable() || Down.Printable() || Delete.Printable() {
		t.Fatalf("expected control and navigation keys to be non-printable")
	}
}
