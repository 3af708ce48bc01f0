package search

import (
	"testing"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/testutil"
	"github.com/atomicstack/hintnav/internal/widget"
)

func newSearchWindow() (*testutil.Host, *testutil.Fake, *testutil.Fake, *testutil.Fake) {
	save := testutil.Button("Save")
	saveAs := testutil.Button("Save as")
	files := testutil.List("files", 0, 1, 2)
	files.RowText = map[int]string{0: "main.go", 1: "readme.md", 2: "save.txt"}
	root := testutil.Panel("window", saveAs, save, testutil.TextBox("name"), files)
	testutil.Stack(root, 0, 0)
	return testutil.NewHost(root), save, saveAs, files
}

func typeQuery(s *Search, q string) {
	for _, r := range q {
		s.HandleKey(keys.Rune(r))
	}
}

func captions(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Caption
	}
	return out
}

func TestShowCollectsCaptionedTargets(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	got := captions(s.Matches())
	want := []string{"Save as", "Save", "main.go", "readme.md", "save.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if host.Status[PromptField] != "/" {
		t.Fatalf("expected empty prompt, got %q", host.Status[PromptField])
	}
}

func TestQueryRanksExactBeforePrefix(t *testing.T) {
	host, save, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	typeQuery(s, "save")
	got := captions(s.Matches())
	if len(got) != 3 || got[0] != "Save" || got[1] != "Save as" || got[2] != "save.txt" {
		t.Fatalf("unexpected ranking %v", got)
	}
	if host.Status[PromptField] != "/save" {
		t.Fatalf("expected prompt echo, got %q", host.Status[PromptField])
	}

	consumed, done := s.HandleKey(keys.Return)
	if !consumed || !done {
		t.Fatalf("expected return to finish the search")
	}
	if host.Focus != widget.Widget(save) {
		t.Fatalf("expected focus on Save, got %v", host.Focus)
	}
}

func TestFuzzyMatchAndRowJump(t *testing.T) {
	host, _, _, files := newSearchWindow()
	s := New(host)
	s.Show()
	typeQuery(s, "rdme")
	m, ok := s.Selected()
	if !ok || m.Caption != "readme.md" {
		t.Fatalf("expected fuzzy match on readme.md, got %#v", m)
	}
	s.HandleKey(keys.Return)
	if files.SelectedRow != 1 || host.Focus != widget.Widget(files) {
		t.Fatalf("expected row 1 selected and list focused")
	}
	if len(files.Activated) != 0 {
		t.Fatalf("expected search to select without activating")
	}
}

func TestTabCyclesMatches(t *testing.T) {
	host, _, saveAs, _ := newSearchWindow()
	s := New(host)
	s.Show()
	typeQuery(s, "save")
	s.HandleKey(keys.Tab)
	if m, _ := s.Selected(); m.Target.Widget != widget.Widget(saveAs) {
		t.Fatalf("expected second match selected, got %q", m.Caption)
	}
	s.HandleKey(keys.Up)
	s.HandleKey(keys.Up)
	if m, _ := s.Selected(); m.Caption != "save.txt" {
		t.Fatalf("expected wrap to last match, got %q", m.Caption)
	}
}

func TestEditingQuery(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	typeQuery(s, "sve")
	s.HandleKey(keys.Left)
	s.HandleKey(keys.Rune('a'))
	if s.Query() != "svae" || s.Cursor() != 3 {
		t.Fatalf("unexpected query state %q/%d", s.Query(), s.Cursor())
	}
	s.HandleKey(keys.Backspace)
	s.HandleKey(keys.Left)
	s.HandleKey(keys.Rune('a'))
	if s.Query() != "save" {
		t.Fatalf("expected save, got %q", s.Query())
	}
	s.HandleKey(keys.End)
	typeQuery(s, " as")
	if !s.DeleteWordBackward() || s.Query() != "save " {
		t.Fatalf("expected word deleted, got %q", s.Query())
	}
}

func TestBackspaceOnEmptyQueryEnds(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	if consumed, done := s.HandleKey(keys.Backspace); !consumed || !done {
		t.Fatalf("expected backspace on empty query to end search")
	}
}

func TestNoMatchReturnKeepsFocus(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	typeQuery(s, "zzzz")
	if len(s.Matches()) != 0 {
		t.Fatalf("expected no matches, got %v", captions(s.Matches()))
	}
	if _, done := s.HandleKey(keys.Return); !done {
		t.Fatalf("expected return to finish")
	}
	if host.Focus != nil {
		t.Fatalf("expected focus untouched")
	}
}

func TestUnhandledKeysPassThrough(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Show()
	if consumed, _ := s.HandleKey(keys.PageDown); consumed {
		t.Fatalf("expected page down passed through")
	}
}

func TestHideClearsPrompt(t *testing.T) {
	host, _, _, _ := newSearchWindow()
	s := New(host)
	s.Hide()
	s.Show()
	typeQuery(s, "sa")
	s.Hide()
	s.Hide()
	if s.Active() || s.Query() != "" || host.Status[PromptField] != "" {
		t.Fatalf("expected search state cleared")
	}
}

func TestRankEmptyQueryKeepsOrder(t *testing.T) {
	in := []Match{
		{Target: collector.Target{Row: -1}, Caption: "b"},
		{Target: collector.Target{Row: -1}, Caption: "a"},
	}
	out := Rank(in, "  ")
	if out[0].Caption != "b" || out[1].Caption != "a" {
		t.Fatalf("expected collection order, got %v", captions(out))
	}
}
