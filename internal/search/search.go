// Package search implements search mode: an incremental query over the
// captions of every hintable target, jumping focus to the best match.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/atomicstack/hintnav/internal/collector"
	"github.com/atomicstack/hintnav/internal/keys"
	"github.com/atomicstack/hintnav/internal/logging/events"
	"github.com/atomicstack/hintnav/internal/widget"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PromptField is the status field the query is echoed into.
const PromptField = 0

// Host is the part of the window search needs.
type Host interface {
	widget.Tree
	widget.Focus
	widget.StatusSink
}

// Match is a target together with the caption it was matched on.
type Match struct {
	Target  collector.Target
	Caption string
}

// Search holds the query state for one window.
type Search struct {
	host       Host
	active     bool
	query      []rune
	cursor     int
	candidates []Match
	matches    []Match
	selected   int
}

func New(host Host) *Search {
	return &Search{host: host}
}

// Active reports whether search mode is showing.
func (s *Search) Active() bool {
	return s.active
}

// Query returns the current query text.
func (s *Search) Query() string {
	return string(s.query)
}

// Cursor returns the rune offset of the query cursor.
func (s *Search) Cursor() int {
	return s.cursor
}

// Matches returns the ranked matches for the current query.
func (s *Search) Matches() []Match {
	return append([]Match(nil), s.matches...)
}

// Selected returns the match Return would jump to.
func (s *Search) Selected() (Match, bool) {
	if s.selected < 0 || s.selected >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[s.selected], true
}

// Show snapshots the captions of the current tree and starts an empty query.
func (s *Search) Show() {
	s.active = true
	s.query = nil
	s.cursor = 0
	s.selected = 0
	s.candidates = s.collect()
	s.refresh()
	events.Search.Open()
}

// Hide clears the query and the prompt. It is safe to call when idle.
func (s *Search) Hide() {
	if !s.active {
		return
	}
	s.active = false
	s.query = nil
	s.cursor = 0
	s.candidates = nil
	s.matches = nil
	s.selected = 0
	s.host.SetStatus(PromptField, "")
	events.Search.Close()
}

// HandleKey edits the query. Return jumps to the selected match and reports
// done; Backspace on an empty query also ends the search.
func (s *Search) HandleKey(code keys.Code) (consumed, done bool) {
	if !s.active {
		return false, true
	}
	switch code {
	case keys.Return:
		s.jump()
		return true, true
	case keys.Backspace, keys.Delete:
		if len(s.query) == 0 {
			return true, true
		}
		s.deleteBackward()
		return true, false
	case keys.Left:
		if s.cursor > 0 {
			s.cursor--
			s.prompt()
		}
		return true, false
	case keys.Right:
		if s.cursor < len(s.query) {
			s.cursor++
			s.prompt()
		}
		return true, false
	case keys.Home:
		s.cursor = 0
		s.prompt()
		return true, false
	case keys.End:
		s.cursor = len(s.query)
		s.prompt()
		return true, false
	case keys.Tab, keys.Down:
		s.step(1)
		return true, false
	case keys.Up:
		s.step(-1)
		return true, false
	}
	if code.Printable() {
		s.insert(rune(code))
		return true, false
	}
	return false, false
}

func (s *Search) insert(r rune) {
	updated := make([]rune, 0, len(s.query)+1)
	updated = append(updated, s.query[:s.cursor]...)
	updated = append(updated, r)
	updated = append(updated, s.query[s.cursor:]...)
	s.query = updated
	s.cursor++
	s.refresh()
}

func (s *Search) deleteBackward() {
	if s.cursor == 0 {
		return
	}
	s.query = append(s.query[:s.cursor-1], s.query[s.cursor:]...)
	s.cursor--
	s.refresh()
}

// DeleteWordBackward removes the word before the cursor.
func (s *Search) DeleteWordBackward() bool {
	if s.cursor == 0 {
		return false
	}
	i := s.cursor
	for i > 0 && unicode.IsSpace(s.query[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(s.query[i-1]) {
		i--
	}
	s.query = append(s.query[:i], s.query[s.cursor:]...)
	s.cursor = i
	s.refresh()
	return true
}

func (s *Search) step(delta int) {
	if len(s.matches) == 0 {
		return
	}
	s.selected = (s.selected + delta + len(s.matches)) % len(s.matches)
}

func (s *Search) jump() {
	m, ok := s.Selected()
	if !ok {
		return
	}
	err := focusTarget(s.host, m.Target)
	if err != nil {
		events.Action.Error(err)
		return
	}
	events.Search.Jump(m.Target.Widget.ID(), s.Query())
}

func focusTarget(focus widget.Focus, t collector.Target) error {
	if t.IsRow() {
		if rows, ok := t.Widget.(widget.Rows); ok {
			if err := rows.SelectRow(t.Row); err != nil {
				return err
			}
		}
	}
	return focus.SetFocus(t.Widget)
}

func (s *Search) refresh() {
	s.matches = Rank(s.candidates, s.Query())
	s.selected = 0
	s.prompt()
	events.Search.Query(s.Query(), len(s.matches))
}

func (s *Search) prompt() {
	s.host.SetStatus(PromptField, "/"+s.Query())
}

func (s *Search) collect() []Match {
	targets := collector.Collect(s.host.Root(), collector.All)
	out := make([]Match, 0, len(targets))
	for _, t := range targets {
		caption := captionOf(t)
		if strings.TrimSpace(caption) == "" {
			continue
		}
		out = append(out, Match{Target: t, Caption: caption})
	}
	return out
}

func captionOf(t collector.Target) string {
	if t.IsRow() {
		if rc, ok := t.Widget.(widget.RowCaptioned); ok {
			return rc.RowCaption(t.Row)
		}
		return ""
	}
	if c, ok := t.Widget.(widget.Captioned); ok {
		return c.Caption()
	}
	return ""
}

// Rank orders candidates for query: exact captions first, then prefix
// matches, then substring matches, then fuzzy matches by distance. Ties keep
// collection order. An empty query matches everything in order.
func Rank(candidates []Match, query string) []Match {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Match(nil), candidates...)
	}
	lower := strings.ToLower(trimmed)
	captions := make([]string, len(candidates))
	for i, c := range candidates {
		captions[i] = c.Caption
	}
	distance := make(map[int]int, len(candidates))
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, captions) {
		distance[rank.OriginalIndex] = rank.Distance
	}

	type scored struct {
		index int
		tier  int
		dist  int
	}
	scores := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		captionLower := strings.ToLower(c.Caption)
		d, fuzzyHit := distance[i]
		switch {
		case strings.EqualFold(c.Caption, trimmed):
			scores = append(scores, scored{i, 0, d})
		case strings.HasPrefix(captionLower, lower):
			scores = append(scores, scored{i, 1, d})
		case strings.Contains(captionLower, lower):
			scores = append(scores, scored{i, 2, d})
		case fuzzyHit:
			scores = append(scores, scored{i, 3, d})
		}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].tier != scores[b].tier {
			return scores[a].tier < scores[b].tier
		}
		if scores[a].tier == 3 && scores[a].dist != scores[b].dist {
			return scores[a].dist < scores[b].dist
		}
		return scores[a].index < scores[b].index
	})
	out := make([]Match, len(scores))
	for i, sc := range scores {
		out[i] = candidates[sc.index]
	}
	return out
}
