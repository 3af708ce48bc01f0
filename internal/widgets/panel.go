package widgets

import (
	"strings"

	"github.com/atomicstack/hintnav/internal/widget"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Direction is the axis a panel stacks its children along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Panel is a container that stacks its children.
type Panel struct {
	base
	Dir   Direction
	Gap   int
	Title string
	kids  []Element
}

func NewPanel(id string, dir Direction) *Panel {
	return &Panel{base: newBase(id, 0), Dir: dir}
}

// Add appends children and returns the panel for chaining.
func (p *Panel) Add(children ...Element) *Panel {
	p.kids = append(p.kids, children...)
	return p
}

// Remove detaches child from the panel. It reports whether it was found.
func (p *Panel) Remove(child Element) bool {
	for i, k := range p.kids {
		if k == child {
			p.kids = append(p.kids[:i], p.kids[i+1:]...)
			return true
		}
	}
	return false
}

// Elements returns the panel's children.
func (p *Panel) Elements() []Element {
	return append([]Element(nil), p.kids...)
}

func (p *Panel) Children() []widget.Widget {
	out := make([]widget.Widget, len(p.kids))
	for i, k := range p.kids {
		out[i] = k
	}
	return out
}

func (p *Panel) shownKids() []Element {
	out := make([]Element, 0, len(p.kids))
	for _, k := range p.kids {
		if k.Shown() {
			out = append(out, k)
		}
	}
	return out
}

func (p *Panel) titleRows() int {
	if p.Title == "" {
		return 0
	}
	return 1
}

func (p *Panel) Measure(maxWidth int) (int, int) {
	kids := p.shownKids()
	w, h := 0, p.titleRows()
	if p.Title != "" {
		w = runewidth.StringWidth(p.Title)
	}
	switch p.Dir {
	case Horizontal:
		row, tallest := 0, 0
		for i, k := range kids {
			if i > 0 {
				row += p.Gap
			}
			kw, kh := k.Measure(maxWidth - row)
			row += kw
			if kh > tallest {
				tallest = kh
			}
		}
		if row > w {
			w = row
		}
		h += tallest
	default:
		for i, k := range kids {
			if i > 0 {
				h += p.Gap
			}
			kw, kh := k.Measure(maxWidth)
			if kw > w {
				w = kw
			}
			h += kh
		}
	}
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w, h
}

func (p *Panel) Layout(r widget.Rect) {
	p.base.Layout(r)
	x, y := r.X, r.Y+p.titleRows()
	for i, k := range p.shownKids() {
		switch p.Dir {
		case Horizontal:
			if i > 0 {
				x += p.Gap
			}
			remaining := r.X + r.W - x
			kw, kh := k.Measure(remaining)
			if kw > remaining {
				kw = remaining
			}
			k.Layout(widget.Rect{X: x, Y: y, W: kw, H: kh})
			x += kw
		default:
			if i > 0 {
				y += p.Gap
			}
			_, kh := k.Measure(r.W)
			k.Layout(widget.Rect{X: r.X, Y: y, W: r.W, H: kh})
			y += kh
		}
	}
}

func (p *Panel) Render(focused widget.Widget) string {
	lines := make([]string, 0, p.rect.H)
	if p.Title != "" {
		lines = append(lines, styles.PanelTitle.Render(caption(p.Title, p.rect.W)))
	}
	kids := p.shownKids()
	switch p.Dir {
	case Horizontal:
		blocks := make([][]string, len(kids))
		tallest := 0
		for i, k := range kids {
			r, err := k.ScreenRect()
			if err != nil {
				continue
			}
			blocks[i] = strings.Split(fit(k.Render(focused), r.W, r.H), "\n")
			if r.H > tallest {
				tallest = r.H
			}
		}
		for row := 0; row < tallest; row++ {
			var b strings.Builder
			for i, block := range blocks {
				if i > 0 && p.Gap > 0 {
					b.WriteString(strings.Repeat(" ", p.Gap))
				}
				if row < len(block) {
					b.WriteString(block[row])
				} else if len(block) > 0 {
					b.WriteString(strings.Repeat(" ", ansi.StringWidth(block[0])))
				}
			}
			lines = append(lines, b.String())
		}
	default:
		for i, k := range kids {
			if i > 0 {
				for g := 0; g < p.Gap; g++ {
					lines = append(lines, "")
				}
			}
			r, err := k.ScreenRect()
			if err != nil {
				continue
			}
			lines = append(lines, fit(k.Render(focused), r.W, r.H))
		}
	}
	return fit(strings.Join(lines, "\n"), p.rect.W, p.rect.H)
}

// Window is the root of a tree: a bordered frame around a body panel.
type Window struct {
	base
	Title string
	Body  *Panel
}

func NewWindow(id, title string, body *Panel) *Window {
	return &Window{base: newBase(id, 0), Title: title, Body: body}
}

func (w *Window) Children() []widget.Widget {
	if w.Body == nil {
		return nil
	}
	return []widget.Widget{w.Body}
}

func (w *Window) Measure(maxWidth int) (int, int) {
	if w.Body == nil {
		return 2, 2
	}
	bw, bh := w.Body.Measure(maxWidth - 2)
	return bw + 2, bh + 2
}

// Inner is the content rectangle inside the border.
func (w *Window) Inner() widget.Rect {
	return widget.Rect{X: w.rect.X + 1, Y: w.rect.Y + 1, W: w.rect.W - 2, H: w.rect.H - 2}
}

func (w *Window) Layout(r widget.Rect) {
	w.base.Layout(r)
	if w.Body != nil {
		w.Body.Layout(w.Inner())
	}
}

func (w *Window) Render(focused widget.Widget) string {
	inner := w.Inner()
	if inner.W <= 0 || inner.H <= 0 {
		return ""
	}
	content := ""
	if w.Body != nil {
		content = w.Body.Render(focused)
	}
	framed := styles.WindowBorder.Render(fit(content, inner.W, inner.H))
	if w.Title == "" {
		return framed
	}
	lines := strings.Split(framed, "\n")
	title := " " + caption(w.Title, inner.W-2) + " "
	top := lines[0]
	tw := ansi.StringWidth(title)
	lines[0] = ansi.Truncate(top, 2, "") + styles.WindowTitle.Render(title) + ansi.TruncateLeft(top, 2+tw, "")
	return strings.Join(lines, "\n")
}
