package banner

import (
	"github.com/mattn/go-runewidth"
)

// Window is a box whose body lines are printed one at a time, for output
// that is produced incrementally.
type Window struct {
	p     *Printer
	width int
	fg    string
}

// Window draws the top border, and the title row with a separator when
// title is not empty, and returns the open window. The title is plain
// text measured in display cells and cut to fit.
func (p *Printer) Window(color string, width int, align Align, title string) *Window {
	if width < 1 {
		width = 1
	}
	w := &Window{p: p, width: width, fg: p.r.ColorCode(color)}

	p.color(w.fg)
	p.r.WriteRaw(p.box.TopLeft)
	p.horizontal(p.box.Top, width)
	p.r.WriteRaw(p.box.TopRight)
	p.reset(w.fg)
	p.r.RawByte('\n')

	if title != "" {
		w.title(title, align)
		p.color(w.fg)
		p.r.WriteRaw(p.box.MiddleLeft)
		p.horizontal(p.box.Top, width)
		p.r.WriteRaw(p.box.MiddleRight)
		p.reset(w.fg)
		p.r.RawByte('\n')
	}
	return w
}

func (w *Window) title(title string, align Align) {
	p := w.p
	if runewidth.StringWidth(title) > w.width {
		title = runewidth.Truncate(title, w.width, "")
	}
	left, right := align.padding(w.width, runewidth.StringWidth(title))

	p.color(w.fg)
	p.r.WriteRaw(p.box.Left)
	p.spaces(1 + left)
	p.r.WriteRaw(title)
	p.spaces(right + 1)
	p.r.WriteRaw(p.box.Right)
	p.reset(w.fg)
	p.r.RawByte('\n')
}

// Width is the number of content cells per row.
func (w *Window) Width() int { return w.width }

// Line formats one markup row into the renderer's buffer and prints it
// between the borders, cut to the window width. It does not flush.
func (w *Window) Line(align Align, format string, args ...interface{}) error {
	p := w.p
	text, err := p.r.Format(format, args...)
	if err != nil {
		return err
	}
	used := p.r.CountVisible(text)
	if used > w.width {
		used = w.width
	}
	left, right := align.padding(w.width, used)

	p.color(w.fg)
	p.r.WriteRaw(p.box.Left)
	p.r.RawByte(' ')
	p.reset(w.fg)
	p.spaces(left)
	p.r.EmitBounded(text, used)
	p.spaces(right)
	p.color(w.fg)
	p.r.RawByte(' ')
	p.r.WriteRaw(p.box.Right)
	p.reset(w.fg)
	p.r.RawByte('\n')
	return nil
}

// End draws the bottom border and flushes.
func (w *Window) End() {
	p := w.p
	p.color(w.fg)
	p.r.WriteRaw(p.box.BottomLeft)
	p.horizontal(p.box.Bottom, w.width)
	p.r.WriteRaw(p.box.BottomRight)
	p.reset(w.fg)
	p.r.RawByte('\n')
	p.r.Flush()
}
