// Package banner draws boxed text on top of a markup.Renderer: one-shot
// banners and streaming windows whose lines arrive one at a time.
package banner

import (
	"bytes"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/ansiprint/pkg/markup"
)

// Printer draws boxes through a Renderer, sharing its sink, color switch
// and format buffer.
type Printer struct {
	r   *markup.Renderer
	box lipgloss.Border
}

// New returns a Printer drawing with the given box style.
func New(r *markup.Renderer, style BoxStyle) *Printer {
	return &Printer{r: r, box: style.Border()}
}

// Banner formats text into the renderer's buffer and prints it inside a
// box, one row per line. Rows are markup; text wider than the box is cut.
// A width of zero or less sizes the box to the widest line. color names
// the border color and may be empty.
func (p *Printer) Banner(color string, width int, align Align, format string, args ...interface{}) error {
	text, err := p.r.Format(format, args...)
	if err != nil {
		return err
	}

	if width <= 0 {
		width = p.widest(text)
	}
	if width < 1 {
		width = 1
	}

	fg := p.r.ColorCode(color)
	p.color(fg)
	p.rule(p.box.TopLeft, p.box.TopRight, width)

	for rest := text; ; {
		line, next, more := cutLine(rest)
		used := p.r.CountVisible(line)
		if used > width {
			used = width
		}
		left, right := align.padding(width, used)

		p.r.WriteRaw(p.box.Left)
		p.spaces(1 + left)
		p.r.EmitBounded(line, used)
		p.color(fg)
		p.spaces(right + 1)
		p.r.WriteRaw(p.box.Right)
		p.r.RawByte('\n')

		if !more || len(next) == 0 {
			break
		}
		rest = next
	}

	p.r.WriteRaw(p.box.BottomLeft)
	p.horizontal(p.box.Bottom, width)
	p.r.WriteRaw(p.box.BottomRight)
	p.reset(fg)
	p.r.RawByte('\n')
	p.r.Flush()
	return nil
}

func (p *Printer) widest(text []byte) int {
	w := 0
	for rest := text; len(rest) > 0; {
		var line []byte
		line, rest, _ = cutLine(rest)
		if n := p.r.CountVisible(line); n > w {
			w = n
		}
	}
	return w
}

// cutLine splits off the first line of text. more is false when text held
// no newline.
func cutLine(text []byte) (line, rest []byte, more bool) {
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		return text[:i], text[i+1:], true
	}
	return text, nil, false
}

func (p *Printer) color(fg string) {
	if fg != "" && p.r.Enabled() {
		p.r.WriteRaw(fg)
	}
}

func (p *Printer) reset(fg string) {
	if fg != "" && p.r.Enabled() {
		p.r.WriteRaw(markup.Reset)
	}
}

func (p *Printer) spaces(n int) {
	for i := 0; i < n; i++ {
		p.r.RawByte(' ')
	}
}

func (p *Printer) horizontal(glyph string, width int) {
	for i := 0; i < width+2; i++ {
		p.r.WriteRaw(glyph)
	}
}

// rule draws a full-width border line between two corner glyphs.
func (p *Printer) rule(left, right string, width int) {
	p.r.WriteRaw(left)
	p.horizontal(p.box.Top, width)
	p.r.WriteRaw(right)
	p.r.RawByte('\n')
}
