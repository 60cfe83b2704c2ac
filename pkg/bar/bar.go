// Package bar draws horizontal bar graphs out of eighth-block glyphs.
//
// The result is markup: when a color is given the filled cells are wrapped
// in [color]...[/color] so the bar can be embedded in text handed to a
// markup.Renderer.
package bar

import (
	"math"
	"strconv"

	"github.com/arthur-debert/ansiprint/pkg/markup"
)

// blocks[n] fills n eighths of a cell, left aligned. Every glyph is three
// bytes of UTF-8.
var blocks = [9]string{
	"",
	"▏", "▎", "▍", "▌",
	"▋", "▊", "▉", "█",
}

const blockLen = 3

// Composer builds bars, resolving color names against an attribute table.
type Composer struct {
	attrs *markup.AttrTable
}

// New returns a Composer for attrs. A nil table uses every attribute.
func New(attrs *markup.AttrTable) *Composer {
	if attrs == nil {
		attrs = markup.DefaultAttrs()
	}
	return &Composer{attrs: attrs}
}

var defaultComposer = New(nil)

// Render is Composer.Render on the default attribute table.
func Render(buf []byte, color string, width int, track Track, value, min, max float64) []byte {
	return defaultComposer.Render(buf, color, width, track, value, min, max)
}

// RenderPercent is Composer.RenderPercent on the default attribute table.
func RenderPercent(buf []byte, color string, width int, track Track, percent int) []byte {
	return defaultComposer.RenderPercent(buf, color, width, track, percent)
}

// Render writes a bar of width cells for value on the min..max scale into
// buf and returns the filled prefix. Nothing is written past len(buf): the
// color tags are emitted only if both fit, and blocks and track glyphs stop
// when space runs out. A degenerate range draws a full bar.
func (c *Composer) Render(buf []byte, color string, width int, track Track, value, min, max float64) []byte {
	if len(buf) == 0 || width < 1 {
		return buf[:0]
	}
	end := len(buf)
	n := 0

	fraction := 1.0
	if max != min {
		fraction = (value - min) / (max - min)
	}
	switch {
	case math.IsNaN(fraction) || fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}

	eighths := int(fraction*float64(width)*8 + 0.5)
	filled := (eighths + 7) / 8
	empty := width - filled

	colored := false
	if color != "" {
		if a := c.attrs.LookupString(color); a != nil && a.FG != "" {
			need := (len(color) + 2) + (len(color) + 3)
			if n+need <= end {
				n += copy(buf[n:], "[")
				n += copy(buf[n:], color)
				n += copy(buf[n:], "]")
				colored = true
			}
		}
	}

	blockEnd := end
	if colored {
		blockEnd -= len(color) + 3
	}
	for eighths > 0 && n+blockLen <= blockEnd {
		fill := eighths
		if fill > 8 {
			fill = 8
		}
		n += copy(buf[n:], blocks[fill])
		eighths -= fill
	}

	if colored {
		n += copy(buf[n:], "[/")
		n += copy(buf[n:], color)
		n += copy(buf[n:], "]")
	}

	glyph := track.Glyph()
	for i := 0; i < empty && n+len(glyph) <= end; i++ {
		n += copy(buf[n:], glyph)
	}
	return buf[:n]
}

// RenderPercent draws percent, clamped to 0..100, on a 0..100 scale and
// appends " N%" with whatever room is left.
func (c *Composer) RenderPercent(buf []byte, color string, width int, track Track, percent int) []byte {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	out := c.Render(buf, color, width, track, float64(percent), 0, 100)

	var suffix [6]byte
	s := append(suffix[:0], ' ')
	s = strconv.AppendInt(s, int64(percent), 10)
	s = append(s, '%')
	n := copy(buf[len(out):], s)
	return buf[:len(out)+n]
}
