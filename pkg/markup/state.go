package markup

import "strconv"

const (
	// Reset clears every SGR attribute.
	Reset = "\x1b[0m"

	fgIndexed = "\x1b[38;5;"
	bgIndexed = "\x1b[48;5;"
	fgRGB     = "\x1b[38;2;"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorIndexed
)

// Color is an active foreground or background: unset, a named table
// entry, or a 256-color palette index. The zero value is unset.
type Color struct {
	kind  colorKind
	attr  *Attr
	index uint8
}

// Named wraps a color entry from an AttrTable.
func Named(a *Attr) Color {
	if !a.IsColor() {
		return Color{}
	}
	return Color{kind: colorNamed, attr: a}
}

// Indexed selects a 256-color palette entry.
func Indexed(n uint8) Color { return Color{kind: colorIndexed, index: n} }

// IsZero reports whether no color is set.
func (c Color) IsZero() bool { return c.kind == colorNone }

// Attr returns the named entry, or nil for unset and indexed colors.
func (c Color) Attr() *Attr { return c.attr }

// Index returns the palette index of an indexed color.
func (c Color) Index() (uint8, bool) { return c.index, c.kind == colorIndexed }

// AppendFG appends the foreground escape for c to dst.
func (c Color) AppendFG(dst []byte) []byte {
	switch c.kind {
	case colorNamed:
		return append(dst, c.attr.FG...)
	case colorIndexed:
		return appendLevel(dst, fgIndexed, c.index)
	}
	return dst
}

// AppendBG appends the background escape for c to dst.
func (c Color) AppendBG(dst []byte) []byte {
	switch c.kind {
	case colorNamed:
		return append(dst, c.attr.BG...)
	case colorIndexed:
		return appendLevel(dst, bgIndexed, c.index)
	}
	return dst
}

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.attr.Name
	case colorIndexed:
		return "color(" + strconv.Itoa(int(c.index)) + ")"
	}
	return "none"
}

func appendLevel(dst []byte, prefix string, n uint8) []byte {
	dst = append(dst, prefix...)
	dst = strconv.AppendUint(dst, uint64(n), 10)
	return append(dst, 'm')
}

func appendRGB(dst []byte, c RGB) []byte {
	dst = append(dst, fgRGB...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm')
}

// TagState is the single active foreground, background and style set. Tags
// overwrite it; they do not nest.
type TagState struct {
	FG     Color
	BG     Color
	Styles Style
}

// IsZero reports whether nothing is set.
func (s TagState) IsZero() bool { return s == TagState{} }

// parseLevel reads the number after a "fg:" or "bg:" prefix the way strtol
// does: optional sign, then digits up to the first non-digit. At least one
// digit is required. The result is clamped to 0..255.
func parseLevel(word []byte, prefix string) (uint8, bool) {
	if len(word) <= len(prefix) || string(word[:len(prefix)]) != prefix {
		return 0, false
	}
	b := word[len(prefix):]
	neg := false
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		neg = b[0] == '-'
		b = b[1:]
	}
	n, digits := 0, 0
	for _, c := range b {
		if c < '0' || c > '9' {
			break
		}
		digits++
		if n <= 255 {
			n = n*10 + int(c-'0')
		}
	}
	switch {
	case digits == 0:
		return 0, false
	case neg:
		return 0, true
	case n > 255:
		return 255, true
	}
	return uint8(n), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// nextWord returns the first whitespace-delimited word of b and what
// follows it. word is empty when b holds only whitespace.
func nextWord(b []byte) (word, rest []byte) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	j := i
	for j < len(b) && !isSpace(b[j]) {
		j++
	}
	return b[i:j], b[j:]
}

func trimSpace(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

// splitOn splits a tag body at the first " on " into its foreground and
// background halves. bg is nil when there is no separator.
func splitOn(body []byte) (fg, bg []byte) {
	for i := 0; i+4 <= len(body); i++ {
		if body[i] == ' ' && body[i+1] == 'o' && body[i+2] == 'n' && body[i+3] == ' ' {
			return body[:i], body[i+4:]
		}
	}
	return body, nil
}
