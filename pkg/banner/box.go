package banner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/ansiprint/pkg/errors"
)

// BoxStyle picks the border glyph set.
type BoxStyle int

const (
	BoxDouble BoxStyle = iota
	BoxLight
	BoxHeavy
	BoxRounded
)

var boxStyles = [...]struct {
	name   string
	border lipgloss.Border
}{
	BoxDouble:  {"double", lipgloss.DoubleBorder()},
	BoxLight:   {"light", lipgloss.NormalBorder()},
	BoxHeavy:   {"heavy", lipgloss.ThickBorder()},
	BoxRounded: {"rounded", lipgloss.RoundedBorder()},
}

func (s BoxStyle) String() string {
	if s < 0 || int(s) >= len(boxStyles) {
		return boxStyles[BoxDouble].name
	}
	return boxStyles[s].name
}

// Border returns the lipgloss border the style draws with. Unknown styles
// fall back to double.
func (s BoxStyle) Border() lipgloss.Border {
	if s < 0 || int(s) >= len(boxStyles) {
		return boxStyles[BoxDouble].border
	}
	return boxStyles[s].border
}

// MarshalText encodes the style as its name.
func (s BoxStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name as ParseBoxStyle does.
func (s *BoxStyle) UnmarshalText(text []byte) error {
	v, err := ParseBoxStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BoxStyles lists every style in declaration order.
func BoxStyles() []BoxStyle {
	out := make([]BoxStyle, len(boxStyles))
	for i := range boxStyles {
		out[i] = BoxStyle(i)
	}
	return out
}

// ParseBoxStyle accepts a style name case-insensitively. "normal" and
// "thick" are accepted as lipgloss spells them.
func ParseBoxStyle(s string) (BoxStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "normal":
		return BoxLight, nil
	case "thick":
		return BoxHeavy, nil
	}
	for i, b := range boxStyles {
		if b.name == name {
			return BoxStyle(i), nil
		}
	}
	return BoxDouble, errors.Newf(errors.ErrUnknownBox, "unknown box style %q", s).
		WithDetail("style", s)
}

// Align places text inside a box row.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign accepts left, center (or centre) and right.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, errors.Newf(errors.ErrUnknownAlign, "unknown alignment %q", s).
		WithDetail("align", s)
}

// padding splits the free space of a row of width cells holding used
// cells of content.
func (a Align) padding(width, used int) (left, right int) {
	pad := width - used
	if pad < 0 {
		pad = 0
	}
	switch a {
	case AlignCenter:
		left = pad / 2
	case AlignRight:
		left = pad
	}
	return left, pad - left
}
