package markup

// RGB is a 24-bit color used by gradient interpolation.
type RGB struct {
	R, G, B uint8
}

// Style is the set of SGR text styles currently switched on.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleInvert
	StyleStrike
)

// styleOrder is the order styles are re-emitted after a reset.
var styleOrder = [...]struct {
	bit  Style
	code string
}{
	{StyleBold, "\x1b[1m"},
	{StyleDim, "\x1b[2m"},
	{StyleItalic, "\x1b[3m"},
	{StyleUnderline, "\x1b[4m"},
	{StyleInvert, "\x1b[7m"},
	{StyleStrike, "\x1b[9m"},
}

// Has reports whether every bit of o is set in s.
func (s Style) Has(o Style) bool { return s&o == o && o != 0 }

// AttrKind distinguishes the three sorts of named attributes.
type AttrKind uint8

const (
	KindColor AttrKind = iota
	KindStyle
	KindEffect
)

func (k AttrKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindStyle:
		return "style"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Attr is one entry of the attribute table. Entries are static; pointers to
// them are stable for the life of the process and are used as identities by
// selective close tags.
type Attr struct {
	Name  string
	Kind  AttrKind
	FG    string // foreground escape, or the style escape for styles
	BG    string // background escape, colors only
	Style Style  // styles only
	RGB   RGB    // colors only
}

// IsColor reports whether the entry is a foreground/background color.
func (a *Attr) IsColor() bool { return a != nil && a.Kind == KindColor }

func color(name, fg, bg string, r, g, b uint8) Attr {
	return Attr{Name: name, Kind: KindColor, FG: fg, BG: bg, RGB: RGB{r, g, b}}
}

var standardColors = []Attr{
	color("black", "\x1b[30m", "\x1b[40m", 0, 0, 0),
	color("red", "\x1b[31m", "\x1b[41m", 255, 0, 0),
	color("green", "\x1b[32m", "\x1b[42m", 0, 205, 0),
	color("yellow", "\x1b[33m", "\x1b[43m", 255, 255, 0),
	color("blue", "\x1b[34m", "\x1b[44m", 0, 0, 255),
	color("magenta", "\x1b[35m", "\x1b[45m", 255, 0, 255),
	color("cyan", "\x1b[36m", "\x1b[46m", 0, 255, 255),
	color("white", "\x1b[37m", "\x1b[47m", 255, 255, 255),
}

var extendedColors = []Attr{
	color("orange", "\x1b[38;5;208m", "\x1b[48;5;208m", 255, 135, 0),
	color("pink", "\x1b[38;5;213m", "\x1b[48;5;213m", 255, 135, 255),
	color("purple", "\x1b[38;5;93m", "\x1b[48;5;93m", 135, 0, 255),
	color("brown", "\x1b[38;5;94m", "\x1b[48;5;94m", 135, 95, 0),
	color("teal", "\x1b[38;5;37m", "\x1b[48;5;37m", 0, 175, 175),
	color("lime", "\x1b[38;5;118m", "\x1b[48;5;118m", 135, 255, 0),
	color("navy", "\x1b[38;5;18m", "\x1b[48;5;18m", 0, 0, 135),
	color("olive", "\x1b[38;5;100m", "\x1b[48;5;100m", 135, 135, 0),
	color("maroon", "\x1b[38;5;52m", "\x1b[48;5;52m", 95, 0, 0),
	color("aqua", "\x1b[38;5;51m", "\x1b[48;5;51m", 0, 255, 255),
	color("silver", "\x1b[38;5;250m", "\x1b[48;5;250m", 188, 188, 188),
	color("gray", "\x1b[38;5;244m", "\x1b[48;5;244m", 128, 128, 128),
}

var brightColors = []Attr{
	color("bright_black", "\x1b[90m", "\x1b[100m", 128, 128, 128),
	color("bright_red", "\x1b[91m", "\x1b[101m", 255, 85, 85),
	color("bright_green", "\x1b[92m", "\x1b[102m", 85, 255, 85),
	color("bright_yellow", "\x1b[93m", "\x1b[103m", 255, 255, 85),
	color("bright_blue", "\x1b[94m", "\x1b[104m", 85, 85, 255),
	color("bright_magenta", "\x1b[95m", "\x1b[105m", 255, 85, 255),
	color("bright_cyan", "\x1b[96m", "\x1b[106m", 85, 255, 255),
	color("bright_white", "\x1b[97m", "\x1b[107m", 255, 255, 255),
}

var styleAttrs = []Attr{
	{Name: "bold", Kind: KindStyle, FG: "\x1b[1m", Style: StyleBold},
	{Name: "dim", Kind: KindStyle, FG: "\x1b[2m", Style: StyleDim},
	{Name: "italic", Kind: KindStyle, FG: "\x1b[3m", Style: StyleItalic},
	{Name: "underline", Kind: KindStyle, FG: "\x1b[4m", Style: StyleUnderline},
	{Name: "invert", Kind: KindStyle, FG: "\x1b[7m", Style: StyleInvert},
	{Name: "strikethrough", Kind: KindStyle, FG: "\x1b[9m", Style: StyleStrike},
}

var effectAttrs = []Attr{
	{Name: "rainbow", Kind: KindEffect},
}

// AttrTable is the immutable name registry a Renderer resolves tag words
// against.
type AttrTable struct {
	groups [][]Attr
}

// NewAttrTable assembles the groups enabled by f. The standard colors are
// always present.
func NewAttrTable(f Features) *AttrTable {
	t := &AttrTable{groups: [][]Attr{standardColors}}
	if f.ExtendedColors {
		t.groups = append(t.groups, extendedColors)
	}
	if f.BrightColors {
		t.groups = append(t.groups, brightColors)
	}
	if f.Styles {
		t.groups = append(t.groups, styleAttrs)
	}
	if f.Gradients {
		t.groups = append(t.groups, effectAttrs)
	}
	return t
}

var defaultAttrs = NewAttrTable(AllFeatures())

// DefaultAttrs returns the table with every group enabled.
func DefaultAttrs() *AttrTable { return defaultAttrs }

// Lookup finds an entry by exact, case-sensitive name. The length check
// runs before any byte comparison.
func (t *AttrTable) Lookup(name []byte) *Attr {
	for _, g := range t.groups {
		for i := range g {
			if len(name) == len(g[i].Name) && string(name) == g[i].Name {
				return &g[i]
			}
		}
	}
	return nil
}

// LookupString is Lookup for string callers.
func (t *AttrTable) LookupString(name string) *Attr {
	for _, g := range t.groups {
		for i := range g {
			if len(name) == len(g[i].Name) && name == g[i].Name {
				return &g[i]
			}
		}
	}
	return nil
}

// All lists the entries in table order.
func (t *AttrTable) All() []*Attr {
	var out []*Attr
	for _, g := range t.groups {
		for i := range g {
			out = append(out, &g[i])
		}
	}
	return out
}
