package markup

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrLookup(t *testing.T) {
	all := NewAttrTable(AllFeatures())
	minimal := NewAttrTable(MinimalFeatures())

	tests := []struct {
		name    string
		table   *AttrTable
		lookup  string
		found   bool
		kind    AttrKind
		fgEsc   string
		rgbWant RGB
	}{
		{"standard color", minimal, "red", true, KindColor, "\x1b[31m", RGB{255, 0, 0}},
		{"extended color", all, "orange", true, KindColor, "\x1b[38;5;208m", RGB{255, 135, 0}},
		{"bright color", all, "bright_blue", true, KindColor, "\x1b[94m", RGB{85, 85, 255}},
		{"style", all, "strikethrough", true, KindStyle, "\x1b[9m", RGB{}},
		{"effect", all, "rainbow", true, KindEffect, "", RGB{}},
		{"case sensitive", all, "Red", false, 0, "", RGB{}},
		{"prefix is not a match", all, "re", false, 0, "", RGB{}},
		{"extended gated", minimal, "orange", false, 0, "", RGB{}},
		{"styles gated", minimal, "bold", false, 0, "", RGB{}},
		{"effects gated", minimal, "rainbow", false, 0, "", RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.table.Lookup([]byte(tt.lookup))
			assert.Equal(t, a, tt.table.LookupString(tt.lookup))
			if !tt.found {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, tt.kind, a.Kind)
			assert.Equal(t, tt.fgEsc, a.FG)
			assert.Equal(t, tt.rgbWant, a.RGB)
		})
	}
}

func TestAttrTableSizes(t *testing.T) {
	assert.Len(t, NewAttrTable(MinimalFeatures()).All(), 8)
	assert.Len(t, NewAttrTable(AllFeatures()).All(), 8+12+8+6+1)
}

func TestAttrNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range DefaultAttrs().All() {
		assert.False(t, seen[a.Name], "duplicate %s", a.Name)
		seen[a.Name] = true
	}
}

func TestEmojiTable(t *testing.T) {
	assert.Nil(t, NewEmojiTable(MinimalFeatures()))
	assert.Nil(t, (*EmojiTable)(nil).LookupShortcode([]byte("fire")))

	core := NewEmojiTable(Features{Emoji: true})
	assert.Equal(t, len(coreEmoji), core.Len())
	assert.NotNil(t, core.LookupShortcode([]byte("Check")))
	assert.Nil(t, core.LookupShortcode([]byte("tada")))

	full := DefaultEmoji()
	assert.NotNil(t, full.LookupShortcode([]byte("TADA")))
	assert.Nil(t, full.LookupShortcode([]byte("fir")))
}

func TestEmojiEntriesWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range DefaultEmoji().All() {
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		assert.True(t, utf8.ValidString(e.UTF8), e.Name)
		assert.Contains(t, []int{1, 2}, e.Width, e.Name)
		for i := 0; i < len(e.Name); i++ {
			c := e.Name[i]
			assert.True(t, c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'), e.Name)
		}
	}
}

func TestEmojiBytes(t *testing.T) {
	tests := map[string]string{
		"fire":  "\xF0\x9F\x94\xA5",
		"check": "\xE2\x9C\x85",
		"cross": "\xE2\x9D\x8C",
	}
	for name, want := range tests {
		e := DefaultEmoji().LookupShortcode([]byte(name))
		require.NotNil(t, e, name)
		assert.Equal(t, want, e.UTF8, name)
	}
}

func TestParseCodepoint(t *testing.T) {
	tests := []struct {
		hex string
		cp  rune
		ok  bool
	}{
		{"41", 0x41, true},
		{"2764", 0x2764, true},
		{"1f600", 0x1F600, true},
		{"10FFFF", 0x10FFFF, true},
		{"0", 0, false},
		{"110000", 0, false},
		{"D800", 0, false},
		{"DFFF", 0, false},
		{"1234567", 0, false},
		{"", 0, false},
		{"12G4", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			cp, ok := ParseCodepoint([]byte(tt.hex))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cp, cp)
		})
	}
}

func TestEncodeUTF8Lengths(t *testing.T) {
	tests := []struct {
		cp rune
		n  int
	}{
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x10FFFF, 4},
	}
	for _, tt := range tests {
		buf, n := EncodeUTF8(tt.cp)
		assert.Equal(t, tt.n, n, "%U", tt.cp)
		r, size := utf8.DecodeRune(buf[:n])
		assert.Equal(t, tt.cp, r)
		assert.Equal(t, n, size)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		word string
		n    uint8
		ok   bool
	}{
		{"fg:0", 0, true},
		{"fg:208", 208, true},
		{"fg:256", 255, true},
		{"fg:99999999999999999999", 255, true},
		{"fg:-1", 0, true},
		{"fg:+7", 7, true},
		{"fg:3x", 3, true},
		{"fg:", 0, false},
		{"fg:x", 0, false},
		{"fg:-", 0, false},
		{"bg:3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			n, ok := parseLevel([]byte(tt.word), "fg:")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestSplitOn(t *testing.T) {
	fg, bg := splitOn([]byte("bold red on blue"))
	assert.Equal(t, "bold red", string(fg))
	assert.Equal(t, "blue", string(bg))

	fg, bg = splitOn([]byte("on blue"))
	assert.Equal(t, "on blue", string(fg))
	assert.Nil(t, bg)
}

func TestColorEscapes(t *testing.T) {
	red := DefaultAttrs().LookupString("red")
	assert.Equal(t, "\x1b[31m", string(Named(red).AppendFG(nil)))
	assert.Equal(t, "\x1b[41m", string(Named(red).AppendBG(nil)))
	assert.Equal(t, "\x1b[38;5;7m", string(Indexed(7).AppendFG(nil)))
	assert.Equal(t, "\x1b[48;5;7m", string(Indexed(7).AppendBG(nil)))
	assert.True(t, Named(DefaultAttrs().LookupString("bold")).IsZero())
	assert.Empty(t, Color{}.AppendFG(nil))
}
