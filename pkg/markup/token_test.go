package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(src string, emoji *EmojiTable, unicode bool) []Token {
	sc := NewScanner([]byte(src), emoji, unicode)
	var toks []Token
	for {
		tok := sc.Next()
		toks = append(toks, tok)
		if tok.Kind == TokenEnd {
			return toks
		}
	}
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScannerKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenKind
	}{
		{"empty", "", []TokenKind{TokenEnd}},
		{"tag and text", "[red]a", []TokenKind{TokenTag, TokenChar, TokenEnd}},
		{"bracket escapes", "[[]]", []TokenKind{TokenEscape, TokenEscape, TokenEnd}},
		{"colon escape", "::", []TokenKind{TokenEscape, TokenEnd}},
		{"emoji", ":fire:", []TokenKind{TokenEmoji, TokenEnd}},
		{"codepoint", ":U-1F600:", []TokenKind{TokenCodepoint, TokenEnd}},
		{"unterminated tag", "[a", []TokenKind{TokenChar, TokenChar, TokenEnd}},
		{"lone colon", "a:b", []TokenKind{TokenChar, TokenChar, TokenChar, TokenEnd}},
		{"multibyte", "é✓", []TokenKind{TokenChar, TokenChar, TokenEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(scanAll(tt.input, DefaultEmoji(), true)))
		})
	}
}

func TestScannerTokenDetail(t *testing.T) {
	toks := scanAll("[bold red]é:fire:[[", DefaultEmoji(), true)
	require.Len(t, toks, 5)

	assert.Equal(t, "bold red", string(toks[0].Text))
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 10, toks[0].End)

	assert.Equal(t, "é", string(toks[1].Text))
	assert.Equal(t, 10, toks[1].Start)
	assert.Equal(t, 12, toks[1].End)

	require.NotNil(t, toks[2].Emoji)
	assert.Equal(t, "fire", toks[2].Emoji.Name)
	assert.Equal(t, 2, toks[2].Cells())

	assert.Equal(t, byte('['), toks[3].Literal)
	assert.Equal(t, TokenEnd, toks[4].Kind)
}

func TestScannerShortcodeGating(t *testing.T) {
	t.Run("shortcodes off", func(t *testing.T) {
		assert.Equal(t,
			[]TokenKind{TokenChar, TokenChar, TokenEnd},
			kinds(scanAll("::", nil, false)))
	})

	t.Run("unicode only", func(t *testing.T) {
		toks := scanAll(":fire: :U-41:", nil, true)
		assert.Equal(t, TokenChar, toks[0].Kind)
		last := toks[len(toks)-2]
		assert.Equal(t, TokenCodepoint, last.Kind)
		assert.Equal(t, rune(0x41), last.Rune)
	})

	t.Run("emoji only", func(t *testing.T) {
		toks := scanAll(":U-41:", DefaultEmoji(), false)
		assert.Equal(t, TokenChar, toks[0].Kind)
	})
}

func TestTokenVisible(t *testing.T) {
	tests := []struct {
		input   string
		visible bool
	}{
		{"a", true},
		{" ", false},
		{"\t", false},
		{"\n", false},
		{"[[", true},
		{":fire:", true},
		{"[red]", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := scanAll(tt.input, DefaultEmoji(), true)[0]
			assert.Equal(t, tt.visible, tok.Visible())
		})
	}
}

func TestClosesEffect(t *testing.T) {
	tests := []struct {
		body     string
		expected bool
	}{
		{"/", true},
		{"/gradient", true},
		{"/gradient red blue", true},
		{"/gradients", false},
		{"/red", false},
		{"gradient", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.expected, closesEffect([]byte(tt.body), gradientName))
		})
	}
}
