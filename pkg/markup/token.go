package markup

import "bytes"

// TokenKind identifies what a Token carries.
type TokenKind uint8

const (
	TokenEnd TokenKind = iota
	TokenChar
	TokenTag
	TokenEmoji
	TokenCodepoint
	TokenEscape
)

func (k TokenKind) String() string {
	switch k {
	case TokenEnd:
		return "end"
	case TokenChar:
		return "char"
	case TokenTag:
		return "tag"
	case TokenEmoji:
		return "emoji"
	case TokenCodepoint:
		return "codepoint"
	case TokenEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of markup. Text aliases the scanned input and
// is only valid while that input is.
type Token struct {
	Kind  TokenKind
	Start int // offset of the token's first source byte
	End   int // offset just past the token

	Text    []byte // TokenChar: the UTF-8 sequence; TokenTag: bytes between the brackets
	Literal byte   // TokenEscape: '[', ']' or ':'
	Emoji   *Emoji // TokenEmoji
	Rune    rune   // TokenCodepoint
}

// Visible reports whether the token is a unit that effects color and
// pre-scans count. Space, tab and newline are not.
func (t Token) Visible() bool {
	switch t.Kind {
	case TokenChar:
		c := t.Text[0]
		return c != ' ' && c != '\t' && c != '\n'
	case TokenEmoji, TokenCodepoint, TokenEscape:
		return true
	default:
		return false
	}
}

// Cells is the display width the token occupies: emoji use their table
// width, tags take none, everything else one cell.
func (t Token) Cells() int {
	switch t.Kind {
	case TokenEnd, TokenTag:
		return 0
	case TokenEmoji:
		return t.Emoji.Width
	default:
		return 1
	}
}

// Scanner splits markup into tokens. It never allocates and never fails:
// anything that is not valid markup comes out as plain characters.
type Scanner struct {
	src     []byte
	pos     int
	emoji   *EmojiTable
	unicode bool
}

// NewScanner scans src. emoji may be nil to disable :name: shortcodes;
// unicode enables :U-XXXX:. The :: escape is recognized when either is on.
func NewScanner(src []byte, emoji *EmojiTable, unicode bool) Scanner {
	return Scanner{src: src, emoji: emoji, unicode: unicode}
}

// Pos is the offset of the next unread byte.
func (s *Scanner) Pos() int { return s.pos }

func (s *Scanner) shortcodes() bool { return s.emoji != nil || s.unicode }

// Next returns the next token, or a TokenEnd token once the input is
// exhausted.
func (s *Scanner) Next() Token {
	p := s.pos
	src := s.src
	if p >= len(src) {
		return Token{Kind: TokenEnd, Start: p, End: p}
	}

	c := src[p]
	if p+1 < len(src) && src[p+1] == c {
		switch {
		case c == '[' || c == ']':
			return s.take(Token{Kind: TokenEscape, Literal: c}, p+2)
		case c == ':' && s.shortcodes():
			return s.take(Token{Kind: TokenEscape, Literal: ':'}, p+2)
		}
	}

	if c == '[' {
		if i := bytes.IndexByte(src[p+1:], ']'); i >= 0 {
			return s.take(Token{Kind: TokenTag, Text: src[p+1 : p+1+i]}, p+2+i)
		}
	}

	if c == ':' && s.shortcodes() {
		if i := bytes.IndexByte(src[p+1:], ':'); i > 0 {
			body := src[p+1 : p+1+i]
			if e := s.emoji.LookupShortcode(body); e != nil {
				return s.take(Token{Kind: TokenEmoji, Emoji: e}, p+2+i)
			}
			if s.unicode {
				if cp, ok := parseCodepointShortcode(body); ok {
					return s.take(Token{Kind: TokenCodepoint, Rune: cp}, p+2+i)
				}
			}
		}
	}

	end := p + 1
	for end < len(src) && src[end] >= 0x80 && src[end] <= 0xBF {
		end++
	}
	return s.take(Token{Kind: TokenChar, Text: src[p:end]}, end)
}

func (s *Scanner) take(t Token, end int) Token {
	t.Start = s.pos
	t.End = end
	s.pos = end
	return t
}
