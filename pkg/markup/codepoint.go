package markup

import "unicode/utf8"

const maxCodepointDigits = 6

// ParseCodepoint parses 1 to 6 hex digits into a scalar value. Zero,
// surrogates and values above U+10FFFF are rejected.
func ParseCodepoint(hex []byte) (rune, bool) {
	if len(hex) == 0 || len(hex) > maxCodepointDigits {
		return 0, false
	}
	var cp rune
	for _, c := range hex {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		cp = cp<<4 | rune(d)
	}
	if cp == 0 || cp > utf8.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
		return 0, false
	}
	return cp, true
}

// parseCodepointShortcode accepts the body of a :U-XXXX: shortcode.
func parseCodepointShortcode(body []byte) (rune, bool) {
	if len(body) < 3 || body[0] != 'U' || body[1] != '-' {
		return 0, false
	}
	return ParseCodepoint(body[2:])
}

// EncodeUTF8 writes cp into a fixed array and reports how many bytes were
// used. cp must be a value ParseCodepoint accepts.
func EncodeUTF8(cp rune) (buf [utf8.UTFMax]byte, n int) {
	n = utf8.EncodeRune(buf[:], cp)
	return buf, n
}
