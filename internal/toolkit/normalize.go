package toolkit

import (
	"strings"
	"unicode"
)

// IsWhitespace reports whether r is whitespace as browsers see it in form
// input: the Unicode Zs category, the ASCII controls tab, LF, VT, FF and CR,
// the line and paragraph separators and U+FEFF. U+0085 (NEL) is not included.
func IsWhitespace(r rune) bool {
	if r == '\u0085' {
		return false
	}

	return unicode.IsSpace(r) || r == '\uFEFF'
}

// StripWhitespace removes every IsWhitespace character from s. Case is
// preserved.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if IsWhitespace(r) {
			return -1
		}

		return r
	}, s)
}
