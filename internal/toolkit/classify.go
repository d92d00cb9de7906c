package toolkit

import (
	"strings"
	"utilbox/pkg/domain"
)

// ClassifyCharacters lowercases s and counts vowels (a, e, i, o, u) and
// consonants among the ASCII letters a-z. Every other character, including
// accented and non-Latin letters, is ignored.
func ClassifyCharacters(s string) domain.CharacterTally {
	var tally domain.CharacterTally
	for _, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			continue
		}

		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			tally.Vowels++
		default:
			tally.Consonants++
		}
	}

	return tally
}
