package toolkit

import "unicode/utf8"

// IsPalindrome reports whether s reads the same forwards and backwards.
//
// Characters are compared exactly as code points; callers decide whether to
// strip whitespace or fold case beforehand. Empty and single-character strings
// are palindromes. Strings that are not valid UTF-8 are compared byte by byte.
func IsPalindrome(s string) bool {
	if !utf8.ValidString(s) {
		return isBytePalindrome(s)
	}

	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		if runes[i] != runes[n-1-i] {
			return false
		}
	}

	return true
}

func isBytePalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}
