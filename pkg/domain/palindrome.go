package domain

// PalindromeResult is the outcome of a palindrome check.
type PalindromeResult struct {
	// Input is the raw text as supplied by the caller.
	Input string
	// Normalized is Input with every whitespace character removed.
	Normalized string
	// Palindrome reports whether Normalized equals its own reversal.
	Palindrome bool
}

// Message returns the sentence shown to the user.
func (r PalindromeResult) Message() string {
	if r.Palindrome {
		return "The entered string is a palindrome."
	}

	return "The entered string is not a palindrome."
}
