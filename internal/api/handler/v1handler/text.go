package v1handler

import (
	"context"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/pkg/domain"
)

func DomainPalindromeToV1Specs(in domain.PalindromeResult) *v1specs.PalindromeResult {
	return &v1specs.PalindromeResult{
		Text:       in.Input,
		Normalized: in.Normalized,
		Palindrome: in.Palindrome,
		Message:    in.Message(),
	}
}

func DomainTallyToV1Specs(in domain.CharacterTally) *v1specs.CharacterTally {
	return &v1specs.CharacterTally{
		Vowels:     in.Vowels,
		Consonants: in.Consonants,
		Message:    in.Message(),
	}
}

// CheckPalindrome reports whether the text is a palindrome once whitespace is removed.
func (h *Handler) CheckPalindrome(ctx context.Context, req *v1specs.TextRequest) (*v1specs.PalindromeResult, error) {
	return DomainPalindromeToV1Specs(h.deps.Toolkit.CheckPalindrome(ctx, req.Text)), nil
}

// CountCharacters tallies vowels and consonants in the text.
func (h *Handler) CountCharacters(ctx context.Context, req *v1specs.TextRequest) (*v1specs.CharacterTally, error) {
	return DomainTallyToV1Specs(h.deps.Toolkit.CountCharacters(ctx, req.Text)), nil
}
