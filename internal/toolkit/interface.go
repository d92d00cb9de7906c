package toolkit

import (
	"context"
	"utilbox/pkg/domain"
)

// Toolkit runs the three operations on raw user input, the way a form hands
// it over.
//
//go:generate mockgen -package mocktoolkit -source=interface.go -destination=mock/mocktoolkit.go *
type Toolkit interface {
	// CheckPalindrome strips whitespace from raw and checks the remainder.
	CheckPalindrome(ctx context.Context, raw string) domain.PalindromeResult
	// CountCharacters tallies vowels and consonants in raw.
	CountCharacters(ctx context.Context, raw string) domain.CharacterTally
	// CalculateTip parses both values and computes the bill. It returns an
	// error of kind serrors.ErrInvalidInput, and no bill, when either value
	// is not a finite number.
	CalculateTip(ctx context.Context, subtotal, tipPercentage string) (*domain.Bill, error)
	// CurrencySymbol is the symbol bills are rendered with.
	CurrencySymbol() string
}
