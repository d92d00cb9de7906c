package toolkit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"utilbox/pkg/domain"
	"utilbox/pkg/serrors"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals

	// numberPrefix matches the leading decimal literal of a form value.
	numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`) //nolint: gochecknoglobals
)

// ParseNumber reads the decimal number at the start of raw, the way browsers
// parse form values: leading whitespace is skipped and anything after the
// longest numeric prefix is ignored, so "15%" reads as 15. Input without a
// numeric prefix and values that are not finite are rejected with
// serrors.ErrInvalidInput. Hexadecimal, underscores and "Infinity" are not
// numeric prefixes.
func ParseNumber(raw string) (float64, error) {
	trimmed := strings.TrimLeftFunc(raw, IsWhitespace)

	prefix := numberPrefix.FindString(trimmed)
	if prefix == "" {
		return 0, serrors.With(serrors.ErrInvalidInput, "%q is not a number", raw)
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !math.IsInf(v, 0) {
		return 0, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid number %q", raw)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, serrors.With(serrors.ErrInvalidInput, "number %q is not finite", raw)
	}

	return v, nil
}

// CalculateTip computes the tip and the total for a subtotal and a tip
// percentage (out of 100). Both values must be finite.
func CalculateTip(subtotal, tipPercentage float64) domain.Bill {
	sub := decimal.NewFromFloat(subtotal)
	pct := decimal.NewFromFloat(tipPercentage)
	tip := sub.Mul(pct).Div(hundred)

	return domain.Bill{
		Subtotal:      sub,
		TipPercentage: pct,
		TipAmount:     tip,
		Total:         sub.Add(tip),
	}
}
