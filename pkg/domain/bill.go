package domain

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol prefixes formatted amounts when none is configured.
const DefaultCurrencySymbol = "$"

// InvalidBillMessage is the notice shown instead of a total when the subtotal
// or the tip percentage is not a number.
const InvalidBillMessage = "Please enter valid numbers for Subtotal and Tip Percentage."

// Bill is a computed tip. Amounts are exact decimals; rounding only happens
// when formatting.
type Bill struct {
	Subtotal      decimal.Decimal
	TipPercentage decimal.Decimal
	TipAmount     decimal.Decimal
	Total         decimal.Decimal
}

// FormatCurrency renders amount with exactly two decimal places, rounding
// half away from zero, prefixed with symbol.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// Display returns the formatted total.
func (b Bill) Display(symbol string) string {
	return FormatCurrency(symbol, b.Total)
}

// Message returns the sentence shown to the user.
func (b Bill) Message(symbol string) string {
	return "Total amount to be paid (including tip): " + b.Display(symbol)
}
