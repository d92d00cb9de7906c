// Package toolkit implements the palindrome check, the vowel/consonant
// classifier and the tip calculator, both as pure functions and as a Toolkit
// service that adds input normalization, logging, tracing and metrics.
package toolkit

import (
	"context"
	"time"
	"utilbox/internal/config"
	"utilbox/pkg/domain"
	"utilbox/pkg/logger"
	"utilbox/pkg/metrics"
	"utilbox/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Operation names used as span suffixes, log fields and metric labels.
const (
	// OperationPalindrome labels CheckPalindrome.
	OperationPalindrome = "palindrome"
	// OperationCharacters labels CountCharacters.
	OperationCharacters = "characters"
	// OperationTip labels CalculateTip.
	OperationTip = "tip"
)

// Options configure how results are rendered.
type Options struct {
	// CurrencySymbol prefixes formatted tip totals.
	CurrencySymbol string
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CurrencySymbol: cfg.Tip.CurrencySymbol,
	}
}

type toolkit struct {
	options  Options
	recorder metrics.Recorder
	tracer   trace.Tracer
}

// New creates a Toolkit. A nil recorder disables metrics.
func New(recorder metrics.Recorder, options Options) Toolkit {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	if options.CurrencySymbol == "" {
		options.CurrencySymbol = domain.DefaultCurrencySymbol
	}

	return &toolkit{
		options:  options,
		recorder: recorder,
		tracer:   otel.Tracer("utilbox/toolkit"),
	}
}

func (t *toolkit) start(ctx context.Context, operation string) (context.Context, trace.Span, time.Time) {
	ctx, span := t.tracer.Start(ctx, "toolkit."+operation,
		trace.WithAttributes(attribute.String("operation", operation)))

	return logger.WithFields(ctx, zap.String("operation", operation)), span, time.Now()
}

// CurrencySymbol is the symbol bills are rendered with.
func (t *toolkit) CurrencySymbol() string { return t.options.CurrencySymbol }

// CheckPalindrome strips whitespace from raw and checks the remainder.
func (t *toolkit) CheckPalindrome(ctx context.Context, raw string) domain.PalindromeResult {
	ctx, span, start := t.start(ctx, OperationPalindrome)
	defer span.End()

	normalized := StripWhitespace(raw)
	res := domain.PalindromeResult{
		Input:      raw,
		Normalized: normalized,
		Palindrome: IsPalindrome(normalized),
	}

	span.SetAttributes(attribute.Bool("palindrome", res.Palindrome))
	t.recorder.Observe(ctx, OperationPalindrome, metrics.OutcomeOK, time.Since(start))
	logger.Debug(ctx, "palindrome checked",
		zap.Int("length", len(normalized)),
		zap.Bool("palindrome", res.Palindrome))

	return res
}

// CountCharacters tallies vowels and consonants in raw.
func (t *toolkit) CountCharacters(ctx context.Context, raw string) domain.CharacterTally {
	ctx, span, start := t.start(ctx, OperationCharacters)
	defer span.End()

	tally := ClassifyCharacters(raw)

	span.SetAttributes(
		attribute.Int("vowels", tally.Vowels),
		attribute.Int("consonants", tally.Consonants))
	t.recorder.Observe(ctx, OperationCharacters, metrics.OutcomeOK, time.Since(start))
	logger.Debug(ctx, "characters counted",
		zap.Int("vowels", tally.Vowels),
		zap.Int("consonants", tally.Consonants))

	return tally
}

// CalculateTip parses subtotal and tipPercentage and computes the bill.
func (t *toolkit) CalculateTip(ctx context.Context, subtotal, tipPercentage string) (*domain.Bill, error) {
	ctx, span, start := t.start(ctx, OperationTip)
	defer span.End()

	sub, subErr := ParseNumber(subtotal)
	pct, pctErr := ParseNumber(tipPercentage)
	if subErr != nil || pctErr != nil {
		cause := subErr
		if cause == nil {
			cause = pctErr
		}
		span.SetStatus(codes.Error, "invalid input")
		t.recorder.Observe(ctx, OperationTip, metrics.OutcomeInvalid, time.Since(start))
		logger.Debug(ctx, "tip input rejected", zap.Error(cause))

		return nil, serrors.Wrap(serrors.ErrInvalidInput, cause, "%s", domain.InvalidBillMessage)
	}

	bill := CalculateTip(sub, pct)

	t.recorder.Observe(ctx, OperationTip, metrics.OutcomeOK, time.Since(start))
	logger.Debug(ctx, "tip calculated",
		zap.Stringer("subtotal", bill.Subtotal),
		zap.Stringer("tip_percentage", bill.TipPercentage),
		zap.String("total", bill.Display(t.options.CurrencySymbol)))

	return &bill, nil
}
