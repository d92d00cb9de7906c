package v1handler

import (
	"context"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/pkg/domain"
)

// DomainBillToV1Specs renders money amounts with two decimals and the tip
// percentage as entered.
func DomainBillToV1Specs(in *domain.Bill, symbol string) *v1specs.Bill {
	return &v1specs.Bill{
		Subtotal:      in.Subtotal.StringFixed(2),
		TipPercentage: in.TipPercentage.String(),
		TipAmount:     in.TipAmount.StringFixed(2),
		Total:         in.Total.StringFixed(2),
		Display:       in.Display(symbol),
		Message:       in.Message(symbol),
	}
}

// CalculateTip computes the bill. Missing and null values are passed on as
// empty input and rejected with INVALID_INPUT and no amounts.
func (h *Handler) CalculateTip(ctx context.Context, req *v1specs.TipRequest) (*v1specs.Bill, error) {
	bill, err := h.deps.Toolkit.CalculateTip(ctx, req.Subtotal.Or(""), req.TipPercentage.Or(""))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainBillToV1Specs(bill, h.deps.Toolkit.CurrencySymbol()), nil
}
