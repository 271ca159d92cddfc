package booking

import (
	"time"

	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/pkg/money"
)

// Quote holds the three monetary fields of a booking. Total is always
// original minus discount; it is computed here and nowhere else.
type Quote struct {
	OriginalPrice  money.Money
	DiscountAmount money.Money
	TotalPayment   money.Money
}

// ComputeQuote prices a booking request. The promotion is optional; one that
// is not active on the given date contributes no discount. Discount rounding
// is half-up to the minor unit (see money.ApplyPercent).
func ComputeQuote(unitPrice money.Money, quantity int, promo *promotion.Promotion, on time.Time) (Quote, error) {
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}

	original := unitPrice.MulQuantity(quantity)
	discount := money.Zero()
	if promo != nil && promo.IsActiveOn(on) {
		discount = original.ApplyPercent(promo.Percent())
	}

	total := original.Sub(discount)
	if total.IsNegative() {
		// Unreachable while percent <= 100 holds; kept as a hard stop.
		return Quote{}, ErrNegativeTotal
	}

	return Quote{
		OriginalPrice:  original,
		DiscountAmount: discount,
		TotalPayment:   total,
	}, nil
}
