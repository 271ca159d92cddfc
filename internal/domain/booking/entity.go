// Package booking models a customer's reservation against one tour
// departure, including its pricing fields and payment state machine.
package booking

import (
	"errors"
	"time"

	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrInvalidTransition = errors.New("illegal payment status transition")
	ErrNegativeTotal     = errors.New("total payment cannot be negative")
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	departureID uuid.UUID
	promotionID *uuid.UUID
	quantity    int
	quote       Quote
	status      Status
	reference   string
	bookedAt    time.Time
}

// NewBooking prices and assembles a PENDING booking. The capacity check is
// not done here: it belongs to the transactional insert (see the booking
// command and repository).
func NewBooking(
	userID, departureID uuid.UUID,
	quantity int,
	unitPrice money.Money,
	promo *promotion.Promotion,
	reference string,
	now time.Time,
) (*Booking, error) {
	quote, err := ComputeQuote(unitPrice, quantity, promo, now)
	if err != nil {
		return nil, err
	}

	var promotionID *uuid.UUID
	if promo != nil {
		id := promo.ID()
		promotionID = &id
	}

	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		departureID: departureID,
		promotionID: promotionID,
		quantity:    quantity,
		quote:       quote,
		status:      StatusPending,
		reference:   reference,
		bookedAt:    now,
	}, nil
}

func ReconstructBooking(
	id, userID, departureID uuid.UUID,
	promotionID *uuid.UUID,
	quantity int,
	quote Quote,
	status Status,
	reference string,
	bookedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		departureID: departureID,
		promotionID: promotionID,
		quantity:    quantity,
		quote:       quote,
		status:      status,
		reference:   reference,
		bookedAt:    bookedAt,
	}
}

// TransitionTo validates and applies a payment status change.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Cancel is the CANCELLED transition; it frees the booking's seats because
// cancelled bookings are excluded from the capacity sum.
func (b *Booking) Cancel() error {
	return b.TransitionTo(StatusCancelled)
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) UserID() uuid.UUID         { return b.userID }
func (b *Booking) DepartureID() uuid.UUID    { return b.departureID }
func (b *Booking) PromotionID() *uuid.UUID   { return b.promotionID }
func (b *Booking) Quantity() int             { return b.quantity }
func (b *Booking) OriginalPrice() money.Money  { return b.quote.OriginalPrice }
func (b *Booking) DiscountAmount() money.Money { return b.quote.DiscountAmount }
func (b *Booking) TotalPayment() money.Money   { return b.quote.TotalPayment }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Reference() string         { return b.reference }
func (b *Booking) BookedAt() time.Time       { return b.bookedAt }
