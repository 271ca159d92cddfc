//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Reference     string
	UserID        uuid.UUID
	UserEmail     string
	DepartureID   uuid.UUID
	TourName      string
	Location      string
	DepartureTime time.Time
	Quantity      int
	OriginalCents int64
	DiscountCents int64
	Status        string
	BookedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		Reference:     "TRV1234567890",
		UserID:        uuid.New(),
		UserEmail:     "customer@example.com",
		DepartureID:   uuid.New(),
		TourName:      "Halong Bay Cruise",
		Location:      "Hanoi Old Quarter",
		DepartureTime: time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC),
		Quantity:      2,
		OriginalCents: 30000,
		DiscountCents: 0,
		Status:        "PENDING",
		BookedAt:      time.Date(2026, 6, 20, 14, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		Reference:      b.Reference,
		UserID:         b.UserID,
		UserEmail:      b.UserEmail,
		DepartureID:    b.DepartureID,
		TourName:       b.TourName,
		Location:       b.Location,
		DepartureTime:  b.DepartureTime,
		Quantity:       b.Quantity,
		OriginalPrice:  money.FromCents(b.OriginalCents).String(),
		DiscountAmount: money.FromCents(b.DiscountCents).String(),
		TotalPayment:   money.FromCents(b.OriginalCents - b.DiscountCents).String(),
		Status:         b.Status,
		BookedAt:       b.BookedAt,
	}
}
