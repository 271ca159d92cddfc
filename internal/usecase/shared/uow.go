package shared

import (
	"context"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/departure"
	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization failures.
	// Business rejections returned by fn are never retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Departures() DepartureRepository
	Promotions() PromotionRepository
	Guides() GuideRepository
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// SumActiveQuantity is the derived capacity counter: the summed quantity
	// of PENDING and PAID bookings on one departure.
	SumActiveQuantity(ctx context.Context, departureID uuid.UUID) (int, error)
}

type DepartureRepository interface {
	// FindByIDForUpdate locks the departure row for the rest of the
	// transaction, serializing concurrent bookings and cancellations.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*departure.Departure, error)
	// AssignmentsForGuide lists the time windows of every departure already
	// assigned to the guide.
	AssignmentsForGuide(ctx context.Context, guideID uuid.UUID) ([]schedule.Conflict, error)
	AssignGuide(ctx context.Context, departureID, guideID uuid.UUID) error
}

type PromotionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	Insert(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, p *promotion.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GuideSnapshot struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	FullName string
}

type GuideRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuideSnapshot, error)
}
