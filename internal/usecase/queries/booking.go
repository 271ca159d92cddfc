package queries

import (
	"context"

	"tour-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByUser returns the user's bookings; activeOnly keeps just the ones
	// still consuming capacity (PENDING or PAID).
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*BookingView, error) {
	all, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}

	active := make([]*BookingView, 0, len(all))
	for _, b := range all {
		if booking.Status(b.Status).IsActive() {
			active = append(active, b)
		}
	}
	return active, nil
}
