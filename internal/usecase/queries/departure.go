package queries

import (
	"context"
	"time"

	"tour-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type DepartureQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DepartureView, error)
	ListUpcoming(ctx context.Context) ([]*DepartureView, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]*DepartureView, error)
	Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
}

// DepartureViewRepo is the read store behind DepartureQueries. Every view
// carries the derived booked sum so available slots never go stale.
type DepartureViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DepartureView, error)
	FindDepartingAfter(ctx context.Context, after time.Time) ([]*DepartureView, error)
	FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*DepartureView, error)
}

type departureQueriesImpl struct {
	repo  DepartureViewRepo
	clock clock.Clock
}

func NewDepartureQueries(repo DepartureViewRepo, clk clock.Clock) DepartureQueries {
	return &departureQueriesImpl{repo: repo, clock: clk}
}

func (q *departureQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DepartureView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *departureQueriesImpl) ListUpcoming(ctx context.Context) ([]*DepartureView, error) {
	return q.repo.FindDepartingAfter(ctx, q.clock.Now())
}

func (q *departureQueriesImpl) ListByTour(ctx context.Context, tourID uuid.UUID) ([]*DepartureView, error) {
	return q.repo.FindByTourID(ctx, tourID)
}

func (q *departureQueriesImpl) Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		DepartureID:    view.ID,
		MaxQuantity:    view.MaxQuantity,
		BookedQuantity: view.BookedQuantity,
		AvailableSlots: view.AvailableSlots,
	}, nil
}
