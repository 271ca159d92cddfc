package queries

import (
	"context"
	"time"

	"tour-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// PromotionPhase classifies a promotion's date window against today.
type PromotionPhase string

const (
	PhaseActive   PromotionPhase = "ACTIVE"
	PhaseExpired  PromotionPhase = "EXPIRED"
	PhaseUpcoming PromotionPhase = "UPCOMING"
)

type PromotionStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Expired  int `json:"expired"`
	Upcoming int `json:"upcoming"`
}

type PromotionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context) ([]*PromotionView, error)
	ListByPhase(ctx context.Context, phase PromotionPhase) ([]*PromotionView, error)
	Stats(ctx context.Context) (*PromotionStats, error)
}

type PromotionViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	FindAll(ctx context.Context) ([]*PromotionView, error)
}

type promotionQueriesImpl struct {
	repo  PromotionViewRepo
	clock clock.Clock
}

func NewPromotionQueries(repo PromotionViewRepo, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{repo: repo, clock: clk}
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *promotionQueriesImpl) List(ctx context.Context) ([]*PromotionView, error) {
	return q.repo.FindAll(ctx)
}

func (q *promotionQueriesImpl) ListByPhase(ctx context.Context, phase PromotionPhase) ([]*PromotionView, error) {
	all, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := q.clock.Now()
	filtered := make([]*PromotionView, 0, len(all))
	for _, p := range all {
		if ClassifyPromotion(p, today) == phase {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (q *promotionQueriesImpl) Stats(ctx context.Context) (*PromotionStats, error) {
	all, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := q.clock.Now()
	stats := &PromotionStats{Total: len(all)}
	for _, p := range all {
		switch ClassifyPromotion(p, today) {
		case PhaseActive:
			stats.Active++
		case PhaseExpired:
			stats.Expired++
		case PhaseUpcoming:
			stats.Upcoming++
		}
	}
	return stats, nil
}

// ClassifyPromotion buckets a promotion by its inclusive date window.
// The same date-only comparison as the pricing rule: time of day is ignored.
func ClassifyPromotion(p *PromotionView, on time.Time) PromotionPhase {
	day := truncateToDate(on)
	switch {
	case day.After(truncateToDate(p.EndDate)):
		return PhaseExpired
	case day.Before(truncateToDate(p.StartDate)):
		return PhaseUpcoming
	default:
		return PhaseActive
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
