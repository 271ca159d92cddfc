package queries

import (
	"context"
	"time"

	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPhase = errs.New("unknown departure phase")

// DeparturePhase buckets a guide's departures for the dashboard.
type DeparturePhase string

const (
	DeparturePhaseAll       DeparturePhase = "ALL"
	DeparturePhaseUpcoming  DeparturePhase = "UPCOMING"
	DeparturePhaseOngoing   DeparturePhase = "ONGOING"
	DeparturePhaseCompleted DeparturePhase = "COMPLETED"
)

// ParseDeparturePhase maps the dashboard's ?phase= parameter; empty means ALL.
func ParseDeparturePhase(s string) (DeparturePhase, error) {
	switch DeparturePhase(s) {
	case "":
		return DeparturePhaseAll, nil
	case DeparturePhaseAll, DeparturePhaseUpcoming, DeparturePhaseOngoing, DeparturePhaseCompleted:
		return DeparturePhase(s), nil
	default:
		return "", ErrInvalidPhase
	}
}

type GuideQueries interface {
	AssignedDepartures(ctx context.Context, guideID uuid.UUID, phase DeparturePhase) ([]*DepartureView, error)
	Passengers(ctx context.Context, guideID, departureID uuid.UUID) ([]*PassengerView, error)
}

type GuideViewRepo interface {
	FindDeparturesByGuide(ctx context.Context, guideID uuid.UUID) ([]*DepartureView, error)
	FindPassengers(ctx context.Context, guideID, departureID uuid.UUID) ([]*PassengerView, error)
}

type guideQueriesImpl struct {
	repo  GuideViewRepo
	clock clock.Clock
}

func NewGuideQueries(repo GuideViewRepo, clk clock.Clock) GuideQueries {
	return &guideQueriesImpl{repo: repo, clock: clk}
}

func (q *guideQueriesImpl) AssignedDepartures(
	ctx context.Context,
	guideID uuid.UUID,
	phase DeparturePhase,
) ([]*DepartureView, error) {
	all, err := q.repo.FindDeparturesByGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if phase == DeparturePhaseAll {
		return all, nil
	}

	now := q.clock.Now()
	filtered := make([]*DepartureView, 0, len(all))
	for _, d := range all {
		if ClassifyDeparture(d, now) == phase {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (q *guideQueriesImpl) Passengers(ctx context.Context, guideID, departureID uuid.UUID) ([]*PassengerView, error) {
	return q.repo.FindPassengers(ctx, guideID, departureID)
}

// ClassifyDeparture places a departure in its tour-lifecycle phase relative
// to the given instant. Bounds are inclusive on both ends, so a departure is
// ONGOING from the departure time through the return time.
func ClassifyDeparture(d *DepartureView, now time.Time) DeparturePhase {
	switch {
	case now.Before(d.DepartureTime):
		return DeparturePhaseUpcoming
	case now.After(d.ReturnTime):
		return DeparturePhaseCompleted
	default:
		return DeparturePhaseOngoing
	}
}
