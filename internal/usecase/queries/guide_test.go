//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGuideRepo struct {
	departures []*queries.DepartureView
	passengers []*queries.PassengerView
}

func (r *stubGuideRepo) FindDeparturesByGuide(_ context.Context, _ uuid.UUID) ([]*queries.DepartureView, error) {
	return r.departures, nil
}

func (r *stubGuideRepo) FindPassengers(_ context.Context, _, _ uuid.UUID) ([]*queries.PassengerView, error) {
	return r.passengers, nil
}

func departureAt(name string, start, end time.Time) *queries.DepartureView {
	return &queries.DepartureView{
		ID:            uuid.New(),
		TourName:      name,
		DepartureTime: start,
		ReturnTime:    end,
	}
}

func TestParseDeparturePhase(t *testing.T) {
	tests := []struct {
		in      string
		want    queries.DeparturePhase
		wantErr bool
	}{
		{"", queries.DeparturePhaseAll, false},
		{"ALL", queries.DeparturePhaseAll, false},
		{"UPCOMING", queries.DeparturePhaseUpcoming, false},
		{"ONGOING", queries.DeparturePhaseOngoing, false},
		{"COMPLETED", queries.DeparturePhaseCompleted, false},
		{"upcoming", "", true},
		{"FINISHED", "", true},
	}

	for _, tt := range tests {
		got, err := queries.ParseDeparturePhase(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, queries.ErrInvalidPhase, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAssignedDepartures(t *testing.T) {
	repo := &stubGuideRepo{departures: []*queries.DepartureView{
		departureAt("upcoming", today.AddDate(0, 0, 2), today.AddDate(0, 0, 5)),
		departureAt("ongoing", today.AddDate(0, 0, -1), today.AddDate(0, 0, 1)),
		departureAt("completed", today.AddDate(0, 0, -9), today.AddDate(0, 0, -7)),
	}}
	q := queries.NewGuideQueries(repo, clock.NewFixedClock(today))
	ctx := context.Background()

	t.Run("all phases", func(t *testing.T) {
		all, err := q.AssignedDepartures(ctx, uuid.New(), queries.DeparturePhaseAll)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	for _, phase := range []queries.DeparturePhase{
		queries.DeparturePhaseUpcoming,
		queries.DeparturePhaseOngoing,
		queries.DeparturePhaseCompleted,
	} {
		t.Run(string(phase), func(t *testing.T) {
			got, err := q.AssignedDepartures(ctx, uuid.New(), phase)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, string(phase), got[0].TourName)
		})
	}
}

func TestClassifyDepartureBounds(t *testing.T) {
	d := departureAt("tour", today, today.AddDate(0, 0, 2))

	assert.Equal(t, queries.DeparturePhaseOngoing, queries.ClassifyDeparture(d, today))
	assert.Equal(t, queries.DeparturePhaseOngoing, queries.ClassifyDeparture(d, today.AddDate(0, 0, 2)))
	assert.Equal(t, queries.DeparturePhaseUpcoming, queries.ClassifyDeparture(d, today.Add(-time.Second)))
	assert.Equal(t, queries.DeparturePhaseCompleted, queries.ClassifyDeparture(d, today.AddDate(0, 0, 2).Add(time.Second)))
}
