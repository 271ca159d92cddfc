//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPercent(t *testing.T, bp int64) money.Percent {
	t.Helper()
	p, err := money.NewPercent(bp)
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPromotion(t *testing.T) {
	twenty := mustPercent(t, 2000)

	t.Run("valid promotion", func(t *testing.T) {
		p, err := promotion.NewPromotion("Summer Sale", twenty, date(2026, 6, 1), date(2026, 8, 31))
		require.NoError(t, err)
		assert.Equal(t, "Summer Sale", p.Name())
		assert.Equal(t, int64(2000), p.Percent().BasisPoints())
	})

	t.Run("single day window is valid", func(t *testing.T) {
		_, err := promotion.NewPromotion("Flash", twenty, date(2026, 6, 1), date(2026, 6, 1))
		require.NoError(t, err)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := promotion.NewPromotion("Broken", twenty, date(2026, 6, 2), date(2026, 6, 1))
		require.ErrorIs(t, err, promotion.ErrInvalidDateRange)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := promotion.NewPromotion("", twenty, date(2026, 6, 1), date(2026, 6, 2))
		require.ErrorIs(t, err, promotion.ErrEmptyName)
	})
}

func TestIsActiveOn(t *testing.T) {
	p, err := promotion.NewPromotion("Window", mustPercent(t, 1000), date(2026, 6, 1), date(2026, 6, 30))
	require.NoError(t, err)

	cases := []struct {
		name   string
		on     time.Time
		active bool
	}{
		{"before window", date(2026, 5, 31), false},
		{"first day inclusive", date(2026, 6, 1), true},
		{"mid window", date(2026, 6, 15), true},
		{"last day inclusive", date(2026, 6, 30), true},
		{"after window", date(2026, 7, 1), false},
		{"time of day ignored", time.Date(2026, 6, 30, 23, 59, 0, 0, time.UTC), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.active, p.IsActiveOn(c.on))
		})
	}
}

func TestLifecyclePhases(t *testing.T) {
	p, err := promotion.NewPromotion("Window", mustPercent(t, 1000), date(2026, 6, 1), date(2026, 6, 30))
	require.NoError(t, err)

	assert.True(t, p.IsUpcomingOn(date(2026, 5, 1)))
	assert.False(t, p.IsUpcomingOn(date(2026, 6, 1)))
	assert.True(t, p.IsExpiredOn(date(2026, 7, 1)))
	assert.False(t, p.IsExpiredOn(date(2026, 6, 30)))
}
