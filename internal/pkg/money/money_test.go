//go:build unit

package money_test

import (
	"testing"

	"tour-booking-api/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"whole amount", 30000, "300.00"},
		{"with fraction", 12345, "123.45"},
		{"zero", 0, "0.00"},
		{"sub-unit", 9, "0.09"},
		{"negative", -150, "-1.50"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, money.FromCents(c.cents).String())
		})
	}
}

func TestMulQuantity(t *testing.T) {
	unit := money.FromCents(10000) // 100.00
	assert.Equal(t, int64(30000), unit.MulQuantity(3).Cents())
	assert.Equal(t, int64(10000), unit.MulQuantity(1).Cents())
}

func TestNewPercent(t *testing.T) {
	cases := []struct {
		name string
		bp   int64
		ok   bool
	}{
		{"one basis point", 1, true},
		{"twenty percent", 2000, true},
		{"full hundred", 10000, true},
		{"zero rejected", 0, false},
		{"negative rejected", -100, false},
		{"over hundred rejected", 10001, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := money.NewPercent(c.bp)
			if c.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, money.ErrInvalidPercent)
			}
		})
	}
}

func TestPercentFromFloat(t *testing.T) {
	p, err := money.PercentFromFloat(12.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), p.BasisPoints())
	assert.Equal(t, 12.5, p.Float())

	_, err = money.PercentFromFloat(0)
	require.ErrorIs(t, err, money.ErrInvalidPercent)
	_, err = money.PercentFromFloat(100.01)
	require.ErrorIs(t, err, money.ErrInvalidPercent)
}

// Discount rounding is half-up to the minor unit.
func TestApplyPercentRounding(t *testing.T) {
	cases := []struct {
		name      string
		cents     int64
		percentBP int64
		want      int64
	}{
		{"exact twenty percent", 30000, 2000, 6000},
		{"half rounds up", 1050, 500, 53},   // 10.50 * 5% = 0.525 -> 0.53
		{"below half rounds down", 1049, 500, 52}, // 0.5245 -> 0.52
		{"full hundred percent", 12345, 10000, 12345},
		{"tiny amount", 1, 5000, 1}, // 0.01 * 50% = 0.005 -> 0.01
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := money.NewPercent(c.percentBP)
			require.NoError(t, err)
			got := money.FromCents(c.cents).ApplyPercent(p)
			assert.Equal(t, c.want, got.Cents())
		})
	}
}

func TestNewNonNegative(t *testing.T) {
	_, err := money.NewNonNegative(-1)
	require.ErrorIs(t, err, money.ErrNegativeAmount)

	m, err := money.NewNonNegative(0)
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}
