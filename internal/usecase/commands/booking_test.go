//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/departure"
	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/domain/schedule"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func seedDeparture(t *testing.T, store *fakeStore, maxQuantity int, unitPriceCents int64) uuid.UUID {
	t.Helper()
	window, err := schedule.NewWindow(testDay, testDay.AddDate(0, 0, 2))
	require.NoError(t, err)
	dep, err := departure.ReconstructDeparture(
		uuid.New(), uuid.New(), 3, money.FromCents(unitPriceCents),
		"Hanoi", window, maxQuantity, nil)
	require.NoError(t, err)
	store.departures[dep.ID()] = dep
	return dep.ID()
}

func seedPromotion(t *testing.T, store *fakeStore, percentBP int64, start, end time.Time) uuid.UUID {
	t.Helper()
	percent, err := money.NewPercent(percentBP)
	require.NoError(t, err)
	p, err := promotion.NewPromotion("Summer Sale", percent, start, end)
	require.NoError(t, err)
	store.promotions[p.ID()] = p
	return p.ID()
}

func seedBooking(t *testing.T, store *fakeStore, departureID uuid.UUID, quantity int, status booking.Status) uuid.UUID {
	t.Helper()
	b, err := booking.NewBooking(uuid.New(), departureID, quantity,
		money.FromCents(10000), nil, "TRV0000000000", testDay)
	require.NoError(t, err)
	require.NoError(t, transitionForSeed(b, status))
	store.bookings[b.ID()] = b
	return b.ID()
}

func transitionForSeed(b *booking.Booking, status booking.Status) error {
	if status == booking.StatusPending {
		return nil
	}
	return b.TransitionTo(status)
}

func newBookingCommands(store *fakeStore) commands.BookingCommands {
	return commands.NewBookingCommands(
		&fakeUnitOfWork{store: store},
		clock.NewFixedClock(testDay),
		bytes.NewReader(make([]byte, 256)),
	)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("prices and stores a pending booking", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 10, 10000)
		uc := newBookingCommands(store)

		result, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    3,
		})
		require.NoError(t, err)

		assert.Equal(t, "300.00", result.Quote.OriginalPrice.String())
		assert.Equal(t, "0.00", result.Quote.DiscountAmount.String())
		assert.Equal(t, "300.00", result.Quote.TotalPayment.String())
		assert.Regexp(t, `^TRV\d{10}$`, result.Reference)

		stored := store.bookings[result.BookingID]
		require.NotNil(t, stored)
		assert.Equal(t, booking.StatusPending, stored.Status())
		assert.Equal(t, 3, stored.Quantity())
	})

	t.Run("applies an active promotion", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 10, 10000)
		promoID := seedPromotion(t, store, 2000, testDay.AddDate(0, 0, -1), testDay.AddDate(0, 0, 1))
		uc := newBookingCommands(store)

		result, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			PromotionID: &promoID,
			Quantity:    3,
		})
		require.NoError(t, err)
		assert.Equal(t, "60.00", result.Quote.DiscountAmount.String())
		assert.Equal(t, "240.00", result.Quote.TotalPayment.String())
	})

	t.Run("rejects an expired promotion", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 10, 10000)
		promoID := seedPromotion(t, store, 2000, testDay.AddDate(0, -2, 0), testDay.AddDate(0, -1, 0))
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			PromotionID: &promoID,
			Quantity:    1,
		})
		require.ErrorIs(t, err, commands.ErrPromotionInactive)
		assert.Empty(t, store.bookings)
	})

	t.Run("rejects an unknown promotion", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 10, 10000)
		unknown := uuid.New()
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			PromotionID: &unknown,
			Quantity:    1,
		})
		require.ErrorIs(t, err, commands.ErrPromotionNotFound)
	})

	t.Run("rejects when capacity would be exceeded", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		seedBooking(t, store, depID, 4, booking.StatusPaid)
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    2,
		})
		require.ErrorIs(t, err, commands.ErrOverbooked)
	})

	t.Run("fills the departure exactly to capacity", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		seedBooking(t, store, depID, 4, booking.StatusPending)
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    1,
		})
		require.NoError(t, err)
	})

	t.Run("cancelled bookings do not consume capacity", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		seedBooking(t, store, depID, 5, booking.StatusCancelled)
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    5,
		})
		require.NoError(t, err)
	})

	t.Run("unknown departure", func(t *testing.T) {
		store := newFakeStore()
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: uuid.New(),
			Quantity:    1,
		})
		require.ErrorIs(t, err, commands.ErrDepartureNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		uc := newBookingCommands(store)

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    0,
		})
		require.ErrorIs(t, err, booking.ErrInvalidQuantity)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking is cancelled and frees capacity", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 5, booking.StatusPending)
		uc := newBookingCommands(store)

		require.NoError(t, uc.CancelBooking(ctx, bookingID))
		assert.Equal(t, booking.StatusCancelled, store.bookings[bookingID].Status())

		_, err := uc.CreateBooking(ctx, uuid.New(), commands.CreateBookingParams{
			DepartureID: depID,
			Quantity:    5,
		})
		require.NoError(t, err)
	})

	t.Run("re-cancel is rejected", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 1, booking.StatusCancelled)
		uc := newBookingCommands(store)

		require.ErrorIs(t, uc.CancelBooking(ctx, bookingID), booking.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		store := newFakeStore()
		uc := newBookingCommands(store)

		require.ErrorIs(t, uc.CancelBooking(ctx, uuid.New()), commands.ErrBookingNotFound)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to paid", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 1, booking.StatusPending)
		uc := newBookingCommands(store)

		require.NoError(t, uc.UpdatePaymentStatus(ctx, bookingID, "PAID"))
		assert.Equal(t, booking.StatusPaid, store.bookings[bookingID].Status())
	})

	t.Run("paid to cancelled", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 1, booking.StatusPaid)
		uc := newBookingCommands(store)

		require.NoError(t, uc.UpdatePaymentStatus(ctx, bookingID, "CANCELLED"))
		assert.Equal(t, booking.StatusCancelled, store.bookings[bookingID].Status())
	})

	t.Run("cancelled to paid is rejected", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 1, booking.StatusCancelled)
		uc := newBookingCommands(store)

		require.ErrorIs(t, uc.UpdatePaymentStatus(ctx, bookingID, "PAID"), booking.ErrInvalidTransition)
	})

	t.Run("unknown status string", func(t *testing.T) {
		store := newFakeStore()
		depID := seedDeparture(t, store, 5, 10000)
		bookingID := seedBooking(t, store, depID, 1, booking.StatusPending)
		uc := newBookingCommands(store)

		require.ErrorIs(t, uc.UpdatePaymentStatus(ctx, bookingID, "REFUNDED"), booking.ErrInvalidStatus)
	})
}
