package readstore

import (
	"context"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
	SELECT b.id, b.booking_ref, b.user_id, u.email, b.departure_id,
	       t.name, d.departure_location, d.departure_time, b.quantity,
	       b.original_price_cents, b.discount_amount_cents,
	       b.total_payment_cents, b.payment_status, b.booked_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN tour_departures d ON d.id = b.departure_id
	JOIN tours t ON t.id = d.tour_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingViewSelect+` WHERE b.id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapReadErr("find booking view", err)
	}
	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, notFoundErr("booking not found")
	}
	return views[0], nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		bookingViewSelect+` WHERE b.user_id = $1 ORDER BY b.booked_at DESC`,
		pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, wrapReadErr("list bookings by user", err)
	}
	return scanBookingViews(rows)
}

func scanBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var (
			bookingID     pgtype.UUID
			reference     string
			userID        pgtype.UUID
			userEmail     string
			departureID   pgtype.UUID
			tourName      string
			location      string
			departureTime pgtype.Timestamptz
			quantity      int
			originalCents int64
			discountCents int64
			totalCents    int64
			status        string
			bookedAt      pgtype.Timestamptz
		)
		err := rows.Scan(
			&bookingID, &reference, &userID, &userEmail, &departureID,
			&tourName, &location, &departureTime, &quantity,
			&originalCents, &discountCents, &totalCents, &status, &bookedAt,
		)
		if err != nil {
			return nil, wrapReadErr("scan booking view", err)
		}

		views = append(views, &queries.BookingView{
			ID:             uuid.UUID(bookingID.Bytes),
			Reference:      reference,
			UserID:         uuid.UUID(userID.Bytes),
			UserEmail:      userEmail,
			DepartureID:    uuid.UUID(departureID.Bytes),
			TourName:       tourName,
			Location:       location,
			DepartureTime:  pgconv.TimeFromPgtype(departureTime),
			Quantity:       quantity,
			OriginalPrice:  money.FromCents(originalCents).String(),
			DiscountAmount: money.FromCents(discountCents).String(),
			TotalPayment:   money.FromCents(totalCents).String(),
			Status:         status,
			BookedAt:       pgconv.TimeFromPgtype(bookedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate booking views", err)
	}
	return views, nil
}
