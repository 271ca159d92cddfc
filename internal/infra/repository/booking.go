package repository

import (
	"context"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, user_id, departure_id, promotion_id, quantity,
			original_price_cents, discount_amount_cents, total_payment_cents,
			payment_status, booking_ref, booked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.UserID()),
		pgconv.UUIDToPgtype(b.DepartureID()),
		pgconv.UUIDPtrToPgtype(b.PromotionID()),
		b.Quantity(),
		b.OriginalPrice().Cents(),
		b.DiscountAmount().Cents(),
		b.TotalPayment().Cents(),
		b.Status().String(),
		b.Reference(),
		pgconv.TimeToPgtype(b.BookedAt()),
	)
	if err != nil {
		return wrapPgErr("insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, departure_id, promotion_id, quantity,
		       original_price_cents, discount_amount_cents, total_payment_cents,
		       payment_status, booking_ref, booked_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID      pgtype.UUID
		userID         pgtype.UUID
		departureID    pgtype.UUID
		promotionID    pgtype.UUID
		quantity       int
		originalCents  int64
		discountCents  int64
		totalCents     int64
		status         string
		reference      string
		bookedAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &userID, &departureID, &promotionID, &quantity,
		&originalCents, &discountCents, &totalCents,
		&status, &reference, &bookedAt,
	)
	if err != nil {
		return nil, wrapPgErr("find booking by id", err)
	}

	parsedStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored payment status is invalid", err)
	}

	return booking.ReconstructBooking(
		uuid.UUID(bookingID.Bytes),
		uuid.UUID(userID.Bytes),
		uuid.UUID(departureID.Bytes),
		pgconv.UUIDPtrFromPgtype(promotionID),
		quantity,
		booking.Quote{
			OriginalPrice:  money.FromCents(originalCents),
			DiscountAmount: money.FromCents(discountCents),
			TotalPayment:   money.FromCents(totalCents),
		},
		parsedStatus,
		reference,
		pgconv.TimeFromPgtype(bookedAt),
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET payment_status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return wrapPgErr("update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

// SumActiveQuantity is the derived capacity counter. It must run inside the
// transaction that holds the departure row lock.
func (r *BookingRepository) SumActiveQuantity(ctx context.Context, departureID uuid.UUID) (int, error) {
	const query = `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE departure_id = $1 AND payment_status IN ('PENDING', 'PAID')`

	var sum int
	if err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(departureID)).Scan(&sum); err != nil {
		return 0, wrapPgErr("sum active booking quantity", err)
	}
	return sum, nil
}
