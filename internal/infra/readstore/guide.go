package readstore

import (
	"context"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuideReadStore struct {
	db db.DBTX
}

func NewGuideReadStore(dbtx db.DBTX) *GuideReadStore {
	return &GuideReadStore{db: dbtx}
}

// FindDeparturesByGuide resolves the guide through their user account, so
// handlers can pass the authenticated user id directly.
func (s *GuideReadStore) FindDeparturesByGuide(ctx context.Context, guideUserID uuid.UUID) ([]*queries.DepartureView, error) {
	query := departureViewSelect + `
	WHERE g.user_id = $1
	ORDER BY d.departure_time`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(guideUserID))
	if err != nil {
		return nil, wrapReadErr("list departures by guide", err)
	}
	return scanDepartureViews(rows)
}

// FindPassengers returns the PAID manifest of one departure, scoped to the
// guide actually assigned to it.
func (s *GuideReadStore) FindPassengers(ctx context.Context, guideUserID, departureID uuid.UUID) ([]*queries.PassengerView, error) {
	const query = `
		SELECT b.id, b.booking_ref, u.full_name, u.email, u.phone_number,
		       b.quantity, b.payment_status
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN tour_departures d ON d.id = b.departure_id
		JOIN tour_guides g ON g.id = d.guide_id
		WHERE b.departure_id = $1
		  AND g.user_id = $2
		  AND b.payment_status = 'PAID'
		ORDER BY u.full_name`

	rows, err := s.db.Query(ctx, query,
		pgconv.UUIDToPgtype(departureID), pgconv.UUIDToPgtype(guideUserID))
	if err != nil {
		return nil, wrapReadErr("list passengers", err)
	}
	defer rows.Close()

	var views []*queries.PassengerView
	for rows.Next() {
		var (
			bookingID pgtype.UUID
			reference string
			fullName  string
			email     string
			phone     pgtype.Text
			quantity  int
			status    string
		)
		if err := rows.Scan(&bookingID, &reference, &fullName, &email, &phone, &quantity, &status); err != nil {
			return nil, wrapReadErr("scan passenger view", err)
		}

		views = append(views, &queries.PassengerView{
			BookingID:   uuid.UUID(bookingID.Bytes),
			Reference:   reference,
			FullName:    fullName,
			Email:       email,
			PhoneNumber: pgconv.StringPtrFromPgtype(phone),
			Quantity:    quantity,
			Status:      status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate passenger views", err)
	}
	return views, nil
}
