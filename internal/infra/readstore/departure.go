// Package readstore holds the read-side pgx queries behind the view
// interfaces of the queries layer.
package readstore

import (
	"context"
	"time"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// departureViewSelect joins each departure with its tour, its guide's name
// and the derived active-booking sum, so every view carries fresh
// availability.
const departureViewSelect = `
	SELECT d.id, d.tour_id, t.name, t.destination, d.day_num,
	       d.unit_price_cents, d.departure_location, d.departure_time,
	       d.return_time, d.max_quantity, COALESCE(b.booked, 0),
	       d.guide_id, gu.full_name, t.promotion_id
	FROM tour_departures d
	JOIN tours t ON t.id = d.tour_id
	LEFT JOIN tour_guides g ON g.id = d.guide_id
	LEFT JOIN users gu ON gu.id = g.user_id
	LEFT JOIN (
		SELECT departure_id, SUM(quantity) AS booked
		FROM bookings
		WHERE payment_status IN ('PENDING', 'PAID')
		GROUP BY departure_id
	) b ON b.departure_id = d.id`

type DepartureReadStore struct {
	db db.DBTX
}

func NewDepartureReadStore(dbtx db.DBTX) *DepartureReadStore {
	return &DepartureReadStore{db: dbtx}
}

func (s *DepartureReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DepartureView, error) {
	rows, err := s.db.Query(ctx, departureViewSelect+` WHERE d.id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapReadErr("find departure view", err)
	}
	views, err := scanDepartureViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, notFoundErr("departure not found")
	}
	return views[0], nil
}

func (s *DepartureReadStore) FindDepartingAfter(ctx context.Context, after time.Time) ([]*queries.DepartureView, error) {
	rows, err := s.db.Query(ctx,
		departureViewSelect+` WHERE d.departure_time > $1 ORDER BY d.departure_time`,
		pgconv.TimeToPgtype(after))
	if err != nil {
		return nil, wrapReadErr("list upcoming departures", err)
	}
	return scanDepartureViews(rows)
}

func (s *DepartureReadStore) FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*queries.DepartureView, error) {
	rows, err := s.db.Query(ctx,
		departureViewSelect+` WHERE d.tour_id = $1 ORDER BY d.departure_time`,
		pgconv.UUIDToPgtype(tourID))
	if err != nil {
		return nil, wrapReadErr("list departures by tour", err)
	}
	return scanDepartureViews(rows)
}

func scanDepartureViews(rows pgx.Rows) ([]*queries.DepartureView, error) {
	defer rows.Close()

	var views []*queries.DepartureView
	for rows.Next() {
		var (
			depID       pgtype.UUID
			tourID      pgtype.UUID
			tourName    string
			destination string
			dayNum      int
			priceCents  int64
			location    string
			start       pgtype.Timestamptz
			end         pgtype.Timestamptz
			maxQty      int
			booked      int
			guideID     pgtype.UUID
			guideName   pgtype.Text
			promotionID pgtype.UUID
		)
		err := rows.Scan(
			&depID, &tourID, &tourName, &destination, &dayNum,
			&priceCents, &location, &start, &end, &maxQty, &booked,
			&guideID, &guideName, &promotionID,
		)
		if err != nil {
			return nil, wrapReadErr("scan departure view", err)
		}

		views = append(views, &queries.DepartureView{
			ID:             uuid.UUID(depID.Bytes),
			TourID:         uuid.UUID(tourID.Bytes),
			TourName:       tourName,
			Destination:    destination,
			DayNum:         dayNum,
			UnitPrice:      money.FromCents(priceCents).String(),
			Location:       location,
			DepartureTime:  pgconv.TimeFromPgtype(start),
			ReturnTime:     pgconv.TimeFromPgtype(end),
			MaxQuantity:    maxQty,
			BookedQuantity: booked,
			AvailableSlots: maxQty - booked,
			GuideID:        pgconv.UUIDPtrFromPgtype(guideID),
			GuideName:      pgconv.StringPtrFromPgtype(guideName),
			PromotionID:    pgconv.UUIDPtrFromPgtype(promotionID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate departure views", err)
	}
	return views, nil
}
