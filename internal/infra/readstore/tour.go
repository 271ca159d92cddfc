package readstore

import (
	"context"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const tourViewSelect = `
	SELECT t.id, t.tour_type_id, tt.name, t.name, t.destination,
	       t.description, t.promotion_id
	FROM tours t
	JOIN tour_types tt ON tt.id = t.tour_type_id`

type TourReadStore struct {
	db db.DBTX
}

func NewTourReadStore(dbtx db.DBTX) *TourReadStore {
	return &TourReadStore{db: dbtx}
}

func (s *TourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TourView, error) {
	rows, err := s.db.Query(ctx, tourViewSelect+` WHERE t.id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapReadErr("find tour view", err)
	}
	views, err := scanTourViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, notFoundErr("tour not found")
	}
	return views[0], nil
}

func (s *TourReadStore) FindAll(ctx context.Context) ([]*queries.TourView, error) {
	rows, err := s.db.Query(ctx, tourViewSelect+` ORDER BY t.name`)
	if err != nil {
		return nil, wrapReadErr("list tours", err)
	}
	return scanTourViews(rows)
}

func scanTourViews(rows pgx.Rows) ([]*queries.TourView, error) {
	defer rows.Close()

	var views []*queries.TourView
	for rows.Next() {
		var (
			tourID       pgtype.UUID
			tourTypeID   pgtype.UUID
			tourTypeName string
			name         string
			destination  string
			description  pgtype.Text
			promotionID  pgtype.UUID
		)
		err := rows.Scan(&tourID, &tourTypeID, &tourTypeName, &name,
			&destination, &description, &promotionID)
		if err != nil {
			return nil, wrapReadErr("scan tour view", err)
		}

		views = append(views, &queries.TourView{
			ID:           uuid.UUID(tourID.Bytes),
			TourTypeID:   uuid.UUID(tourTypeID.Bytes),
			TourTypeName: tourTypeName,
			Name:         name,
			Destination:  destination,
			Description:  pgconv.StringPtrFromPgtype(description),
			PromotionID:  pgconv.UUIDPtrFromPgtype(promotionID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate tour views", err)
	}
	return views, nil
}
