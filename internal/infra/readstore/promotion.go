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

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

func (s *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, percent_bp, start_date, end_date FROM promotions WHERE id = $1`,
		pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, wrapReadErr("find promotion view", err)
	}
	views, err := scanPromotionViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, notFoundErr("promotion not found")
	}
	return views[0], nil
}

func (s *PromotionReadStore) FindAll(ctx context.Context) ([]*queries.PromotionView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, percent_bp, start_date, end_date FROM promotions ORDER BY start_date`)
	if err != nil {
		return nil, wrapReadErr("list promotions", err)
	}
	return scanPromotionViews(rows)
}

func scanPromotionViews(rows pgx.Rows) ([]*queries.PromotionView, error) {
	defer rows.Close()

	var views []*queries.PromotionView
	for rows.Next() {
		var (
			promoID   pgtype.UUID
			name      string
			percentBP int64
			startDate pgtype.Date
			endDate   pgtype.Date
		)
		if err := rows.Scan(&promoID, &name, &percentBP, &startDate, &endDate); err != nil {
			return nil, wrapReadErr("scan promotion view", err)
		}

		views = append(views, &queries.PromotionView{
			ID:        uuid.UUID(promoID.Bytes),
			Name:      name,
			Percent:   float64(percentBP) / 100,
			StartDate: pgconv.DateFromPgtype(startDate),
			EndDate:   pgconv.DateFromPgtype(endDate),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate promotion views", err)
	}
	return views, nil
}
