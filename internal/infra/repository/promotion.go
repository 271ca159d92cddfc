package repository

import (
	"context"

	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	const query = `
		SELECT id, name, percent_bp, start_date, end_date
		FROM promotions
		WHERE id = $1`

	var (
		promoID   pgtype.UUID
		name      string
		percentBP int64
		startDate pgtype.Date
		endDate   pgtype.Date
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&promoID, &name, &percentBP, &startDate, &endDate,
	)
	if err != nil {
		return nil, wrapPgErr("find promotion by id", err)
	}

	percent, err := money.NewPercent(percentBP)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored promotion percent is invalid", err)
	}
	entity, err := promotion.ReconstructPromotion(
		uuid.UUID(promoID.Bytes), name, percent,
		pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored promotion is invalid", err)
	}
	return entity, nil
}

func (r *PromotionRepository) Insert(ctx context.Context, p *promotion.Promotion) error {
	const query = `
		INSERT INTO promotions (id, name, percent_bp, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		p.Name(),
		p.Percent().BasisPoints(),
		pgconv.DateToPgtype(p.StartDate()),
		pgconv.DateToPgtype(p.EndDate()),
	)
	if err != nil {
		return wrapPgErr("insert promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	const query = `
		UPDATE promotions
		SET name = $2, percent_bp = $3, start_date = $4, end_date = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(p.ID()),
		p.Name(),
		p.Percent().BasisPoints(),
		pgconv.DateToPgtype(p.StartDate()),
		pgconv.DateToPgtype(p.EndDate()),
	)
	if err != nil {
		return wrapPgErr("update promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM promotions WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapPgErr("delete promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return nil
}
