package repository

import (
	"context"

	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/pgconv"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuideRepository struct {
	db db.DBTX
}

func NewGuideRepository(dbtx db.DBTX) *GuideRepository {
	return &GuideRepository{db: dbtx}
}

func (r *GuideRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.GuideSnapshot, error) {
	const query = `
		SELECT g.id, g.user_id, u.full_name
		FROM tour_guides g
		JOIN users u ON u.id = g.user_id
		WHERE g.id = $1`

	var (
		guideID  pgtype.UUID
		userID   pgtype.UUID
		fullName string
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&guideID, &userID, &fullName)
	if err != nil {
		return nil, wrapPgErr("find guide by id", err)
	}

	return &shared.GuideSnapshot{
		ID:       uuid.UUID(guideID.Bytes),
		UserID:   uuid.UUID(userID.Bytes),
		FullName: fullName,
	}, nil
}
