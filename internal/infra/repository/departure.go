package repository

import (
	"context"

	"tour-booking-api/internal/domain/departure"
	"tour-booking-api/internal/domain/schedule"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DepartureRepository struct {
	db db.DBTX
}

func NewDepartureRepository(dbtx db.DBTX) *DepartureRepository {
	return &DepartureRepository{db: dbtx}
}

// FindByIDForUpdate takes the row lock that serializes every capacity
// mutation on one departure.
func (r *DepartureRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*departure.Departure, error) {
	const query = `
		SELECT id, tour_id, day_num, unit_price_cents, departure_location,
		       departure_time, return_time, max_quantity, guide_id
		FROM tour_departures
		WHERE id = $1
		FOR UPDATE`

	var (
		depID      pgtype.UUID
		tourID     pgtype.UUID
		dayNum     int
		priceCents int64
		location   string
		start      pgtype.Timestamptz
		end        pgtype.Timestamptz
		maxQty     int
		guideID    pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&depID, &tourID, &dayNum, &priceCents, &location,
		&start, &end, &maxQty, &guideID,
	)
	if err != nil {
		return nil, wrapPgErr("find departure for update", err)
	}

	window, err := schedule.NewWindow(pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored departure window is invalid", err)
	}
	entity, err := departure.ReconstructDeparture(
		uuid.UUID(depID.Bytes), uuid.UUID(tourID.Bytes), dayNum,
		money.FromCents(priceCents), location, window, maxQty,
		pgconv.UUIDPtrFromPgtype(guideID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored departure row is invalid", err)
	}
	return entity, nil
}

// AssignmentsForGuide lists the time window of every departure the guide is
// already assigned to, for the overlap check.
func (r *DepartureRepository) AssignmentsForGuide(ctx context.Context, guideID uuid.UUID) ([]schedule.Conflict, error) {
	const query = `
		SELECT id, departure_time, return_time
		FROM tour_departures
		WHERE guide_id = $1`

	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(guideID))
	if err != nil {
		return nil, wrapPgErr("list guide assignments", err)
	}
	defer rows.Close()

	var held []schedule.Conflict
	for rows.Next() {
		var (
			depID pgtype.UUID
			start pgtype.Timestamptz
			end   pgtype.Timestamptz
		)
		if err := rows.Scan(&depID, &start, &end); err != nil {
			return nil, wrapPgErr("scan guide assignment", err)
		}
		window, err := schedule.NewWindow(pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end))
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored departure window is invalid", err)
		}
		held = append(held, schedule.Conflict{
			DepartureID: uuid.UUID(depID.Bytes),
			Window:      window,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("list guide assignments", err)
	}
	return held, nil
}

func (r *DepartureRepository) AssignGuide(ctx context.Context, departureID, guideID uuid.UUID) error {
	const query = `UPDATE tour_departures SET guide_id = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(departureID), pgconv.UUIDToPgtype(guideID))
	if err != nil {
		return wrapPgErr("assign guide", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "departure not found")
	}
	return nil
}
