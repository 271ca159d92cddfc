package commands

import (
	"context"
	"fmt"
	"time"

	"tour-booking-api/internal/domain/schedule"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrGuideNotFound = errs.New("tour guide not found")

// ScheduleConflictError reports a guide assignment rejected because the
// guide already holds an overlapping departure. It carries enough detail for
// the API to name the conflicting departure and its window.
type ScheduleConflictError struct {
	GuideID                uuid.UUID
	DepartureID            uuid.UUID
	ConflictingDepartureID uuid.UUID
	ConflictStart          time.Time
	ConflictEnd            time.Time
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf(
		"guide %s already assigned to departure %s from %s to %s",
		e.GuideID, e.ConflictingDepartureID,
		e.ConflictStart.Format(time.RFC3339), e.ConflictEnd.Format(time.RFC3339),
	)
}

type DepartureCommands interface {
	AssignGuide(ctx context.Context, departureID, guideID uuid.UUID) error
}

type departureCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewDepartureCommands(uow shared.UnitOfWork) DepartureCommands {
	return &departureCommandsImpl{uow: uow}
}

// AssignGuide sets the guide on a departure after checking every departure
// the guide already holds for a time-window overlap. The departure being
// edited is excluded so re-assigning the same guide is a no-op, not a
// self-conflict.
func (c *departureCommandsImpl) AssignGuide(ctx context.Context, departureID, guideID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dep, err := tx.Departures().FindByIDForUpdate(ctx, departureID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDepartureNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := tx.Guides().FindByID(ctx, guideID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGuideNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		held, err := tx.Departures().AssignmentsForGuide(ctx, guideID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		exclude := dep.ID()
		if conflict := schedule.FirstConflict(dep.Window(), held, &exclude); conflict != nil {
			return &ScheduleConflictError{
				GuideID:                guideID,
				DepartureID:            dep.ID(),
				ConflictingDepartureID: conflict.DepartureID,
				ConflictStart:          conflict.Window.Start(),
				ConflictEnd:            conflict.Window.End(),
			}
		}

		if err := tx.Departures().AssignGuide(ctx, dep.ID(), guideID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
