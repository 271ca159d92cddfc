package commands

import (
	"context"
	"time"

	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPromotionInUse = errs.New("promotion is referenced by tours or bookings")

type PromotionParams struct {
	Name      string
	Percent   float64
	StartDate time.Time
	EndDate   time.Time
}

type PromotionCommands interface {
	CreatePromotion(ctx context.Context, params PromotionParams) (uuid.UUID, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, params PromotionParams) error
	DeletePromotion(ctx context.Context, id uuid.UUID) error
}

type promotionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPromotionCommands(uow shared.UnitOfWork) PromotionCommands {
	return &promotionCommandsImpl{uow: uow}
}

func (c *promotionCommandsImpl) CreatePromotion(ctx context.Context, params PromotionParams) (uuid.UUID, error) {
	entity, err := buildPromotion(uuid.Nil, params)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Promotions().Insert(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (c *promotionCommandsImpl) UpdatePromotion(ctx context.Context, id uuid.UUID, params PromotionParams) error {
	entity, err := buildPromotion(id, params)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Promotions().FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPromotionNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Promotions().Update(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *promotionCommandsImpl) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Promotions().Delete(ctx, id)
		if err == nil {
			return nil
		}
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrPromotionNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrPromotionInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	})
}

func buildPromotion(id uuid.UUID, params PromotionParams) (*promotion.Promotion, error) {
	percent, err := money.PercentFromFloat(params.Percent)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return promotion.NewPromotion(params.Name, percent, params.StartDate, params.EndDate)
	}
	return promotion.ReconstructPromotion(id, params.Name, percent, params.StartDate, params.EndDate)
}
