package commands

import (
	"context"
	"io"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/pkg/refcode"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDepartureNotFound       = errs.New("tour departure not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrPromotionNotFound       = errs.New("promotion not found")
	ErrPromotionInactive       = errs.New("promotion is not active today")
	ErrOverbooked              = errs.New("not enough seats left on this departure")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	DepartureID uuid.UUID
	PromotionID *uuid.UUID
	Quantity    int
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Reference string
	Quote     booking.Quote
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	random io.Reader
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, random io.Reader) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		random: random,
	}
}

// CreateBooking prices and inserts a PENDING booking. The capacity check and
// the insert run in one transaction holding the departure row lock, so the
// booked sum cannot change underneath us and the departure cannot oversell.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	userID uuid.UUID,
	params CreateBookingParams,
) (*CreateBookingResult, error) {
	if params.Quantity < 1 {
		return nil, booking.ErrInvalidQuantity
	}

	var result *CreateBookingResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dep, err := tx.Departures().FindByIDForUpdate(ctx, params.DepartureID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDepartureNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		promo, err := c.resolvePromotion(ctx, tx, params.PromotionID)
		if err != nil {
			return err
		}

		booked, err := tx.Bookings().SumActiveQuantity(ctx, dep.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !dep.CanAccommodate(booked, params.Quantity) {
			return ErrOverbooked
		}

		now := c.clock.Now()
		ref, err := refcode.BookingRef(c.random, now)
		if err != nil {
			return errs.Wrap(err, "generate booking reference")
		}
		entity, err := booking.NewBooking(userID, dep.ID(), params.Quantity, dep.UnitPrice(), promo, ref, now)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Insert(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CreateBookingResult{
			BookingID: entity.ID(),
			Reference: entity.Reference(),
			Quote: booking.Quote{
				OriginalPrice:  entity.OriginalPrice(),
				DiscountAmount: entity.DiscountAmount(),
				TotalPayment:   entity.TotalPayment(),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolvePromotion loads the referenced promotion and rejects one whose date
// window does not cover today. A stale promotion id is a hard failure rather
// than a silent zero discount.
func (c *bookingCommandsImpl) resolvePromotion(
	ctx context.Context,
	tx shared.Tx,
	promotionID *uuid.UUID,
) (*promotion.Promotion, error) {
	if promotionID == nil {
		return nil, nil
	}

	promo, err := tx.Promotions().FindByID(ctx, *promotionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !promo.IsActiveOn(c.clock.Now()) {
		return nil, ErrPromotionInactive
	}
	return promo, nil
}

// CancelBooking moves a booking to CANCELLED, freeing its seats. The
// departure row lock is taken first so cancellation serializes with
// concurrent bookings on the same departure.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockBookingDeparture(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := entity.Cancel(); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, entity.ID(), entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// UpdatePaymentStatus applies one payment state transition. Unknown statuses
// and illegal transitions are rejected by the domain state machine.
func (c *bookingCommandsImpl) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status string) error {
	next, err := booking.NewStatus(status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var entity *booking.Booking
		if next == booking.StatusCancelled {
			// Cancelling frees capacity, so it takes the same row lock as
			// booking creation.
			entity, err = c.lockBookingDeparture(ctx, tx, bookingID)
		} else {
			entity, err = c.findBooking(ctx, tx, bookingID)
		}
		if err != nil {
			return err
		}

		if err := entity.TransitionTo(next); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, entity.ID(), entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	entity, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) lockBookingDeparture(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	entity, err := c.findBooking(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Departures().FindByIDForUpdate(ctx, entity.DepartureID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
