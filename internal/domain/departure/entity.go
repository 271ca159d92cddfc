// Package departure models one scheduled running of a tour, with its own
// price, capacity and time window.
package departure

import (
	"errors"

	"tour-booking-api/internal/domain/schedule"
	"tour-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaxQuantity = errors.New("max quantity must be at least 1")
	ErrInvalidDayNum      = errors.New("day count must be at least 1")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
)

type Departure struct {
	id          uuid.UUID
	tourID      uuid.UUID
	dayNum      int
	unitPrice   money.Money
	location    string
	window      schedule.Window
	maxQuantity int
	guideID     *uuid.UUID
}

func NewDeparture(
	tourID uuid.UUID,
	dayNum int,
	unitPrice money.Money,
	location string,
	window schedule.Window,
	maxQuantity int,
) (*Departure, error) {
	return build(uuid.New(), tourID, dayNum, unitPrice, location, window, maxQuantity, nil)
}

func ReconstructDeparture(
	id, tourID uuid.UUID,
	dayNum int,
	unitPrice money.Money,
	location string,
	window schedule.Window,
	maxQuantity int,
	guideID *uuid.UUID,
) (*Departure, error) {
	return build(id, tourID, dayNum, unitPrice, location, window, maxQuantity, guideID)
}

func build(
	id, tourID uuid.UUID,
	dayNum int,
	unitPrice money.Money,
	location string,
	window schedule.Window,
	maxQuantity int,
	guideID *uuid.UUID,
) (*Departure, error) {
	if dayNum < 1 {
		return nil, ErrInvalidDayNum
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if maxQuantity < 1 {
		return nil, ErrInvalidMaxQuantity
	}
	return &Departure{
		id:          id,
		tourID:      tourID,
		dayNum:      dayNum,
		unitPrice:   unitPrice,
		location:    location,
		window:      window,
		maxQuantity: maxQuantity,
		guideID:     guideID,
	}, nil
}

// AvailableSlots is the derived free capacity given the summed quantity of
// non-cancelled bookings.
func (d *Departure) AvailableSlots(bookedQuantity int) int {
	return d.maxQuantity - bookedQuantity
}

// CanAccommodate reports whether quantity more seats fit on top of the
// current booked sum.
func (d *Departure) CanAccommodate(bookedQuantity, quantity int) bool {
	return bookedQuantity+quantity <= d.maxQuantity
}

func (d *Departure) ID() uuid.UUID           { return d.id }
func (d *Departure) TourID() uuid.UUID       { return d.tourID }
func (d *Departure) DayNum() int             { return d.dayNum }
func (d *Departure) UnitPrice() money.Money  { return d.unitPrice }
func (d *Departure) Location() string        { return d.location }
func (d *Departure) Window() schedule.Window { return d.window }
func (d *Departure) MaxQuantity() int        { return d.maxQuantity }
func (d *Departure) GuideID() *uuid.UUID     { return d.guideID }
