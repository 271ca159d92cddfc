//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/usecase/queries"

	"tour-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

type DepartureBuilder struct {
	ID            uuid.UUID
	TourID        uuid.UUID
	TourName      string
	Destination   string
	DayNum        int
	UnitPriceCent int64
	Location      string
	DepartureTime time.Time
	ReturnTime    time.Time
	MaxQuantity   int
	Booked        int
	GuideID       *uuid.UUID
	GuideName     *string
	PromotionID   *uuid.UUID
}

func NewDepartureBuilder() *DepartureBuilder {
	start := time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
	return &DepartureBuilder{
		ID:            uuid.New(),
		TourID:        uuid.New(),
		TourName:      "Halong Bay Cruise",
		Destination:   "Halong Bay",
		DayNum:        2,
		UnitPriceCent: 15000,
		Location:      "Hanoi Old Quarter",
		DepartureTime: start,
		ReturnTime:    start.Add(36 * time.Hour),
		MaxQuantity:   10,
		Booked:        0,
	}
}

func (d *DepartureBuilder) With(mutate func(*DepartureBuilder)) *DepartureBuilder {
	mutate(d)
	return d
}

func (d *DepartureBuilder) BuildView() *queries.DepartureView {
	return &queries.DepartureView{
		ID:             d.ID,
		TourID:         d.TourID,
		TourName:       d.TourName,
		Destination:    d.Destination,
		DayNum:         d.DayNum,
		UnitPrice:      money.FromCents(d.UnitPriceCent).String(),
		Location:       d.Location,
		DepartureTime:  d.DepartureTime,
		ReturnTime:     d.ReturnTime,
		MaxQuantity:    d.MaxQuantity,
		BookedQuantity: d.Booked,
		AvailableSlots: d.MaxQuantity - d.Booked,
		GuideID:        d.GuideID,
		GuideName:      d.GuideName,
		PromotionID:    d.PromotionID,
	}
}

func (d *DepartureBuilder) BuildCreateBookingRequestDTO(quantity int, promotionID *uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		DepartureID: d.ID,
		PromotionID: promotionID,
		Quantity:    quantity,
	}
}
