package response

import (
	"time"

	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DepartureResponse struct {
	ID             uuid.UUID  `json:"id"`
	TourID         uuid.UUID  `json:"tourId"`
	TourName       string     `json:"tourName"`
	Destination    string     `json:"destination"`
	DayNum         int        `json:"dayNum"`
	UnitPrice      string     `json:"unitPrice"`
	Location       string     `json:"location"`
	DepartureTime  time.Time  `json:"departureTime"`
	ReturnTime     time.Time  `json:"returnTime"`
	MaxQuantity    int        `json:"maxQuantity"`
	BookedQuantity int        `json:"bookedQuantity"`
	AvailableSlots int        `json:"availableSlots"`
	GuideID        *uuid.UUID `json:"guideId,omitempty"`
	GuideName      *string    `json:"guideName,omitempty"`
	PromotionID    *uuid.UUID `json:"promotionId,omitempty"`
}

func FromDepartureView(view *queries.DepartureView) *DepartureResponse {
	var resp DepartureResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDepartureViews(views []*queries.DepartureView) []*DepartureResponse {
	resp := make([]*DepartureResponse, len(views))
	for i, v := range views {
		resp[i] = FromDepartureView(v)
	}
	return resp
}

type AvailabilityResponse struct {
	DepartureID    uuid.UUID `json:"departureId"`
	MaxQuantity    int       `json:"maxQuantity"`
	BookedQuantity int       `json:"bookedQuantity"`
	AvailableSlots int       `json:"availableSlots"`
	Available      *bool     `json:"available,omitempty"`
}

func FromAvailability(view *queries.AvailabilityView, requested *int) *AvailabilityResponse {
	resp := &AvailabilityResponse{}
	_ = copier.Copy(resp, view)
	if requested != nil {
		ok := *requested >= 1 && *requested <= view.AvailableSlots
		resp.Available = &ok
	}
	return resp
}
