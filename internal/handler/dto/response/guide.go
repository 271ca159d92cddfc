package response

import (
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PassengerResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	Reference   string    `json:"reference"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
}

// PassengerManifestResponse carries the PAID passenger list plus the summed
// head count.
type PassengerManifestResponse struct {
	DepartureID     uuid.UUID            `json:"departureId"`
	TotalPassengers int                  `json:"totalPassengers"`
	Passengers      []*PassengerResponse `json:"passengers"`
}

func FromPassengerViews(departureID uuid.UUID, views []*queries.PassengerView) *PassengerManifestResponse {
	passengers := make([]*PassengerResponse, len(views))
	total := 0
	for i, v := range views {
		var resp PassengerResponse
		_ = copier.Copy(&resp, v)
		passengers[i] = &resp
		total += v.Quantity
	}
	return &PassengerManifestResponse{
		DepartureID:     departureID,
		TotalPassengers: total,
		Passengers:      passengers,
	}
}
