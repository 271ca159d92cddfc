// Package response maps read-side views onto the JSON wire shapes. Field
// names line up with the view structs so copier can do the plumbing.
package response

import (
	"time"

	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingCreatedResponse is the mutation envelope of the booking endpoint.
type BookingCreatedResponse struct {
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
	BookingID      uuid.UUID `json:"bookingID"`
	Reference      string    `json:"reference"`
	OriginalPrice  string    `json:"originalPrice"`
	DiscountAmount string    `json:"discountAmount"`
	TotalPayment   string    `json:"totalPayment"`
}

func FromBookingCreated(result *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Success:        true,
		Message:        "Booking created successfully",
		BookingID:      result.BookingID,
		Reference:      result.Reference,
		OriginalPrice:  result.Quote.OriginalPrice.String(),
		DiscountAmount: result.Quote.DiscountAmount.String(),
		TotalPayment:   result.Quote.TotalPayment.String(),
	}
}

// StatusResponse is the envelope of mutations that return no payload.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) StatusResponse {
	return StatusResponse{Success: true, Message: message}
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	UserID         uuid.UUID `json:"userId"`
	UserEmail      string    `json:"userEmail"`
	DepartureID    uuid.UUID `json:"departureId"`
	TourName       string    `json:"tourName"`
	Location       string    `json:"location"`
	DepartureTime  time.Time `json:"departureTime"`
	Quantity       int       `json:"quantity"`
	OriginalPrice  string    `json:"originalPrice"`
	DiscountAmount string    `json:"discountAmount"`
	TotalPayment   string    `json:"totalPayment"`
	Status         string    `json:"status"`
	BookedAt       time.Time `json:"bookedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(views))
	for i, v := range views {
		resp[i] = FromBookingView(v)
	}
	return resp
}
