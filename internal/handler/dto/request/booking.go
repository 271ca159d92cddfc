package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	DepartureID uuid.UUID  `json:"departure_id" binding:"required"`
	PromotionID *uuid.UUID `json:"promotion_id,omitempty"`
	Quantity    int        `json:"quantity" binding:"required"`
}
