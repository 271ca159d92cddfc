package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-side views. Currency fields are fixed-point decimal strings
// ("300.00"), matching the wire format.

type TourView struct {
	ID           uuid.UUID  `json:"id"`
	TourTypeID   uuid.UUID  `json:"tour_type_id"`
	TourTypeName string     `json:"tour_type_name"`
	Name         string     `json:"name"`
	Destination  string     `json:"destination"`
	Description  *string    `json:"description,omitempty"`
	PromotionID  *uuid.UUID `json:"promotion_id,omitempty"`
}

type DepartureView struct {
	ID             uuid.UUID  `json:"id"`
	TourID         uuid.UUID  `json:"tour_id"`
	TourName       string     `json:"tour_name"`
	Destination    string     `json:"destination"`
	DayNum         int        `json:"day_num"`
	UnitPrice      string     `json:"unit_price"`
	Location       string     `json:"location"`
	DepartureTime  time.Time  `json:"departure_time"`
	ReturnTime     time.Time  `json:"return_time"`
	MaxQuantity    int        `json:"max_quantity"`
	BookedQuantity int        `json:"booked_quantity"`
	AvailableSlots int        `json:"available_slots"`
	GuideID        *uuid.UUID `json:"guide_id,omitempty"`
	GuideName      *string    `json:"guide_name,omitempty"`
	PromotionID    *uuid.UUID `json:"promotion_id,omitempty"`
}

type AvailabilityView struct {
	DepartureID    uuid.UUID `json:"departure_id"`
	MaxQuantity    int       `json:"max_quantity"`
	BookedQuantity int       `json:"booked_quantity"`
	AvailableSlots int       `json:"available_slots"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	UserID         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	DepartureID    uuid.UUID `json:"departure_id"`
	TourName       string    `json:"tour_name"`
	Location       string    `json:"location"`
	DepartureTime  time.Time `json:"departure_time"`
	Quantity       int       `json:"quantity"`
	OriginalPrice  string    `json:"original_price"`
	DiscountAmount string    `json:"discount_amount"`
	TotalPayment   string    `json:"total_payment"`
	Status         string    `json:"status"`
	BookedAt       time.Time `json:"booked_at"`
}

type PromotionView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Percent   float64   `json:"percent"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// PassengerView is one booking row on a guide's passenger manifest.
type PassengerView struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Reference   string    `json:"reference"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
