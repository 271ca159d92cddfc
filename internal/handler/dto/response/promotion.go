package response

import (
	"time"

	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Percent   float64   `json:"percent"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Phase     string    `json:"phase"`
}

func FromPromotionView(view *queries.PromotionView, phase queries.PromotionPhase) *PromotionResponse {
	var resp PromotionResponse
	_ = copier.Copy(&resp, view)
	resp.Phase = string(phase)
	return &resp
}

type PromotionCreatedResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	PromotionID uuid.UUID `json:"promotionID"`
}

type PromotionStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Expired  int `json:"expired"`
	Upcoming int `json:"upcoming"`
}

func FromPromotionStats(stats *queries.PromotionStats) *PromotionStatsResponse {
	var resp PromotionStatsResponse
	_ = copier.Copy(&resp, stats)
	return &resp
}
