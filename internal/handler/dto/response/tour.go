package response

import (
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TourResponse struct {
	ID           uuid.UUID  `json:"id"`
	TourTypeID   uuid.UUID  `json:"tourTypeId"`
	TourTypeName string     `json:"tourTypeName"`
	Name         string     `json:"name"`
	Destination  string     `json:"destination"`
	Description  *string    `json:"description,omitempty"`
	PromotionID  *uuid.UUID `json:"promotionId,omitempty"`
}

func FromTourView(view *queries.TourView) *TourResponse {
	var resp TourResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTourViews(views []*queries.TourView) []*TourResponse {
	resp := make([]*TourResponse, len(views))
	for i, v := range views {
		resp[i] = FromTourView(v)
	}
	return resp
}
