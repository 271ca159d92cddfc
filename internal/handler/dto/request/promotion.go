package request

import (
	"time"
)

const dateLayout = "2006-01-02"

// PromotionRequest carries dates as "YYYY-MM-DD"; promotions are valid on
// whole days.
type PromotionRequest struct {
	Name      string  `json:"name" binding:"required"`
	Percent   float64 `json:"percent" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
}

func (r PromotionRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
