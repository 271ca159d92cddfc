//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID        uuid.UUID
	Name      string
	Percent   float64
	StartDate time.Time
	EndDate   time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:        uuid.New(),
		Name:      "Summer Sale",
		Percent:   20,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildView() *queries.PromotionView {
	return &queries.PromotionView{
		ID:        p.ID,
		Name:      p.Name,
		Percent:   p.Percent,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
}

func (p *PromotionBuilder) BuildRequestDTO() reqdto.PromotionRequest {
	return reqdto.PromotionRequest{
		Name:      p.Name,
		Percent:   p.Percent,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
	}
}
