// Package promotion models time-boxed percentage discounts.
package promotion

import (
	"errors"
	"time"

	"tour-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidPercent   = errors.New("promotion percent must be greater than 0 and at most 100")
	ErrInvalidDateRange = errors.New("promotion end date must not be before start date")
	ErrEmptyName        = errors.New("promotion name is required")
)

// Promotion is a percentage discount valid on an inclusive date range.
type Promotion struct {
	id        uuid.UUID
	name      string
	percent   money.Percent
	startDate time.Time
	endDate   time.Time
}

func NewPromotion(name string, percent money.Percent, startDate, endDate time.Time) (*Promotion, error) {
	return build(uuid.New(), name, percent, startDate, endDate)
}

func ReconstructPromotion(id uuid.UUID, name string, percent money.Percent, startDate, endDate time.Time) (*Promotion, error) {
	return build(id, name, percent, startDate, endDate)
}

func build(id uuid.UUID, name string, percent money.Percent, startDate, endDate time.Time) (*Promotion, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	start := truncateToDate(startDate)
	end := truncateToDate(endDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	return &Promotion{
		id:        id,
		name:      name,
		percent:   percent,
		startDate: start,
		endDate:   end,
	}, nil
}

// IsActiveOn reports whether the date falls inside [startDate, endDate],
// bounds inclusive.
func (p *Promotion) IsActiveOn(t time.Time) bool {
	d := truncateToDate(t)
	return !d.Before(p.startDate) && !d.After(p.endDate)
}

// IsExpiredOn reports whether the promotion's window ended before the date.
func (p *Promotion) IsExpiredOn(t time.Time) bool {
	return truncateToDate(t).After(p.endDate)
}

// IsUpcomingOn reports whether the promotion's window starts after the date.
func (p *Promotion) IsUpcomingOn(t time.Time) bool {
	return truncateToDate(t).Before(p.startDate)
}

func (p *Promotion) ID() uuid.UUID          { return p.id }
func (p *Promotion) Name() string           { return p.name }
func (p *Promotion) Percent() money.Percent { return p.percent }
func (p *Promotion) StartDate() time.Time   { return p.startDate }
func (p *Promotion) EndDate() time.Time     { return p.endDate }

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
