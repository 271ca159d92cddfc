// Package schedule holds the time-window overlap rule used to keep a tour
// guide from being assigned to two departures at once.
package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("return time must be after departure time")

// Window is an inclusive [start, end] time range.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

// Overlaps reports whether two windows intersect. Bounds are inclusive:
// a window ending exactly when another starts counts as a conflict.
func (w Window) Overlaps(other Window) bool {
	return !w.start.After(other.end) && !w.end.Before(other.start)
}

// Conflict identifies one departure whose window collides with a proposed
// assignment.
type Conflict struct {
	DepartureID uuid.UUID
	Window      Window
}

// FirstConflict returns the first assignment in held that overlaps the
// proposed window, skipping excludeID (the departure being edited).
func FirstConflict(proposed Window, held []Conflict, excludeID *uuid.UUID) *Conflict {
	for _, h := range held {
		if excludeID != nil && h.DepartureID == *excludeID {
			continue
		}
		if proposed.Overlaps(h.Window) {
			c := h
			return &c
		}
	}
	return nil
}
