// Package api implements the gin endpoint handlers.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/domain/promotion"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/pkg/errs"
	"tour-booking-api/internal/pkg/money"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// scheduleConflictDetail names the departure that blocks a guide assignment.
type scheduleConflictDetail struct {
	ConflictingDepartureID uuid.UUID `json:"conflictingDepartureId"`
	ConflictStart          time.Time `json:"conflictStart"`
	ConflictEnd            time.Time `json:"conflictEnd"`
}

// respondError maps usecase and domain errors onto the HTTP taxonomy.
// Unexpected errors are logged with their stack and answered with a bare 500.
func respondError(c *gin.Context, err error) {
	var conflict *commands.ScheduleConflictError
	if errors.As(err, &conflict) {
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Guide already assigned to an overlapping departure",
			scheduleConflictDetail{
				ConflictingDepartureID: conflict.ConflictingDepartureID,
				ConflictStart:          conflict.ConflictStart,
				ConflictEnd:            conflict.ConflictEnd,
			})
		return
	}

	switch {
	case errors.Is(err, commands.ErrOverbooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough seats available", nil)
	case errors.Is(err, commands.ErrPromotionInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Promotion is still referenced", nil)

	case errors.Is(err, commands.ErrDepartureNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tour departure not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrPromotionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
	case errors.Is(err, commands.ErrGuideNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tour guide not found", nil)

	case errors.Is(err, booking.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
	case errors.Is(err, booking.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment status", nil)
	case errors.Is(err, booking.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Illegal payment status transition", nil)
	case errors.Is(err, commands.ErrPromotionInactive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Promotion is not active today", nil)
	case errors.Is(err, money.ErrInvalidPercent):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Percent must be greater than 0 and at most 100", nil)
	case errors.Is(err, promotion.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End date must not be before start date", nil)
	case errors.Is(err, promotion.ErrEmptyName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Promotion name is required", nil)
	case errors.Is(err, queries.ErrInvalidPhase):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown departure phase", nil)

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, usecase.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "User account is inactive", nil)

	default:
		slog.Error("request failed",
			"error", err.Error(),
			"stack", errs.StackLines(err, 20))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func respondRepoError(c *gin.Context, err error, notFoundMsg string) {
	if isNotFound(err) {
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMsg, nil)
		return
	}
	respondError(c, err)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id format", nil)
		return uuid.Nil, false
	}
	return id, true
}
