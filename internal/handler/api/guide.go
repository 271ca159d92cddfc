package api

import (
	"net/http"
	"strings"

	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// GuideHandler serves the guide dashboard. Identity comes from the JWT, so
// a guide can only ever see their own schedule and manifests.
type GuideHandler struct {
	queries queries.GuideQueries
}

func NewGuideHandler(q queries.GuideQueries) *GuideHandler {
	return &GuideHandler{queries: q}
}

// MyDepartures lists the authenticated guide's assigned departures,
// optionally filtered by ?phase= (UPCOMING, ONGOING, COMPLETED, ALL).
//
//	@Summary	List my assigned departures
//	@Tags		guides
//	@Produce	json
//	@Param		phase	query	string	false	"Phase filter"	Enums(UPCOMING, ONGOING, COMPLETED, ALL)
//	@Success	200		{array}	response.DepartureResponse
//	@Failure	400		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/guides/me/departures [get]
func (h *GuideHandler) MyDepartures(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAuthContext, "Authentication required", nil)
		return
	}

	phase, err := queries.ParseDeparturePhase(strings.ToUpper(c.Query("phase")))
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.queries.AssignedDepartures(c.Request.Context(), userID, phase)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDepartureViews(views))
}

// Passengers returns the PAID passenger manifest of one of the guide's own
// departures. Departures assigned to someone else come back empty.
//
//	@Summary	Get a departure's passenger manifest
//	@Tags		guides
//	@Produce	json
//	@Param		id	path		string	true	"Departure ID"
//	@Success	200	{object}	response.PassengerManifestResponse
//	@Security	BearerAuth
//	@Router		/api/guides/me/departures/{id}/passengers [get]
func (h *GuideHandler) Passengers(c *gin.Context) {
	departureID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAuthContext, "Authentication required", nil)
		return
	}

	views, err := h.queries.Passengers(c.Request.Context(), userID, departureID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPassengerViews(departureID, views))
}
