package api

import (
	"net/http"
	"strconv"

	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DepartureHandler struct {
	commands commands.DepartureCommands
	queries  queries.DepartureQueries
}

func NewDepartureHandler(cmd commands.DepartureCommands, q queries.DepartureQueries) *DepartureHandler {
	return &DepartureHandler{commands: cmd, queries: q}
}

// ListUpcoming returns departures leaving after now, soonest first.
//
//	@Summary	List upcoming departures
//	@Tags		departures
//	@Produce	json
//	@Success	200	{array}	response.DepartureResponse
//	@Router		/api/tour-departures [get]
func (h *DepartureHandler) ListUpcoming(c *gin.Context) {
	views, err := h.queries.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDepartureViews(views))
}

// Get returns one departure with its live availability.
//
//	@Summary	Get a departure
//	@Tags		departures
//	@Produce	json
//	@Param		id	path		string	true	"Departure ID"
//	@Success	200	{object}	response.DepartureResponse
//	@Failure	404	{object}	httperr.Response
//	@Router		/api/tour-departures/{id} [get]
func (h *DepartureHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Tour departure not found")
		return
	}
	c.JSON(http.StatusOK, response.FromDepartureView(view))
}

// CheckAvailability reports remaining capacity. An optional ?quantity=
// parameter additionally answers whether that many seats fit right now;
// the answer is advisory, only booking takes the lock.
//
//	@Summary	Check seat availability
//	@Tags		departures
//	@Produce	json
//	@Param		id			path		string	true	"Departure ID"
//	@Param		quantity	query		int		false	"Requested seats"
//	@Success	200			{object}	response.AvailabilityResponse
//	@Failure	404			{object}	httperr.Response
//	@Router		/api/tour-departures/{id}/check-availability [get]
func (h *DepartureHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var requested *int
	if raw := c.Query("quantity"); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "quantity must be an integer", nil)
			return
		}
		requested = &qty
	}

	view, err := h.queries.Availability(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Tour departure not found")
		return
	}
	c.JSON(http.StatusOK, response.FromAvailability(view, requested))
}

// AvailableSlots is the bare remaining-capacity variant of CheckAvailability.
//
//	@Summary	Get available slots
//	@Tags		departures
//	@Produce	json
//	@Param		id	path		string	true	"Departure ID"
//	@Success	200	{object}	response.AvailabilityResponse
//	@Failure	404	{object}	httperr.Response
//	@Router		/api/tour-departures/{id}/available-slots [get]
func (h *DepartureHandler) AvailableSlots(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.Availability(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Tour departure not found")
		return
	}
	c.JSON(http.StatusOK, response.FromAvailability(view, nil))
}

// AssignGuide puts a guide on a departure after checking their schedule for
// overlapping assignments. Admin only.
//
//	@Summary	Assign a guide to a departure
//	@Tags		departures
//	@Produce	json
//	@Param		id		path		string	true	"Departure ID"
//	@Param		guideId	path		string	true	"Guide ID"
//	@Success	200		{object}	response.StatusResponse
//	@Failure	404		{object}	httperr.Response
//	@Failure	409		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/tour-departures/{id}/assign-guide/{guideId} [put]
func (h *DepartureHandler) AssignGuide(c *gin.Context) {
	departureID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	guideID, ok := parseIDParam(c, "guideId")
	if !ok {
		return
	}

	if err := h.commands.AssignGuide(c.Request.Context(), departureID, guideID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("Guide assigned"))
}
