package api

import (
	"net/http"

	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	tours      queries.TourQueries
	departures queries.DepartureQueries
}

func NewTourHandler(tours queries.TourQueries, departures queries.DepartureQueries) *TourHandler {
	return &TourHandler{tours: tours, departures: departures}
}

// List returns the catalogue of tours.
//
//	@Summary	List tours
//	@Tags		tours
//	@Produce	json
//	@Success	200	{array}	response.TourResponse
//	@Router		/api/tours [get]
func (h *TourHandler) List(c *gin.Context) {
	views, err := h.tours.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTourViews(views))
}

// Get returns one tour.
//
//	@Summary	Get a tour
//	@Tags		tours
//	@Produce	json
//	@Param		id	path		string	true	"Tour ID"
//	@Success	200	{object}	response.TourResponse
//	@Failure	404	{object}	httperr.Response
//	@Router		/api/tours/{id} [get]
func (h *TourHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.tours.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Tour not found")
		return
	}
	c.JSON(http.StatusOK, response.FromTourView(view))
}

// ListDepartures returns every departure scheduled for a tour.
//
//	@Summary	List a tour's departures
//	@Tags		tours
//	@Produce	json
//	@Param		id	path	string	true	"Tour ID"
//	@Success	200	{array}	response.DepartureResponse
//	@Router		/api/tours/{id}/departures [get]
func (h *TourHandler) ListDepartures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.departures.ListByTour(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDepartureViews(views))
}
