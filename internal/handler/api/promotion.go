package api

import (
	"net/http"
	"strings"

	"tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	commands commands.PromotionCommands
	queries  queries.PromotionQueries
	clock    clock.Clock
}

func NewPromotionHandler(cmd commands.PromotionCommands, q queries.PromotionQueries, clk clock.Clock) *PromotionHandler {
	return &PromotionHandler{commands: cmd, queries: q, clock: clk}
}

// Create registers a discount promotion. Admin only.
//
//	@Summary	Create a promotion
//	@Tags		promotions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		request.PromotionRequest	true	"Promotion details"
//	@Success	201		{object}	response.PromotionCreatedResponse
//	@Failure	400		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}

	id, err := h.commands.CreatePromotion(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.PromotionCreatedResponse{
		Success:     true,
		Message:     "Promotion created successfully",
		PromotionID: id,
	})
}

// Update replaces a promotion's name, percent and date window. Admin only.
//
//	@Summary	Update a promotion
//	@Tags		promotions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Promotion ID"
//	@Param		request	body		request.PromotionRequest	true	"Promotion details"
//	@Success	200		{object}	response.StatusResponse
//	@Failure	404		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	params, ok := h.bindParams(c)
	if !ok {
		return
	}

	if err := h.commands.UpdatePromotion(c.Request.Context(), id, params); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("Promotion updated"))
}

// Delete removes a promotion unless bookings still reference it. Admin only.
//
//	@Summary	Delete a promotion
//	@Tags		promotions
//	@Produce	json
//	@Param		id	path		string	true	"Promotion ID"
//	@Success	200	{object}	response.StatusResponse
//	@Failure	404	{object}	httperr.Response
//	@Failure	409	{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeletePromotion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK("Promotion deleted"))
}

// List returns promotions, optionally filtered by ?phase=.
//
//	@Summary	List promotions
//	@Tags		promotions
//	@Produce	json
//	@Param		phase	query	string	false	"Phase filter"	Enums(ACTIVE, EXPIRED, UPCOMING)
//	@Success	200		{array}	response.PromotionResponse
//	@Security	BearerAuth
//	@Router		/api/promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		views []*queries.PromotionView
		err   error
	)
	if raw := c.Query("phase"); raw != "" {
		phase := queries.PromotionPhase(strings.ToUpper(raw))
		switch phase {
		case queries.PhaseActive, queries.PhaseExpired, queries.PhaseUpcoming:
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingParam, "Unknown promotion phase", nil)
			return
		}
		views, err = h.queries.ListByPhase(ctx, phase)
	} else {
		views, err = h.queries.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(views))
}

// ListActive returns the promotions usable today.
//
//	@Summary	List active promotions
//	@Tags		promotions
//	@Produce	json
//	@Success	200	{array}	response.PromotionResponse
//	@Router		/api/promotions/active [get]
func (h *PromotionHandler) ListActive(c *gin.Context) {
	views, err := h.queries.ListByPhase(c.Request.Context(), queries.PhaseActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponses(views))
}

// Get returns one promotion with its current phase.
//
//	@Summary	Get a promotion
//	@Tags		promotions
//	@Produce	json
//	@Param		id	path		string	true	"Promotion ID"
//	@Success	200	{object}	response.PromotionResponse
//	@Failure	404	{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Promotion not found")
		return
	}

	phase := queries.ClassifyPromotion(view, h.clock.Now())
	c.JSON(http.StatusOK, response.FromPromotionView(view, phase))
}

// Stats returns promotion counts per phase. Admin only.
//
//	@Summary	Promotion statistics
//	@Tags		promotions
//	@Produce	json
//	@Success	200	{object}	response.PromotionStatsResponse
//	@Security	BearerAuth
//	@Router		/api/promotions/stats [get]
func (h *PromotionHandler) Stats(c *gin.Context) {
	stats, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPromotionStats(stats))
}

func (h *PromotionHandler) bindParams(c *gin.Context) (commands.PromotionParams, bool) {
	var req request.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return commands.PromotionParams{}, false
	}

	start, end, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be YYYY-MM-DD", nil)
		return commands.PromotionParams{}, false
	}

	return commands.PromotionParams{
		Name:      req.Name,
		Percent:   req.Percent,
		StartDate: start,
		EndDate:   end,
	}, true
}

func (h *PromotionHandler) toResponses(views []*queries.PromotionView) []*response.PromotionResponse {
	now := h.clock.Now()
	resp := make([]*response.PromotionResponse, len(views))
	for i, v := range views {
		resp[i] = response.FromPromotionView(v, queries.ClassifyPromotion(v, now))
	}
	return resp
}
