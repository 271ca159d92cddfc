package api

import (
	"errors"
	"net/http"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmd commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmd, queries: q}
}

// Create books seats on a departure for the authenticated user.
//
//	@Summary	Create a booking
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		request.CreateBookingRequest	true	"Booking details"
//	@Success	201		{object}	response.BookingCreatedResponse
//	@Failure	400		{object}	httperr.Response
//	@Failure	409		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAuthContext, "Authentication required", nil)
		return
	}

	result, err := h.commands.CreateBooking(c.Request.Context(), userID, commands.CreateBookingParams{
		DepartureID: req.DepartureID,
		PromotionID: req.PromotionID,
		Quantity:    req.Quantity,
	})
	if errors.Is(err, commands.ErrOverbooked) {
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Not enough seats available on departure "+req.DepartureID.String(), nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromBookingCreated(result))
}

// Get returns one booking. Customers only see their own; admins see any.
//
//	@Summary	Get a booking
//	@Tags		bookings
//	@Produce	json
//	@Param		id	path		string	true	"Booking ID"
//	@Success	200	{object}	response.BookingResponse
//	@Failure	404	{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Booking not found")
		return
	}
	if !h.canAccess(c, view.UserID) {
		// Hide the booking's existence from other customers.
		httperr.AbortWithError(c, http.StatusNotFound, errAuthContext, "Booking not found", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingView(view))
}

// List returns the authenticated user's bookings, newest first.
// ?active=true keeps only PENDING and PAID ones.
//
//	@Summary	List my bookings
//	@Tags		bookings
//	@Produce	json
//	@Param		active	query		bool	false	"Only active bookings"
//	@Success	200		{array}		response.BookingResponse
//	@Security	BearerAuth
//	@Router		/api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAuthContext, "Authentication required", nil)
		return
	}

	activeOnly := c.Query("active") == "true"
	views, err := h.queries.ListByUser(c.Request.Context(), userID, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingViews(views))
}

// Cancel releases the booking's seats. Customers cancel their own bookings;
// admins cancel any.
//
//	@Summary	Cancel a booking
//	@Tags		bookings
//	@Produce	json
//	@Param		id	path		string	true	"Booking ID"
//	@Success	200	{object}	response.StatusResponse
//	@Failure	400	{object}	httperr.Response
//	@Failure	404	{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err, "Booking not found")
		return
	}
	if !h.canAccess(c, view.UserID) {
		httperr.AbortWithError(c, http.StatusNotFound, errAuthContext, "Booking not found", nil)
		return
	}

	if err := h.commands.CancelBooking(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Booking cancelled"))
}

// UpdatePaymentStatus moves a booking through the payment state machine.
// Admin only; the transition rules live in the domain.
//
//	@Summary	Update payment status
//	@Tags		bookings
//	@Produce	json
//	@Param		id		path		string	true	"Booking ID"
//	@Param		status	query		string	true	"Target status"	Enums(PENDING, PAID, CANCELLED)
//	@Success	200		{object}	response.StatusResponse
//	@Failure	400		{object}	httperr.Response
//	@Failure	404		{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/bookings/{id}/payment-status [put]
func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingParam, "status query parameter is required", nil)
		return
	}

	if err := h.commands.UpdatePaymentStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("Payment status updated"))
}

func (h *BookingHandler) canAccess(c *gin.Context, ownerID uuid.UUID) bool {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return false
	}
	if userID == ownerID {
		return true
	}
	role, ok := middleware.GetUserRole(c)
	return ok && role == user.RoleAdmin
}
