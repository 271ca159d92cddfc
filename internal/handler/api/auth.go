package api

import (
	"net/http"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/handler/dto/request"
	"tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AuthUseCase
}

func NewAuthHandler(auth usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges credentials for a bearer token.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		request.LoginRequest	true	"Credentials"
//	@Success	200		{object}	response.LoginResponse
//	@Failure	401		{object}	httperr.Response
//	@Router		/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	creds, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password format", nil)
		return
	}

	token, view, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(token, view))
}

// Me returns the authenticated user's profile.
//
//	@Summary	Get current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	response.UserResponse
//	@Failure	401	{object}	httperr.Response
//	@Security	BearerAuth
//	@Router		/api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errAuthContext, "Authentication required", nil)
		return
	}

	view, err := h.auth.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAuthorizedUser(view))
}
