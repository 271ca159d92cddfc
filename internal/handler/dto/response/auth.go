package response

import (
	"tour-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func FromLogin(token string, view *queries.AuthorizedUserView) *LoginResponse {
	var u UserResponse
	_ = copier.Copy(&u, view)
	return &LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    u,
	}
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) *UserResponse {
	var u UserResponse
	_ = copier.Copy(&u, view)
	return &u
}
