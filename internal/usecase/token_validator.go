package usecase

import (
	"tour-booking-api/internal/domain/user"

	"github.com/google/uuid"
)

// TokenValidator is the narrow auth dependency the HTTP middleware needs.
// AuthUseCase satisfies it.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}
