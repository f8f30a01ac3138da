package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/user/domain/models"
)

// UserResponse is the JSON shape of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Ada"`
	Email     string    `json:"email"      example:"ada@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// TokenResponse is the bearer-token payload returned on login.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	TokenType   string `json:"token_type"   example:"bearer"`
	ExpiresIn   int64  `json:"expires_in"   example:"3600"`
} // @name TokenResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name AuthErrorResponse

// MessageResponse is returned by mutations with no payload beyond a confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
} // @name AuthMessageResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
