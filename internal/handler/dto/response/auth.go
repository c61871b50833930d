package response

import (
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		User:  *FromUserProfile(result.User),
	}
}

func FromUserProfile(profile *commands.UserProfile) *UserResponse {
	return &UserResponse{
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
		Role:  profile.Role,
	}
}
