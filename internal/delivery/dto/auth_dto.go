package dto

import (
	"time"

	"github.com/google/uuid"
)

// Sign-in callback modes.
const (
	AuthModeSignup = "signup"
	AuthModeLogin  = "login"
)

// Request DTOs

type AuthCallbackRequest struct {
	Mode string `json:"mode" validate:"required,oneof=signup login"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	Role      string    `json:"role"`
}

type AuthCallbackResponse struct {
	User       UserResponse `json:"user"`
	Registered bool         `json:"registered"`
}
