package dto

import "workaholic_backend/internal/models"

type RegisterRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// AuthResponse is the register/login answer: credential plus the full
// profile snapshot, so the client never has to recompute completion state.
type AuthResponse struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Token       string           `json:"token"`
	UserEmail   string           `json:"user_email"`
	UserDetails *UserDetails     `json:"userDetails"`
	IsNewUser   bool             `json:"isNewUser"`
	Role        *models.UserRole `json:"role"`
}
