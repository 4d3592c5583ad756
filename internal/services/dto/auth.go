package dto

import (
	"taskbridge_backend/internal/models"
)

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult - результат логина или регистрации
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ForgotPasswordRequest - запрос сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest - подтверждение сброса пароля
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
