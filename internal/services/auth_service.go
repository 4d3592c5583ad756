package services

import (
	"errors"
	"fmt"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/auth"
	"taskbridge_backend/internal/email"
	"taskbridge_backend/internal/logger"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services/dto"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.AuthResult, error)
	ForgotPassword(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
	baseURL       string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		baseURL:       baseURL,
	}
}

// Login - вход по email и паролю.
// Неизвестный email и неверный пароль различаются в ответе намеренно:
// так вела себя прежняя версия системы и на это завязаны клиенты.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role := ""
	if user.IsServiceProvider() {
		role = string(user.Role)
	}
	token, err := s.tokens.Generate(user.ID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResult{User: user, Token: token}, nil
}

// ForgotPassword - выпускает reset-токен и отправляет ссылку на почту.
// Токен не сохраняется: его подпись и срок действия проверяются при сбросе.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	token, err := s.tokens.GenerateReset(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	if err := s.emailProvider.SendPasswordReset(user.Email, resetLink); err != nil {
		logger.Error("failed to send password reset email", "error", err, "email", user.Email)
		return apperrors.MailError(err)
	}

	return nil
}

// ResetPassword - меняет пароль по reset-токену.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	// Пользователь мог быть удален после выпуска токена
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
