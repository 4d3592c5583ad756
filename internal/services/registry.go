package services

import (
	"taskbridge_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	UserService         UserService
	RequestService      RequestService
	TaskService         TaskService
	EmailService        email.Provider
}
