package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/auth"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/services/dto"
)

func newTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return tm
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		Firstname:    "John",
		Lastname:     "Doe",
		Email:        "john@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEmail := new(MockEmailProvider)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, mockEmail, "http://localhost:3000")

	user := testUser(t, "password123")
	mockRepo.On("FindByEmail", "john@example.com").Return(user, nil)

	result, err := svc.Login(&dto.LoginRequest{Email: "john@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.NotEmpty(t, result.Token)

	claims, err := tm.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_ServiceProviderTokenCarriesRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, new(MockEmailProvider), "http://localhost:3000")

	user := testUser(t, "password123")
	user.Role = models.UserRoleServiceProvider
	mockRepo.On("FindByEmail", "john@example.com").Return(user, nil)

	result, err := svc.Login(&dto.LoginRequest{Email: "john@example.com", Password: "password123"})

	require.NoError(t, err)
	claims, err := tm.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "serviceProvider", claims.Role)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewAuthService(mockRepo, newTokenManager(t), new(MockEmailProvider), "http://localhost:3000")

	mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewAuthService(mockRepo, newTokenManager(t), new(MockEmailProvider), "http://localhost:3000")

	user := testUser(t, "password123")
	mockRepo.On("FindByEmail", "john@example.com").Return(user, nil)

	_, err := svc.Login(&dto.LoginRequest{Email: "john@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_ForgotPassword_SendsResetLink(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEmail := new(MockEmailProvider)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, mockEmail, "http://localhost:3000")

	user := testUser(t, "password123")
	mockRepo.On("FindByEmail", "john@example.com").Return(user, nil)

	var sentLink string
	mockEmail.On("SendPasswordReset", "john@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentLink = args.String(1) }).
		Return(nil)

	err := svc.ForgotPassword("john@example.com")

	require.NoError(t, err)
	assert.Contains(t, sentLink, "http://localhost:3000/reset-password?token=")
	mockEmail.AssertExpectations(t)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEmail := new(MockEmailProvider)
	svc := services.NewAuthService(mockRepo, newTokenManager(t), mockEmail, "http://localhost:3000")

	mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

	err := svc.ForgotPassword("ghost@example.com")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	mockEmail.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything)
}

func TestAuthService_ForgotPassword_MailFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEmail := new(MockEmailProvider)
	svc := services.NewAuthService(mockRepo, newTokenManager(t), mockEmail, "http://localhost:3000")

	mockRepo.On("FindByEmail", "john@example.com").Return(testUser(t, "password123"), nil)
	mockEmail.On("SendPasswordReset", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := svc.ForgotPassword("john@example.com")

	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.CodeMailError, appErr.Code)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, new(MockEmailProvider), "http://localhost:3000")

	user := testUser(t, "old-password")
	token, err := tm.GenerateReset(user.ID)
	require.NoError(t, err)

	mockRepo.On("FindByID", user.ID).Return(user, nil)
	mockRepo.On("UpdatePassword", user.ID, mock.MatchedBy(func(hash string) bool {
		return auth.CheckPasswordHash("new-password", hash)
	})).Return(nil)

	err = svc.ResetPassword(token, "new-password")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := services.NewAuthService(mockRepo, newTokenManager(t), new(MockEmailProvider), "http://localhost:3000")

	err := svc.ResetPassword("not-a-token", "new-password")

	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, new(MockEmailProvider), "http://localhost:3000")

	// Токен, подписанный другим секретом, эквивалентен истекшему:
	// Parse его отвергает, пароль не меняется
	otherTM, err := auth.NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	token, err := otherTM.GenerateReset("user-1")
	require.NoError(t, err)

	err = svc.ResetPassword(token, "new-password")

	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tm := newTokenManager(t)
	svc := services.NewAuthService(mockRepo, tm, new(MockEmailProvider), "http://localhost:3000")

	token, err := tm.GenerateReset("user-1")
	require.NoError(t, err)

	err = svc.ResetPassword(token, "123")

	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
}
