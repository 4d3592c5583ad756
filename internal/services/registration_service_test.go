package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/auth"
	"taskbridge_backend/internal/imageprocessor"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/services/dto"
)

func newRegistrationService(t *testing.T, repo repositories.UserRepository) services.RegistrationService {
	t.Helper()
	return services.NewRegistrationService(repo, newTokenManager(t), imageprocessor.NewProcessor(1024, 1024, 85))
}

func TestRegistrationService_RegisterUser_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "john@example.com" &&
			u.Role == models.UserRoleUser &&
			auth.CheckPasswordHash("password123", u.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-1"
	}).Return(nil)

	result, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "john@example.com", result.User.Email)
	assert.NotEmpty(t, result.Token)
	mockRepo.AssertExpectations(t)
}

func TestRegistrationService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	mockRepo.On("Create", mock.Anything).Return(repositories.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegistrationService_RegisterUser_WeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	_, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@example.com",
		Password:  "123",
	})

	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func serviceProviderRequest() *dto.RegisterServiceProviderRequest {
	return &dto.RegisterServiceProviderRequest{
		Firstname: "Jane",
		Lastname:  "Smith",
		Email:     "jane@example.com",
		Password:  "password123",
		PhoneNo:   "+77001112233",
		WageType:  "hourly",
		Wage:      25,
	}
}

func TestRegistrationService_RegisterServiceProvider_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	mockRepo.On("CreateServiceProvider",
		mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.UserRoleServiceProvider && len(u.Image) > 0
		}),
		mock.MatchedBy(func(d *models.Document) bool {
			return d.Name == "resume.pdf" && len(d.Data) > 0
		}),
	).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "provider-1"
	}).Return(nil)

	expanded := &models.User{
		BaseModel: models.BaseModel{ID: "provider-1"},
		Email:     "jane@example.com",
		Role:      models.UserRoleServiceProvider,
		Documents: []models.Document{{Name: "resume.pdf"}},
	}
	mockRepo.On("FindByIDExpanded", "provider-1").Return(expanded, nil)

	result, err := svc.RegisterServiceProvider(
		serviceProviderRequest(),
		&dto.FileUpload{Name: "photo.jpg", Data: []byte("not-really-an-image")},
		&dto.FileUpload{Name: "resume.pdf", Data: []byte("pdf-bytes")},
	)

	require.NoError(t, err)
	assert.Equal(t, expanded, result.User)
	assert.NotEmpty(t, result.Token)
	mockRepo.AssertExpectations(t)
}

func TestRegistrationService_RegisterServiceProvider_MissingBothFiles(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	_, err := svc.RegisterServiceProvider(serviceProviderRequest(), nil, nil)

	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.CodeMissingUpload, appErr.Code)
	assert.Contains(t, appErr.Message, "image")
	assert.Contains(t, appErr.Message, "document")
	// Ни одной записи в БД не должно произойти
	mockRepo.AssertNotCalled(t, "CreateServiceProvider", mock.Anything, mock.Anything)
}

func TestRegistrationService_RegisterServiceProvider_MissingDocumentOnly(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	_, err := svc.RegisterServiceProvider(
		serviceProviderRequest(),
		&dto.FileUpload{Name: "photo.jpg", Data: []byte("img")},
		nil,
	)

	require.Error(t, err)
	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.CodeMissingUpload, appErr.Code)
	assert.Contains(t, appErr.Message, "document")
	assert.NotContains(t, appErr.Message, "image")
	mockRepo.AssertNotCalled(t, "CreateServiceProvider", mock.Anything, mock.Anything)
}

func TestRegistrationService_RegisterServiceProvider_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newRegistrationService(t, mockRepo)

	mockRepo.On("CreateServiceProvider", mock.Anything, mock.Anything).Return(repositories.ErrUserAlreadyExists)

	_, err := svc.RegisterServiceProvider(
		serviceProviderRequest(),
		&dto.FileUpload{Name: "photo.jpg", Data: []byte("img")},
		&dto.FileUpload{Name: "resume.pdf", Data: []byte("pdf")},
	)

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}
