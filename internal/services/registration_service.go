package services

import (
	"errors"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/auth"
	"taskbridge_backend/internal/imageprocessor"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services/dto"
)

type RegistrationService interface {
	RegisterUser(req *dto.RegisterUserRequest) (*dto.AuthResult, error)
	RegisterServiceProvider(req *dto.RegisterServiceProviderRequest, image, document *dto.FileUpload) (*dto.AuthResult, error)
}

type RegistrationServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	images   *imageprocessor.Processor
}

func NewRegistrationService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	images *imageprocessor.Processor,
) RegistrationService {
	return &RegistrationServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		images:   images,
	}
}

// RegisterUser - регистрация обычного пользователя.
func (s *RegistrationServiceImpl) RegisterUser(req *dto.RegisterUserRequest) (*dto.AuthResult, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNo:      req.PhoneNo,
		City:         req.City,
		Province:     req.Province,
		Country:      req.Country,
		Role:         models.UserRoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResult{User: user, Token: token}, nil
}

// RegisterServiceProvider - регистрация сервис-провайдера с файлами.
// Оба файла проверяются до любой записи в БД: при отсутствии хотя бы
// одного запись не начинается вовсе.
func (s *RegistrationServiceImpl) RegisterServiceProvider(req *dto.RegisterServiceProviderRequest, image, document *dto.FileUpload) (*dto.AuthResult, error) {
	var missing []string
	if image == nil || len(image.Data) == 0 {
		missing = append(missing, "image")
	}
	if document == nil || len(document.Data) == 0 {
		missing = append(missing, "document")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingUpload(missing...)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	imageData := image.Data
	if s.images != nil {
		imageData = s.images.Normalize(imageData)
	}

	user := &models.User{
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Email:         req.Email,
		PasswordHash:  hash,
		PhoneNo:       req.PhoneNo,
		Address:       req.Address,
		City:          req.City,
		Province:      req.Province,
		Country:       req.Country,
		Zipcode:       req.Zipcode,
		Gender:        req.Gender,
		Role:          models.UserRoleServiceProvider,
		Wage:          req.Wage,
		WageType:      req.WageType,
		Image:         imageData,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
	}

	doc := &models.Document{
		Name: document.Name,
		Data: document.Data,
	}

	if err := s.userRepo.CreateServiceProvider(user, doc); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Перечитываем с отношениями, чтобы ответ содержал документы и категории
	created, err := s.userRepo.FindByIDExpanded(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(created.ID, string(created.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResult{User: created, Token: token}, nil
}
