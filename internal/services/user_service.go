package services

import (
	"errors"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
)

// updatableUserFields - разрешенные к частичному обновлению поля.
// Ключ - имя поля в JSON, значение - имя колонки.
var updatableUserFields = map[string]string{
	"firstname":     "firstname",
	"lastname":      "lastname",
	"email":         "email",
	"phoneNo":       "phone_no",
	"address":       "address",
	"city":          "city",
	"province":      "province",
	"country":       "country",
	"zipcode":       "zipcode",
	"gender":        "gender",
	"wage":          "wage",
	"wageType":      "wage_type",
	"categoryId":    "category_id",
	"subCategoryId": "sub_category_id",
}

type UserService interface {
	GetByUserID(userID string) (*models.User, error)
	GetProfile(userID string) (*models.User, error)
	UpdateUser(userID string, fields map[string]interface{}) (*models.User, error)
	GetDocuments(userID string) ([]models.Document, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	docRepo  repositories.DocumentRepository
}

func NewUserService(userRepo repositories.UserRepository, docRepo repositories.DocumentRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, docRepo: docRepo}
}

// GetByUserID - пользователь по id со всеми отношениями.
func (s *UserServiceImpl) GetByUserID(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByIDExpanded(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// GetProfile - профиль текущего пользователя.
// Обычным пользователям провайдерские поля не отдаются.
func (s *UserServiceImpl) GetProfile(userID string) (*models.User, error) {
	user, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if !user.IsServiceProvider() {
		user.Category = nil
		user.SubCategory = nil
		user.CategoryID = nil
		user.SubCategoryID = nil
	}
	return user, nil
}

// UpdateUser - частичное обновление по списку разрешенных полей.
// Неизвестные ключи тела запроса молча игнорируются.
func (s *UserServiceImpl) UpdateUser(userID string, fields map[string]interface{}) (*models.User, error) {
	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := updatableUserFields[key]
		if !ok {
			continue
		}
		columns[column] = value
	}

	user, err := s.userRepo.UpdateFields(userID, columns)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// GetDocuments - метаданные документов пользователя.
// Содержимое документов в JSON не сериализуется.
func (s *UserServiceImpl) GetDocuments(userID string) ([]models.Document, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	docs, err := s.docRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}
