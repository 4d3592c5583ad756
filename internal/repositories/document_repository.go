package repositories

import (
	"errors"

	"taskbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(doc *models.Document) error
	FindByID(id string) (*models.Document, error)
	FindByUserID(userID string) ([]models.Document, error)
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindByID(id string) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindByUserID(userID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
