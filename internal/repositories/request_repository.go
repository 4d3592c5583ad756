package repositories

import (
	"errors"
	"time"

	"taskbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestRepository interface {
	Create(req *models.Request) error
	FindByID(id string) (*models.Request, error)
	FindAll() ([]models.Request, error)
	FindByTaskID(taskID string) ([]models.Request, error)
	UpdateStatus(id string, status models.RequestStatus) error
	Delete(id string) error
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(req *models.Request) error {
	return r.db.Create(req).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var req models.Request
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepositoryImpl) FindAll() ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepositoryImpl) FindByTaskID(taskID string) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("task_id = ?", taskID).Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepositoryImpl) UpdateStatus(id string, status models.RequestStatus) error {
	result := r.db.Model(&models.Request{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Request{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
