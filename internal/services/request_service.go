package services

import (
	"errors"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services/dto"
)

type RequestService interface {
	Create(req *dto.CreateRequestRequest) (*models.Request, error)
	GetAll() ([]models.Request, error)
	GetByID(id string) (*models.Request, error)
	GetByTaskID(taskID string) ([]models.Request, error)
	Accept(id string) (*models.Request, error)
	Reject(id string) (*models.Request, error)
	Delete(id string) error
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	taskRepo    repositories.TaskRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	taskRepo repositories.TaskRepository,
) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		taskRepo:    taskRepo,
	}
}

// Create - новая заявка на задачу, всегда в статусе pending.
func (s *RequestServiceImpl) Create(req *dto.CreateRequestRequest) (*models.Request, error) {
	if _, err := s.taskRepo.FindByID(req.TaskID); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.Request{
		TaskID:      req.TaskID,
		RequesterID: req.RequesterID,
		Message:     req.Message,
		Status:      models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) GetAll() ([]models.Request, error) {
	requests, err := s.requestRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *RequestServiceImpl) GetByID(id string) (*models.Request, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) GetByTaskID(taskID string) ([]models.Request, error) {
	requests, err := s.requestRepo.FindByTaskID(taskID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

// Accept - принять заявку. Разрешено только из статуса pending.
func (s *RequestServiceImpl) Accept(id string) (*models.Request, error) {
	return s.decide(id, models.RequestStatusAccepted)
}

// Reject - отклонить заявку. Разрешено только из статуса pending.
func (s *RequestServiceImpl) Reject(id string) (*models.Request, error) {
	return s.decide(id, models.RequestStatusRejected)
}

func (s *RequestServiceImpl) decide(id string, status models.RequestStatus) (*models.Request, error) {
	request, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Терминальный статус менять нельзя, в том числе повторным accept
	if request.Status.IsDecided() {
		return nil, apperrors.ErrRequestAlreadyDecided
	}

	if err := s.requestRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	request.Status = status
	return request, nil
}

func (s *RequestServiceImpl) Delete(id string) error {
	if err := s.requestRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
