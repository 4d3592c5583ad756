package services

import (
	"errors"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/models"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/services/dto"
)

type TaskService interface {
	Create(req *dto.CreateTaskRequest) (*models.Task, error)
	GetByID(id string) (*models.Task, error)
	GetAll(limit, offset int) ([]models.Task, error)
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, userRepo: userRepo}
}

// Create - публикация задачи. Владелец должен существовать.
func (s *TaskServiceImpl) Create(req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.userRepo.FindByID(req.OwnerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Budget:      req.Budget,
		Status:      models.TaskStatusOpen,
	}
	if len(req.Skills) > 0 {
		if err := task.SetSkills(req.Skills); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) GetByID(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) GetAll(limit, offset int) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tasks, nil
}
