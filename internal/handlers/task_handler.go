package handlers

import (
	"net/http"

	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

// RegisterRoutes регистрирует маршруты задач.
func (h *TaskHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/task", h.Create)
	r.GET("/tasks", h.GetAll)
	r.GET("/task/:taskId", h.GetByID)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created",
		"task":    task,
	})
}

func (h *TaskHandler) GetAll(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 0)
	offset := ParseQueryInt(c, "offset", 0)

	tasks, err := h.taskService.GetAll(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskService.GetByID(c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}
