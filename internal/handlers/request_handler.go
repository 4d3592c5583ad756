package handlers

import (
	"net/http"

	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

// RegisterRoutes регистрирует маршруты заявок.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/request", h.Create)
	r.GET("/requests", h.GetAll)
	r.GET("/requests/task/:taskId", h.GetByTaskID)
	r.GET("/request/:requestId", h.GetByID)
	r.POST("/request/accept", h.Accept)
	r.POST("/request/reject", h.Reject)
	r.DELETE("/request/:requestId", h.Delete)
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	request, err := h.requestService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Request created",
		"request": request,
	})
}

func (h *RequestHandler) GetAll(c *gin.Context) {
	requests, err := h.requestService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": requests,
	})
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	request, err := h.requestService.GetByID(c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"request": request,
	})
}

func (h *RequestHandler) GetByTaskID(c *gin.Context) {
	requests, err := h.requestService.GetByTaskID(c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": requests,
	})
}

func (h *RequestHandler) Accept(c *gin.Context) {
	var req dto.DecideRequestRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	request, err := h.requestService.Accept(req.RequestID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Request accepted",
		"request": request,
	})
}

func (h *RequestHandler) Reject(c *gin.Context) {
	var req dto.DecideRequestRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	request, err := h.requestService.Reject(req.RequestID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Request rejected",
		"request": request,
	})
}

func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.requestService.Delete(c.Param("requestId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Request deleted",
	})
}
