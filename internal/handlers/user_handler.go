package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"taskbridge_backend/internal/apperrors"
	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService         services.AuthService
	registrationService services.RegistrationService
	userService         services.UserService
}

func NewUserHandler(
	base *BaseHandler,
	authService services.AuthService,
	registrationService services.RegistrationService,
	userService services.UserService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:         base,
		authService:         authService,
		registrationService: registrationService,
		userService:         userService,
	}
}

// RegisterRoutes регистрирует маршруты /user.
// Пути сохранены как в прежней версии системы: на них завязаны клиенты.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	user := r.Group("/user")
	{
		user.POST("/login", h.Login)
		user.POST("/register", h.Register)
		user.POST("/registerServiceProvider", h.RegisterServiceProvider)
		user.POST("/forgot_password", h.ForgotPassword)
		user.POST("/reset_password", h.ResetPassword)
		user.GET("/profile", authMW, h.GetProfile)
		user.GET("/:userId", h.GetByUserID)
		user.GET("/:userId/documents", h.GetDocuments)
		user.POST("/updateUser/:userId", h.UpdateUser)
	}
}

// --- Auth ---

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Login successful",
		"user":        result.User,
		"accessToken": result.Token,
	})
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	result, err := h.registrationService.RegisterUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *UserHandler) RegisterServiceProvider(c *gin.Context) {
	var req dto.RegisterServiceProviderRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	// Отсутствие файла - не ошибка привязки: сервис сам решает,
	// чего не хватает, и перечисляет все недостающие файлы разом.
	image, err := readFormFile(c, "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	document, err := readFormFile(c, "document")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result, err := h.registrationService.RegisterServiceProvider(&req, image, document)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service provider registration successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset email sent",
	})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password has been reset",
	})
}

// --- Profile ---

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) GetByUserID(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.userService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) GetDocuments(c *gin.Context) {
	docs, err := h.userService.GetDocuments(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"documents": docs,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(userID, fields)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated",
		"user":    user,
	})
}

// readFormFile читает multipart-файл целиком в память.
// Отсутствующий файл возвращается как nil без ошибки.
func readFormFile(c *gin.Context, field string) (*dto.FileUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, apperrors.NewBadRequestError("Uploaded file is too large")
		}
		// http.ErrMissingFile и прочее отсутствие части формы
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FileUpload{Name: fileHeader.Filename, Data: data}, nil
}
