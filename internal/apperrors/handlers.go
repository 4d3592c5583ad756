package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope - стандартный конверт ответа об ошибке.
// Клиенты всегда получают {success:false, message} для любой ошибки.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError отправляет ошибку клиенту в стандартном конверте.
func HandleError(c *gin.Context, err *AppError) {
	c.JSON(err.HTTPCode, Envelope{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}

// FromError приводит произвольную ошибку к *AppError.
// Неизвестные ошибки заворачиваются в InternalError.
func FromError(err error) *AppError {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}

// AbortUnauthorized прерывает запрос с 401 в стандартном конверте.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: message, Code: CodeUnauthorized})
}

// AbortForbidden прерывает запрос с 403 в стандартном конверте.
func AbortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: message, Code: CodeForbidden})
}
