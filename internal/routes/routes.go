package routes

import (
	"net/http"

	"taskbridge_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Маршруты живут в корне без версионного префикса: клиенты прежней
// версии системы ходят по этим же путям.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
) {
	root := ginRouter.Group("")
	{
		appHandlers.UserHandler.RegisterRoutes(root, authMW)
		appHandlers.RequestHandler.RegisterRoutes(root)
		appHandlers.TaskHandler.RegisterRoutes(root)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
