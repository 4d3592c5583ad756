package app

import (
	"fmt"
	"time"

	"taskbridge_backend/internal/auth"
	"taskbridge_backend/internal/config"
	"taskbridge_backend/internal/database"
	"taskbridge_backend/internal/email"
	"taskbridge_backend/internal/handlers"
	"taskbridge_backend/internal/imageprocessor"
	"taskbridge_backend/internal/logger"
	"taskbridge_backend/internal/middleware"
	"taskbridge_backend/internal/repositories"
	"taskbridge_backend/internal/routes"
	"taskbridge_backend/internal/services"
	"taskbridge_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Границы нормализации загружаемых фото профиля.
const (
	profileImageMaxWidth  = 1024
	profileImageMaxHeight = 1024
	profileImageQuality   = 85
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный gin.Engine: сервисы, хэндлеры, middleware
// и маршруты. Вынесен отдельно, чтобы тесты могли поднимать роутер
// без реального сетевого слушателя.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokens))

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenManager) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		sender, err := email.NewGomailSender(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email sender", "error", err)
		}
		emailService = sender
	} else {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent")
		emailService = &logEmailProvider{}
	}

	images := imageprocessor.NewProcessor(profileImageMaxWidth, profileImageMaxHeight, profileImageQuality)
	logger.Info("Image processor initialized", "config", images.String())

	// --- Репозитории ---
	userRepo := repositories.NewUserRepository(gormDB)
	documentRepo := repositories.NewDocumentRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)
	taskRepo := repositories.NewTaskRepository(gormDB)

	// --- Сервисы ---
	authService := services.NewAuthService(userRepo, tokens, emailService, cfg.Server.BaseURL)
	registrationService := services.NewRegistrationService(userRepo, tokens, images)
	userService := services.NewUserService(userRepo, documentRepo)
	requestService := services.NewRequestService(requestRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		RegistrationService: registrationService,
		UserService:         userService,
		RequestService:      requestService,
		TaskService:         taskService,
		EmailService:        emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:    handlers.NewUserHandler(baseHandler, services.AuthService, services.RegistrationService, services.UserService),
		RequestHandler: handlers.NewRequestHandler(baseHandler, services.RequestService),
		TaskHandler:    handlers.NewTaskHandler(baseHandler, services.TaskService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
