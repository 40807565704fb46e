package app

import (
	"fmt"
	"time"

	"aurum_backend/database"
	"aurum_backend/internal/auth"
	"aurum_backend/internal/config"
	"aurum_backend/internal/email"
	"aurum_backend/internal/handlers"
	"aurum_backend/internal/logger"
	"aurum_backend/internal/middleware"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/routes"
	"aurum_backend/internal/services"
	"aurum_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)

	keySet := auth.NewKeySet(
		cfg.Auth.JWKSURL,
		time.Duration(cfg.Auth.CacheTTLSeconds)*time.Second,
		time.Duration(cfg.Auth.FetchTimeoutSec)*time.Second,
	)
	verifier := auth.NewVerifier(keySet, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.ClaimsNamespace)
	authn := middleware.NewAuthenticator(verifier, serviceContainer.User)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, authn)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)
	cartRepo := repositories.NewCartRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	noticeRepo := repositories.NewNoticeRepository(gormDB)

	// Outbound mail
	templates := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templates.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates, using built-ins", "error", err)
		}
	}
	emailProvider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	}, templates)

	ownerIPs := auth.NewAllowList(cfg.Auth.OwnerIPs)

	emailService := services.NewEmailService(emailProvider, cfg.Email.ContactEmail)
	userService := services.NewUserService(userRepo, ownerIPs)
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(cartRepo, catalogRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, emailService)
	reviewService := services.NewReviewService(reviewRepo, catalogRepo)
	noticeService := services.NewNoticeService(noticeRepo)

	return &services.ServiceContainer{
		User:    userService,
		Catalog: catalogService,
		Cart:    cartService,
		Order:   orderService,
		Review:  reviewService,
		Notice:  noticeService,
		Email:   emailService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		ProfileHandler:     handlers.NewProfileHandler(base, sc.User),
		CategoryHandler:    handlers.NewCategoryHandler(base, sc.Catalog),
		SubcategoryHandler: handlers.NewSubcategoryHandler(base, sc.Catalog),
		ProductHandler:     handlers.NewProductHandler(base, sc.Catalog, sc.Review),
		CartHandler:        handlers.NewCartHandler(base, sc.Cart),
		OrderHandler:       handlers.NewOrderHandler(base, sc.Order),
		ReviewHandler:      handlers.NewReviewHandler(base, sc.Review),
		NoticeHandler:      handlers.NewNoticeHandler(base, sc.Notice),
		EmailHandler:       handlers.NewEmailHandler(base, sc.Email),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	return ginRouter
}
