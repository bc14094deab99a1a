package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"school-readiness-api/config"
	"school-readiness-api/handlers"
	"school-readiness-api/middleware"
	"school-readiness-api/models"
	"school-readiness-api/predictor"
	"school-readiness-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	authService := services.NewAuthService(cfg.JWT)
	if err := seedAdmin(db, authService, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Trained model is optional; without it every prediction uses the rule table.
	model, err := predictor.LoadModel(cfg.Model.Path)
	switch {
	case err == nil:
		log.Printf("model loaded: %s (%s)", cfg.Model.Path, model.Version)
	case os.IsNotExist(err):
		log.Printf("model file %s not found, running in fallback mode", cfg.Model.Path)
	default:
		log.Fatalf("Failed to load model: %v", err)
	}

	// Redis is optional; without it live streaming and caching degrade to no-ops.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("redis unavailable, continuing without live stream: %v", err)
	}
	defer cache.Close()

	history := services.NewHistoryStore(nil)
	predictions := services.NewPredictionService(model, history, cache)
	exporter := services.NewExporter(history)

	authHandler := handlers.NewAuthHandler(db, authService)
	predictionHandler := handlers.NewPredictionHandler(predictions, history, cache)
	exportHandler := handlers.NewExportHandler(exporter)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "UP",
			"message":      "School Readiness API is running",
			"model_loaded": predictions.ModelLoaded(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		auth := api.Group("")
		auth.Use(middleware.RequireAuth(authService))
		{
			auth.POST("/auth/logout", authHandler.Logout)
			auth.GET("/options", predictionHandler.GetOptions)
			auth.POST("/predictions", predictionHandler.Submit)
			auth.GET("/predictions/today", predictionHandler.GetToday)
			auth.GET("/predictions/summary", predictionHandler.GetSummary)
			auth.GET("/predictions/export", exportHandler.Download)
		}
	}

	router.GET("/ws/predictions", handlers.LiveWebSocket(cache, authService))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the bootstrap operator account when ADMIN_PASSWORD is set
// and the account does not exist yet.
func seedAdmin(db *gorm.DB, authService *services.AuthService, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authService.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{Email: cfg.Email, Password: hash, Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin user %s", cfg.Email)
	return nil
}
