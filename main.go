package main

import (
	"log"

	"styleai/internal/ai"
	"styleai/internal/config"
	"styleai/internal/database"
	"styleai/internal/email"
	"styleai/internal/handlers"
	"styleai/internal/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.Initialize(logger.ParseLevel(cfg.LogLevel), cfg.IsDevelopment())

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.CleanupExpiredSessions(db); err != nil {
		logger.Warn("Failed to cleanup expired sessions", "error", err)
	}
	if err := database.CleanupExpiredCSRFTokens(db); err != nil {
		logger.Warn("Failed to cleanup expired CSRF tokens", "error", err)
	}

	emailService := email.NewService(cfg)
	if emailService.IsEnabled() {
		log.Println("Email service enabled with Mailgun")
	} else {
		log.Println("Email service disabled - Mailgun not configured")
	}

	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	if cfg.AIAPIKey == "" {
		log.Println("AI suggestions disabled - no API key configured")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.SetupRoutes(r, db, cfg, emailService, aiClient)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
