package main

import (
	"log"

	"legal_archive_go/config"
	"legal_archive_go/db"
	"legal_archive_go/handlers"
	"legal_archive_go/models"
	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Case{},
		&models.PhysicalFile{},
		&models.Payment{},
		&models.AccessEvent{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services (search first: it owns the query history store)
	handlers.InitSearchServices(cfg)
	// Warm-start the popular list so suggestions work before anyone types
	handlers.SearchHistoryStore().Seed(services.DefaultPopularSearches)
	handlers.InitSuggestionService(cfg)
	handlers.InitAccessLogService()
	handlers.InitRecommendationService()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Search and suggestions
	e.GET("/api/search", handlers.UnifiedSearchHandler)
	e.GET("/api/search/export", handlers.SearchExportHandler)
	e.GET("/api/suggestions", handlers.SuggestionsHandler)
	e.GET("/api/filter-options", handlers.FilterOptionsHandler)

	// Record detail and activity
	e.GET("/api/files/:id", handlers.FileDetailHandler)
	e.GET("/api/files/:id/access-history", handlers.FileAccessHistoryHandler)
	e.GET("/api/clients/:id", handlers.ClientDetailHandler)
	e.GET("/api/recent-activity", handlers.RecentActivityHandler)
	e.GET("/api/dashboard", handlers.DashboardHandler)

	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
