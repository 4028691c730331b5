package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hellodalat/hostel_backend/internal/core/services"
	"github.com/hellodalat/hostel_backend/internal/handlers"
	"github.com/hellodalat/hostel_backend/internal/middleware"
	"github.com/hellodalat/hostel_backend/internal/pdfgen"
	"github.com/hellodalat/hostel_backend/internal/repositories/jsonstore"
	"github.com/hellodalat/hostel_backend/pkg/config"
)

// @title Hello Dalat Hostel API
// @version 1.0
// @description Booking, service and invoicing backend for the Hello Dalat Hostel.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the on-disk document store. A missing or corrupt file is
	// replaced with the seed document, so this only fails on IO errors.
	store, err := jsonstore.NewStore(cfg.DataDir, logger)
	if err != nil {
		logger.Error("Failed to open data store", slog.String("error", err.Error()), slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	logger.Info("Data store ready", slog.String("data_dir", cfg.DataDir))

	repos := jsonstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(repos)
	renderer := pdfgen.NewInvoiceRenderer(cfg.InvoiceFontPath)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, renderer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
