package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-manager/config"
	_ "go-contact-manager/docs" // Important for Swagger
	v1 "go-contact-manager/internal/delivery/http/v1"
	"go-contact-manager/internal/repository/postgres"
	"go-contact-manager/internal/usecase"
	"go-contact-manager/pkg/database"
	"go-contact-manager/pkg/logger"
	"go-contact-manager/pkg/redis"
	"go-contact-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Contact Manager API
// @version         1.0
// @description     Contact management backend with CRUD and CSV bulk import.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact manager backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	contactRepo := postgres.NewContactRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	contactUC := usecase.NewContactUsecase(contactRepo, validate, logger.Log)
	importUC := usecase.NewImportUsecase(contactUC, validate, logger.Log)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ImportUC:  importUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
