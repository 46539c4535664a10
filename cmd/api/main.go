package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-transfer-backend/config"
	_ "go-transfer-backend/docs" // Important for Swagger
	v1 "go-transfer-backend/internal/delivery/http/v1"
	"go-transfer-backend/internal/repository/postgres"
	"go-transfer-backend/internal/usecase"
	"go-transfer-backend/pkg/database"
	"go-transfer-backend/pkg/email"
	"go-transfer-backend/pkg/logger"
	"go-transfer-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Transfer Booking Backend API
// @version         1.0
// @description     Backend for the Royal Transfer booking website: contact and transfer requests with email notifications.
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
	logger.Log.Info("Starting transfer booking backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	contactRepo := postgres.NewContactRequestRepository(dbPool)
	transferRepo := postgres.NewTransferRequestRepository(dbPool)

	// 5. Setup Email Gateway
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email gateway not fully configured - notifications will be skipped")
	}

	// 6. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 7. Setup UseCases
	contactUC := usecase.NewContactRequestUsecase(contactRepo, emailService, cfg.ContactFormEmail)
	transferUC := usecase.NewTransferRequestUsecase(transferRepo, emailService, cfg.TransferRequestEmail)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactRequestUC:  contactUC,
		TransferRequestUC: transferUC,
		Config:            cfg,
	})

	// 9. Start Server
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
