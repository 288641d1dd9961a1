package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "storyreel/docs"

	"storyreel/internal/adquota"
	"storyreel/internal/catalog"
	"storyreel/internal/config"
	"storyreel/internal/db"
	"storyreel/internal/feed"
	"storyreel/internal/history"
	"storyreel/internal/library"
	"storyreel/internal/logger"
	"storyreel/internal/recorder"
	"storyreel/internal/server"
)

// @title StoryReel API
// @version 1.0
// @description API for serialized-content entitlement: wallets, unlocks, ad quota and the personalized feed.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting StoryReel application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	catalogRepo := catalog.NewRepository(database)
	historyRepo := history.NewRepository(database)
	libraryRepo := library.NewRepository(database)

	recorderService := recorder.New(cfg.RedisAddr, catalogRepo, historyRepo)
	defer recorderService.Close()
	logger.Info("Consumption recorder initialized")

	feedService := feed.NewService(cfg.RedisAddr, catalogRepo, historyRepo, libraryRepo)
	defer feedService.Close()

	sweeper := adquota.NewSweeper(adquota.NewRepository(database, cfg.AdQuotaCap), cfg.SweepHour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go recorderService.Start(ctx)
	go sweeper.Start(ctx)

	srv := server.New(database, cfg, recorderService, feedService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
