package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/prosody-scorer/internal/api/rest"
	"github.com/palemoky/prosody-scorer/internal/config"
	"github.com/palemoky/prosody-scorer/internal/logger"
	"github.com/palemoky/prosody-scorer/internal/store"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Init(true)
		logger.Warn("failed to load config file, using defaults", zap.Error(err))
		cfg, _ = config.Load("")
	}

	logger.Init(cfg.Server.Mode != "release")
	defer logger.Sync()

	logger.Info("starting prosody scorer server",
		zap.String("database", cfg.Database.Path),
		zap.Int("port", cfg.Server.Port),
	)

	if err := os.MkdirAll("data", 0o755); err != nil {
		logger.Fatal("failed to create data directory", zap.Error(err))
	}

	db, err := store.Open(cfg.Database.Path, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		logger.Fatal("failed to open score cache", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		logger.Fatal("failed to migrate score cache", zap.Error(err))
	}

	repo := store.NewRepository(db)

	router := rest.SetupRouter(cfg, db, repo)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		logger.Info("rest api available", zap.String("path", "/api/v1"))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
