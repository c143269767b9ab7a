package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"complaint-tracker/internal/config"
	"complaint-tracker/internal/database"
	"complaint-tracker/internal/handlers"
	"complaint-tracker/internal/logging"
	"complaint-tracker/internal/server"
	"complaint-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET is not set, sessions will not survive a restart")
		cfg.SessionSecret = uuid.NewString()
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}
	if cfg.SeedAdmin() {
		if err := database.EnsureAdmin(ctx, db, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword, cfg.BcryptCost, logger); err != nil {
			return err
		}
	}

	h := handlers.New(
		service.NewComplaintService(db),
		service.NewAccountService(db, cfg.BcryptCost, logger.Named("accounts")),
		service.NewDirectoryService(db),
		func(ctx context.Context) error { return database.Ping(ctx, db) },
		logger.Named("http"),
	)
	r := server.NewRouter(cfg, h, logger.Named("access"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return closeDB(db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
