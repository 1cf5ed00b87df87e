package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"campus-portal/backend/config"
	"campus-portal/backend/internal/api/handler"
	"campus-portal/backend/internal/api/router"
	"campus-portal/backend/internal/repository"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/database"
	"campus-portal/backend/pkg/logger"
	"campus-portal/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer zlog.Sync() //nolint:errcheck

	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		return err
	}

	// Redis is optional; without it the session cache and login rate limit
	// are disabled.
	cache, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("redis unavailable, continuing without cache", zap.Error(err))
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, cache, cfg, zlog)
	h := handler.NewHandler(svc, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Auth.EnsureAdmin(ctx, &cfg.Seed); err != nil {
		return err
	}

	go svc.Session.RunSweeper(ctx, cfg.Auth.SweepInterval)

	engine := router.New(cfg, h, svc, cache, zlog)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	zlog.Info("server stopped")
	return nil
}
