package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "adsmarket/internal/adapter/http"
	"adsmarket/internal/adapter/memory"
	"adsmarket/internal/adapter/postgres"
	"adsmarket/internal/adapter/usecase"
	"adsmarket/internal/config"
	"adsmarket/internal/config/configs"
	"adsmarket/internal/core/port"
	"adsmarket/internal/db"
	"adsmarket/internal/telemetry"
)

// main loads configuration, opens the configured entity store, optionally
// migrates and seeds it, then serves the marketplace API until SIGINT or
// SIGTERM, at which point the server is shut down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		logger.Error("tracing setup error", slog.Any("error", err))
		return
	}
	defer func() {
		flushCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer stop()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown error", slog.Any("error", err))
		}
	}()

	var store port.Store
	switch cfg.Store.DriverName() {
	case configs.DriverMemory:
		store = memory.NewStore(cfg.Store.TxTimeout)
		logger.Warn("using in-memory store, data is lost on exit")
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		store = postgres.NewStore(pool, cfg.Store.TxTimeout)
	}

	svc := usecase.NewMarketplace(store, port.SystemClock{}, logger)

	if cfg.SeedDemo {
		if err = db.Seed(ctx, svc, port.SystemClock{}.Now(), logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	handler := httpadapter.NewHandler(svc, svc, svc, logger)
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     handler.Router(),
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.DriverName()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}
