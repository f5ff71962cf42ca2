package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/adagency/backend/internal/config"
	"github.com/adagency/backend/internal/dbmigrate"
	"github.com/adagency/backend/internal/handler"
	"github.com/adagency/backend/internal/logging"
	"github.com/adagency/backend/internal/metrics"
	"github.com/adagency/backend/internal/repository"
	"github.com/adagency/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO", "json")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.MigrateOnStart {
		if err := dbmigrate.Up(cfg.DatabaseURL); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
		slog.Info("migrations applied")
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactService := service.NewContactService(repository.NewPgContactRepository(pool))
	newsletterService := service.NewNewsletterService(repository.NewPgNewsletterRepository(pool))
	bookingService := service.NewBookingService(repository.NewPgBookingRepository(pool))

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	if !cfg.AdminEnabled() {
		slog.Warn("admin_token is not set; admin routes will reject every request")
	}

	router := handler.NewRouter(handler.RouterConfig{
		DB:                 pool,
		Contacts:           contactService,
		Newsletter:         newsletterService,
		Bookings:           bookingService,
		Metrics:            m,
		AdminToken:         cfg.AdminToken,
		AllowedOrigins:     cfg.AllowedOrigins(),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
		StaticDir:          cfg.StaticDir,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "static_dir", cfg.StaticDir, "metrics", cfg.MetricsEnabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
