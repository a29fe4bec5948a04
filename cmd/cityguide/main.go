package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/keifergrainger/cities/internal/city"
	"github.com/keifergrainger/cities/internal/config"
	"github.com/keifergrainger/cities/internal/events"
	"github.com/keifergrainger/cities/internal/handlers"
	"github.com/keifergrainger/cities/internal/observability"
	"github.com/keifergrainger/cities/internal/weather"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	directory := city.NewDirectory(city.Seed())
	if _, ok := directory.BySlug(cfg.DefaultCitySlug); !ok {
		logger.Warn("default city slug has no record, root requests from unknown hosts will 404",
			"slug", cfg.DefaultCitySlug)
	}

	eventsSvc := events.NewService(
		events.NewClient(cfg.TicketmasterKey, cfg.UpstreamTimeout, logger),
		logger, metrics,
	)
	weatherSvc := weather.NewService(
		weather.NewClient(cfg.OpenWeatherKey, cfg.UpstreamTimeout),
		logger, metrics,
	)

	h := handlers.New(directory, eventsSvc, weatherSvc, cfg, logger, metrics)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "default_city", cfg.DefaultCitySlug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
