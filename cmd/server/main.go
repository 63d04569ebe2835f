// Package main is the entry point for the trip itinerary planning service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/adapter/catalogfile"
	itinhttp "github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/adapter/http"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/adapter/http/middleware"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/config"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/infrastructure/logger"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "itinerary-planner",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("locations", cfg.Catalog.LocationsPath).
		Str("distances", cfg.Catalog.DistancesPath).
		Msg("Configuration loaded")

	// Load the location and distance catalog from disk. The catalog is
	// immutable for the lifetime of the process.
	catalog, err := catalogfile.Load(cfg.Catalog.LocationsPath, cfg.Catalog.DistancesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}

	log.Info().Int("locations", catalog.Len()).Msg("Catalog loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware (request ID, request logging, panic recovery)
	middleware.Setup(e, log.Logger)

	// Wire the planner and routes
	planner := usecase.NewItineraryPlanner(catalog, nil)
	handler := itinhttp.NewItineraryHandler(planner)
	itinhttp.RegisterRoutes(e, handler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
