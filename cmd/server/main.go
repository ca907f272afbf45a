// Package main is the entry point for the trip cost calendar service.
//
//	@title						Trip Cost Calendar API
//	@version					1.0.0
//	@description				Serves per-date trip cost calendars for two adults, combining direct round-trip fares with downtown four-star hotel rates, plus a cross-city cost ranking.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-cost/trip-cost-calendar-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-cost/trip-cost-calendar-service/docs"

	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/analytics"
	triphttp "github.com/trip-cost/trip-cost-calendar-service/internal/adapter/http"
	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/http/middleware"
	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/store/postgres"
	"github.com/trip-cost/trip-cost-calendar-service/internal/config"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
	"github.com/trip-cost/trip-cost-calendar-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-cost-calendar",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := postgres.New(postgres.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}, timeutil.NewRealClock(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	events := analytics.NewLogSink(log)
	useCase := usecase.NewPriceCalendarUseCase(store, events, &usecase.Config{
		CacheTTL: cfg.Cache.TTL,
	})
	handler := triphttp.NewPriceHandler(useCase)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	triphttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown stops the server on SIGINT/SIGTERM, draining in-flight
// requests up to the shutdown timeout.
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
