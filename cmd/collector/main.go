// Package main is the entry point for the quote collection job. It refreshes
// the flight and hotel quote tables from the marketplace API and is meant to
// run on a schedule (e.g. a daily cron).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/analytics"
	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/marketplace"
	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/store/postgres"
	"github.com/trip-cost/trip-cost-calendar-service/internal/collector"
	"github.com/trip-cost/trip-cost-calendar-service/internal/config"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

func main() {
	os.Exit(run())
}

// run holds the real main so deferred cleanup still fires before the
// process exits with a status code.
func run() int {
	flights := flag.Bool("flights", false, "collect flight fares")
	hotels := flag.Bool("hotels", false, "collect hotel rates")
	city := flag.String("city", "", "collect a single city instead of the whole catalog")
	progress := flag.Bool("progress", true, "show a terminal progress bar")
	flag.Parse()

	// Neither flag set means a full run.
	if !*flights && !*hotels {
		*flights = true
		*hotels = true
	}

	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-cost-collector",
	})

	clock := timeutil.NewRealClock()

	store, err := postgres.New(postgres.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}, clock, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return 1
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to ensure database schema")
		return 1
	}

	api := marketplace.NewClient(cfg.Collector.MarketplaceBaseURL, cfg.Collector.RequestTimeout, log)
	events := analytics.NewLogSink(log)

	c := collector.New(api, store, events, clock, log, collector.Config{
		OriginAirport:     cfg.Collector.OriginAirport,
		Pacing:            cfg.Collector.Pacing,
		Concurrency:       cfg.Collector.Concurrency,
		HotelWindowDays:   cfg.Collector.HotelWindowDays,
		HotelIntervalDays: cfg.Collector.HotelIntervalDays,
		CityID:            *city,
		Progress:          *progress,
	})

	exitCode := 0

	if *flights {
		summary, err := c.CollectFlights(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Flight collection aborted")
			exitCode = 1
		} else if summary.Failures > 0 {
			exitCode = 1
		}
	}

	if *hotels && ctx.Err() == nil {
		summary, err := c.CollectHotels(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Hotel collection aborted")
			exitCode = 1
		} else if summary.Failures > 0 {
			exitCode = 1
		}
	}

	return exitCode
}
