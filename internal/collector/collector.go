// Package collector runs the quote collection jobs. A run walks the city
// catalog, queries the marketplace API for flight fares and hotel rates, and
// upserts the results into the quote store.
package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/marketplace"
	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

// MarketplaceAPI is the slice of the marketplace client the collector uses.
type MarketplaceAPI interface {
	FlightWindow(ctx context.Context, originAirport, arrivalAirport, departureDate string, tripLength int) ([]domain.FlightQuote, error)
	StaySearch(ctx context.Context, city domain.City, checkIn, checkOut string) ([]marketplace.Stay, error)
}

// Config controls the shape and pace of a collection run.
type Config struct {
	// OriginAirport is the IATA code all round trips depart from.
	OriginAirport string

	// Pacing is the delay between consecutive marketplace calls per worker.
	Pacing time.Duration

	// Concurrency bounds the number of cities collected in parallel.
	Concurrency int

	// HotelWindowDays is how far ahead hotel rates are sampled.
	HotelWindowDays int

	// HotelIntervalDays is the sampling stride inside the hotel window.
	HotelIntervalDays int

	// CityID restricts the run to a single city when set.
	CityID string

	// Progress enables the terminal progress bar.
	Progress bool
}

// Summary reports what one collection run did.
type Summary struct {
	RunID       string
	Kind        string
	StartedAt   time.Time
	Elapsed     time.Duration
	QuotesSaved int
	APICalls    int
	Failures    int
}

// Collector drives collection runs against the marketplace and the store.
type Collector struct {
	api    MarketplaceAPI
	store  domain.QuoteWriter
	events domain.EventSink
	clock  timeutil.Clock
	log    *logger.Logger
	cfg    Config
}

// New creates a collector.
func New(api MarketplaceAPI, store domain.QuoteWriter, events domain.EventSink, clock timeutil.Clock, log *logger.Logger, cfg Config) *Collector {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Collector{api: api, store: store, events: events, clock: clock, log: log, cfg: cfg}
}

// counters accumulates run totals across worker goroutines.
type counters struct {
	mu       sync.Mutex
	saved    int
	calls    int
	failures int
}

func (c *counters) call()      { c.mu.Lock(); c.calls++; c.mu.Unlock() }
func (c *counters) fail()      { c.mu.Lock(); c.failures++; c.mu.Unlock() }
func (c *counters) save(n int) { c.mu.Lock(); c.saved += n; c.mu.Unlock() }
func (c *counters) totals() (int, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved, c.calls, c.failures
}

// CollectFlights queries the flight calendar window for every city and trip
// length and upserts the fares. Individual call failures are counted and
// skipped; the run only aborts when the context is canceled.
func (c *Collector) CollectFlights(ctx context.Context) (Summary, error) {
	runID := uuid.New().String()
	startedAt := c.clock.Now()
	today := timeutil.Today(c.clock)
	cities, err := c.targetCities()
	if err != nil {
		return Summary{}, err
	}

	log := c.log.WithContext("run_id", runID)
	log.Info().
		Str("origin", c.cfg.OriginAirport).
		Str("window_start", today).
		Int("cities", len(cities)).
		Msg("Flight collection started")

	bar := c.newBar(len(cities) * len(domain.TripLengths))
	var tally counters

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for _, city := range cities {
		city := city
		g.Go(func() error {
			cityLog := log.WithCity(city.ID)
			for _, tripLength := range domain.TripLengths {
				tally.call()
				quotes, err := c.api.FlightWindow(gctx, c.cfg.OriginAirport, city.AirportCode, today, tripLength)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					cityLog.Warn().Err(err).Int("trip_length", tripLength).Msg("Flight window failed")
					tally.fail()
					bar.Add(1)
					continue
				}

				if len(quotes) > 0 {
					if err := c.store.UpsertFlightQuotes(gctx, city.ID, quotes); err != nil {
						cityLog.Error().Err(err).Int("trip_length", tripLength).Msg("Flight upsert failed")
						tally.fail()
					} else {
						tally.save(len(quotes))
					}
				}
				bar.Add(1)

				if err := c.pace(gctx); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err = g.Wait()
	summary := c.finish(ctx, runID, "flights", startedAt, &tally)
	return summary, err
}

// CollectHotels samples the cheapest downtown four-star nightly rate across
// the hotel window for every city. Each sampled rate is recorded once per
// trip length, so the nearest-date fallback finds it under every length.
func (c *Collector) CollectHotels(ctx context.Context) (Summary, error) {
	runID := uuid.New().String()
	startedAt := c.clock.Now()
	today := timeutil.Today(c.clock)
	cities, err := c.targetCities()
	if err != nil {
		return Summary{}, err
	}

	offsets := c.hotelOffsets()
	nights := domain.DefaultTripLength - 1

	log := c.log.WithContext("run_id", runID)
	log.Info().
		Str("window_start", today).
		Int("window_days", c.cfg.HotelWindowDays).
		Int("interval_days", c.cfg.HotelIntervalDays).
		Int("nights", nights).
		Msg("Hotel collection started")

	bar := c.newBar(len(cities) * len(offsets))
	var tally counters

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for _, city := range cities {
		city := city
		g.Go(func() error {
			cityLog := log.WithCity(city.ID)
			var rows []domain.HotelQuote

			for _, offset := range offsets {
				checkIn, err := timeutil.AddDays(today, offset)
				if err != nil {
					return err
				}
				checkOut, err := timeutil.AddDays(checkIn, nights)
				if err != nil {
					return err
				}

				tally.call()
				stays, err := c.api.StaySearch(gctx, city, checkIn, checkOut)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					cityLog.Warn().Err(err).Str("check_in", checkIn).Msg("Stay search failed")
					tally.fail()
					bar.Add(1)
					continue
				}

				if cheapest, ok := marketplace.CheapestStay(stays); ok {
					for _, tripLength := range domain.TripLengths {
						rows = append(rows, domain.HotelQuote{
							CheckInDate:    checkIn,
							TripLengthDays: tripLength,
							PricePerNight:  cheapest.SalePrice,
							PropertyName:   cheapest.Name,
						})
					}
				} else {
					cityLog.Debug().Str("check_in", checkIn).Msg("No stays returned")
				}
				bar.Add(1)

				if err := c.pace(gctx); err != nil {
					return err
				}
			}

			if len(rows) > 0 {
				if err := c.store.UpsertHotelQuotes(gctx, city.ID, rows); err != nil {
					cityLog.Error().Err(err).Msg("Hotel upsert failed")
					tally.fail()
					return nil
				}
				tally.save(len(rows))
			}
			return nil
		})
	}

	err = g.Wait()
	summary := c.finish(ctx, runID, "hotels", startedAt, &tally)
	return summary, err
}

// targetCities resolves the cities a run covers. An empty CityID means the
// whole catalog.
func (c *Collector) targetCities() ([]domain.City, error) {
	if c.cfg.CityID == "" {
		return domain.Cities(), nil
	}
	city, ok := domain.CityByID(c.cfg.CityID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCity, c.cfg.CityID)
	}
	return []domain.City{city}, nil
}

// hotelOffsets returns the day offsets sampled inside the hotel window.
// Sampling starts at tomorrow; today is never offered as a departure date.
func (c *Collector) hotelOffsets() []int {
	interval := c.cfg.HotelIntervalDays
	if interval < 1 {
		interval = 1
	}
	var offsets []int
	for offset := 1; offset < c.cfg.HotelWindowDays; offset += interval {
		offsets = append(offsets, offset)
	}
	return offsets
}

func (c *Collector) newBar(total int) *progressbar.ProgressBar {
	if c.cfg.Progress {
		return progressbar.Default(int64(total))
	}
	return progressbar.DefaultSilent(int64(total))
}

// pace sleeps for the configured delay between marketplace calls,
// returning early when the context is canceled.
func (c *Collector) pace(ctx context.Context) error {
	if c.cfg.Pacing <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.cfg.Pacing):
		return nil
	}
}

// finish logs the run outcome, emits the collect_run event, and builds the
// summary.
func (c *Collector) finish(ctx context.Context, runID, kind string, startedAt time.Time, tally *counters) Summary {
	saved, calls, failures := tally.totals()
	elapsed := c.clock.Now().Sub(startedAt)

	summary := Summary{
		RunID:       runID,
		Kind:        kind,
		StartedAt:   startedAt,
		Elapsed:     elapsed,
		QuotesSaved: saved,
		APICalls:    calls,
		Failures:    failures,
	}

	c.events.Emit(ctx, domain.NewEvent(domain.EventCollectRun, map[string]any{
		"run_id":       runID,
		"kind":         kind,
		"quotes_saved": saved,
		"api_calls":    calls,
		"failures":     failures,
		"elapsed_ms":   elapsed.Milliseconds(),
	}))

	c.log.Info().
		Str("run_id", runID).
		Str("kind", kind).
		Int("quotes_saved", saved).
		Int("api_calls", calls).
		Int("failures", failures).
		Dur("elapsed", elapsed).
		Msg("Collection finished")

	return summary
}
