package usecase

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// DefaultCacheTTL is how long computed calendars and comparisons are served
// from cache before being recomputed from the store.
const DefaultCacheTTL = time.Hour

// PriceCalendarUseCase exposes the read operations behind the API: the
// per-city labeled cost calendar, the cross-city ranking, and the city
// catalog. The boolean return on Calendar and Compare reports a cache hit.
type PriceCalendarUseCase interface {
	Calendar(ctx context.Context, cityID string, tripLength int) (*domain.Calendar, bool, error)
	Compare(ctx context.Context, tripLength int) ([]domain.CityCostSummary, bool, error)
	Cities(ctx context.Context) []domain.City
}

// Config contains configuration options for the use case.
type Config struct {
	CacheTTL time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{CacheTTL: DefaultCacheTTL}
}

// priceCalendarUseCase implements PriceCalendarUseCase over a quote store,
// with a TTL cache in front of the pure computations.
type priceCalendarUseCase struct {
	store  domain.QuoteReader
	events domain.EventSink
	cache  *gocache.Cache
}

// NewPriceCalendarUseCase creates a PriceCalendarUseCase backed by the given
// store. A nil events sink discards events; a nil config uses defaults.
func NewPriceCalendarUseCase(store domain.QuoteReader, events domain.EventSink, config *Config) PriceCalendarUseCase {
	cfg := DefaultConfig()
	if config != nil && config.CacheTTL > 0 {
		cfg.CacheTTL = config.CacheTTL
	}
	if events == nil {
		events = domain.NopSink{}
	}

	return &priceCalendarUseCase{
		store:  store,
		events: events,
		cache:  gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// Calendar builds the labeled trip cost calendar for one city and trip length.
// Validation happens here, before any pure computation: unknown cities and
// out-of-range trip lengths are rejected with domain sentinel errors.
func (uc *priceCalendarUseCase) Calendar(ctx context.Context, cityID string, tripLength int) (*domain.Calendar, bool, error) {
	if !domain.ValidTripLength(tripLength) {
		return nil, false, fmt.Errorf("%w: %d (must be %d-%d)",
			domain.ErrInvalidTripLength, tripLength, domain.MinTripLength, domain.MaxTripLength)
	}

	city, ok := domain.CityByID(cityID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrUnknownCity, cityID)
	}

	key := calendarCacheKey(cityID, tripLength)
	if cached, hit := uc.cache.Get(key); hit {
		cal := cached.(*domain.Calendar)
		uc.emitCalendarView(ctx, cityID, tripLength, len(cal.Entries), true)
		return cal, true, nil
	}

	quotes, err := uc.store.CityQuotes(ctx, cityID)
	if err != nil {
		return nil, false, fmt.Errorf("load quotes for %s: %w", cityID, err)
	}

	costs := AggregateTripCosts(quotes.Flights, quotes.Hotels, tripLength)

	// The labeler snapshot is only valid for this exact distribution, so it
	// is rebuilt on every recomputation.
	labeler := NewPriceLabeler(perPersonCosts(costs))
	entries := make([]domain.CalendarEntry, len(costs))
	for i, c := range costs {
		entries[i] = domain.CalendarEntry{
			TripCost: c,
			Label:    labeler.Classify(c.PerPersonCost),
		}
	}

	cal := &domain.Calendar{
		City:           city,
		TripLengthDays: tripLength,
		Entries:        entries,
		Stats:          Stats(costs),
	}

	uc.cache.SetDefault(key, cal)
	uc.emitCalendarView(ctx, cityID, tripLength, len(entries), false)

	return cal, false, nil
}

// Compare ranks all catalog cities by minimum per-person cost for one trip length.
func (uc *priceCalendarUseCase) Compare(ctx context.Context, tripLength int) ([]domain.CityCostSummary, bool, error) {
	if !domain.ValidTripLength(tripLength) {
		return nil, false, fmt.Errorf("%w: %d (must be %d-%d)",
			domain.ErrInvalidTripLength, tripLength, domain.MinTripLength, domain.MaxTripLength)
	}

	key := compareCacheKey(tripLength)
	if cached, hit := uc.cache.Get(key); hit {
		summaries := cached.([]domain.CityCostSummary)
		uc.emitCompareView(ctx, tripLength, len(summaries), true)
		return summaries, true, nil
	}

	quotes, err := uc.store.QuotesByTripLength(ctx, tripLength)
	if err != nil {
		return nil, false, fmt.Errorf("load quotes for trip length %d: %w", tripLength, err)
	}

	summaries := CompareCities(domain.Cities(), quotes, tripLength)

	uc.cache.SetDefault(key, summaries)
	uc.emitCompareView(ctx, tripLength, len(summaries), false)

	return summaries, false, nil
}

// Cities returns the destination catalog.
func (uc *priceCalendarUseCase) Cities(context.Context) []domain.City {
	return domain.Cities()
}

func (uc *priceCalendarUseCase) emitCalendarView(ctx context.Context, cityID string, tripLength, entries int, cacheHit bool) {
	uc.events.Emit(ctx, domain.NewEvent(domain.EventCalendarView, map[string]any{
		"city_id":     cityID,
		"trip_length": tripLength,
		"entries":     entries,
		"cache_hit":   cacheHit,
	}))
}

func (uc *priceCalendarUseCase) emitCompareView(ctx context.Context, tripLength, cityCount int, cacheHit bool) {
	uc.events.Emit(ctx, domain.NewEvent(domain.EventCompareView, map[string]any{
		"trip_length": tripLength,
		"city_count":  cityCount,
		"cache_hit":   cacheHit,
	}))
}

func calendarCacheKey(cityID string, tripLength int) string {
	return fmt.Sprintf("calendar:%s:%d", cityID, tripLength)
}

func compareCacheKey(tripLength int) string {
	return fmt.Sprintf("compare:%d", tripLength)
}

// Ensure priceCalendarUseCase implements PriceCalendarUseCase at compile time.
var _ PriceCalendarUseCase = (*priceCalendarUseCase)(nil)
