// Package mock provides test doubles for the trip cost calendar system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific quote series).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

// QuoteStore is a configurable in-memory implementation of
// domain.QuoteReader and domain.QuoteWriter. It supports configurable
// delays and errors for testing timeouts and store outages.
type QuoteStore struct {
	mu        sync.Mutex
	cities    map[string]domain.CityQuotes
	err       error
	delay     time.Duration
	readCount int
}

// NewQuoteStore creates an empty mock store. Quotes are loaded either with
// the builder methods or through the QuoteWriter interface.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		cities: make(map[string]domain.CityQuotes),
	}
}

// WithCityQuotes seeds the store with a city's quote series.
func (s *QuoteStore) WithCityQuotes(cityID string, quotes domain.CityQuotes) *QuoteStore {
	s.cities[cityID] = quotes
	return s
}

// WithError configures every read and write to fail with the given error.
func (s *QuoteStore) WithError(err error) *QuoteStore {
	s.err = err
	return s
}

// WithDelay configures reads to wait the given duration before responding.
// This is useful for testing timeout and concurrency behavior.
func (s *QuoteStore) WithDelay(d time.Duration) *QuoteStore {
	s.delay = d
	return s
}

// CityQuotes implements domain.QuoteReader.
func (s *QuoteStore) CityQuotes(ctx context.Context, cityID string) (domain.CityQuotes, error) {
	s.mu.Lock()
	s.readCount++
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return domain.CityQuotes{}, err
	}
	if s.err != nil {
		return domain.CityQuotes{}, s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if quotes, ok := s.cities[cityID]; ok {
		return quotes, nil
	}
	return domain.CityQuotes{
		Flights: make(domain.FlightQuoteSet),
		Hotels:  make(domain.HotelQuoteSet),
	}, nil
}

// QuotesByTripLength implements domain.QuoteReader. Cities whose series
// carry no quote for the trip length are absent from the result.
func (s *QuoteStore) QuotesByTripLength(ctx context.Context, tripLength int) (map[string]domain.CityQuotes, error) {
	s.mu.Lock()
	s.readCount++
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]domain.CityQuotes)
	for cityID, quotes := range s.cities {
		filtered := domain.CityQuotes{
			Flights: make(domain.FlightQuoteSet),
			Hotels:  make(domain.HotelQuoteSet),
		}
		for _, byLength := range quotes.Flights {
			if q, ok := byLength[tripLength]; ok {
				filtered.Flights.Add(q)
			}
		}
		for _, byLength := range quotes.Hotels {
			if q, ok := byLength[tripLength]; ok {
				filtered.Hotels.Add(q)
			}
		}
		if len(filtered.Flights) > 0 || len(filtered.Hotels) > 0 {
			result[cityID] = filtered
		}
	}
	return result, nil
}

// UpsertFlightQuotes implements domain.QuoteWriter.
func (s *QuoteStore) UpsertFlightQuotes(ctx context.Context, cityID string, quotes []domain.FlightQuote) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	city := s.city(cityID)
	for _, q := range quotes {
		city.Flights.Add(q)
	}
	return nil
}

// UpsertHotelQuotes implements domain.QuoteWriter.
func (s *QuoteStore) UpsertHotelQuotes(ctx context.Context, cityID string, quotes []domain.HotelQuote) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	city := s.city(cityID)
	for _, q := range quotes {
		city.Hotels.Add(q)
	}
	return nil
}

// ReadCount returns the number of read calls made against the store.
// This is useful for verifying cache behavior.
func (s *QuoteStore) ReadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCount
}

// Reset resets the read count to zero.
func (s *QuoteStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readCount = 0
}

// city returns the mutable quote bundle for a city, creating it on first use.
// Callers must hold the mutex.
func (s *QuoteStore) city(cityID string) domain.CityQuotes {
	quotes, ok := s.cities[cityID]
	if !ok {
		quotes = domain.CityQuotes{
			Flights: make(domain.FlightQuoteSet),
			Hotels:  make(domain.HotelQuoteSet),
		}
		s.cities[cityID] = quotes
	}
	return quotes
}

func (s *QuoteStore) wait(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return ctx.Err()
}

// Ensure QuoteStore implements the store interfaces at compile time.
var (
	_ domain.QuoteReader = (*QuoteStore)(nil)
	_ domain.QuoteWriter = (*QuoteStore)(nil)
)

// SampleCityQuotes returns a realistic quote series for testing: one flight
// quote per day from startDate with prices cycling through the given fares,
// and a hotel quote every third day at the given nightly rate. All quotes
// carry the same trip length.
func SampleCityQuotes(startDate string, days, tripLength int, fares []int, nightlyRate int) domain.CityQuotes {
	quotes := domain.CityQuotes{
		Flights: make(domain.FlightQuoteSet),
		Hotels:  make(domain.HotelQuoteSet),
	}

	for i := 0; i < days; i++ {
		date, err := timeutil.AddDays(startDate, i)
		if err != nil {
			panic("invalid start date: " + err.Error())
		}

		quotes.Flights.Add(domain.FlightQuote{
			Date:           date,
			TripLengthDays: tripLength,
			PricePerPerson: fares[i%len(fares)],
			CarrierCode:    "KE",
		})

		if i%3 == 0 {
			quotes.Hotels.Add(domain.HotelQuote{
				CheckInDate:    date,
				TripLengthDays: tripLength,
				PricePerNight:  nightlyRate,
				PropertyName:   "Sample Downtown Hotel",
			})
		}
	}

	return quotes
}
