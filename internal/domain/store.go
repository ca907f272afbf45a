package domain

import "context"

// QuoteReader supplies quote collections from the backing store.
// The store is an upsert cache refreshed by collection jobs and may contain
// gaps (missing dates) at any time; empty results are valid, not errors.
type QuoteReader interface {
	// CityQuotes returns every flight and hotel quote for one city,
	// across all trip lengths.
	CityQuotes(ctx context.Context, cityID string) (CityQuotes, error)

	// QuotesByTripLength returns quotes for a single trip length across
	// all cities, keyed by city ID. Cities without rows are absent.
	QuotesByTripLength(ctx context.Context, tripLength int) (map[string]CityQuotes, error)
}

// QuoteWriter persists quotes collected from the upstream marketplace.
// Upserts are idempotent on the natural keys (city, date, trip length).
type QuoteWriter interface {
	UpsertFlightQuotes(ctx context.Context, cityID string, quotes []FlightQuote) error
	UpsertHotelQuotes(ctx context.Context, cityID string, quotes []HotelQuote) error
}
