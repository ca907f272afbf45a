// Package postgres implements the quote store on PostgreSQL. Collection jobs
// upsert quote rows keyed by (city, date, trip length); the serving layer reads
// them back as quote sets. The store is a cache, not a system of record: rows
// are overwritten on every collection run and gaps are expected.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

// Config holds the connection settings for the quote store.
type Config struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// Store provides quote persistence backed by PostgreSQL.
// It implements both domain.QuoteReader and domain.QuoteWriter.
type Store struct {
	db    *sql.DB
	clock timeutil.Clock
	log   *logger.Logger
}

// Compile-time interface checks.
var (
	_ domain.QuoteReader = (*Store)(nil)
	_ domain.QuoteWriter = (*Store)(nil)
)

// New opens a connection pool to PostgreSQL and verifies connectivity.
func New(cfg Config, clock timeutil.Clock, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Connected to PostgreSQL")

	return &Store{db: db, clock: clock, log: log}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the quote tables and indexes if they do not exist.
// Safe to call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS flight_prices (
		city_id          TEXT        NOT NULL,
		departure_date   DATE        NOT NULL,
		trip_length_days INTEGER     NOT NULL,
		price_per_person BIGINT      NOT NULL,
		carrier_code     TEXT        NOT NULL DEFAULT '',
		carrier_name     TEXT        NOT NULL DEFAULT '',
		collected_at     TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (city_id, departure_date, trip_length_days)
	);

	CREATE TABLE IF NOT EXISTS hotel_prices (
		city_id          TEXT        NOT NULL,
		check_in_date    DATE        NOT NULL,
		trip_length_days INTEGER     NOT NULL,
		price_per_night  BIGINT      NOT NULL,
		property_name    TEXT        NOT NULL DEFAULT '',
		collected_at     TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (city_id, check_in_date, trip_length_days)
	);

	CREATE INDEX IF NOT EXISTS idx_flight_prices_trip_length
		ON flight_prices(trip_length_days);

	CREATE INDEX IF NOT EXISTS idx_hotel_prices_trip_length
		ON hotel_prices(trip_length_days);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.log.Info().Msg("Database schema ready")
	return nil
}

// CityQuotes returns every flight and hotel quote stored for one city.
func (s *Store) CityQuotes(ctx context.Context, cityID string) (domain.CityQuotes, error) {
	quotes := domain.CityQuotes{
		Flights: make(domain.FlightQuoteSet),
		Hotels:  make(domain.HotelQuoteSet),
	}

	flightRows, err := s.db.QueryContext(ctx, `
		SELECT to_char(departure_date, 'YYYY-MM-DD'), trip_length_days,
		       price_per_person, carrier_code, carrier_name
		FROM flight_prices
		WHERE city_id = $1`, cityID)
	if err != nil {
		return domain.CityQuotes{}, s.storeErr("query flight quotes", err)
	}
	defer flightRows.Close()

	for flightRows.Next() {
		q, err := scanFlightQuote(flightRows)
		if err != nil {
			return domain.CityQuotes{}, s.storeErr("scan flight quote", err)
		}
		quotes.Flights.Add(q)
	}
	if err := flightRows.Err(); err != nil {
		return domain.CityQuotes{}, s.storeErr("iterate flight quotes", err)
	}

	hotelRows, err := s.db.QueryContext(ctx, `
		SELECT to_char(check_in_date, 'YYYY-MM-DD'), trip_length_days,
		       price_per_night, property_name
		FROM hotel_prices
		WHERE city_id = $1`, cityID)
	if err != nil {
		return domain.CityQuotes{}, s.storeErr("query hotel quotes", err)
	}
	defer hotelRows.Close()

	for hotelRows.Next() {
		q, err := scanHotelQuote(hotelRows)
		if err != nil {
			return domain.CityQuotes{}, s.storeErr("scan hotel quote", err)
		}
		quotes.Hotels.Add(q)
	}
	if err := hotelRows.Err(); err != nil {
		return domain.CityQuotes{}, s.storeErr("iterate hotel quotes", err)
	}

	return quotes, nil
}

// QuotesByTripLength returns the quotes for a single trip length across all
// cities, keyed by city ID. Only cities with at least one row appear.
func (s *Store) QuotesByTripLength(ctx context.Context, tripLength int) (map[string]domain.CityQuotes, error) {
	result := make(map[string]domain.CityQuotes)

	byCity := func(cityID string) domain.CityQuotes {
		quotes, ok := result[cityID]
		if !ok {
			quotes = domain.CityQuotes{
				Flights: make(domain.FlightQuoteSet),
				Hotels:  make(domain.HotelQuoteSet),
			}
			result[cityID] = quotes
		}
		return quotes
	}

	flightRows, err := s.db.QueryContext(ctx, `
		SELECT city_id, to_char(departure_date, 'YYYY-MM-DD'), trip_length_days,
		       price_per_person, carrier_code, carrier_name
		FROM flight_prices
		WHERE trip_length_days = $1`, tripLength)
	if err != nil {
		return nil, s.storeErr("query flight quotes by trip length", err)
	}
	defer flightRows.Close()

	for flightRows.Next() {
		var cityID string
		var q domain.FlightQuote
		if err := flightRows.Scan(&cityID, &q.Date, &q.TripLengthDays,
			&q.PricePerPerson, &q.CarrierCode, &q.CarrierName); err != nil {
			return nil, s.storeErr("scan flight quote", err)
		}
		fillCarrierName(&q)
		byCity(cityID).Flights.Add(q)
	}
	if err := flightRows.Err(); err != nil {
		return nil, s.storeErr("iterate flight quotes", err)
	}

	hotelRows, err := s.db.QueryContext(ctx, `
		SELECT city_id, to_char(check_in_date, 'YYYY-MM-DD'), trip_length_days,
		       price_per_night, property_name
		FROM hotel_prices
		WHERE trip_length_days = $1`, tripLength)
	if err != nil {
		return nil, s.storeErr("query hotel quotes by trip length", err)
	}
	defer hotelRows.Close()

	for hotelRows.Next() {
		var cityID string
		var q domain.HotelQuote
		if err := hotelRows.Scan(&cityID, &q.CheckInDate, &q.TripLengthDays,
			&q.PricePerNight, &q.PropertyName); err != nil {
			return nil, s.storeErr("scan hotel quote", err)
		}
		byCity(cityID).Hotels.Add(q)
	}
	if err := hotelRows.Err(); err != nil {
		return nil, s.storeErr("iterate hotel quotes", err)
	}

	return result, nil
}

// UpsertFlightQuotes writes the given flight quotes for one city in a single
// transaction, replacing existing rows with the same natural key.
func (s *Store) UpsertFlightQuotes(ctx context.Context, cityID string, quotes []domain.FlightQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.storeErr("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flight_prices
			(city_id, departure_date, trip_length_days, price_per_person,
			 carrier_code, carrier_name, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (city_id, departure_date, trip_length_days) DO UPDATE SET
			price_per_person = EXCLUDED.price_per_person,
			carrier_code     = EXCLUDED.carrier_code,
			carrier_name     = EXCLUDED.carrier_name,
			collected_at     = EXCLUDED.collected_at`)
	if err != nil {
		return s.storeErr("prepare flight upsert", err)
	}
	defer stmt.Close()

	collectedAt := s.clock.Now()
	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, cityID, q.Date, q.TripLengthDays,
			q.PricePerPerson, q.CarrierCode, q.CarrierName, collectedAt); err != nil {
			return s.storeErr("upsert flight quote", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.storeErr("commit flight quotes", err)
	}

	s.log.Debug().
		Str("city", cityID).
		Int("count", len(quotes)).
		Msg("Upserted flight quotes")
	return nil
}

// UpsertHotelQuotes writes the given hotel quotes for one city in a single
// transaction, replacing existing rows with the same natural key.
func (s *Store) UpsertHotelQuotes(ctx context.Context, cityID string, quotes []domain.HotelQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.storeErr("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hotel_prices
			(city_id, check_in_date, trip_length_days, price_per_night,
			 property_name, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (city_id, check_in_date, trip_length_days) DO UPDATE SET
			price_per_night = EXCLUDED.price_per_night,
			property_name   = EXCLUDED.property_name,
			collected_at    = EXCLUDED.collected_at`)
	if err != nil {
		return s.storeErr("prepare hotel upsert", err)
	}
	defer stmt.Close()

	collectedAt := s.clock.Now()
	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, cityID, q.CheckInDate, q.TripLengthDays,
			q.PricePerNight, q.PropertyName, collectedAt); err != nil {
			return s.storeErr("upsert hotel quote", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.storeErr("commit hotel quotes", err)
	}

	s.log.Debug().
		Str("city", cityID).
		Int("count", len(quotes)).
		Msg("Upserted hotel quotes")
	return nil
}

// storeErr logs the underlying database error and wraps it in
// domain.ErrStoreUnavailable so callers can map it without importing sql.
func (s *Store) storeErr(op string, err error) error {
	s.log.Error().Err(err).Str("op", op).Msg("Store operation failed")
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}

func scanFlightQuote(rows *sql.Rows) (domain.FlightQuote, error) {
	var q domain.FlightQuote
	if err := rows.Scan(&q.Date, &q.TripLengthDays, &q.PricePerPerson,
		&q.CarrierCode, &q.CarrierName); err != nil {
		return domain.FlightQuote{}, err
	}
	fillCarrierName(&q)
	return q, nil
}

func scanHotelQuote(rows *sql.Rows) (domain.HotelQuote, error) {
	var q domain.HotelQuote
	if err := rows.Scan(&q.CheckInDate, &q.TripLengthDays, &q.PricePerNight,
		&q.PropertyName); err != nil {
		return domain.HotelQuote{}, err
	}
	return q, nil
}

// fillCarrierName backfills the display name from the airline catalog when the
// collector stored only a carrier code.
func fillCarrierName(q *domain.FlightQuote) {
	if q.CarrierName == "" && q.CarrierCode != "" {
		q.CarrierName = domain.AirlineName(q.CarrierCode)
	}
}
