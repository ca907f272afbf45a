package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/logger"
	"github.com/trip-cost/trip-cost-calendar-service/internal/infrastructure/timeutil"
)

var testCollectedAt = time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC)

// newMockStore wires a Store to a sqlmock connection. Expectations are
// matched in order, so the query text matcher can stay permissive.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := &Store{
		db:    db,
		clock: timeutil.NewMockClock(testCollectedAt),
		log:   logger.Nop(),
	}
	return store, mock
}

func flightColumns(withCity bool) []string {
	cols := []string{"departure_date", "trip_length_days", "price_per_person", "carrier_code", "carrier_name"}
	if withCity {
		return append([]string{"city_id"}, cols...)
	}
	return cols
}

func hotelColumns(withCity bool) []string {
	cols := []string{"check_in_date", "trip_length_days", "price_per_night", "property_name"}
	if withCity {
		return append([]string{"city_id"}, cols...)
	}
	return cols
}

func TestCityQuotes(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT").WithArgs("tokyo").WillReturnRows(
		sqlmock.NewRows(flightColumns(false)).
			AddRow("2025-03-15", 5, 520000, "KE", "대한항공").
			AddRow("2025-03-16", 3, 410000, "7C", ""))
	mock.ExpectQuery("SELECT").WithArgs("tokyo").WillReturnRows(
		sqlmock.NewRows(hotelColumns(false)).
			AddRow("2025-03-15", 5, 90000, "Hotel Gracery Shinjuku"))

	quotes, err := store.CityQuotes(context.Background(), "tokyo")
	require.NoError(t, err)

	fq, ok := quotes.Flights.Get("2025-03-15", 5)
	require.True(t, ok)
	assert.Equal(t, 520000, fq.PricePerPerson)
	assert.Equal(t, "대한항공", fq.CarrierName)

	// Empty carrier name is backfilled from the airline catalog.
	fq, ok = quotes.Flights.Get("2025-03-16", 3)
	require.True(t, ok)
	assert.Equal(t, "제주항공", fq.CarrierName)

	hq, ok := quotes.Hotels.Get("2025-03-15", 5)
	require.True(t, ok)
	assert.Equal(t, 90000, hq.PricePerNight)
	assert.Equal(t, "Hotel Gracery Shinjuku", hq.PropertyName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityQuotes_Empty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT").WithArgs("osaka").
		WillReturnRows(sqlmock.NewRows(flightColumns(false)))
	mock.ExpectQuery("SELECT").WithArgs("osaka").
		WillReturnRows(sqlmock.NewRows(hotelColumns(false)))

	quotes, err := store.CityQuotes(context.Background(), "osaka")
	require.NoError(t, err)
	assert.Empty(t, quotes.Flights)
	assert.Empty(t, quotes.Hotels)
	assert.NotNil(t, quotes.Flights)
	assert.NotNil(t, quotes.Hotels)
}

func TestCityQuotes_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT").WithArgs("tokyo").
		WillReturnError(errors.New("connection refused"))

	_, err := store.CityQuotes(context.Background(), "tokyo")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestQuotesByTripLength(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT").WithArgs(5).WillReturnRows(
		sqlmock.NewRows(flightColumns(true)).
			AddRow("tokyo", "2025-03-15", 5, 520000, "KE", "대한항공").
			AddRow("bangkok", "2025-03-15", 5, 340000, "TG", "타이항공"))
	mock.ExpectQuery("SELECT").WithArgs(5).WillReturnRows(
		sqlmock.NewRows(hotelColumns(true)).
			AddRow("tokyo", "2025-03-15", 5, 90000, "Hotel Gracery Shinjuku"))

	byCity, err := store.QuotesByTripLength(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, byCity, 2)

	tokyo := byCity["tokyo"]
	_, ok := tokyo.Flights.Get("2025-03-15", 5)
	assert.True(t, ok)
	_, ok = tokyo.Hotels.Get("2025-03-15", 5)
	assert.True(t, ok)

	// Bangkok has a flight row but no hotel row; its hotel set is empty.
	bangkok := byCity["bangkok"]
	_, ok = bangkok.Flights.Get("2025-03-15", 5)
	assert.True(t, ok)
	assert.Empty(t, bangkok.Hotels)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotesByTripLength_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT").WithArgs(5).
		WillReturnError(errors.New("connection refused"))

	_, err := store.QuotesByTripLength(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestUpsertFlightQuotes(t *testing.T) {
	store, mock := newMockStore(t)

	quotes := []domain.FlightQuote{
		{Date: "2025-03-15", TripLengthDays: 5, PricePerPerson: 520000, CarrierCode: "KE", CarrierName: "대한항공"},
		{Date: "2025-03-16", TripLengthDays: 5, PricePerPerson: 480000, CarrierCode: "7C", CarrierName: "제주항공"},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO flight_prices")
	for _, q := range quotes {
		prep.ExpectExec().
			WithArgs("tokyo", q.Date, q.TripLengthDays, q.PricePerPerson,
				q.CarrierCode, q.CarrierName, testCollectedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := store.UpsertFlightQuotes(context.Background(), "tokyo", quotes)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFlightQuotes_Empty(t *testing.T) {
	store, mock := newMockStore(t)

	err := store.UpsertFlightQuotes(context.Background(), "tokyo", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFlightQuotes_ExecError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO flight_prices")
	prep.ExpectExec().WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.UpsertFlightQuotes(context.Background(), "tokyo", []domain.FlightQuote{
		{Date: "2025-03-15", TripLengthDays: 5, PricePerPerson: 520000},
	})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestUpsertHotelQuotes(t *testing.T) {
	store, mock := newMockStore(t)

	quotes := []domain.HotelQuote{
		{CheckInDate: "2025-03-15", TripLengthDays: 5, PricePerNight: 90000, PropertyName: "Hotel Gracery Shinjuku"},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO hotel_prices")
	prep.ExpectExec().
		WithArgs("tokyo", "2025-03-15", 5, 90000, "Hotel Gracery Shinjuku", testCollectedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.UpsertHotelQuotes(context.Background(), "tokyo", quotes)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertHotelQuotes_BeginError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := store.UpsertHotelQuotes(context.Background(), "tokyo", []domain.HotelQuote{
		{CheckInDate: "2025-03-15", TripLengthDays: 5, PricePerNight: 90000},
	})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestEnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.EnsureSchema(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFillCarrierName(t *testing.T) {
	tests := []struct {
		name  string
		quote domain.FlightQuote
		want  string
	}{
		{"known code backfilled", domain.FlightQuote{CarrierCode: "KE"}, "대한항공"},
		{"unknown code kept as-is", domain.FlightQuote{CarrierCode: "XX"}, "XX"},
		{"existing name preserved", domain.FlightQuote{CarrierCode: "KE", CarrierName: "Korean Air"}, "Korean Air"},
		{"no code leaves name empty", domain.FlightQuote{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.quote
			fillCarrierName(&q)
			assert.Equal(t, tt.want, q.CarrierName)
		})
	}
}
