// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// MustAddDays shifts a YYYY-MM-DD date by the given number of days.
// It fails the test if the date is malformed.
func MustAddDays(t *testing.T, dateStr string, days int) string {
	t.Helper()
	return MustParseDate(t, dateStr).AddDate(0, 0, days).Format("2006-01-02")
}

// FlightSeries builds a flight quote set with one quote per consecutive day
// starting at startDate, all for the same trip length. Prices are taken from
// fares in order, one per day.
func FlightSeries(t *testing.T, startDate string, tripLength int, fares ...int) domain.FlightQuoteSet {
	t.Helper()
	set := make(domain.FlightQuoteSet)
	for i, fare := range fares {
		set.Add(domain.FlightQuote{
			Date:           MustAddDays(t, startDate, i),
			TripLengthDays: tripLength,
			PricePerPerson: fare,
		})
	}
	return set
}

// HotelSeries builds a hotel quote set with one quote every interval days
// starting at startDate, all for the same trip length. Rates are taken from
// nightlyRates in order.
func HotelSeries(t *testing.T, startDate string, tripLength, interval int, nightlyRates ...int) domain.HotelQuoteSet {
	t.Helper()
	set := make(domain.HotelQuoteSet)
	for i, rate := range nightlyRates {
		set.Add(domain.HotelQuote{
			CheckInDate:    MustAddDays(t, startDate, i*interval),
			TripLengthDays: tripLength,
			PricePerNight:  rate,
		})
	}
	return set
}

// MustCity looks up a catalog city and fails the test when it is missing.
func MustCity(t *testing.T, cityID string) domain.City {
	t.Helper()
	city, ok := domain.CityByID(cityID)
	if !ok {
		t.Fatalf("City %q not in catalog", cityID)
	}
	return city
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
